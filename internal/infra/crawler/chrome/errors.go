package chrome

import (
	"context"
	"errors"
	"fmt"

	"github.com/LouYuanbo1/seoulcrawler/internal/domain/entity"
)

var errNotFound = entity.ErrElementNotFound

// classify maps driver errors onto the entity taxonomy. sessionCtx is the
// context owning the browser; once it is done nothing else can succeed.
func classify(sessionCtx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case sessionCtx.Err() != nil:
		return fmt.Errorf("%s: %w: %w", op, entity.ErrSessionFailure, err)
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: %w: %w", op, entity.ErrRenderTimeout, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
