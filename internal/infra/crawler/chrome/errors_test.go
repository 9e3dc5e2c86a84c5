package chrome

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/LouYuanbo1/seoulcrawler/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	live := context.Background()
	dead, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, classify(live, "op", nil))

	err := classify(live, "wait", fmt.Errorf("driver: %w", context.DeadlineExceeded))
	assert.True(t, errors.Is(err, entity.ErrRenderTimeout))
	assert.False(t, errors.Is(err, entity.ErrSessionFailure))

	err = classify(dead, "navigate", errors.New("websocket closed"))
	assert.True(t, errors.Is(err, entity.ErrSessionFailure))

	err = classify(live, "click", errors.New("detached"))
	assert.Equal(t, "other", entity.Reason(err))
}
