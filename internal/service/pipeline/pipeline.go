// Package pipeline runs one extraction over a scoped browser session and hands
// whatever was harvested to the configured sinks.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/LouYuanbo1/seoulcrawler/internal/domain/entity"
	"github.com/LouYuanbo1/seoulcrawler/internal/infra/crawler/chrome"
	"golang.org/x/sync/errgroup"
)

// Sink receives the final ordered record sequence of a run.
type Sink[T any] interface {
	Name() string
	Write(ctx context.Context, records []T) error
}

// Opener acquires the browser session for one run.
type Opener func(ctx context.Context) (chrome.Session, error)

// Extractor is a pipeline driver such as restaurant.Service.Run.
type Extractor[T any] func(ctx context.Context, session chrome.Session) (entity.Harvest[T], error)

// Run opens a session, extracts, releases the session on every path and then
// writes the records, partial or not, to every sink. The returned error joins
// extraction, release and sink failures.
func Run[T any](ctx context.Context, open Opener, extract Extractor[T], sinks ...Sink[T]) (entity.Harvest[T], error) {
	harvest, err := extractScoped(ctx, open, extract)
	if errors.Is(err, errOpen) {
		return harvest, err
	}
	return harvest, errors.Join(err, Emit(ctx, harvest.Records, sinks...))
}

var errOpen = errors.New("open browser session")

func extractScoped[T any](ctx context.Context, open Opener, extract Extractor[T]) (harvest entity.Harvest[T], err error) {
	session, err := open(ctx)
	if err != nil {
		return harvest, fmt.Errorf("%w: %w", errOpen, err)
	}
	defer func() {
		if cerr := session.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close browser session: %w", cerr))
		}
	}()
	return extract(ctx, session)
}

// Emit writes records to all sinks concurrently. A failing sink does not stop
// the others.
func Emit[T any](ctx context.Context, records []T, sinks ...Sink[T]) error {
	errs := make([]error, len(sinks))
	var g errgroup.Group
	for i, sink := range sinks {
		g.Go(func() error {
			if err := sink.Write(ctx, records); err != nil {
				errs[i] = fmt.Errorf("sink %s: %w", sink.Name(), err)
			}
			return nil
		})
	}
	_ = g.Wait()
	return errors.Join(errs...)
}
