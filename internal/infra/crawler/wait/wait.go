// Package wait holds the render-wait policies applied between a browser action
// and reading the DOM it produced.
package wait

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/LouYuanbo1/seoulcrawler/internal/config"
	"github.com/LouYuanbo1/seoulcrawler/internal/infra/crawler/chrome"
)

// Clock is the only source of delay, so tests can replace it.
type Clock interface {
	Sleep(ctx context.Context, d time.Duration) error
}

type realClock struct{}

func RealClock() Clock {
	return realClock{}
}

func (realClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Policy blocks until asynchronous content is expected to have painted.
type Policy interface {
	Wait(ctx context.Context, session chrome.Session) error
}

// Fixed sleeps Standard plus a uniformly random jitter in [0, Random).
type Fixed struct {
	Standard time.Duration
	Random   time.Duration
	Clock    Clock
}

func (f Fixed) Wait(ctx context.Context, _ chrome.Session) error {
	return f.Clock.Sleep(ctx, f.Standard+jitter(f.Random))
}

func jitter(limit time.Duration) time.Duration {
	if limit <= 0 {
		return 0
	}
	return time.Duration(rand.Int64N(int64(limit)))
}

// Selector waits until Selector matches at least one element, for at most Timeout.
type Selector struct {
	Selector string
	Timeout  time.Duration
}

func (s Selector) Wait(ctx context.Context, session chrome.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := session.WaitAll(s.Selector, s.Timeout)
	return err
}

func FromConfig(cfg config.RenderWait, clock Clock) Policy {
	if cfg.Mode == config.RenderWaitSelector {
		return Selector{
			Selector: cfg.Selector,
			Timeout:  time.Duration(cfg.TimeoutMillis) * time.Millisecond,
		}
	}
	return Fixed{
		Standard: time.Duration(cfg.StandardMillis) * time.Millisecond,
		Random:   time.Duration(cfg.RandomMillis) * time.Millisecond,
		Clock:    clock,
	}
}
