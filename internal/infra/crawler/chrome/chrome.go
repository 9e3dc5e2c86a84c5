package chrome

import (
	"context"
	"fmt"
	"time"

	"github.com/LouYuanbo1/seoulcrawler/internal/config"
)

// Session 浏览器会话: the one browser page shared by a whole run.
type Session interface {
	Navigate(url string) error
	// ExecuteScript runs statements in page scope, e.g. an onclick handler body.
	ExecuteScript(script string) error
	// QueryAll returns the elements currently matching selector, possibly none.
	QueryAll(selector string) ([]Element, error)
	// WaitAll waits until at least one element matches selector and returns all
	// matches, or fails with entity.ErrRenderTimeout after timeout.
	WaitAll(selector string, timeout time.Duration) ([]Element, error)
	// HTML returns the rendered document for snapshot parsing.
	HTML() (string, error)
	Close() error
}

// Element is a live DOM node on the session page.
type Element interface {
	Text() (string, error)
	// Attribute reports ok=false when the attribute is absent.
	Attribute(name string) (value string, ok bool, err error)
	QueryAll(selector string) ([]Element, error)
	ScrollIntoView() error
	// Click dispatches a script click, which is not blocked by overlapping nodes.
	Click() error
}

// Query returns the first descendant of el matching selector.
func Query(el Element, selector string) (Element, error) {
	found, err := el.QueryAll(selector)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("%q: %w", selector, errNotFound)
	}
	return found[0], nil
}

// Open launches the browser selected by cfg.Browser.Driver.
func Open(ctx context.Context, cfg *config.Config) (Session, error) {
	switch cfg.Browser.Driver {
	case config.DriverChromedp:
		return InitChromedpSession(ctx, cfg)
	case config.DriverRod:
		return InitRodSession(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown browser driver %q", cfg.Browser.Driver)
	}
}
