// Package chrometest provides an in-memory chrome.Session for tests.
package chrometest

import (
	"fmt"
	"time"

	"github.com/LouYuanbo1/seoulcrawler/internal/domain/entity"
	"github.com/LouYuanbo1/seoulcrawler/internal/infra/crawler/chrome"
)

// Element is a scripted node. Children are keyed by selector.
type Element struct {
	TextValue string
	Attrs     map[string]string
	Children  map[string][]*Element

	TextErr   error
	ClickErr  error
	ScrollErr error
	// OnClick runs after a successful click, e.g. to reveal an answer.
	OnClick func()

	Clicks int
}

func (e *Element) Text() (string, error) {
	if e.TextErr != nil {
		return "", e.TextErr
	}
	return e.TextValue, nil
}

func (e *Element) Attribute(name string) (string, bool, error) {
	v, ok := e.Attrs[name]
	return v, ok, nil
}

func (e *Element) QueryAll(selector string) ([]chrome.Element, error) {
	return asElements(e.Children[selector]), nil
}

func (e *Element) ScrollIntoView() error {
	return e.ScrollErr
}

func (e *Element) Click() error {
	if e.ClickErr != nil {
		return e.ClickErr
	}
	e.Clicks++
	if e.OnClick != nil {
		e.OnClick()
	}
	return nil
}

// Session serves a DOM that tests mutate through Scripts and OnClick hooks.
type Session struct {
	// Pages maps a navigated URL to the HTML returned by HTML().
	Pages map[string]string
	// DOM maps selectors to the elements currently matching them.
	DOM map[string][]*Element
	// Scripts maps an executed script to its effect.
	Scripts map[string]func() error

	NavigateErr error
	Visited     []string
	Executed    []string
	Waits       []string
	Closed      bool

	current string
}

func NewSession() *Session {
	return &Session{
		Pages:   map[string]string{},
		DOM:     map[string][]*Element{},
		Scripts: map[string]func() error{},
	}
}

func (s *Session) Navigate(url string) error {
	s.Visited = append(s.Visited, url)
	if s.NavigateErr != nil {
		return s.NavigateErr
	}
	s.current = url
	return nil
}

func (s *Session) ExecuteScript(script string) error {
	s.Executed = append(s.Executed, script)
	fn, ok := s.Scripts[script]
	if !ok {
		return fmt.Errorf("script %q: %w", script, entity.ErrSessionFailure)
	}
	return fn()
}

func (s *Session) QueryAll(selector string) ([]chrome.Element, error) {
	return asElements(s.DOM[selector]), nil
}

func (s *Session) WaitAll(selector string, timeout time.Duration) ([]chrome.Element, error) {
	s.Waits = append(s.Waits, selector)
	found := s.DOM[selector]
	if len(found) == 0 {
		return nil, fmt.Errorf("wait %s (%s): %w", selector, timeout, entity.ErrRenderTimeout)
	}
	return asElements(found), nil
}

func (s *Session) HTML() (string, error) {
	html, ok := s.Pages[s.current]
	if !ok {
		return "", fmt.Errorf("no page for %q: %w", s.current, entity.ErrElementNotFound)
	}
	return html, nil
}

func (s *Session) Close() error {
	s.Closed = true
	return nil
}

func asElements(in []*Element) []chrome.Element {
	out := make([]chrome.Element, 0, len(in))
	for _, e := range in {
		out = append(out, e)
	}
	return out
}
