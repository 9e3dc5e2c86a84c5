// Package snapshot parses a rendered page into a read-only tree so selector
// queries run without further round trips to the browser.
package snapshot

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Node is one element of a parsed snapshot.
type Node interface {
	Text() string
	Attr(name string) (string, bool)
	Find(selector string) []Node
}

type Document struct {
	doc *goquery.Document
}

func Parse(html string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	return &Document{doc: doc}, nil
}

func (d *Document) Find(selector string) []Node {
	return nodes(d.doc.Find(selector))
}

// FindFirst tries selectors in order and returns the matches of the first one
// that matches anything.
func (d *Document) FindFirst(selectors ...string) []Node {
	for _, sel := range selectors {
		if found := d.Find(sel); len(found) > 0 {
			return found
		}
	}
	return nil
}

// Classes lists the class attribute of up to limit div elements, for diagnosing
// a page whose layout no longer matches the configured selectors.
func (d *Document) Classes(limit int) []string {
	var out []string
	d.doc.Find("div[class]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		out = append(out, s.AttrOr("class", ""))
		return len(out) < limit
	})
	return out
}

type node struct {
	sel *goquery.Selection
}

func nodes(sel *goquery.Selection) []Node {
	out := make([]Node, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		out = append(out, node{sel: s})
	})
	return out
}

func (n node) Text() string {
	return n.sel.Text()
}

func (n node) Attr(name string) (string, bool) {
	return n.sel.Attr(name)
}

func (n node) Find(selector string) []Node {
	return nodes(n.sel.Find(selector))
}
