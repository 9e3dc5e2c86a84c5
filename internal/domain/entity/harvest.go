package entity

import "fmt"

type Scope string

const (
	ScopeCard     Scope = "card"
	ScopeItem     Scope = "item"
	ScopePage     Scope = "page"
	ScopeCategory Scope = "category"
)

// Skip records one unit that produced no record and why.
type Skip struct {
	Scope    Scope
	Category string
	Page     int
	Index    int
	Err      error
}

func (s Skip) Reason() string {
	return Reason(s.Err)
}

func (s Skip) String() string {
	return fmt.Sprintf("%s %d of %q (page %d): %v", s.Scope, s.Index, s.Category, s.Page, s.Err)
}

// Harvest is the ordered output of one run together with every skipped unit.
type Harvest[T any] struct {
	Records []T
	Skips   []Skip
}

func (h *Harvest[T]) Add(records ...T) {
	h.Records = append(h.Records, records...)
}

func (h *Harvest[T]) Skip(skips ...Skip) {
	h.Skips = append(h.Skips, skips...)
}

// SkipCounts aggregates skips by scope and reason, e.g. "card/malformed_field".
func (h *Harvest[T]) SkipCounts() map[string]int {
	counts := make(map[string]int, len(h.Skips))
	for _, s := range h.Skips {
		counts[string(s.Scope)+"/"+s.Reason()]++
	}
	return counts
}
