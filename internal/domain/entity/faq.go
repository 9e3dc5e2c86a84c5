package entity

import "github.com/LouYuanbo1/seoulcrawler/internal/domain/model"

type FaqEntry struct {
	Category string
	Question string
	Answer   string
}

func (f FaqEntry) ToDocument() *model.FaqDoc {
	return &model.FaqDoc{
		Category: f.Category,
		Question: f.Question,
		Answer:   f.Answer,
	}
}

// PaginationCursor lives for one category pass of the FAQ pipeline.
type PaginationCursor struct {
	Page    int
	HasNext bool
}

func NewPaginationCursor() *PaginationCursor {
	return &PaginationCursor{Page: 1}
}

// Advance moves to the following page after a next-page control was invoked.
func (c *PaginationCursor) Advance() {
	c.Page++
	c.HasNext = false
}
