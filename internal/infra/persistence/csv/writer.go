// Package csv writes harvested records as spreadsheet-friendly CSV files.
package csv

import (
	"context"
	stdcsv "encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/LouYuanbo1/seoulcrawler/internal/domain/entity"
)

const utf8BOM = "\ufeff"

// Writer replaces the file at path with a header row and one row per record.
type Writer[T any] struct {
	path   string
	header []string
	row    func(T) []string
	// bom makes spreadsheet tools detect UTF-8 for Hangul text.
	bom bool
}

func NewRestaurantWriter(path string) *Writer[entity.Restaurant] {
	return &Writer[entity.Restaurant]{
		path:   path,
		header: []string{"name", "category", "score", "review_count", "latitude", "longitude"},
		row: func(r entity.Restaurant) []string {
			return []string{
				r.Name,
				r.Category,
				strconv.FormatFloat(r.Score, 'f', -1, 64),
				strconv.Itoa(r.ReviewCount),
				deref(r.Latitude),
				deref(r.Longitude),
			}
		},
	}
}

func NewFaqWriter(path string) *Writer[entity.FaqEntry] {
	return &Writer[entity.FaqEntry]{
		path:   path,
		header: []string{"category", "question", "answer"},
		row: func(f entity.FaqEntry) []string {
			return []string{f.Category, f.Question, f.Answer}
		},
		bom: true,
	}
}

func (w *Writer[T]) Name() string {
	return "csv:" + w.path
}

func (w *Writer[T]) Write(_ context.Context, records []T) error {
	if dir := filepath.Dir(w.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("create %s: %w", w.path, err)
	}
	if err := w.encode(f, records); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", w.path, err)
	}
	return f.Close()
}

func (w *Writer[T]) encode(f *os.File, records []T) error {
	if w.bom {
		if _, err := f.WriteString(utf8BOM); err != nil {
			return err
		}
	}
	cw := stdcsv.NewWriter(f)
	if err := cw.Write(w.header); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(w.row(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
