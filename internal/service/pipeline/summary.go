package pipeline

import (
	"github.com/LouYuanbo1/seoulcrawler/internal/domain/entity"
	"go.uber.org/zap"
)

// CountBy tallies records by key, e.g. by category.
func CountBy[T any](records []T, key func(T) string) map[string]int {
	counts := make(map[string]int)
	for _, r := range records {
		counts[key(r)]++
	}
	return counts
}

// LogSummary logs the per-category record counts and the skip counts by
// scope and reason.
func LogSummary[T any](logger *zap.Logger, harvest entity.Harvest[T], category func(T) string) {
	logger.Info("run summary",
		zap.Int("records", len(harvest.Records)),
		zap.Any("per_category", CountBy(harvest.Records, category)),
		zap.Int("skipped", len(harvest.Skips)),
		zap.Any("skips", harvest.SkipCounts()))
	for _, s := range harvest.Skips {
		logger.Debug("skipped", zap.Stringer("unit", s))
	}
}
