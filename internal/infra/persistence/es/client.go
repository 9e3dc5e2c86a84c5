package es

import (
	"context"

	"github.com/LouYuanbo1/seoulcrawler/internal/domain/model"
)

// TypedEsClient stores one document kind in the index named by its schema.
type TypedEsClient[D model.Document] interface {
	CreateIndexWithMapping(ctx context.Context) error
	// BulkIndexDocsWithID upserts docs under their stable IDs and reports how
	// many were acknowledged.
	BulkIndexDocsWithID(ctx context.Context, docs []D) (int, error)
	CountDocs(ctx context.Context) (int64, error)
}
