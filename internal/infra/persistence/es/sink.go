package es

import (
	"context"
	"fmt"

	"github.com/LouYuanbo1/seoulcrawler/internal/domain/entity"
	"github.com/LouYuanbo1/seoulcrawler/internal/domain/model"
	"github.com/LouYuanbo1/seoulcrawler/internal/infra/embedding"
	"go.uber.org/zap"
)

// Sink indexes harvested records as documents. FAQ documents get an embedding
// first when an embedder is configured.
type Sink[T entity.Crawlable[D], D model.Document] struct {
	client   TypedEsClient[D]
	embedder embedding.Embedder
	logger   *zap.Logger
}

// NewSink builds an index sink; embedder may be nil.
func NewSink[T entity.Crawlable[D], D model.Document](client TypedEsClient[D], embedder embedding.Embedder, logger *zap.Logger) *Sink[T, D] {
	return &Sink[T, D]{client: client, embedder: embedder, logger: logger}
}

func (s *Sink[T, D]) Name() string {
	return "elasticsearch"
}

func (s *Sink[T, D]) Write(ctx context.Context, records []T) error {
	docs := make([]D, 0, len(records))
	for _, r := range records {
		docs = append(docs, r.ToDocument())
	}
	if s.embedder != nil {
		s.embed(ctx, docs)
	}

	if err := s.client.CreateIndexWithMapping(ctx); err != nil {
		return err
	}
	indexed, err := s.client.BulkIndexDocsWithID(ctx, docs)
	if err != nil {
		return fmt.Errorf("indexed %d of %d: %w", indexed, len(docs), err)
	}
	total, err := s.client.CountDocs(ctx)
	if err != nil {
		s.logger.Warn("count documents", zap.Error(err))
		return nil
	}
	s.logger.Info("documents in index", zap.Int("indexed", indexed), zap.Int64("total", total))
	return nil
}

// embed attaches vectors to embeddable docs. Docs left without a vector are
// still indexed.
func (s *Sink[T, D]) embed(ctx context.Context, docs []D) {
	targets := make([]model.Embeddable, 0, len(docs))
	texts := make([]string, 0, len(docs))
	for _, doc := range docs {
		if e, ok := any(doc).(model.Embeddable); ok {
			targets = append(targets, e)
			texts = append(texts, e.GetEmbeddingString())
		}
	}
	if len(targets) == 0 {
		return
	}
	vectors, err := embedding.Batched(ctx, s.embedder, texts)
	if err != nil {
		s.logger.Warn("embedding failed, indexing without vectors",
			zap.Int("embedded", len(vectors)), zap.Int("docs", len(targets)), zap.Error(err))
	}
	for i, v := range vectors {
		targets[i].SetEmbedding(v)
	}
}
