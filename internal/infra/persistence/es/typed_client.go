package es

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/LouYuanbo1/seoulcrawler/internal/config"
	"github.com/LouYuanbo1/seoulcrawler/internal/domain/model"
	"github.com/elastic/go-elasticsearch/v9"
	"github.com/elastic/go-elasticsearch/v9/esutil"
	"go.uber.org/zap"
)

type typedEsClient[D model.Document] struct {
	client *elasticsearch.TypedClient
	// schemaDoc is the zero D, used only for index name and mapping.
	schemaDoc D
	logger    *zap.Logger
}

func InitTypedEsClient[D model.Document](cfg *config.Config, logger *zap.Logger) (TypedEsClient[D], error) {
	typedClient, err := elasticsearch.NewTypedClient(elasticsearch.Config{
		Username:  cfg.Elasticsearch.Username,
		Password:  cfg.Elasticsearch.Password,
		Addresses: []string{cfg.Elasticsearch.Address},
		Transport: &http.Transport{
			MaxIdleConnsPerHost:   10,
			ResponseHeaderTimeout: 30 * time.Second,
			IdleConnTimeout:       90 * time.Second,
			// 跳过TLS验证（仅在开发环境中使用）
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("init elasticsearch client: %w", err)
	}
	c := &typedEsClient[D]{client: typedClient}
	c.logger = logger.With(zap.String("index", c.schemaDoc.GetIndex()))
	return c, nil
}

func (tec *typedEsClient[D]) CreateIndexWithMapping(ctx context.Context) error {
	index := tec.schemaDoc.GetIndex()
	exists, err := tec.client.Indices.Exists(index).Do(ctx)
	if err != nil {
		return fmt.Errorf("check index %s: %w", index, err)
	}
	if exists {
		tec.logger.Debug("index already exists, skip create")
		return nil
	}

	req := tec.client.Indices.Create(index)
	if mapping := tec.schemaDoc.GetTypeMapping(); mapping != nil {
		req = req.Mappings(mapping)
	}
	if _, err := req.Do(ctx); err != nil {
		return fmt.Errorf("create index %s: %w", index, err)
	}
	tec.logger.Info("index created")
	return nil
}

func (tec *typedEsClient[D]) BulkIndexDocsWithID(ctx context.Context, docs []D) (int, error) {
	if len(docs) == 0 {
		return 0, nil
	}
	var failed atomic.Int64
	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:         tec.schemaDoc.GetIndex(),
		Client:        tec.client,
		NumWorkers:    2,
		FlushBytes:    5 * 1024 * 1024,
		FlushInterval: 30 * time.Second,
		OnError: func(ctx context.Context, err error) {
			tec.logger.Error("bulk indexer error", zap.Error(err))
		},
	})
	if err != nil {
		return 0, fmt.Errorf("create bulk indexer: %w", err)
	}

	var errs []error
	for _, doc := range docs {
		data, err := json.Marshal(doc)
		if err != nil {
			errs = append(errs, fmt.Errorf("marshal %s: %w", doc.GetID(), err))
			continue
		}
		err = bi.Add(ctx, esutil.BulkIndexerItem{
			Action:     "index",
			DocumentID: doc.GetID(),
			Body:       bytes.NewReader(data),
			OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
				failed.Add(1)
				if err == nil {
					err = errors.New(res.Error.Reason)
				}
				tec.logger.Warn("document not indexed", zap.String("id", item.DocumentID), zap.Error(err))
			},
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("queue %s: %w", doc.GetID(), err))
			break
		}
	}

	if err := bi.Close(ctx); err != nil {
		errs = append(errs, fmt.Errorf("flush bulk indexer: %w", err))
	}
	stats := bi.Stats()
	if n := failed.Load(); n > 0 {
		errs = append(errs, fmt.Errorf("%d of %d documents rejected", n, len(docs)))
	}
	tec.logger.Info("bulk indexing completed",
		zap.Uint64("indexed", stats.NumIndexed),
		zap.Uint64("failed", stats.NumFailed))
	return int(stats.NumIndexed), errors.Join(errs...)
}

func (tec *typedEsClient[D]) CountDocs(ctx context.Context) (int64, error) {
	resp, err := tec.client.Count().Index(tec.schemaDoc.GetIndex()).Do(ctx)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", tec.schemaDoc.GetIndex(), err)
	}
	return resp.Count, nil
}
