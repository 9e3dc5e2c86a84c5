package model

import (
	"github.com/elastic/go-elasticsearch/v9/typedapi/types"
	"github.com/google/uuid"
)

// Document is implemented by every struct stored in Elasticsearch.
// GetIndex and GetTypeMapping must not dereference the receiver: they are
// called on a nil schema instance to create the index.
type Document interface {
	*RestaurantDoc | *FaqDoc
	GetID() string
	GetIndex() string
	GetTypeMapping() *types.TypeMapping
}

// Embeddable documents carry a vector computed from GetEmbeddingString.
type Embeddable interface {
	GetEmbeddingString() string
	SetEmbedding(embedding []float32)
	GetEmbedding() []float32
}

var docNamespace = uuid.MustParse("0d5b7c1e-3c1b-4a8e-9d0c-5f4b2f6b7a10")

// stableID derives the same document ID for the same natural key across runs,
// so a re-crawl overwrites instead of duplicating.
func stableID(parts ...string) string {
	key := ""
	for _, p := range parts {
		key += p + "\x1f"
	}
	return uuid.NewSHA1(docNamespace, []byte(key)).String()
}
