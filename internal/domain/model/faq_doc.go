package model

import (
	"github.com/elastic/go-elasticsearch/v9/typedapi/types"
)

const (
	FaqIndex = "seoul_faq"
	// FaqEmbeddingDims must match the embedding model configured for the FAQ index.
	FaqEmbeddingDims = 1024
)

type FaqDoc struct {
	Category  string    `json:"category"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Embedding []float32 `json:"embedding,omitempty"`
}

func (d *FaqDoc) GetID() string {
	return stableID(d.Category, d.Question)
}

func (d *FaqDoc) GetIndex() string {
	return FaqIndex
}

func (d *FaqDoc) GetTypeMapping() *types.TypeMapping {
	dims := FaqEmbeddingDims
	embedding := types.NewDenseVectorProperty()
	embedding.Dims = &dims
	return &types.TypeMapping{
		Properties: map[string]types.Property{
			"category":  types.NewKeywordProperty(),
			"question":  types.NewTextProperty(),
			"answer":    types.NewTextProperty(),
			"embedding": embedding,
		},
	}
}

func (d *FaqDoc) GetEmbeddingString() string {
	return d.Question + "\n" + d.Answer
}

func (d *FaqDoc) SetEmbedding(embedding []float32) {
	d.Embedding = embedding
}

func (d *FaqDoc) GetEmbedding() []float32 {
	return d.Embedding
}
