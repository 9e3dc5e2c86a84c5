package embedding

import "context"

// Embedder turns texts into vectors, BatchSize texts per request at most.
type Embedder interface {
	BatchSize() int
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// Batched embeds texts in consecutive batches of e.BatchSize() and returns the
// vectors in input order.
func Batched(ctx context.Context, e Embedder, texts []string) ([][]float32, error) {
	size := e.BatchSize()
	if size <= 0 {
		size = len(texts)
	}
	vectors := make([][]float32, 0, len(texts))
	for i := 0; i < len(texts); i += size {
		end := min(i+size, len(texts))
		batch, err := e.Embed(ctx, texts[i:end])
		if err != nil {
			return vectors, err
		}
		vectors = append(vectors, batch...)
	}
	return vectors, nil
}
