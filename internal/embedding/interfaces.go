package embedding

import "context"

// Embedder turns text into dense vectors. Implementations must return one
// vector per input, in input order; a missing or empty vector for any input
// is an error, never silently substituted with zeros.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float64, error)
	Model() string
	Close() error
}
