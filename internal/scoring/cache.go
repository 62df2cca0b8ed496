package scoring

import (
	"context"
	"sync"

	"github.com/DANNY1169/resume-role-classifier/internal/embedding"
	"github.com/DANNY1169/resume-role-classifier/internal/errors"
	"github.com/DANNY1169/resume-role-classifier/internal/types"
)

// RoleVectorCache holds the embeddings of the role reference descriptions.
// They are computed once on first use and shared read-only across analyses;
// the mutex is the initialization barrier that makes concurrent analyses
// safe. A failed initialization is not cached, so a transient embedding
// outage only fails the analyses that hit it.
type RoleVectorCache struct {
	definitions []types.RoleDefinition
	embedder    embedding.Embedder

	mu      sync.Mutex
	vectors map[types.Role][]float64
}

// NewRoleVectorCache creates a cache over the given role catalog. Nothing is
// embedded until the first Vectors call.
func NewRoleVectorCache(definitions []types.RoleDefinition, embedder embedding.Embedder) *RoleVectorCache {
	return &RoleVectorCache{
		definitions: definitions,
		embedder:    embedder,
	}
}

// Vectors returns the role reference embeddings, computing them on first use
func (c *RoleVectorCache) Vectors(ctx context.Context) (map[types.Role][]float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.vectors != nil {
		return c.vectors, nil
	}

	texts := make([]string, len(c.definitions))
	for i, def := range c.definitions {
		texts[i] = def.Description
	}

	embedded, err := c.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, errors.NewAIError(errors.ErrCodeEmbeddingFailed, "failed to embed role reference descriptions", err)
	}
	if len(embedded) != len(c.definitions) {
		return nil, errors.NewAIError(errors.ErrCodeEmbeddingFailed, "embedding provider returned wrong number of role vectors", nil).
			WithContext("expected", len(c.definitions)).
			WithContext("got", len(embedded))
	}

	vectors := make(map[types.Role][]float64, len(c.definitions))
	for i, def := range c.definitions {
		vectors[def.Role] = embedded[i]
	}

	c.vectors = vectors
	return c.vectors, nil
}
