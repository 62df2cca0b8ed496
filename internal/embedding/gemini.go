package embedding

import (
	"context"

	"github.com/DANNY1169/resume-role-classifier/internal/ai"
	"github.com/DANNY1169/resume-role-classifier/internal/config"
	apperrors "github.com/DANNY1169/resume-role-classifier/internal/errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/genai"
)

// GeminiEmbedder implements Embedder on top of the Gemini embedding API
type GeminiEmbedder struct {
	client         *genai.Client
	config         *config.OperationAIConfig
	circuitBreaker *ai.CircuitBreaker[*genai.EmbedContentResponse]
	logger         *apperrors.Logger
}

var _ Embedder = (*GeminiEmbedder)(nil)

// NewGeminiEmbedder creates an embedder for the configured embedding model
func NewGeminiEmbedder(cfg *config.OperationAIConfig, logger *apperrors.Logger) (*GeminiEmbedder, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, apperrors.NewAIError(apperrors.ErrCodeEmbeddingFailed,
			"Failed to create Gemini client", err)
	}

	return &GeminiEmbedder{
		client:         client,
		config:         cfg,
		circuitBreaker: ai.NewCircuitBreaker[*genai.EmbedContentResponse]("Embedding", cfg, logger),
		logger:         logger,
	}, nil
}

// Model returns the configured embedding model identifier
func (g *GeminiEmbedder) Model() string {
	return g.config.Model
}

// Embed embeds a single text
func (g *GeminiEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	vectors, err := g.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// EmbedBatch embeds all texts in one API call and returns one vector per
// input, in input order. A missing or empty embedding in the response is an
// error; no placeholder vector is ever substituted.
func (g *GeminiEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return [][]float64{}, nil
	}

	tracer := otel.Tracer("rolecolor.embedding.gemini")
	ctx, span := tracer.Start(ctx, "gemini.embed_batch")
	defer span.End()

	span.SetAttributes(
		attribute.String("ai.provider", "gemini"),
		attribute.String("ai.model", g.config.Model),
		attribute.Int("embedding.batch_size", len(texts)),
	)

	contents := make([]*genai.Content, len(texts))
	for i, text := range texts {
		contents[i] = genai.NewContentFromText(text, genai.RoleUser)
	}

	callCtx := ctx
	if g.config.Timeout != nil {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, *g.config.Timeout)
		defer cancel()
	}

	maxRetries := 0
	if g.config.MaxRetries != nil {
		maxRetries = *g.config.MaxRetries
	}

	result, err := g.circuitBreaker.Execute(func() (*genai.EmbedContentResponse, error) {
		return ai.ExecuteWithRetry(callCtx, g.logger, "embed_batch", maxRetries, func() (*genai.EmbedContentResponse, error) {
			return g.client.Models.EmbedContent(callCtx, g.config.Model, contents, &genai.EmbedContentConfig{})
		})
	})
	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("success", false))
		return nil, apperrors.NewAIError(apperrors.ErrCodeEmbeddingFailed,
			"Failed to embed content batch", err).
			WithContext("batch_size", len(texts))
	}

	if len(result.Embeddings) != len(texts) {
		span.SetAttributes(attribute.Bool("success", false))
		return nil, apperrors.NewAIError(apperrors.ErrCodeEmbeddingFailed,
			"Embedding response count does not match input count", nil).
			WithContext("expected", len(texts)).
			WithContext("got", len(result.Embeddings))
	}

	vectors := make([][]float64, len(texts))
	for i, emb := range result.Embeddings {
		if emb == nil || len(emb.Values) == 0 {
			span.SetAttributes(attribute.Bool("success", false))
			return nil, apperrors.NewAIError(apperrors.ErrCodeEmbeddingFailed,
				"Embedding response contains an empty vector", nil).
				WithContext("index", i)
		}
		vec := make([]float64, len(emb.Values))
		for j, v := range emb.Values {
			vec[j] = float64(v)
		}
		vectors[i] = vec
	}

	span.SetAttributes(
		attribute.Bool("success", true),
		attribute.Int("embedding.dimensions", len(vectors[0])),
	)
	return vectors, nil
}

// Close implements Embedder
func (g *GeminiEmbedder) Close() error {
	// Gemini client doesn't have a Close method in current single-shot usage
	return nil
}

// GetCircuitBreakerStats returns circuit breaker statistics
func (g *GeminiEmbedder) GetCircuitBreakerStats() map[string]any {
	return map[string]any{
		"embedding":       g.circuitBreaker.GetStats(),
		"overall_healthy": g.circuitBreaker.IsHealthy(),
	}
}
