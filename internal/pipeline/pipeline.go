package pipeline

import (
	"context"
	"time"

	"github.com/DANNY1169/resume-role-classifier/internal/config"
	"github.com/DANNY1169/resume-role-classifier/internal/embedding"
	apperrors "github.com/DANNY1169/resume-role-classifier/internal/errors"
	"github.com/DANNY1169/resume-role-classifier/internal/generator"
	"github.com/DANNY1169/resume-role-classifier/internal/scoring"
	"github.com/DANNY1169/resume-role-classifier/internal/types"
)

// Pipeline runs the end-to-end analysis: classification through the scorer,
// metadata extraction, and summary generation with template fallback.
type Pipeline struct {
	cfg      *config.Config
	embedder embedding.Embedder
	scorer   *scoring.Scorer
	summary  *generator.Service
	template *generator.TemplateGenerator
	llm      generator.SummaryGenerator
	logger   *apperrors.Logger
}

// New wires a pipeline from the configuration. The LLM generator is only
// attached when summary generation is enabled and an API key is available.
func New(cfg *config.Config, logger *apperrors.Logger) (*Pipeline, error) {
	embedCfg := cfg.GetEmbeddingConfig()
	embedder, err := embedding.NewGeminiEmbedder(&embedCfg, logger)
	if err != nil {
		return nil, err
	}

	var llm generator.SummaryGenerator
	summaryCfg := cfg.GetSummaryConfig()
	if cfg.SummaryLLMEnabled() {
		gen, err := generator.NewGeminiGenerator(&summaryCfg, logger)
		if err != nil {
			return nil, err
		}
		llm = gen
	} else {
		logger.Info("LLM summary generation disabled, using templates only")
	}

	return NewWithComponents(cfg, embedder, llm, logger), nil
}

// NewWithComponents assembles a pipeline from already-built collaborators.
// It exists so servers and tests can inject their own providers.
func NewWithComponents(cfg *config.Config, embedder embedding.Embedder, llm generator.SummaryGenerator, logger *apperrors.Logger) *Pipeline {
	cache := scoring.NewRoleVectorCache(cfg.RoleDefinitions(), embedder)
	summaryCfg := cfg.GetSummaryConfig()

	return &Pipeline{
		cfg:      cfg,
		embedder: embedder,
		scorer:   scoring.NewScorer(cfg.Scoring, embedder, cache, logger),
		summary:  generator.NewService(llm, summaryCfg.MinConfidence, logger),
		template: generator.NewTemplateGenerator(),
		llm:      llm,
		logger:   logger,
	}
}

// Analyze classifies a resume and generates its role-aligned summary
func (p *Pipeline) Analyze(ctx context.Context, input types.AnalyzeResumeInput) (*types.RoleAnalysis, error) {
	started := time.Now()

	result, err := p.scorer.Score(ctx, input.ResumeText, input.EvidenceCount)
	if err != nil {
		return nil, err
	}

	metadata := generator.ExtractMetadata(input.ResumeText)

	summaryInput := generator.SummaryInput{
		ResumeText:      input.ResumeText,
		DominantRole:    result.DominantRole,
		RoleDescription: p.cfg.RoleDescription(result.DominantRole),
		Confidence:      result.Distribution[result.DominantRole],
		Distribution:    result.Distribution,
		Metadata:        metadata,
	}

	gen := generator.SummaryGenerator(p.summary)
	if input.UseLLM != nil && !*input.UseLLM {
		gen = p.template
	}

	summary, err := gen.Generate(ctx, summaryInput)
	if err != nil {
		// The template fallback never fails; reaching this means the
		// explicit template path broke, which is a programming error.
		return nil, apperrors.NewInternalError(apperrors.ErrCodeGenerationFailed,
			"Summary generation failed", err)
	}

	p.logger.Info("Resume analyzed",
		"dominant_role", result.DominantRole,
		"confidence", result.Distribution[result.DominantRole],
		"sentences", len(result.Sentences),
		"summary_source", summary.Source,
		"duration_ms", time.Since(started).Milliseconds())

	return &types.RoleAnalysis{
		DominantRole:   result.DominantRole,
		Distribution:   result.Distribution,
		Evidence:       result.Evidence,
		Summary:        summary,
		Metadata:       metadata,
		SentenceCount:  len(result.Sentences),
		EmbeddingModel: p.embedder.Model(),
		AnalyzedAt:     time.Now().UTC(),
	}, nil
}

// Roles returns the role catalog in effect, including any configured
// description overrides.
func (p *Pipeline) Roles() types.RoleCatalog {
	return types.RoleCatalog{Roles: p.cfg.RoleDefinitions()}
}

// Stats reports provider health for the stats endpoint
func (p *Pipeline) Stats() map[string]any {
	stats := map[string]any{
		"embedding_model": p.embedder.Model(),
		"llm_enabled":     p.llm != nil,
	}
	if e, ok := p.embedder.(*embedding.GeminiEmbedder); ok {
		stats["embedding_circuit_breaker"] = e.GetCircuitBreakerStats()
	}
	if g, ok := p.llm.(*generator.GeminiGenerator); ok {
		stats["summary_circuit_breaker"] = g.GetCircuitBreakerStats()
	}
	return stats
}

// Close releases the AI clients
func (p *Pipeline) Close() error {
	if err := p.summary.Close(); err != nil {
		return err
	}
	return p.embedder.Close()
}
