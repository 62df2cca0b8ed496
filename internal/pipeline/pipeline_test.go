package pipeline

import (
	"context"
	"math"
	"testing"

	"github.com/DANNY1169/resume-role-classifier/internal/config"
	apperrors "github.com/DANNY1169/resume-role-classifier/internal/errors"
	"github.com/DANNY1169/resume-role-classifier/internal/generator"
	"github.com/DANNY1169/resume-role-classifier/internal/types"
)

// stubEmbedder returns deterministic vectors keyed by text, with a neutral
// axis for anything unknown.
type stubEmbedder struct {
	vectors map[string][]float64
}

func (s *stubEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	vecs, err := s.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

func (s *stubEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float64, error) {
	out := make([][]float64, len(texts))
	for i, text := range texts {
		if vec, ok := s.vectors[text]; ok {
			out[i] = vec
		} else {
			out[i] = []float64{0, 0, 0, 0, 1}
		}
	}
	return out, nil
}

func (s *stubEmbedder) Model() string { return "stub-model" }
func (s *stubEmbedder) Close() error  { return nil }

type stubLLM struct {
	summary types.RoleSummary
	err     error
	calls   int
}

func (s *stubLLM) Generate(context.Context, generator.SummaryInput) (types.RoleSummary, error) {
	s.calls++
	return s.summary, s.err
}

func (s *stubLLM) Close() error { return nil }

func testConfig() *config.Config {
	cfg := &config.Config{
		Scoring: config.ScoringConfig{
			MinSentenceWords:   2,
			MinAlphaRatio:      0.5,
			RecencyFraction:    0.3,
			RecencyBoost:       2.0,
			SoftmaxTemperature: 1.2,
			EvidenceCount:      3,
		},
	}
	cfg.AI.Summary.MinConfidence = 0.3
	cfg.Roles.Builder.Description = "builder reference"
	cfg.Roles.Enabler.Description = "enabler reference"
	cfg.Roles.Thriver.Description = "thriver reference"
	cfg.Roles.Supportee.Description = "supportee reference"
	return cfg
}

func testEmbedder() *stubEmbedder {
	return &stubEmbedder{
		vectors: map[string][]float64{
			"builder reference":      {1, 0, 0, 0, 0},
			"enabler reference":      {0, 1, 0, 0, 0},
			"thriver reference":      {0, 0, 1, 0, 0},
			"supportee reference":    {0, 0, 0, 1, 0},
			"Architected the platform from scratch": {0.9, 0, 0, 0, math.Sqrt(0.19)},
			"Maintained runbooks for the on-call rotation": {0, 0, 0, 0.3, math.Sqrt(0.91)},
		},
	}
}

func testLogger(t *testing.T) *apperrors.Logger {
	t.Helper()
	logger, err := apperrors.New("error")
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	return logger
}

func TestPipelineAnalyze(t *testing.T) {
	llm := &stubLLM{
		summary: types.RoleSummary{Summary: "I architect platforms.", Tone: "strategic", Source: "llm"},
	}
	p := NewWithComponents(testConfig(), testEmbedder(), llm, testLogger(t))

	analysis, err := p.Analyze(context.Background(), types.AnalyzeResumeInput{
		ResumeText: "Jane Doe with 6 years of python experience.\n" +
			"Architected the platform from scratch.\n" +
			"Maintained runbooks for the on-call rotation.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if analysis.DominantRole != types.RoleBuilder {
		t.Errorf("expected Builder dominant, got %s", analysis.DominantRole)
	}
	sum := 0.0
	for _, p := range analysis.Distribution {
		sum += p
	}
	if math.Abs(sum-1.0) > 1e-6 {
		t.Errorf("distribution sums to %g", sum)
	}
	if analysis.Summary.Source != "llm" {
		t.Errorf("expected llm summary, got source %q", analysis.Summary.Source)
	}
	if analysis.Metadata.YearsExperience != 6 {
		t.Errorf("expected 6 years extracted, got %d", analysis.Metadata.YearsExperience)
	}
	if analysis.EmbeddingModel != "stub-model" {
		t.Errorf("expected embedding model to be recorded, got %q", analysis.EmbeddingModel)
	}
	if analysis.SentenceCount != 3 {
		t.Errorf("expected 3 sentences, got %d", analysis.SentenceCount)
	}
	if analysis.AnalyzedAt.IsZero() {
		t.Error("analysis timestamp should be set")
	}
	if len(analysis.Evidence) == 0 {
		t.Error("expected evidence sentences")
	}
}

func TestPipelineAnalyzeUseLLMFalse(t *testing.T) {
	llm := &stubLLM{
		summary: types.RoleSummary{Summary: "I architect platforms.", Source: "llm"},
	}
	p := NewWithComponents(testConfig(), testEmbedder(), llm, testLogger(t))

	useLLM := false
	analysis, err := p.Analyze(context.Background(), types.AnalyzeResumeInput{
		ResumeText: "Architected the platform from scratch.",
		UseLLM:     &useLLM,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if analysis.Summary.Source != "template" {
		t.Errorf("expected template summary with LLM opted out, got %q", analysis.Summary.Source)
	}
	if llm.calls != 0 {
		t.Errorf("LLM must not be called when opted out, got %d calls", llm.calls)
	}
}

func TestPipelineAnalyzeLLMFailureFallsBack(t *testing.T) {
	llm := &stubLLM{err: apperrors.NewAIError(apperrors.ErrCodeGenerationFailed, "model down", nil)}
	p := NewWithComponents(testConfig(), testEmbedder(), llm, testLogger(t))

	analysis, err := p.Analyze(context.Background(), types.AnalyzeResumeInput{
		ResumeText: "Architected the platform from scratch.",
	})
	if err != nil {
		t.Fatalf("summary failure must not fail the analysis, got %v", err)
	}
	if analysis.Summary.Source != "template" {
		t.Errorf("expected template fallback, got %q", analysis.Summary.Source)
	}
}

func TestPipelineAnalyzeEmptyInput(t *testing.T) {
	p := NewWithComponents(testConfig(), testEmbedder(), nil, testLogger(t))

	_, err := p.Analyze(context.Background(), types.AnalyzeResumeInput{ResumeText: "   "})
	if err == nil {
		t.Fatal("expected error for empty input")
	}
	appErr, ok := err.(*apperrors.AppError)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != apperrors.ErrCodeEmptyInput {
		t.Errorf("expected code %s, got %s", apperrors.ErrCodeEmptyInput, appErr.Code)
	}
}

func TestPipelineRoles(t *testing.T) {
	p := NewWithComponents(testConfig(), testEmbedder(), nil, testLogger(t))

	catalog := p.Roles()
	if len(catalog.Roles) != 4 {
		t.Fatalf("expected 4 roles, got %d", len(catalog.Roles))
	}
	if catalog.Roles[0].Role != types.RoleBuilder {
		t.Errorf("expected Builder first, got %s", catalog.Roles[0].Role)
	}
	for _, def := range catalog.Roles {
		if def.Description == "" {
			t.Errorf("%s: empty description", def.Role)
		}
	}
}
