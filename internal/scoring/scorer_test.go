package scoring

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/DANNY1169/resume-role-classifier/internal/config"
	apperrors "github.com/DANNY1169/resume-role-classifier/internal/errors"
	"github.com/DANNY1169/resume-role-classifier/internal/types"
)

// fakeEmbedder returns fixed five-dimensional vectors: one axis per role plus
// a residual axis, so cosine similarities are exact by construction. Unknown
// texts map to the neutral residual axis.
type fakeEmbedder struct {
	vectors map[string][]float64
	fail    bool
	calls   int
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	vecs, err := f.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

func (f *fakeEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float64, error) {
	if f.fail {
		return nil, errors.New("embedding backend unavailable")
	}
	f.calls++
	out := make([][]float64, len(texts))
	for i, text := range texts {
		if vec, ok := f.vectors[text]; ok {
			out[i] = vec
		} else {
			out[i] = []float64{0, 0, 0, 0, 1}
		}
	}
	return out, nil
}

func (f *fakeEmbedder) Model() string { return "fake-embedder" }
func (f *fakeEmbedder) Close() error  { return nil }

var testRoleDefinitions = []types.RoleDefinition{
	{Role: types.RoleBuilder, Description: "builder reference"},
	{Role: types.RoleEnabler, Description: "enabler reference"},
	{Role: types.RoleThriver, Description: "thriver reference"},
	{Role: types.RoleSupportee, Description: "supportee reference"},
}

// aligned returns a unit vector with cosine similarity sim to the given role
// axis (0=Builder .. 3=Supportee) and the rest of its magnitude on the
// residual axis.
func aligned(axis int, sim float64) []float64 {
	vec := make([]float64, 5)
	vec[axis] = sim
	vec[4] = math.Sqrt(1 - sim*sim)
	return vec
}

func roleAxisVectors() map[string][]float64 {
	return map[string][]float64{
		"builder reference":   {1, 0, 0, 0, 0},
		"enabler reference":   {0, 1, 0, 0, 0},
		"thriver reference":   {0, 0, 1, 0, 0},
		"supportee reference": {0, 0, 0, 1, 0},
	}
}

func testScoringConfig() config.ScoringConfig {
	return config.ScoringConfig{
		MinSentenceWords:   2,
		MinAlphaRatio:      0.5,
		RecencyFraction:    0.3,
		RecencyBoost:       2.0,
		SoftmaxTemperature: 1.2,
		EvidenceCount:      3,
	}
}

func newTestScorer(cfg config.ScoringConfig, emb *fakeEmbedder) *Scorer {
	logger, _ := apperrors.New("error")
	cache := NewRoleVectorCache(testRoleDefinitions, emb)
	return NewScorer(cfg, emb, cache, logger)
}

func TestScorerBuilderVersusSupportee(t *testing.T) {
	vectors := roleAxisVectors()
	vectors["Led backend team"] = aligned(0, 0.9)
	vectors["Built scalable systems"] = aligned(0, 0.9)
	vectors["Documented all runbooks thoroughly for support"] = aligned(3, 0.9)

	scorer := newTestScorer(testScoringConfig(), &fakeEmbedder{vectors: vectors})

	result, err := scorer.Score(context.Background(),
		"Led backend team. Built scalable systems. Documented all runbooks thoroughly for support.", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Two 1.0-weighted Builder sentences against one 2.0-weighted Supportee
	// sentence produce equal 1.8 aggregates; the priority order breaks the
	// tie toward Builder.
	if result.DominantRole != types.RoleBuilder {
		t.Errorf("expected Builder dominant, got %s", result.DominantRole)
	}

	// Distribution must be reproducible from the softmax formula over the
	// raw aggregates {1.8, 0, 0, 1.8}.
	aggregates := map[types.Role]float64{
		types.RoleBuilder:   1.8,
		types.RoleEnabler:   0,
		types.RoleThriver:   0,
		types.RoleSupportee: 1.8,
	}
	var sum float64
	for _, role := range types.Roles {
		sum += math.Exp(aggregates[role] / 1.2)
	}
	for _, role := range types.Roles {
		want := math.Exp(aggregates[role]/1.2) / sum
		if math.Abs(result.Distribution[role]-want) > 1e-9 {
			t.Errorf("%s: expected %g, got %g", role, want, result.Distribution[role])
		}
	}
}

func TestScorerIdempotent(t *testing.T) {
	vectors := roleAxisVectors()
	vectors["Led backend team"] = aligned(0, 0.9)
	vectors["Built scalable systems"] = aligned(0, 0.7)
	vectors["Documented all runbooks thoroughly for support"] = aligned(3, 0.8)

	scorer := newTestScorer(testScoringConfig(), &fakeEmbedder{vectors: vectors})
	text := "Led backend team. Built scalable systems. Documented all runbooks thoroughly for support."

	first, err := scorer.Score(context.Background(), text, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := scorer.Score(context.Background(), text, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("identical input and embeddings must produce identical results")
	}
}

func TestScorerDistributionSumsToOne(t *testing.T) {
	vectors := roleAxisVectors()
	vectors["Coordinated stakeholder planning"] = aligned(1, 0.6)
	vectors["Shipped hotfix under pressure"] = aligned(2, 0.8)

	scorer := newTestScorer(testScoringConfig(), &fakeEmbedder{vectors: vectors})
	result, err := scorer.Score(context.Background(),
		"Coordinated stakeholder planning. Shipped hotfix under pressure.", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sum := 0.0
	for _, role := range types.Roles {
		p := result.Distribution[role]
		if p < 0 || p > 1 {
			t.Errorf("probability for %s out of range: %g", role, p)
		}
		sum += p
	}
	if math.Abs(sum-1.0) > 1e-6 {
		t.Errorf("probabilities sum to %g", sum)
	}
}

func TestScorerRecencyMoveIncreasesProbability(t *testing.T) {
	builderSentence := "Architected foundational platform"
	neutral := []string{
		"Attended quarterly meetings",
		"Worked standard office hours",
		"Completed annual training",
		"Filed weekly status reports",
	}

	vectors := roleAxisVectors()
	vectors[builderSentence] = aligned(0, 0.9)

	join := func(parts []string) string {
		text := ""
		for _, p := range parts {
			text += p + ".\n"
		}
		return text
	}

	front := append([]string{builderSentence}, neutral...)
	back := append(append([]string{}, neutral...), builderSentence)

	scorer := newTestScorer(testScoringConfig(), &fakeEmbedder{vectors: vectors})

	frontResult, err := scorer.Score(context.Background(), join(front), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	backResult, err := scorer.Score(context.Background(), join(back), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if backResult.Distribution[types.RoleBuilder] <= frontResult.Distribution[types.RoleBuilder] {
		t.Errorf("moving the Builder sentence into the boosted tail must strictly increase its probability: front=%g back=%g",
			frontResult.Distribution[types.RoleBuilder], backResult.Distribution[types.RoleBuilder])
	}
}

func TestScorerShortInputFallbackCompletes(t *testing.T) {
	cfg := testScoringConfig()
	cfg.MinSentenceWords = 10

	vectors := roleAxisVectors()
	vectors["Go Rust C"] = aligned(0, 0.5)

	scorer := newTestScorer(cfg, &fakeEmbedder{vectors: vectors})
	result, err := scorer.Score(context.Background(), "Go Rust C", 0)
	if err != nil {
		t.Fatalf("expected whole-input fallback to complete, got %v", err)
	}
	if len(result.Sentences) != 1 {
		t.Fatalf("expected 1 fallback sentence, got %d", len(result.Sentences))
	}
	if result.DominantRole != types.RoleBuilder {
		t.Errorf("expected Builder dominant, got %s", result.DominantRole)
	}
}

func TestScorerEmbeddingFailureIsFatal(t *testing.T) {
	scorer := newTestScorer(testScoringConfig(), &fakeEmbedder{fail: true})
	_, err := scorer.Score(context.Background(), "Delivered the platform rewrite on schedule", 0)
	if err == nil {
		t.Fatal("expected embedding failure to fail the analysis")
	}
	appErr, ok := err.(*apperrors.AppError)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != apperrors.ErrCodeEmbeddingFailed {
		t.Errorf("expected code %s, got %s", apperrors.ErrCodeEmbeddingFailed, appErr.Code)
	}
}

func TestScorerEvidenceCountOverride(t *testing.T) {
	vectors := roleAxisVectors()
	vectors["Led backend team"] = aligned(0, 0.9)
	vectors["Built scalable systems"] = aligned(0, 0.7)
	vectors["Documented all runbooks thoroughly for support"] = aligned(0, 0.5)

	scorer := newTestScorer(testScoringConfig(), &fakeEmbedder{vectors: vectors})
	text := "Led backend team. Built scalable systems. Documented all runbooks thoroughly for support."

	result, err := scorer.Score(context.Background(), text, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Evidence) != 1 {
		t.Errorf("expected 1 evidence item with override, got %d", len(result.Evidence))
	}
}

func TestRoleVectorCacheEmbedsOnce(t *testing.T) {
	emb := &fakeEmbedder{vectors: roleAxisVectors()}
	cache := NewRoleVectorCache(testRoleDefinitions, emb)

	first, err := cache.Vectors(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := cache.Vectors(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if emb.calls != 1 {
		t.Errorf("expected one embedding call, got %d", emb.calls)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("cached vectors must be stable across calls")
	}
}

func TestRoleVectorCacheRetriesAfterFailure(t *testing.T) {
	emb := &fakeEmbedder{vectors: roleAxisVectors(), fail: true}
	cache := NewRoleVectorCache(testRoleDefinitions, emb)

	if _, err := cache.Vectors(context.Background()); err == nil {
		t.Fatal("expected first call to fail")
	}

	emb.fail = false
	if _, err := cache.Vectors(context.Background()); err != nil {
		t.Fatalf("expected retry after transient failure to succeed, got %v", err)
	}
}

func BenchmarkScorerScore(b *testing.B) {
	vectors := roleAxisVectors()
	vectors["Led backend team"] = aligned(0, 0.9)
	vectors["Built scalable systems"] = aligned(0, 0.7)
	vectors["Documented all runbooks thoroughly for support"] = aligned(3, 0.8)

	scorer := newTestScorer(testScoringConfig(), &fakeEmbedder{vectors: vectors})
	text := "Led backend team. Built scalable systems. Documented all runbooks thoroughly for support."

	for b.Loop() {
		if _, err := scorer.Score(context.Background(), text, 0); err != nil {
			b.Fatal(err)
		}
	}
}
