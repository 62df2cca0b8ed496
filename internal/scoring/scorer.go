package scoring

import (
	"context"

	"github.com/DANNY1169/resume-role-classifier/internal/config"
	"github.com/DANNY1169/resume-role-classifier/internal/embedding"
	"github.com/DANNY1169/resume-role-classifier/internal/errors"
	"github.com/DANNY1169/resume-role-classifier/internal/types"
)

// SentenceScore is the raw per-role similarity breakdown for one sentence,
// kept for diagnostic output.
type SentenceScore struct {
	Sentence   Sentence               `json:"sentence"`
	RoleScores map[types.Role]float64 `json:"roleScores"`
	BestRole   types.Role             `json:"bestRole"`
	BestScore  float64                `json:"bestScore"`
}

// Result is the output of one scoring pass.
type Result struct {
	Distribution   types.RoleDistribution
	DominantRole   types.Role
	Evidence       []types.Evidence
	Sentences      []Sentence
	SentenceScores []SentenceScore
}

// Scorer runs the full classification pipeline for one resume: sentence
// extraction, batch embedding, recency-weighted similarity aggregation,
// softmax normalization and evidence selection. Stateless apart from the
// shared role vector cache, so one Scorer serves concurrent analyses.
type Scorer struct {
	cfg      config.ScoringConfig
	embedder embedding.Embedder
	cache    *RoleVectorCache
	logger   *errors.Logger
}

// NewScorer wires a scorer from its collaborators
func NewScorer(cfg config.ScoringConfig, embedder embedding.Embedder, cache *RoleVectorCache, logger *errors.Logger) *Scorer {
	return &Scorer{
		cfg:      cfg,
		embedder: embedder,
		cache:    cache,
		logger:   logger,
	}
}

// Score classifies one resume text. evidenceCount <= 0 selects the configured
// default. Any embedding failure is fatal for the analysis; no zero-vector
// substitution happens anywhere in the pipeline.
func (s *Scorer) Score(ctx context.Context, text string, evidenceCount int) (*Result, error) {
	sentences, err := ExtractSentences(text, s.cfg.MinSentenceWords, s.cfg.MinAlphaRatio)
	if err != nil {
		return nil, err
	}

	roleVectors, err := s.cache.Vectors(ctx)
	if err != nil {
		return nil, err
	}

	texts := make([]string, len(sentences))
	for i, sent := range sentences {
		texts[i] = sent.Text
	}

	sentenceVectors, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, errors.NewAIError(errors.ErrCodeEmbeddingFailed, "failed to embed resume sentences", err).
			WithContext("sentence_count", len(sentences))
	}
	if len(sentenceVectors) != len(sentences) {
		return nil, errors.NewAIError(errors.ErrCodeEmbeddingFailed, "embedding provider returned wrong number of sentence vectors", nil).
			WithContext("expected", len(sentences)).
			WithContext("got", len(sentenceVectors))
	}

	weights := RecencyWeights(len(sentences), s.cfg.RecencyFraction, s.cfg.RecencyBoost)

	// similarities[i][role] is the raw cosine similarity of sentence i to role
	similarities := make([]map[types.Role]float64, len(sentences))
	aggregates := make(map[types.Role]float64, len(types.Roles))
	for i, vec := range sentenceVectors {
		similarities[i] = make(map[types.Role]float64, len(types.Roles))
		for _, role := range types.Roles {
			sim, err := CosineSimilarity(vec, roleVectors[role])
			if err != nil {
				return nil, err
			}
			similarities[i][role] = sim
			aggregates[role] += weights[i] * sim
		}
	}

	distribution, err := Normalize(aggregates, s.cfg.SoftmaxTemperature)
	if err != nil {
		return nil, err
	}

	dominant := DominantRole(distribution)

	weightedToDominant := make([]float64, len(sentences))
	for i := range sentences {
		weightedToDominant[i] = weights[i] * similarities[i][dominant]
	}

	if evidenceCount <= 0 {
		evidenceCount = s.cfg.EvidenceCount
	}
	evidence := SelectEvidence(sentences, weightedToDominant, evidenceCount)

	sentenceScores := make([]SentenceScore, len(sentences))
	for i, sent := range sentences {
		best := types.Roles[0]
		for _, role := range types.Roles[1:] {
			if similarities[i][role] > similarities[i][best] {
				best = role
			}
		}
		sentenceScores[i] = SentenceScore{
			Sentence:   sent,
			RoleScores: similarities[i],
			BestRole:   best,
			BestScore:  similarities[i][best],
		}
	}

	s.logger.Debug("Resume scored",
		"sentences", len(sentences),
		"dominant_role", dominant,
		"confidence", distribution[dominant])

	return &Result{
		Distribution:   distribution,
		DominantRole:   dominant,
		Evidence:       evidence,
		Sentences:      sentences,
		SentenceScores: sentenceScores,
	}, nil
}
