package generator

import (
	"context"

	apperrors "github.com/DANNY1169/resume-role-classifier/internal/errors"
	"github.com/DANNY1169/resume-role-classifier/internal/types"
)

// Service is the fallback chain over the configured generators. The LLM is
// tried first when present and the classification is confident enough; the
// template generator is the terminal fallback, so Generate never fails the
// analysis over a summary problem.
type Service struct {
	llm           SummaryGenerator // nil when LLM generation is disabled
	template      *TemplateGenerator
	minConfidence float64
	logger        *apperrors.Logger
}

var _ SummaryGenerator = (*Service)(nil)

// NewService builds the fallback chain. llm may be nil.
func NewService(llm SummaryGenerator, minConfidence float64, logger *apperrors.Logger) *Service {
	return &Service{
		llm:           llm,
		template:      NewTemplateGenerator(),
		minConfidence: minConfidence,
		logger:        logger,
	}
}

// Generate produces the summary, falling back to the template on any LLM failure
func (s *Service) Generate(ctx context.Context, input SummaryInput) (types.RoleSummary, error) {
	if s.llm != nil && input.Confidence > s.minConfidence {
		summary, err := s.llm.Generate(ctx, input)
		if err == nil {
			return summary, nil
		}
		s.logger.Warn("LLM summary generation failed, falling back to template",
			"role", input.DominantRole,
			"error", err.Error())
	} else if s.llm != nil {
		s.logger.Debug("Skipping LLM summary generation, confidence below threshold",
			"confidence", input.Confidence,
			"min_confidence", s.minConfidence)
	}

	return s.template.Generate(ctx, input)
}

// Close releases the underlying LLM client, if any
func (s *Service) Close() error {
	if s.llm != nil {
		return s.llm.Close()
	}
	return nil
}
