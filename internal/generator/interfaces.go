package generator

import (
	"context"

	"github.com/DANNY1169/resume-role-classifier/internal/types"
)

// SummaryInput carries everything a generator needs to write the narrative
// for an already-classified resume.
type SummaryInput struct {
	ResumeText      string
	DominantRole    types.Role
	RoleDescription string
	Confidence      float64
	Distribution    types.RoleDistribution
	Metadata        types.ResumeMetadata
}

// SummaryGenerator produces a first-person summary aligned with the dominant
// role. Implementations must set RoleSummary.Source to identify themselves.
type SummaryGenerator interface {
	Generate(ctx context.Context, input SummaryInput) (types.RoleSummary, error)
	Close() error
}
