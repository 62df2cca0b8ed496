package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/DANNY1169/resume-role-classifier/internal/types"
)

// TemplateGenerator writes the summary from fixed per-role templates. It
// never fails and needs no network, which makes it the terminal fallback.
type TemplateGenerator struct{}

var _ SummaryGenerator = (*TemplateGenerator)(nil)

// NewTemplateGenerator creates a template-based generator
func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{}
}

// templateTones maps each role to the tone its template is written in
var templateTones = map[types.Role]string{
	types.RoleBuilder:   "strategic",
	types.RoleEnabler:   "professional",
	types.RoleThriver:   "dynamic",
	types.RoleSupportee: "reliable",
}

// Generate fills the dominant role's template with the extracted metadata
func (t *TemplateGenerator) Generate(_ context.Context, input SummaryInput) (types.RoleSummary, error) {
	skillsText := "modern technologies"
	if len(input.Metadata.Skills) > 0 {
		limit := min(len(input.Metadata.Skills), 3)
		skillsText = strings.Join(input.Metadata.Skills[:limit], ", ")
	}

	yearsPrefix := "with extensive experience"
	if input.Metadata.YearsExperience > 0 {
		yearsPrefix = fmt.Sprintf("with %d years of experience", input.Metadata.YearsExperience)
	}

	titleText := input.Metadata.Title
	if titleText == "" {
		titleText = "professional"
	}

	var summary string
	switch input.DominantRole {
	case types.RoleBuilder:
		summary = fmt.Sprintf(
			"Experienced %s %s in architecting scalable systems and driving technical vision. "+
				"Leverage a strong background in %s to transform abstract concepts into foundational "+
				"infrastructure that supports organizational growth. "+
				"Have a proven track record of designing long-term solutions and building frameworks that scale "+
				"with evolving business needs, consistently delivering innovative approaches to complex technical challenges.",
			titleText, yearsPrefix, skillsText)
	case types.RoleEnabler:
		titleDisplay := titleText
		if titleDisplay == "professional" {
			titleDisplay = "Professional"
		}
		summary = fmt.Sprintf(
			"%s %s in cross-functional collaboration and bridging gaps between technical and business stakeholders. "+
				"Use expertise in %s to coordinate complex initiatives across multiple teams and "+
				"unblock critical paths, delivering measurable results. "+
				"Facilitate seamless collaboration and enable high-performing teams through effective communication "+
				"and strategic execution.",
			titleDisplay, yearsPrefix, skillsText)
	case types.RoleThriver:
		summary = fmt.Sprintf(
			"%s %s thriving in fast-paced, dynamic environments where rapid adaptation is essential. "+
				"Leverage technical expertise in %s to rapidly iterate and ship high-quality solutions "+
				"under tight deadlines while maintaining delivery standards. "+
				"Deliver exceptional results even under pressure and uncertainty, consistently demonstrating "+
				"the ability to pivot quickly and adapt to changing requirements.",
			titleText, yearsPrefix, skillsText)
	case types.RoleSupportee:
		summary = fmt.Sprintf(
			"%s %s focused on reliability and operational excellence through rigorous processes and attention to detail. "+
				"Apply deep expertise in %s to maintain critical systems and ensure consistent quality "+
				"through comprehensive documentation and standardized procedures. "+
				"Committed to operational excellence with a proven track record of implementing standards that "+
				"reduce risk and improve system stability.",
			titleText, yearsPrefix, skillsText)
	default:
		summary = fmt.Sprintf(
			"Experienced %s %s, demonstrating strong alignment with %s principles through professional work. "+
				"Leverage skills in %s to apply %s approaches and deliver consistent value. "+
				"Committed to excellence with a track record of meaningful contributions.",
			titleText, yearsPrefix, input.DominantRole, skillsText, strings.ToLower(string(input.DominantRole)))
	}

	tone := templateTones[input.DominantRole]
	if tone == "" {
		tone = "professional"
	}

	return types.RoleSummary{
		Summary: summary,
		Tone:    tone,
		Source:  "template",
	}, nil
}

// Close implements SummaryGenerator
func (t *TemplateGenerator) Close() error {
	return nil
}
