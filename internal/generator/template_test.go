package generator

import (
	"context"
	"strings"
	"testing"

	"github.com/DANNY1169/resume-role-classifier/internal/types"
)

func TestTemplateGeneratorInterpolation(t *testing.T) {
	gen := NewTemplateGenerator()

	input := SummaryInput{
		DominantRole: types.RoleBuilder,
		Metadata: types.ResumeMetadata{
			YearsExperience: 8,
			Title:           "Platform Engineer",
			Skills:          []string{"Go", "Kubernetes", "Postgresql", "Aws"},
		},
	}

	summary, err := gen.Generate(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.Source != "template" {
		t.Errorf("expected source 'template', got %q", summary.Source)
	}
	if summary.Tone != "strategic" {
		t.Errorf("expected tone 'strategic', got %q", summary.Tone)
	}
	if !strings.Contains(summary.Summary, "Platform Engineer") {
		t.Error("summary should contain the extracted title")
	}
	if !strings.Contains(summary.Summary, "with 8 years of experience") {
		t.Error("summary should contain the years phrase")
	}
	// Only the first three skills are woven into the paragraph.
	if !strings.Contains(summary.Summary, "Go, Kubernetes, Postgresql") {
		t.Error("summary should contain the first three skills")
	}
	if strings.Contains(summary.Summary, "Aws") {
		t.Error("summary should not contain skills beyond the first three")
	}
}

func TestTemplateGeneratorMissingMetadata(t *testing.T) {
	gen := NewTemplateGenerator()

	summary, err := gen.Generate(context.Background(), SummaryInput{
		DominantRole: types.RoleThriver,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(summary.Summary, "with extensive experience") {
		t.Error("missing years should fall back to the extensive experience phrase")
	}
	if !strings.Contains(summary.Summary, "modern technologies") {
		t.Error("missing skills should fall back to the generic skills phrase")
	}
	if !strings.Contains(summary.Summary, "professional") {
		t.Error("missing title should fall back to 'professional'")
	}
}

func TestTemplateGeneratorPerRoleTone(t *testing.T) {
	gen := NewTemplateGenerator()

	wantTones := map[types.Role]string{
		types.RoleBuilder:   "strategic",
		types.RoleEnabler:   "professional",
		types.RoleThriver:   "dynamic",
		types.RoleSupportee: "reliable",
	}

	seen := map[string]types.Role{}
	for _, role := range types.Roles {
		summary, err := gen.Generate(context.Background(), SummaryInput{DominantRole: role})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", role, err)
		}
		if summary.Summary == "" {
			t.Errorf("%s: empty summary", role)
		}
		if summary.Tone != wantTones[role] {
			t.Errorf("%s: expected tone %q, got %q", role, wantTones[role], summary.Tone)
		}
		if prev, dup := seen[summary.Summary]; dup {
			t.Errorf("roles %s and %s produced identical summaries", prev, role)
		}
		seen[summary.Summary] = role
	}
}
