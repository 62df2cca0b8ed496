package generator

import (
	"reflect"
	"testing"
)

func TestExtractMetadataYears(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		years int
	}{
		{
			name:  "plain years",
			text:  "Software engineer with 7 years of backend development.",
			years: 7,
		},
		{
			name:  "plus suffix",
			text:  "10+ years leading infrastructure teams.",
			years: 10,
		},
		{
			name:  "singular year",
			text:  "1 year of professional work.",
			years: 1,
		},
		{
			name:  "uppercase",
			text:  "5 YEARS of experience.",
			years: 5,
		},
		{
			name:  "no mention",
			text:  "Seasoned engineer who ships software.",
			years: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metadata := ExtractMetadata(tt.text)
			if metadata.YearsExperience != tt.years {
				t.Errorf("expected %d years, got %d", tt.years, metadata.YearsExperience)
			}
		})
	}
}

func TestExtractMetadataTitle(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		title string
	}{
		{
			name:  "first matching line",
			text:  "Jane Doe\njane@example.com\nExperienced backend developer.",
			title: "Jane Doe",
		},
		{
			name:  "skips non-matching lines",
			text:  "RESUME\nSenior Platform Engineer\nMore text here.",
			title: "Senior Platform Engineer",
		},
		{
			name:  "only scans the top of the document",
			text:  "line\nline\nline\nline\nline\nSenior Platform Engineer",
			title: "",
		},
		{
			name:  "no candidate",
			text:  "just lowercase text\nand more of it",
			title: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metadata := ExtractMetadata(tt.text)
			if metadata.Title != tt.title {
				t.Errorf("expected title %q, got %q", tt.title, metadata.Title)
			}
		})
	}
}

func TestExtractMetadataSkills(t *testing.T) {
	text := "Built services with Python and Docker, deployed on Kubernetes clusters."
	metadata := ExtractMetadata(text)

	want := []string{"Python", "Docker", "Kubernetes"}
	if !reflect.DeepEqual(metadata.Skills, want) {
		t.Errorf("expected skills %v, got %v", want, metadata.Skills)
	}
}

func TestExtractMetadataSkillsCapped(t *testing.T) {
	text := "python java react node aws docker kubernetes sql redis kafka"
	metadata := ExtractMetadata(text)

	if len(metadata.Skills) != maxExtractedSkills {
		t.Errorf("expected %d skills, got %d (%v)", maxExtractedSkills, len(metadata.Skills), metadata.Skills)
	}
}

func TestExtractMetadataMultiWordSkillCapitalization(t *testing.T) {
	text := "Applied machine learning to production ranking problems."
	metadata := ExtractMetadata(text)

	found := false
	for _, skill := range metadata.Skills {
		if skill == "Machine Learning" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected 'Machine Learning' in skills, got %v", metadata.Skills)
	}
}

func TestExtractOriginalSummary(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "summary section",
			text: "Jane Doe\nSummary\nSeasoned engineer.\nLoves distributed systems.\nExperience\nAcme Corp",
			want: "Seasoned engineer. Loves distributed systems.",
		},
		{
			name: "objective header with colon",
			text: "Objective:\nGrow into a staff role.\nEducation\nState University",
			want: "Grow into a staff role.",
		},
		{
			name: "profile runs to end of document",
			text: "Profile\nReliable operator.\nDetail oriented.",
			want: "Reliable operator. Detail oriented.",
		},
		{
			name: "stops at technical skills",
			text: "About\nBuilds platforms.\nTechnical Skills\nGo, Python",
			want: "Builds platforms.",
		},
		{
			name: "no summary section",
			text: "Jane Doe\nExperience\nAcme Corp, 5 years",
			want: "",
		},
		{
			name: "word summary inside a sentence is not a header",
			text: "Jane Doe\nWrote a summary of quarterly results.\nExperience\nAcme Corp",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractOriginalSummary(tt.text); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
