package types

import "time"

// Role identifies one of the four narrative archetypes a resume can express.
type Role string

const (
	RoleBuilder   Role = "Builder"
	RoleEnabler   Role = "Enabler"
	RoleThriver   Role = "Thriver"
	RoleSupportee Role = "Supportee"
)

// Roles lists all roles in priority order. When aggregate scores tie, the
// earlier role in this list wins the dominant slot.
var Roles = []Role{RoleBuilder, RoleEnabler, RoleThriver, RoleSupportee}

// AnalyzeResumeInput represents the input for classifying a resume
type AnalyzeResumeInput struct {
	ResumeText    string `json:"resumeText"`
	EvidenceCount int    `json:"evidenceCount,omitempty"`
	UseLLM        *bool  `json:"useLLM,omitempty"`
}

// RoleDistribution maps each role to its probability. Values sum to 1.
type RoleDistribution map[Role]float64

// Evidence is a sentence that supports the dominant role classification.
type Evidence struct {
	Sentence string  `json:"sentence"`
	Score    float64 `json:"score"`
	Position int     `json:"position"`
}

// ResumeMetadata holds facts extracted from the resume text, used to
// personalize the generated summary.
type ResumeMetadata struct {
	YearsExperience int      `json:"yearsExperience,omitempty"`
	Title           string   `json:"title,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	OriginalSummary string   `json:"originalSummary,omitempty"`
}

// RoleSummary is the generated first-person narrative for the dominant role.
type RoleSummary struct {
	Summary string `json:"summary"`
	Tone    string `json:"tone"`
	Source  string `json:"source"` // "llm" or "template"
}

// RoleAnalysis represents the complete output of a resume classification
type RoleAnalysis struct {
	DominantRole   Role             `json:"dominantRole"`
	Distribution   RoleDistribution `json:"distribution"`
	Evidence       []Evidence       `json:"evidence"`
	Summary        RoleSummary      `json:"summary"`
	Metadata       ResumeMetadata   `json:"metadata"`
	SentenceCount  int              `json:"sentenceCount"`
	EmbeddingModel string           `json:"embeddingModel"`
	AnalyzedAt     time.Time        `json:"analyzedAt"`
}

// RoleDefinition pairs a role with its reference description.
type RoleDefinition struct {
	Role        Role   `json:"role"`
	Description string `json:"description"`
}

// RoleCatalog is the formatter payload for the roles listing.
type RoleCatalog struct {
	Roles []RoleDefinition `json:"roles"`
}
