package generator

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/DANNY1169/resume-role-classifier/internal/types"
)

var (
	yearsPattern = regexp.MustCompile(`(?i)(\d+)\+?\s*years?`)
	titlePattern = regexp.MustCompile(`^[A-Z][a-z]+(\s+[A-Z][a-z]+){1,3}$`)
)

// commonSkills are matched case-insensitively as substrings of the resume
// text. Kept as a slice so the extracted skill list is deterministic.
var commonSkills = []string{
	"python", "java", "javascript", "react", "node", "aws", "docker",
	"kubernetes", "sql", "machine learning", "data science", "api",
	"go", "postgresql", "redis", "kafka", "graphql", "microservices",
}

// maxExtractedSkills caps the skill list carried in metadata
const maxExtractedSkills = 5

// ExtractMetadata pulls years of experience, a probable title and recognized
// skills out of the raw resume text. All fields are best-effort heuristics;
// zero values mean the fact was not found.
func ExtractMetadata(resumeText string) types.ResumeMetadata {
	metadata := types.ResumeMetadata{
		OriginalSummary: ExtractOriginalSummary(resumeText),
	}

	if match := yearsPattern.FindStringSubmatch(resumeText); match != nil {
		if years, err := strconv.Atoi(match[1]); err == nil {
			metadata.YearsExperience = years
		}
	}

	// Title heuristic: first capitalized multi-word line near the top
	lines := strings.Split(resumeText, "\n")
	limit := min(len(lines), 5)
	for _, line := range lines[:limit] {
		line = strings.TrimSpace(line)
		if titlePattern.MatchString(line) {
			metadata.Title = line
			break
		}
	}

	textLower := strings.ToLower(resumeText)
	for _, skill := range commonSkills {
		if strings.Contains(textLower, skill) {
			metadata.Skills = append(metadata.Skills, capitalizeSkill(skill))
			if len(metadata.Skills) == maxExtractedSkills {
				break
			}
		}
	}

	return metadata
}

// capitalizeSkill formats a matched skill for display ("machine learning"
// becomes "Machine Learning")
func capitalizeSkill(skill string) string {
	words := strings.Fields(skill)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

var summaryHeaders = []string{"summary", "objective", "profile", "about"}

var sectionHeaders = []string{
	"experience", "professional experience", "work experience",
	"education", "skills", "technical skills", "work history",
	"employment", "projects", "certifications", "awards",
}

// ExtractOriginalSummary returns the text of the resume's own summary
// section, or an empty string when the resume has none. The section starts
// at a summary-style header and ends at the next section header.
func ExtractOriginalSummary(resumeText string) string {
	var summaryLines []string
	inSummary := false

	for _, line := range strings.Split(resumeText, "\n") {
		lineLower := strings.ToLower(strings.TrimSpace(line))

		if isSummaryHeader(lineLower) {
			inSummary = true
			continue
		}

		if inSummary && isSectionHeader(lineLower) {
			break
		}

		if inSummary {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				summaryLines = append(summaryLines, trimmed)
			}
		}
	}

	return strings.Join(summaryLines, " ")
}

func isSummaryHeader(lineLower string) bool {
	for _, header := range summaryHeaders {
		if lineLower == header || strings.HasPrefix(lineLower, header+":") {
			return true
		}
	}
	return false
}

func isSectionHeader(lineLower string) bool {
	for _, header := range sectionHeaders {
		if lineLower == header ||
			strings.HasPrefix(lineLower, header+":") ||
			strings.HasPrefix(lineLower, header+" ") {
			return true
		}
	}
	return false
}
