package scoring

import (
	"strings"
	"unicode"

	"github.com/DANNY1169/resume-role-classifier/internal/errors"
)

// Sentence is one substantive sentence extracted from a resume. Index is the
// position within the retained sequence; recency weighting and evidence
// tie-breaking both depend on it, so the extractor never reorders.
type Sentence struct {
	Text  string
	Index int
}

// ExtractSentences splits resume text into substantive sentences. Terminal
// punctuation and line breaks both end a sentence: resumes routinely use
// bullet lines with no trailing period. Candidates shorter than minWords
// words, or with an alphabetic-to-total character ratio below minAlphaRatio,
// are dropped (bullet glyphs, date ranges, section headers).
//
// If nothing survives the filter, the whole trimmed input is returned as a
// single sentence so downstream stages always see at least one item.
// Empty or whitespace-only input is the only failure mode.
func ExtractSentences(text string, minWords int, minAlphaRatio float64) ([]Sentence, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, errors.NewValidationError(errors.ErrCodeEmptyInput, "resume text is empty or whitespace-only", nil)
	}

	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?' || r == '\n' || r == '\r'
	})

	var sentences []Sentence
	for _, part := range parts {
		candidate := strings.TrimSpace(part)
		candidate = strings.TrimLeft(candidate, "-•*–— \t")
		if candidate == "" {
			continue
		}
		if len(strings.Fields(candidate)) < minWords {
			continue
		}
		if alphaRatio(candidate) < minAlphaRatio {
			continue
		}
		sentences = append(sentences, Sentence{Text: candidate, Index: len(sentences)})
	}

	if len(sentences) == 0 {
		sentences = []Sentence{{Text: trimmed, Index: 0}}
	}

	return sentences, nil
}

// alphaRatio returns the share of alphabetic characters over all characters
func alphaRatio(s string) float64 {
	if s == "" {
		return 0
	}
	total := 0
	alpha := 0
	for _, r := range s {
		total++
		if unicode.IsLetter(r) {
			alpha++
		}
	}
	return float64(alpha) / float64(total)
}
