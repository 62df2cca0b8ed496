package scoring

import (
	"strings"
	"testing"

	apperrors "github.com/DANNY1169/resume-role-classifier/internal/errors"
)

func TestExtractSentences(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name: "terminal punctuation splits",
			text: "Led the design of a distributed payment platform serving millions of users daily. " +
				"Coordinated closely with product and design teams to deliver the quarterly roadmap on time.",
			expected: []string{
				"Led the design of a distributed payment platform serving millions of users daily",
				"Coordinated closely with product and design teams to deliver the quarterly roadmap on time",
			},
		},
		{
			name: "newlines are boundaries without terminal punctuation",
			text: "Built and maintained internal developer tooling used across seven engineering teams\n" +
				"Mentored junior engineers on code review standards and operational best practices",
			expected: []string{
				"Built and maintained internal developer tooling used across seven engineering teams",
				"Mentored junior engineers on code review standards and operational best practices",
			},
		},
		{
			name: "short candidates are filtered",
			text: "Software Engineer.\nDesigned and operated the streaming ingestion service that powers all analytics dashboards.",
			expected: []string{
				"Designed and operated the streaming ingestion service that powers all analytics dashboards",
			},
		},
		{
			name: "low alpha ratio candidates are filtered",
			text: "2019 - 2023 | 1234 Main St 94105 +1 (555) 000-1111 ref 42\n" +
				"Implemented the continuous deployment pipeline that cut release time from days to minutes.",
			expected: []string{
				"Implemented the continuous deployment pipeline that cut release time from days to minutes",
			},
		},
		{
			name: "bullet prefixes are stripped",
			text: "- Delivered the customer onboarding workflow rewrite across three separate product surfaces",
			expected: []string{
				"Delivered the customer onboarding workflow rewrite across three separate product surfaces",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sentences, err := ExtractSentences(tt.text, 10, 0.5)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(sentences) != len(tt.expected) {
				t.Fatalf("expected %d sentences, got %d: %+v", len(tt.expected), len(sentences), sentences)
			}
			for i, want := range tt.expected {
				if sentences[i].Text != want {
					t.Errorf("sentence %d: expected %q, got %q", i, want, sentences[i].Text)
				}
				if sentences[i].Index != i {
					t.Errorf("sentence %d: expected index %d, got %d", i, i, sentences[i].Index)
				}
			}
		})
	}
}

func TestExtractSentencesWholeInputFallback(t *testing.T) {
	// Nothing survives the ten-word filter, so the trimmed input becomes the
	// single sentence instead of an error.
	sentences, err := ExtractSentences("  Go Rust C  ", 10, 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sentences) != 1 {
		t.Fatalf("expected 1 fallback sentence, got %d", len(sentences))
	}
	if sentences[0].Text != "Go Rust C" {
		t.Errorf("expected trimmed whole input, got %q", sentences[0].Text)
	}
	if sentences[0].Index != 0 {
		t.Errorf("expected index 0, got %d", sentences[0].Index)
	}
}

func TestExtractSentencesEmptyInput(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t  \n"} {
		_, err := ExtractSentences(text, 10, 0.5)
		if err == nil {
			t.Fatalf("expected error for input %q", text)
		}
		appErr, ok := err.(*apperrors.AppError)
		if !ok {
			t.Fatalf("expected AppError, got %T", err)
		}
		if appErr.Code != apperrors.ErrCodeEmptyInput {
			t.Errorf("expected code %s, got %s", apperrors.ErrCodeEmptyInput, appErr.Code)
		}
	}
}

func TestExtractSentencesPreservesOrder(t *testing.T) {
	var lines []string
	for _, verb := range []string{"Architected", "Coordinated", "Shipped", "Documented", "Maintained"} {
		lines = append(lines, verb+" the core platform services powering every customer facing product daily")
	}
	sentences, err := ExtractSentences(strings.Join(lines, "\n"), 10, 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sentences) != len(lines) {
		t.Fatalf("expected %d sentences, got %d", len(lines), len(sentences))
	}
	for i, sent := range sentences {
		if sent.Text != lines[i] {
			t.Errorf("order not preserved at %d: %q", i, sent.Text)
		}
	}
}

func TestAlphaRatio(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"abcd", 1.0},
		{"ab12", 0.5},
		{"1234", 0.0},
		{"", 0.0},
	}
	for _, tt := range tests {
		if got := alphaRatio(tt.input); got != tt.expected {
			t.Errorf("alphaRatio(%q) = %g, expected %g", tt.input, got, tt.expected)
		}
	}
}
