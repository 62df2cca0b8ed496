package common

import (
	"strings"
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	configured := []string{"json", "text", "markdown"}

	tests := []struct {
		name             string
		format           string
		supportedFormats []string
		wantErr          string
	}{
		{
			name:             "configured format accepted",
			format:           "json",
			supportedFormats: configured,
		},
		{
			name:             "markdown accepted",
			format:           "markdown",
			supportedFormats: configured,
		},
		{
			name:             "unknown format rejected",
			format:           "xml",
			supportedFormats: configured,
			wantErr:          `unsupported output format "xml"`,
		},
		{
			name:             "match is case sensitive",
			format:           "JSON",
			supportedFormats: configured,
			wantErr:          `unsupported output format "JSON"`,
		},
		{
			name:             "empty format rejected",
			format:           "",
			supportedFormats: configured,
			wantErr:          `unsupported output format ""`,
		},
		{
			name:             "empty list disables the check",
			format:           "xml",
			supportedFormats: nil,
		},
		{
			name:             "single configured format",
			format:           "text",
			supportedFormats: []string{"json"},
			wantErr:          "supported formats: json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format, tt.supportedFormats)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestGetSupportedFormats(t *testing.T) {
	formats := []string{"json", "text"}
	got := GetSupportedFormats(formats)
	if len(got) != 2 || got[0] != "json" || got[1] != "text" {
		t.Errorf("unexpected formats: %v", got)
	}
}
