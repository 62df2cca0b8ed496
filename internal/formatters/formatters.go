package formatters

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/DANNY1169/resume-role-classifier/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "RoleAnalysis", &AnalysisTextFormatter{})
	registry.RegisterFormatter("markdown", "RoleAnalysis", &AnalysisMarkdownFormatter{})
	registry.RegisterFormatter("text", "RoleCatalog", &RolesTextFormatter{})
	registry.RegisterFormatter("markdown", "RoleCatalog", &RolesMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.RoleAnalysis, *types.RoleAnalysis:
		return "RoleAnalysis"
	case types.RoleCatalog:
		return "RoleCatalog"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// rolesByProbability returns the distribution's roles ordered best-first,
// with the fixed role order breaking score ties.
func rolesByProbability(dist types.RoleDistribution) []types.Role {
	roles := make([]types.Role, len(types.Roles))
	copy(roles, types.Roles)
	sort.SliceStable(roles, func(i, j int) bool {
		return dist[roles[i]] > dist[roles[j]]
	})
	return roles
}

func distributionBar(probability float64) string {
	return strings.Repeat("█", int(probability*50))
}

func truncate(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	return text[:limit] + "..."
}

func asAnalysis(data any) (*types.RoleAnalysis, bool) {
	switch v := data.(type) {
	case types.RoleAnalysis:
		return &v, true
	case *types.RoleAnalysis:
		return v, true
	default:
		return nil, false
	}
}

// AnalysisTextFormatter handles text formatting for analysis results
type AnalysisTextFormatter struct{}

func (atf *AnalysisTextFormatter) Format(data any) (string, error) {
	result, ok := asAnalysis(data)
	if !ok {
		return "", fmt.Errorf("expected RoleAnalysis, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== ROLE DISTRIBUTION ===\n")
	for _, role := range rolesByProbability(result.Distribution) {
		probability := result.Distribution[role]
		output.WriteString(fmt.Sprintf("  %-12s %5.1f%% %s\n", role, probability*100, distributionBar(probability)))
	}
	output.WriteString("\n")

	output.WriteString(fmt.Sprintf("Dominant role: %s (%.1f%% confidence)\n\n",
		result.DominantRole, result.Distribution[result.DominantRole]*100))

	if len(result.Evidence) > 0 {
		output.WriteString("=== TOP EVIDENCE ===\n")
		for i, evidence := range result.Evidence {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, truncate(evidence.Sentence, 100)))
		}
		output.WriteString("\n")
	}

	output.WriteString("=== ORIGINAL SUMMARY ===\n")
	if result.Metadata.OriginalSummary != "" {
		output.WriteString(truncate(result.Metadata.OriginalSummary, 200))
	} else {
		output.WriteString("No summary found in original resume.")
	}
	output.WriteString("\n\n")

	output.WriteString("=== REWRITTEN SUMMARY ===\n")
	summary := strings.TrimSpace(result.Summary.Summary)
	if summary != "" && !strings.HasSuffix(summary, ".") {
		summary += "."
	}
	output.WriteString(summary)
	output.WriteString("\n\n")

	output.WriteString("=== DETAILS ===\n")
	output.WriteString(fmt.Sprintf("Summary source: %s (%s tone)\n", result.Summary.Source, result.Summary.Tone))
	output.WriteString(fmt.Sprintf("Sentences analyzed: %d\n", result.SentenceCount))
	output.WriteString(fmt.Sprintf("Embedding model: %s\n", result.EmbeddingModel))
	if result.Metadata.YearsExperience > 0 {
		output.WriteString(fmt.Sprintf("Years of experience: %d\n", result.Metadata.YearsExperience))
	}
	if result.Metadata.Title != "" {
		output.WriteString(fmt.Sprintf("Title: %s\n", result.Metadata.Title))
	}
	if len(result.Metadata.Skills) > 0 {
		output.WriteString(fmt.Sprintf("Skills: %s\n", strings.Join(result.Metadata.Skills, ", ")))
	}

	return output.String(), nil
}

func (atf *AnalysisTextFormatter) SupportedType() string {
	return "RoleAnalysis"
}

// AnalysisMarkdownFormatter handles markdown formatting for analysis results
type AnalysisMarkdownFormatter struct{}

func (amf *AnalysisMarkdownFormatter) Format(data any) (string, error) {
	result, ok := asAnalysis(data)
	if !ok {
		return "", fmt.Errorf("expected RoleAnalysis, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Resume Role Analysis\n\n")
	output.WriteString(fmt.Sprintf("**Dominant role:** %s (%.1f%% confidence)\n\n",
		result.DominantRole, result.Distribution[result.DominantRole]*100))

	output.WriteString("## Role Distribution\n\n")
	output.WriteString("| Role | Probability |\n")
	output.WriteString("|------|-------------|\n")
	for _, role := range rolesByProbability(result.Distribution) {
		output.WriteString(fmt.Sprintf("| %s | %.1f%% |\n", role, result.Distribution[role]*100))
	}
	output.WriteString("\n")

	if len(result.Evidence) > 0 {
		output.WriteString("## Top Evidence\n\n")
		for i, evidence := range result.Evidence {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, evidence.Sentence))
		}
		output.WriteString("\n")
	}

	output.WriteString("## Original Summary\n\n")
	if result.Metadata.OriginalSummary != "" {
		output.WriteString(result.Metadata.OriginalSummary)
	} else {
		output.WriteString("No summary found in original resume.")
	}
	output.WriteString("\n\n")

	output.WriteString("## Rewritten Summary\n\n")
	output.WriteString(strings.TrimSpace(result.Summary.Summary))
	output.WriteString("\n\n")

	output.WriteString("## Details\n\n")
	output.WriteString(fmt.Sprintf("- **Summary source:** %s (%s tone)\n", result.Summary.Source, result.Summary.Tone))
	output.WriteString(fmt.Sprintf("- **Sentences analyzed:** %d\n", result.SentenceCount))
	output.WriteString(fmt.Sprintf("- **Embedding model:** %s\n", result.EmbeddingModel))
	if len(result.Metadata.Skills) > 0 {
		output.WriteString(fmt.Sprintf("- **Skills:** %s\n", strings.Join(result.Metadata.Skills, ", ")))
	}

	return output.String(), nil
}

func (amf *AnalysisMarkdownFormatter) SupportedType() string {
	return "RoleAnalysis"
}

// RolesTextFormatter handles text formatting for the role catalog
type RolesTextFormatter struct{}

func (rtf *RolesTextFormatter) Format(data any) (string, error) {
	catalog, ok := data.(types.RoleCatalog)
	if !ok {
		return "", fmt.Errorf("expected RoleCatalog, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== ROLE CATALOG ===\n\n")
	for _, def := range catalog.Roles {
		output.WriteString(fmt.Sprintf("%s:\n", def.Role))
		output.WriteString("  " + def.Description + "\n\n")
	}

	return output.String(), nil
}

func (rtf *RolesTextFormatter) SupportedType() string {
	return "RoleCatalog"
}

// RolesMarkdownFormatter handles markdown formatting for the role catalog
type RolesMarkdownFormatter struct{}

func (rmf *RolesMarkdownFormatter) Format(data any) (string, error) {
	catalog, ok := data.(types.RoleCatalog)
	if !ok {
		return "", fmt.Errorf("expected RoleCatalog, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Role Catalog\n\n")
	for _, def := range catalog.Roles {
		output.WriteString(fmt.Sprintf("## %s\n\n", def.Role))
		output.WriteString(def.Description + "\n\n")
	}

	return output.String(), nil
}

func (rmf *RolesMarkdownFormatter) SupportedType() string {
	return "RoleCatalog"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
