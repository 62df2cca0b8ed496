package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/DANNY1169/resume-role-classifier/internal/ai"
	"github.com/DANNY1169/resume-role-classifier/internal/config"
	apperrors "github.com/DANNY1169/resume-role-classifier/internal/errors"
	"github.com/DANNY1169/resume-role-classifier/internal/types"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/genai"
)

// GeminiGenerator writes the summary with the Gemini API, constrained to a
// JSON response schema.
type GeminiGenerator struct {
	client         *genai.Client
	config         *config.OperationAIConfig
	circuitBreaker *ai.CircuitBreaker[*genai.GenerateContentResponse]
	logger         *apperrors.Logger
}

var _ SummaryGenerator = (*GeminiGenerator)(nil)

// NewGeminiGenerator creates an LLM-backed summary generator
func NewGeminiGenerator(cfg *config.OperationAIConfig, logger *apperrors.Logger) (*GeminiGenerator, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, apperrors.NewAIError(apperrors.ErrCodeGenerationFailed,
			"Failed to create Gemini client", err)
	}

	return &GeminiGenerator{
		client:         client,
		config:         cfg,
		circuitBreaker: ai.NewCircuitBreaker[*genai.GenerateContentResponse]("Summary", cfg, logger),
		logger:         logger,
	}, nil
}

// llmSummary mirrors the response schema requested from the model
type llmSummary struct {
	Summary string `json:"summary"`
	Tone    string `json:"tone"`
}

// Generate asks the model for a first-person narrative summary
func (g *GeminiGenerator) Generate(ctx context.Context, input SummaryInput) (types.RoleSummary, error) {
	tracer := otel.Tracer("rolecolor.generator.gemini")
	ctx, span := tracer.Start(ctx, "gemini.generate_summary")
	defer span.End()

	span.SetAttributes(
		attribute.String("ai.provider", "gemini"),
		attribute.String("ai.model", g.config.Model),
		attribute.String("role", string(input.DominantRole)),
		attribute.Float64("confidence", input.Confidence),
	)
	if g.config.Temperature != nil {
		span.SetAttributes(attribute.Float64("ai.temperature", float64(*g.config.Temperature)))
	}

	prompt := g.buildSummaryPrompt(input)
	genaiConfig := g.buildSummarySchema()

	callCtx := ctx
	if g.config.Timeout != nil {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, *g.config.Timeout)
		defer cancel()
	}

	maxRetries := 0
	if g.config.MaxRetries != nil {
		maxRetries = *g.config.MaxRetries
	}

	result, err := g.circuitBreaker.Execute(func() (*genai.GenerateContentResponse, error) {
		return ai.ExecuteWithRetry(callCtx, g.logger, "generate_summary", maxRetries, func() (*genai.GenerateContentResponse, error) {
			return g.client.Models.GenerateContent(callCtx, g.config.Model, genai.Text(prompt), genaiConfig)
		})
	})
	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("success", false))
		return types.RoleSummary{}, apperrors.NewAIError(apperrors.ErrCodeGenerationFailed,
			"Failed to generate summary", err)
	}

	var output llmSummary
	if err := json.Unmarshal([]byte(result.Text()), &output); err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("success", false))
		return types.RoleSummary{}, apperrors.NewAIError(apperrors.ErrCodeGenerationFailed,
			"Failed to parse summary response", err)
	}
	if strings.TrimSpace(output.Summary) == "" {
		span.SetAttributes(attribute.Bool("success", false))
		return types.RoleSummary{}, apperrors.NewAIError(apperrors.ErrCodeGenerationFailed,
			"Model returned an empty summary", nil)
	}

	// The requested shape is 4-6 sentences; anything else is worth a log
	// line but not a failure.
	sentenceCount := countSentences(output.Summary)
	if sentenceCount < 4 || sentenceCount > 6 {
		g.logger.Warn("LLM summary length outside expected range",
			"sentences", sentenceCount,
			"role", input.DominantRole)
	}

	if tokenUsage := ai.ExtractTokenUsage(result); tokenUsage != nil {
		span.SetAttributes(
			attribute.Int64("ai.tokens.input", tokenUsage.InputTokens),
			attribute.Int64("ai.tokens.output", tokenUsage.OutputTokens),
			attribute.Int64("ai.tokens.total", tokenUsage.TotalTokens),
		)
	}

	tone := output.Tone
	if tone == "" {
		tone = "professional"
	}

	span.SetAttributes(attribute.Bool("success", true))
	return types.RoleSummary{
		Summary: strings.TrimSpace(output.Summary),
		Tone:    tone,
		Source:  "llm",
	}, nil
}

// Close implements SummaryGenerator
func (g *GeminiGenerator) Close() error {
	return nil
}

// GetCircuitBreakerStats returns circuit breaker statistics
func (g *GeminiGenerator) GetCircuitBreakerStats() map[string]any {
	return map[string]any{
		"summary":         g.circuitBreaker.GetStats(),
		"overall_healthy": g.circuitBreaker.IsHealthy(),
	}
}

// buildSummarySchema creates the response schema for summary requests
func (g *GeminiGenerator) buildSummarySchema() *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"summary": {Type: genai.TypeString},
				"tone":    {Type: genai.TypeString},
			},
			Required: []string{"summary", "tone"},
		},
	}

	if g.config.Temperature != nil && *g.config.Temperature > 0 {
		cfg.Temperature = g.config.Temperature
	}

	return cfg
}

// buildSummaryPrompt assembles the rewrite instructions for the model
func (g *GeminiGenerator) buildSummaryPrompt(input SummaryInput) string {
	extractMaxWords := g.config.ExtractMaxWords
	if extractMaxWords <= 0 {
		extractMaxWords = 400
	}
	resumeExtract := optimizeResumeExtract(input.ResumeText, extractMaxWords)

	skillsText := "technical skills"
	if len(input.Metadata.Skills) > 0 {
		skillsText = strings.Join(input.Metadata.Skills, ", ")
	}

	yearsText := "extensive"
	if input.Metadata.YearsExperience > 0 {
		yearsText = fmt.Sprintf("%d", input.Metadata.YearsExperience)
	}

	titleText := input.Metadata.Title
	if titleText == "" {
		titleText = "professional"
	}

	originalSummary := input.Metadata.OriginalSummary
	if originalSummary == "" {
		originalSummary = "No original summary provided."
	} else if len(originalSummary) > 200 {
		originalSummary = originalSummary[:200]
	}

	return fmt.Sprintf(`You are an expert career coach and resume writer. Rewrite the following resume summary for a candidate identified as a "%s".

ROLE DEFINITION:
%s: %s

ORIGINAL SUMMARY:
%s

KEY EXPERIENCE:
%s

CANDIDATE METADATA:
- Years of experience: %s years
- Professional title: %s
- Key skills: %s

Return a JSON object with this exact structure:
{
  "summary": "A cohesive, flowing paragraph (4-6 sentences) that reads naturally, not like a list",
  "tone": "professional|strategic|dynamic|reliable"
}

CRITICAL REQUIREMENTS:
1. Write in **FIRST PERSON** (use "I" or action verbs without pronouns) - this is a resume, the candidate wrote it themselves
2. Write a **cohesive, flowing paragraph** - NOT a list of bullet points or separate sentences
3. Use natural transitions between sentences (e.g., "Leveraging...", "Through...", "Additionally...")
4. Integrate skills naturally into sentences rather than listing them separately (e.g., "Building scalable APIs with Python and AWS" NOT "Skills: Python, AWS")
5. Use %s-specific language from the role definition above
6. Include 1-2 quantified achievements if available in the experience
7. Professional, confident tone - avoid jargon and phrases like "This professional is recognized for..." (sounds like someone else wrote it)
8. Based ONLY on provided information (no hallucination)
9. The summary should read like the candidate wrote it themselves, not like a third-party description`,
		input.DominantRole,
		input.DominantRole, strings.TrimSpace(input.RoleDescription),
		originalSummary,
		resumeExtract,
		yearsText,
		titleText,
		skillsText,
		input.DominantRole)
}

// optimizeResumeExtract trims the resume to at most maxWords words, cutting
// back to the last sentence boundary when one falls near the end.
func optimizeResumeExtract(resumeText string, maxWords int) string {
	words := strings.Fields(resumeText)
	if len(words) > maxWords {
		words = words[:maxWords]
	}
	extract := strings.Join(words, " ")

	if lastPeriod := strings.LastIndex(extract, "."); lastPeriod > len(extract)*4/5 {
		extract = extract[:lastPeriod+1]
	}

	return extract
}

// countSentences counts non-empty period-separated fragments
func countSentences(text string) int {
	count := 0
	for _, part := range strings.Split(text, ".") {
		if strings.TrimSpace(part) != "" {
			count++
		}
	}
	return count
}
