package cli

import (
	"context"
	"fmt"

	"github.com/DANNY1169/resume-role-classifier/internal/common"
	"github.com/DANNY1169/resume-role-classifier/internal/pipeline"
	"github.com/DANNY1169/resume-role-classifier/internal/types"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [resume-file]",
	Short: "Classify a resume into its dominant narrative role",
	Long: `Analyze a resume to determine which narrative role its content expresses
most strongly: Builder, Enabler, Thriver, or Supportee.

The analysis includes:
- A probability distribution over all four roles
- The top evidence sentences behind the dominant role
- A rewritten, role-aligned first-person summary
- Extracted metadata (years of experience, title, skills)`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if analyzeConfig.OutputFormat == "" {
			analyzeConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(analyzeConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runAnalyze,
}

var (
	analyzeConfig        common.CommandConfig
	analyzeEvidenceCount int
	analyzeNoLLM         bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	analyzeCmd.Flags().IntVar(&analyzeEvidenceCount, "evidence", 0, "Number of evidence sentences to report (default from config)")
	analyzeCmd.Flags().BoolVar(&analyzeNoLLM, "no-llm", false, "Skip LLM summary generation and use templates only")

	// Add completion for format flag
	_ = analyzeCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	p, err := pipeline.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create analysis pipeline: %w", err)
	}
	defer func() {
		if err := p.Close(); err != nil {
			logger.Warn("Failed to close pipeline", "error", err)
		}
	}()

	createInput := func(contents []string) (types.AnalyzeResumeInput, error) {
		if len(contents) != 1 {
			return types.AnalyzeResumeInput{}, fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		input := types.AnalyzeResumeInput{
			ResumeText:    contents[0],
			EvidenceCount: analyzeEvidenceCount,
		}
		if analyzeNoLLM {
			useLLM := false
			input.UseLLM = &useLLM
		}
		return input, nil
	}

	logDetails := func(input types.AnalyzeResumeInput, cfg common.CommandConfig) {
		logger.Info("Starting resume analysis",
			"resume_chars", len(input.ResumeText),
			"output_format", cfg.OutputFormat)
	}

	analyzeOperation := func(ctx context.Context, input types.AnalyzeResumeInput) (*types.RoleAnalysis, error) {
		return p.Analyze(ctx, input)
	}

	err = common.RunFileCommand(
		cmd.Context(),
		logger,
		analyzeConfig,
		args,
		createInput,
		analyzeOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to analyze resume: %w", err)
	}
	logger.Info("Resume analysis completed successfully")
	return nil
}
