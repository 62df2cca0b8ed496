package cli

import (
	"context"

	"github.com/DANNY1169/resume-role-classifier/internal/config"
	"github.com/DANNY1169/resume-role-classifier/internal/errors"

	"github.com/spf13/cobra"
)

// Context keys for the shared config and logger.
type ctxKey int

const (
	ctxKeyConfig ctxKey = iota
	ctxKeyLogger
)

var rootCmd = &cobra.Command{
	Use:   "rolecolor",
	Short: "A CLI tool for classifying resume narratives using AI",
	Long: `Rolecolor classifies a resume into one of four narrative roles (Builder,
Enabler, Thriver, Supportee) by comparing its sentences against role reference
descriptions with semantic embeddings, then rewrites the resume summary to
match the dominant role.`,
}

// Execute runs the CLI with the config and logger attached to the
// command context where every subcommand can reach them.
func Execute(ctx context.Context, cfg *config.Config, logger *errors.Logger) error {
	ctx = context.WithValue(ctx, ctxKeyConfig, cfg)
	ctx = context.WithValue(ctx, ctxKeyLogger, logger)
	rootCmd.SetContext(ctx)
	return rootCmd.Execute()
}

func getConfigFromContext(ctx context.Context) *config.Config {
	cfg, ok := ctx.Value(ctxKeyConfig).(*config.Config)
	if !ok {
		panic("config not found in context")
	}
	return cfg
}

func getLoggerFromContext(ctx context.Context) *errors.Logger {
	logger, ok := ctx.Value(ctxKeyLogger).(*errors.Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(rolesCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
}
