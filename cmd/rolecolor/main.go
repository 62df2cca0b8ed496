package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/DANNY1169/resume-role-classifier/internal/cli"
	"github.com/DANNY1169/resume-role-classifier/internal/config"
	"github.com/DANNY1169/resume-role-classifier/internal/errors"
)

func main() {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := errors.New(cfg.App.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	// Pull the Gemini key and server API keys from Vault when configured
	if err := config.ApplyVaultSecrets(cfg, logger); err != nil {
		logger.LogError(err, "Failed to load secrets from Vault")
		os.Exit(1)
	}

	// Pick up scoring policy changes without a restart
	cfg.Watch(logger)

	logger.Info("Starting rolecolor",
		"version", cli.Version,
		"log_level", cfg.App.LogLevel,
		"embedding_model", cfg.AI.Embedding.Model,
		"llm_summaries", cfg.SummaryLLMEnabled())

	if err := cli.Execute(ctx, cfg, logger); err != nil {
		logger.LogError(err, "Application execution failed")
		os.Exit(1)
	}
}
