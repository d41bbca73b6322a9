package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/prompt-enhancer/internal/config"
	"github.com/jonathan/prompt-enhancer/internal/llm"
	"github.com/jonathan/prompt-enhancer/internal/logger"
	"github.com/jonathan/prompt-enhancer/internal/observability"
	"github.com/jonathan/prompt-enhancer/internal/schemas"
	bundled "github.com/jonathan/prompt-enhancer/schemas"
	"github.com/spf13/cobra"
)

// newLLMClient is replaced in tests.
var newLLMClient = func(ctx context.Context, cfg *llm.Config, apiKey string) (llm.Client, error) {
	return llm.NewClient(ctx, cfg, apiKey)
}

// app is the state shared by every command: merged config, logger and AI client.
type app struct {
	cfg     config.Config
	log     *logger.Logger
	client  llm.Client
	llmCfg  *llm.Config
	printer *observability.Printer
}

// loadApp merges the config file, environment and persistent flags. The client is nil
// when no API key is available; AI operations then fail with *llm.ConfigurationError.
func loadApp(ctx context.Context, cmd *cobra.Command) (*app, error) {
	cfg := config.Defaults()

	if rootConfigPath != "" {
		if err := schemas.ValidateBundledFile(bundled.Config, rootConfigPath); err != nil {
			return nil, fmt.Errorf("invalid config file: %w", err)
		}
		loaded, err := config.LoadConfig(rootConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return nil, err
		}
		cfg = loaded.MergeWithDefaults(cfg)
	}

	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = rootAPIKey
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = rootModel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.LogFormat = rootLogFormat
	}
	if rootVerbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logCfg := logger.FromConfig(cfg.LogLevel, cfg.LogFormat)
	logCfg.Output = cmd.ErrOrStderr()

	a := &app{
		cfg:    cfg,
		log:    logger.New(logCfg),
		llmCfg: llm.DefaultConfig().WithModel(llm.TierStandard, cfg.Model),
	}
	if rootVerbose {
		a.printer = observability.NewPrinter(cmd.ErrOrStderr())
	}

	if key := cfg.ResolveAPIKey(); key != "" {
		client, err := newLLMClient(ctx, a.llmCfg, key)
		if err != nil {
			return nil, err
		}
		a.client = client
	} else {
		a.log.Debug("no API key configured; AI features are disabled")
	}

	return a, nil
}

func (a *app) Close() {
	if a.client == nil {
		return
	}
	if err := a.client.Close(); err != nil {
		a.log.Warn("failed to close AI client", "error", err)
	}
}

// model returns the model used for generation.
func (a *app) model() string {
	return a.llmCfg.GetModel(llm.TierStandard)
}

// readIdea joins positional args into the idea. A single "-" reads it from stdin.
func readIdea(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read idea from stdin: %w", err)
		}
		return strings.TrimRight(string(data), "\n"), nil
	}
	return strings.Join(args, " "), nil
}
