// ABOUTME: Shared bootstrap helpers for CLI commands
// ABOUTME: Builds config, logger, registry, and orchestrator in one place
package commands

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Z0909/heiha/internal/config"
	"github.com/Z0909/heiha/internal/llm"
	"github.com/Z0909/heiha/internal/logging"
	"github.com/Z0909/heiha/internal/maps"
	"github.com/Z0909/heiha/internal/models"
	"github.com/Z0909/heiha/internal/nav"
)

// bootstrap wires the full pipeline from environment configuration.
// A missing DeepSeek key is not fatal: the orchestrator then runs the
// heuristic interpreter path instead of the oracle.
func bootstrap() (*nav.Orchestrator, *config.Config, *zap.Logger, error) {
	// Load .env if present; absence is fine in production.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading config: %w", err)
	}

	logger, err := logging.New(verbose)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("building logger: %w", err)
	}

	var oracle nav.Oracle
	if cfg.DeepSeekKey != "" {
		client, err := llm.NewClientWithConfig(&llm.ClientConfig{
			APIKey:     cfg.DeepSeekKey,
			BaseURL:    cfg.DeepSeekBaseURL,
			ChatModel:  cfg.ChatModel,
			Timeout:    cfg.OracleTimeout,
			MaxRetries: cfg.MaxRetries,
			RetryDelay: cfg.RetryDelay,
		}, logger)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("building oracle client: %w", err)
		}
		oracle = client
	} else if !quiet {
		logger.Warn("DEEPSEEK_API_KEY not set, using heuristic interpreter path")
	}

	launcher := maps.NewSystemLauncher(cfg.LaunchTimeout, logger)
	registry, err := maps.NewRegistry(cfg, launcher, logger)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("building provider registry: %w", err)
	}

	return nav.NewOrchestrator(oracle, registry, logger), cfg, logger, nil
}

// buildRegistry constructs a standalone provider registry for commands
// that talk to provider endpoints outside the pipeline.
func buildRegistry(cfg *config.Config, logger *zap.Logger) (*maps.Registry, error) {
	launcher := maps.NewSystemLauncher(cfg.LaunchTimeout, logger)
	registry, err := maps.NewRegistry(cfg, launcher, logger)
	if err != nil {
		return nil, fmt.Errorf("building provider registry: %w", err)
	}
	return registry, nil
}

// splitProviderPrefix peels a leading "b:" or "g:" provider shorthand
// off an input string, returning the provider and remaining text.
func splitProviderPrefix(text string) (models.ProviderID, string, bool) {
	switch {
	case strings.HasPrefix(text, "b:"):
		return models.ProviderBaidu, strings.TrimPrefix(text, "b:"), true
	case strings.HasPrefix(text, "g:"):
		return models.ProviderAmap, strings.TrimPrefix(text, "g:"), true
	}
	return models.DefaultProvider, text, false
}
