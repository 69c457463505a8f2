// ABOUTME: Main entry point for the standalone NavPilot HTTP server
// ABOUTME: Wires config, oracle, providers, and web front end
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Z0909/heiha/internal/config"
	"github.com/Z0909/heiha/internal/llm"
	"github.com/Z0909/heiha/internal/logging"
	"github.com/Z0909/heiha/internal/maps"
	"github.com/Z0909/heiha/internal/nav"
	"github.com/Z0909/heiha/internal/web"
)

func main() {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(false)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

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
			log.Fatalf("Failed to build oracle client: %v", err)
		}
		oracle = client
	} else {
		log.Println("Warning: DEEPSEEK_API_KEY not set - requests will use the heuristic interpreter path")
	}

	launcher := maps.NewSystemLauncher(cfg.LaunchTimeout, logger)
	registry, err := maps.NewRegistry(cfg, launcher, logger)
	if err != nil {
		log.Fatalf("Failed to build provider registry: %v", err)
	}

	orchestrator := nav.NewOrchestrator(oracle, registry, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := web.NewServer(orchestrator, logger)
	log.Printf("NavPilot server listening on http://%s", cfg.Addr())
	if err := server.Run(ctx, cfg.Addr()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
