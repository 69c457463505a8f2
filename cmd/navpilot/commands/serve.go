// ABOUTME: Serve command runs the HTTP and WebSocket front end
// ABOUTME: Graceful shutdown on SIGINT/SIGTERM via signal context
package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Z0909/heiha/internal/web"
)

var (
	serveHost string
	servePort int
)

// NewServeCmd creates the serve command
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP and WebSocket server",
		Long: `Start the HTTP and WebSocket server

Serves the navigation pipeline over REST (/api/navigate, /api/status)
and WebSocket (/ws) for interactive clients.`,
		RunE: runServe,
		Example: `  # Listen on the default address (127.0.0.1:8000)
  navpilot serve

  # Bind elsewhere
  navpilot serve --host 0.0.0.0 --port 9000`,
	}

	cmd.Flags().StringVar(&serveHost, "host", "", "Bind address (overrides APP_HOST)")
	cmd.Flags().IntVar(&servePort, "port", 0, "Listen port (overrides APP_PORT)")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	orch, cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	if serveHost != "" {
		cfg.AppHost = serveHost
	}
	if servePort != 0 {
		cfg.AppPort = servePort
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := web.NewServer(orch, logger)
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "NavPilot server listening on http://%s\n", cfg.Addr())
	}
	return server.Run(ctx, cfg.Addr())
}
