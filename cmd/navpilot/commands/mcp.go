// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Enables LLM agents like Claude to open navigation via stdio
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	navmcp "github.com/Z0909/heiha/internal/mcp"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs NavPilot as an MCP (Model Context Protocol) server, enabling
LLM agents like Claude to open map navigation via stdio.

Configure in Claude Desktop's config file to enable navigation tools.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by Claude Desktop)
  navpilot mcp

  # Configure in claude_desktop_config.json:
  # {
  #   "mcpServers": {
  #     "navpilot": {
  #       "command": "navpilot",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	orch, _, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	server := mcpserver.NewMCPServer(
		"NavPilot Navigation Assistant",
		versionInfo.Version,
	)
	navmcp.RegisterTools(server, orch, logger)

	logger.Info("NavPilot MCP server starting on stdio")
	if err := mcpserver.ServeStdio(server); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
