// ABOUTME: MCP tool definitions and registration for the NavPilot server
// ABOUTME: Exposes the navigation pipeline to agent hosts over stdio
package mcp

import (
	"go.uber.org/zap"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/Z0909/heiha/internal/nav"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, orchestrator *nav.Orchestrator, logger *zap.Logger) *Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	handlers := &Handlers{
		orchestrator: orchestrator,
		logger:       logger,
	}

	// 1. navigate - run the full pipeline for a free-text request
	server.AddTool(mcp.Tool{
		Name:        "navigate",
		Description: "Process a free-text navigation request: extract intent, validate addresses, and open the route in the preferred map service.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Navigation request, e.g. 从北京到上海",
				},
			},
			Required: []string{"text"},
		},
	}, handlers.Navigate)

	// 2. parse_route - heuristic origin/destination extraction only
	server.AddTool(mcp.Tool{
		Name:        "parse_route",
		Description: "Extract an origin/destination pair from free text using pattern matching, without calling the language model.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Text to parse, e.g. 北京到上海",
				},
			},
			Required: []string{"text"},
		},
	}, handlers.ParseRoute)

	// 3. validate_address - oracle-backed address validation
	server.AddTool(mcp.Tool{
		Name:        "validate_address",
		Description: "Check whether an address resolves to a real place and return its standardized form.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"address": map[string]interface{}{
					"type":        "string",
					"description": "Address to validate",
				},
			},
			Required: []string{"address"},
		},
	}, handlers.ValidateAddress)

	// 4. system_status - per-service health report
	server.AddTool(mcp.Tool{
		Name:        "system_status",
		Description: "Report configuration and connectivity status for the oracle and map services.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.SystemStatus)

	return handlers
}
