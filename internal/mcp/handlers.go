// ABOUTME: MCP tool handler implementations for the NavPilot server
// ABOUTME: Handlers wrap the orchestrator and always answer with JSON text
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Z0909/heiha/internal/interpreter"
	"github.com/Z0909/heiha/internal/nav"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	orchestrator *nav.Orchestrator
	logger       *zap.Logger
}

// Navigate handles the navigate tool
func (h *Handlers) Navigate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text argument is required and must be a string"), nil
	}

	env := h.orchestrator.ProcessRequest(ctx, text)
	return jsonResult(env)
}

// ParseRoute handles the parse_route tool
func (h *Handlers) ParseRoute(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text argument is required and must be a string"), nil
	}

	route, err := interpreter.Parse(text)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("parse failed: %v", err)), nil
	}

	return jsonResult(map[string]string{
		"origin":      route.Origin,
		"destination": route.Destination,
	})
}

// ValidateAddress handles the validate_address tool
func (h *Handlers) ValidateAddress(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	address, err := request.RequireString("address")
	if err != nil {
		return mcp.NewToolResultError("address argument is required and must be a string"), nil
	}

	oracle := h.orchestrator.OracleClient()
	if oracle == nil {
		return mcp.NewToolResultError("no oracle configured: set DEEPSEEK_API_KEY"), nil
	}

	return jsonResult(oracle.ValidateAddress(ctx, address))
}

// SystemStatus handles the system_status tool
func (h *Handlers) SystemStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(h.orchestrator.Status(ctx))
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
