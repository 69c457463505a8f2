// ABOUTME: JSON-RPC 2.0 client for remote map tool endpoints
// ABOUTME: Speaks tools/call and tools/list against Baidu/Amap MCP gateways
package maps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// ToolClient posts JSON-RPC 2.0 requests to one provider's tool
// endpoint. A JSON-RPC error object or a non-200 status is returned as
// an error; callers treat that as a tier failure, not a hard stop.
type ToolClient struct {
	endpoint   string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewToolClient creates a tool client for the given endpoint.
func NewToolClient(endpoint string, timeout time.Duration, logger *zap.Logger) *ToolClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ToolClient{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

type rpcRequest struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      int         `json:"id"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int             `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// ToolInfo describes one remotely advertised tool.
type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CallTool invokes tools/call for the named tool and decodes the
// result object. The method name is caller-supplied because upstream
// gateways have shipped several names for the same logical operation.
func (c *ToolClient) CallTool(ctx context.Context, tool string, arguments map[string]interface{}) (map[string]interface{}, error) {
	raw, err := c.call(ctx, "tools/call", map[string]interface{}{
		"name":      tool,
		"arguments": arguments,
	})
	if err != nil {
		return nil, err
	}

	var result map[string]interface{}
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("decoding tool result: %w", err)
	}
	return result, nil
}

// ListTools invokes tools/list and returns the advertised tools.
func (c *ToolClient) ListTools(ctx context.Context) ([]ToolInfo, error) {
	raw, err := c.call(ctx, "tools/list", map[string]interface{}{})
	if err != nil {
		return nil, err
	}

	var result struct {
		Tools []ToolInfo `json:"tools"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("decoding tool list: %w", err)
	}
	return result.Tools, nil
}

func (c *ToolClient) call(ctx context.Context, method string, params interface{}) (json.RawMessage, error) {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding rpc request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating rpc request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("sending rpc request", zap.String("method", method))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rpc request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("rpc endpoint returned %d: %s", resp.StatusCode, string(snippet))
	}

	var rpcResp rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		return nil, fmt.Errorf("decoding rpc response: %w", err)
	}

	if rpcResp.Error != nil {
		return nil, rpcResp.Error
	}

	return rpcResp.Result, nil
}
