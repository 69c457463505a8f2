// ABOUTME: Tests for the JSON-RPC tool client
// ABOUTME: Fake endpoints verify error mapping, result passthrough, timeouts
package maps

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestCallTool_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if req.JSONRPC != "2.0" || req.Method != "tools/call" {
			t.Errorf("request = %+v, want jsonrpc 2.0 tools/call", req)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":{"success":true,"url":"https://example.com/nav"}}`))
	}))
	defer server.Close()

	client := NewToolClient(server.URL, 5*time.Second, zap.NewNop())
	result, err := client.CallTool(context.Background(), "maps_navigation", map[string]interface{}{
		"origin": "北京", "destination": "上海",
	})
	if err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}
	if url, _ := result["url"].(string); url != "https://example.com/nav" {
		t.Errorf("url = %q, want https://example.com/nav", url)
	}
}

func TestCallTool_RPCErrorBecomesError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"error":{"code":-32601,"message":"method not found"}}`))
	}))
	defer server.Close()

	client := NewToolClient(server.URL, 5*time.Second, zap.NewNop())
	_, err := client.CallTool(context.Background(), "maps_navigation", nil)
	if err == nil {
		t.Fatal("expected error for rpc error object")
	}
	if !strings.Contains(err.Error(), "method not found") {
		t.Errorf("error = %v, want rpc message included", err)
	}
}

func TestCallTool_Non200BecomesError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway unhappy", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewToolClient(server.URL, 5*time.Second, zap.NewNop())
	_, err := client.CallTool(context.Background(), "maps_navigation", nil)
	if err == nil {
		t.Fatal("expected error for non-200 status")
	}
	if !strings.Contains(err.Error(), "502") {
		t.Errorf("error = %v, want status code included", err)
	}
}

func TestCallTool_TimeoutHonored(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client := NewToolClient(server.URL, 50*time.Millisecond, zap.NewNop())

	start := time.Now()
	_, err := client.CallTool(context.Background(), "maps_navigation", nil)
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("call took %v, timeout not honored", elapsed)
	}
}

func TestCallTool_ContextCancellation(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client := NewToolClient(server.URL, time.Minute, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	if _, err := client.CallTool(ctx, "maps_navigation", nil); err == nil {
		t.Fatal("expected error after context cancellation")
	}
}

func TestListTools(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Method != "tools/list" {
			t.Errorf("method = %q, want tools/list", req.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":{"tools":[{"name":"maps_navigation","description":"open navigation"}]}}`))
	}))
	defer server.Close()

	client := NewToolClient(server.URL, 5*time.Second, zap.NewNop())
	tools, err := client.ListTools(context.Background())
	if err != nil {
		t.Fatalf("ListTools failed: %v", err)
	}
	if len(tools) != 1 || tools[0].Name != "maps_navigation" {
		t.Errorf("tools = %+v, want one maps_navigation entry", tools)
	}
}
