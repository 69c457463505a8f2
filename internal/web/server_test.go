// ABOUTME: Tests for the HTTP and WebSocket front end
// ABOUTME: Stub pipeline verifies routes, shapes, and the ws protocol
package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Z0909/heiha/internal/models"
	"github.com/Z0909/heiha/internal/nav"
)

type stubPipeline struct {
	env    *models.Envelope
	status *nav.ServiceStatus
}

func (s *stubPipeline) ProcessRequest(ctx context.Context, userInput string) *models.Envelope {
	if s.env != nil {
		return s.env
	}
	return &models.Envelope{
		Success:   true,
		UserInput: userInput,
		Summary: &models.Summary{
			Origin:        "北京",
			Destination:   "上海",
			MapService:    models.ProviderBaidu,
			TransportMode: models.ModeTransit,
		},
	}
}

func (s *stubPipeline) Status(ctx context.Context) *nav.ServiceStatus {
	if s.status != nil {
		return s.status
	}
	return &nav.ServiceStatus{Status: "正常", Services: map[string]string{"deepseek": "正常"}}
}

func TestHandleNavigate_Success(t *testing.T) {
	server := NewServer(&stubPipeline{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/navigate", strings.NewReader(`{"text":"从北京到上海"}`))
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var env models.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !env.Success || env.UserInput != "从北京到上海" {
		t.Errorf("envelope = %+v, want success echoing input", env)
	}
	if env.Summary.Origin != "北京" || env.Summary.Destination != "上海" {
		t.Errorf("summary = %+v", env.Summary)
	}
}

func TestHandleNavigate_EmptyText(t *testing.T) {
	server := NewServer(&stubPipeline{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/navigate", strings.NewReader(`{"text":""}`))
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 with error payload", rec.Code)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if success, _ := resp["success"].(bool); success {
		t.Error("empty text must not succeed")
	}
	if resp["error"] == "" {
		t.Error("response should carry an error message")
	}
}

func TestHandleNavigate_BadJSON(t *testing.T) {
	server := NewServer(&stubPipeline{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/navigate", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	var resp map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if success, _ := resp["success"].(bool); success {
		t.Error("malformed request must not succeed")
	}
}

func TestHandleNavigate_MethodNotAllowed(t *testing.T) {
	server := NewServer(&stubPipeline{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/navigate", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestHandleStatus(t *testing.T) {
	server := NewServer(&stubPipeline{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var status nav.ServiceStatus
	if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if status.Status != "正常" {
		t.Errorf("Status = %q, want 正常", status.Status)
	}
}

func TestWebSocket_NavigateAndStatus(t *testing.T) {
	server := httptest.NewServer(NewServer(&stubPipeline{}, zap.NewNop()).Handler())
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dialing websocket: %v", err)
	}
	defer conn.Close()

	// navigate message
	if err := conn.WriteJSON(wsMessage{Type: "navigate", Text: "从北京到上海"}); err != nil {
		t.Fatalf("writing navigate: %v", err)
	}
	var reply struct {
		Type string          `json:"type"`
		Data json.RawMessage `json:"data"`
	}
	if err := conn.ReadJSON(&reply); err != nil {
		t.Fatalf("reading reply: %v", err)
	}
	if reply.Type != "navigation_result" {
		t.Errorf("reply type = %q, want navigation_result", reply.Type)
	}
	var env models.Envelope
	if err := json.Unmarshal(reply.Data, &env); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
	if !env.Success {
		t.Errorf("envelope = %+v, want success", env)
	}

	// status message
	if err := conn.WriteJSON(wsMessage{Type: "status"}); err != nil {
		t.Fatalf("writing status: %v", err)
	}
	if err := conn.ReadJSON(&reply); err != nil {
		t.Fatalf("reading reply: %v", err)
	}
	if reply.Type != "status_result" {
		t.Errorf("reply type = %q, want status_result", reply.Type)
	}
}

func TestWebSocket_UnknownType(t *testing.T) {
	server := httptest.NewServer(NewServer(&stubPipeline{}, zap.NewNop()).Handler())
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dialing websocket: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(wsMessage{Type: "bogus"}); err != nil {
		t.Fatalf("writing message: %v", err)
	}
	var reply wsReply
	if err := conn.ReadJSON(&reply); err != nil {
		t.Fatalf("reading reply: %v", err)
	}
	if reply.Type != "error" {
		t.Errorf("reply type = %q, want error", reply.Type)
	}
}
