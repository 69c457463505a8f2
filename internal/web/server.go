// ABOUTME: HTTP front end for the navigation pipeline
// ABOUTME: JSON API plus a WebSocket channel for interactive clients
package web

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Z0909/heiha/internal/models"
	"github.com/Z0909/heiha/internal/nav"
)

// Pipeline is the slice of the orchestrator the web layer needs.
type Pipeline interface {
	ProcessRequest(ctx context.Context, userInput string) *models.Envelope
	Status(ctx context.Context) *nav.ServiceStatus
}

// Server exposes the pipeline over HTTP and WebSocket.
type Server struct {
	pipeline Pipeline
	logger   *zap.Logger
}

// NewServer creates the web server around a pipeline.
func NewServer(pipeline Pipeline, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{pipeline: pipeline, logger: logger}
}

// Handler builds the route mux.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/navigate", s.handleNavigate)
	mux.HandleFunc("/api/status", s.handleStatus)
	mux.HandleFunc("/ws", s.handleWebSocket)
	return mux
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info("http server listening", zap.String("addr", addr))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

type navigateRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleNavigate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req navigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, s.logger, map[string]interface{}{
			"success": false,
			"error":   "无效的请求格式",
		})
		return
	}

	if req.Text == "" {
		writeJSON(w, s.logger, map[string]interface{}{
			"success": false,
			"error":   "请输入导航指令",
		})
		return
	}

	env := s.pipeline.ProcessRequest(r.Context(), req.Text)
	writeJSON(w, s.logger, env)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, s.logger, s.pipeline.Status(r.Context()))
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("writing response failed", zap.Error(err))
	}
}
