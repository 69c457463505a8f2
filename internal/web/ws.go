// ABOUTME: WebSocket channel for interactive navigation clients
// ABOUTME: Accepts navigate/status messages, replies with typed results
package web

import (
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

type wsMessage struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type wsReply struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	for {
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("websocket read failed", zap.Error(err))
			}
			return
		}

		var reply wsReply
		switch msg.Type {
		case "navigate":
			reply = wsReply{
				Type: "navigation_result",
				Data: s.pipeline.ProcessRequest(r.Context(), msg.Text),
			}
		case "status":
			reply = wsReply{
				Type: "status_result",
				Data: s.pipeline.Status(r.Context()),
			}
		default:
			reply = wsReply{
				Type: "error",
				Data: map[string]string{"error": "未知的消息类型: " + msg.Type},
			}
		}

		if err := conn.WriteJSON(reply); err != nil {
			s.logger.Warn("websocket write failed", zap.Error(err))
			return
		}
	}
}
