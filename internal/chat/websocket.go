package chat

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/coder/websocket"

	"github.com/richabhowmik03/slashbyte-rjs/internal/domain"
	"github.com/richabhowmik03/slashbyte-rjs/internal/identity"
)

// wsFrame is the widget-to-server WebSocket message structure.
type wsFrame struct {
	Type string `json:"type"` // "open", "message", "quick_reply", "reset", "ping"
	Text string `json:"text,omitempty"`
}

// wsReply is the server-to-widget message structure.
type wsReply struct {
	Type     string               `json:"type"` // "messages", "pong", "error"
	Messages []domain.ChatMessage `json:"messages,omitempty"`
	Error    string               `json:"error,omitempty"`
}

// WebSocketHandler serves the widget's live chat channel. One connection
// per browser tab; the conversation state itself lives in the Service's
// session store, so reconnecting picks up where the visitor left off.
type WebSocketHandler struct {
	svc           *Service
	allowedOrigin string
	isDev         bool
}

// NewWebSocketHandler creates the chat WebSocket handler.
func NewWebSocketHandler(svc *Service, allowedOrigin string, isDev bool) *WebSocketHandler {
	return &WebSocketHandler{
		svc:           svc,
		allowedOrigin: allowedOrigin,
		isDev:         isDev,
	}
}

// ServeHTTP implements http.Handler for the WebSocket upgrade.
func (h *WebSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := identity.UserIDFromContext(r.Context())
	sessionID := identity.SessionIDFromContext(r.Context())
	slog.Info("Chat WebSocket connection request", "user_id", userID, "session_id", sessionID, "ip", identity.IPFromRequest(r))

	if !h.checkOrigin(r) {
		http.Error(w, "origin not allowed", http.StatusForbidden)
		return
	}

	ws, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		slog.Error("Failed to accept WebSocket", "error", err, "user_id", userID)
		return
	}
	defer func() {
		if closeErr := ws.Close(websocket.StatusNormalClosure, "chat ended"); closeErr != nil {
			slog.Debug("Failed to close websocket", "error", closeErr, "user_id", userID)
		}
	}()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// Serialize writes: the greeting timer fires on its own goroutine and
	// must not interleave frames with read-loop responses.
	var writeMu sync.Mutex
	send := func(reply wsReply) {
		writeMu.Lock()
		defer writeMu.Unlock()
		data, err := json.Marshal(reply)
		if err != nil {
			slog.Error("Failed to marshal chat reply", "error", err)
			return
		}
		if err := ws.Write(ctx, websocket.MessageText, data); err != nil {
			slog.Debug("Chat WebSocket write error", "error", err, "user_id", userID)
		}
	}

	// Arm the auto-open greeting. Any frame from the widget disarms it; if
	// the visitor stays passive, the welcome message is pushed after the
	// configured delay.
	h.svc.ScheduleGreeting(userID, sessionID, func(msgs []domain.ChatMessage) {
		send(wsReply{Type: "messages", Messages: msgs})
	})

	h.readLoop(ctx, ws, userID, sessionID, send)
	slog.Info("Chat session ended", "user_id", userID, "session_id", sessionID)
}

func (h *WebSocketHandler) checkOrigin(r *http.Request) bool {
	if h.isDev {
		return true
	}
	origin := r.Header.Get("Origin")
	if origin == "" || h.allowedOrigin == "*" {
		return true
	}
	if origin == h.allowedOrigin {
		return true
	}
	slog.Warn("Chat WebSocket origin rejected", "origin", origin, "allowed", h.allowedOrigin)
	return false
}

func (h *WebSocketHandler) readLoop(ctx context.Context, ws *websocket.Conn, userID, sessionID string, send func(wsReply)) {
	for {
		_, message, err := ws.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) != -1 {
				slog.Debug("Chat WebSocket closed by client", "user_id", userID)
			} else {
				slog.Warn("Chat WebSocket read error", "error", err, "user_id", userID)
			}
			return
		}

		var frame wsFrame
		if err := json.Unmarshal(message, &frame); err != nil {
			send(wsReply{Type: "error", Error: "malformed frame"})
			continue
		}

		switch frame.Type {
		case "open":
			msgs := h.svc.Open(userID, sessionID)
			if len(msgs) == 0 {
				// Re-open after reconnect: replay the whole transcript.
				msgs = h.svc.Transcript(userID, sessionID)
			}
			send(wsReply{Type: "messages", Messages: msgs})
		case "message", "quick_reply":
			// Quick replies arrive as their button label; the engine keys
			// off exact labels, so both frame types share one path.
			msgs := h.svc.HandleInput(ctx, userID, sessionID, frame.Text)
			send(wsReply{Type: "messages", Messages: msgs})
		case "reset":
			h.svc.Reset(userID, sessionID)
			send(wsReply{Type: "messages"})
		case "ping":
			send(wsReply{Type: "pong"})
		default:
			send(wsReply{Type: "error", Error: "unknown frame type"})
		}
	}
}
