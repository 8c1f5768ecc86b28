package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/richabhowmik03/slashbyte-rjs/internal/domain"
	"github.com/richabhowmik03/slashbyte-rjs/internal/identity"
)

// chatRequest is one widget turn submitted over plain HTTP. Widgets
// normally use the WebSocket channel; this endpoint backs environments
// where WebSocket upgrades are blocked.
type chatRequest struct {
	Text string `json:"text"`
	Open bool   `json:"open,omitempty"`
}

type chatResponse struct {
	Messages []domain.ChatMessage `json:"messages"`
}

// HandleChat handles POST /api/chat.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	userID := identity.UserIDFromContext(r.Context())
	sessionID := identity.SessionIDFromContext(r.Context())

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.Open && strings.TrimSpace(req.Text) == "" {
		msgs := h.svc.Open(userID, sessionID)
		if len(msgs) == 0 {
			msgs = h.svc.Transcript(userID, sessionID)
		}
		JSON(w, http.StatusOK, chatResponse{Messages: msgs})
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		Error(w, http.StatusBadRequest, "text is required")
		return
	}

	msgs := h.svc.HandleInput(r.Context(), userID, sessionID, req.Text)
	JSON(w, http.StatusOK, chatResponse{Messages: msgs})
}

// HandleChatSession handles GET /api/chat/session: the full transcript
// for reconnect replay.
func (h *Handler) HandleChatSession(w http.ResponseWriter, r *http.Request) {
	userID := identity.UserIDFromContext(r.Context())
	sessionID := identity.SessionIDFromContext(r.Context())

	msgs := h.svc.Transcript(userID, sessionID)
	if msgs == nil {
		msgs = []domain.ChatMessage{}
	}
	JSON(w, http.StatusOK, chatResponse{Messages: msgs})
}

// HandleChatReset handles POST /api/chat/reset: discard the session and
// any in-progress draft.
func (h *Handler) HandleChatReset(w http.ResponseWriter, r *http.Request) {
	userID := identity.UserIDFromContext(r.Context())
	sessionID := identity.SessionIDFromContext(r.Context())

	h.svc.Reset(userID, sessionID)
	JSON(w, http.StatusOK, map[string]string{"status": "reset"})
}
