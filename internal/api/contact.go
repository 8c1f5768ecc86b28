package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/richabhowmik03/slashbyte-rjs/internal/domain"
	"github.com/richabhowmik03/slashbyte-rjs/internal/events"
)

// HandleContact handles POST /api/contact: the site contact form.
func (h *Handler) HandleContact(w http.ResponseWriter, r *http.Request) {
	var msg domain.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Message = strings.TrimSpace(msg.Message)

	if msg.Name == "" || msg.Message == "" {
		Error(w, http.StatusBadRequest, "name and message are required")
		return
	}
	if !domain.ValidEmail(msg.Email) {
		Error(w, http.StatusBadRequest, "a valid email is required")
		return
	}

	if err := h.sender.SendContactMessage(r.Context(), msg); err != nil {
		slog.Error("Failed to send contact message", "error", err, "email", msg.Email)
		Error(w, http.StatusBadGateway, "failed to deliver message")
		return
	}

	if err := h.publisher.Publish(r.Context(), events.KeyContactSubmitted, msg); err != nil {
		slog.Warn("Failed to publish contact event", "error", err)
	}

	JSON(w, http.StatusOK, map[string]string{"status": "sent"})
}
