// Package api provides HTTP handlers for the site API.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/richabhowmik03/slashbyte-rjs/internal/assistant"
	"github.com/richabhowmik03/slashbyte-rjs/internal/chat"
	"github.com/richabhowmik03/slashbyte-rjs/internal/events"
	"github.com/richabhowmik03/slashbyte-rjs/internal/mailer"
	"github.com/richabhowmik03/slashbyte-rjs/internal/store"
)

// Handler provides common handler utilities.
type Handler struct {
	repo      store.Repository
	svc       *chat.Service
	sender    mailer.Sender
	publisher events.Publisher
	assistant *assistant.Client
}

// NewHandler creates a new Handler with common dependencies. Sender and
// publisher must be non-nil; use the package Noop types when the
// integration is not configured. The assistant client may be nil.
func NewHandler(repo store.Repository, svc *chat.Service, sender mailer.Sender, publisher events.Publisher, ac *assistant.Client) *Handler {
	return &Handler{
		repo:      repo,
		svc:       svc,
		sender:    sender,
		publisher: publisher,
		assistant: ac,
	}
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}
