package api

import (
	"context"
	"net/http"
	"time"
)

// HandleHealth handles GET /api/health: database connectivity plus the
// optional assistant backend. The assistant being down degrades the
// answer quality but not the core flows, so it reports as a component
// status rather than failing the check.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	status := http.StatusOK
	components := map[string]string{
		"database":  "ok",
		"assistant": "not_configured",
	}

	if err := h.repo.Ping(ctx); err != nil {
		components["database"] = "unreachable"
		status = http.StatusServiceUnavailable
	}

	if h.assistant != nil {
		if err := h.assistant.Health(ctx); err != nil {
			components["assistant"] = "unreachable"
		} else {
			components["assistant"] = "ok"
		}
	}

	body := map[string]interface{}{
		"status":     "ok",
		"components": components,
		"sessions":   h.svc.Sessions().Count(),
	}
	if status != http.StatusOK {
		body["status"] = "degraded"
	}
	JSON(w, status, body)
}
