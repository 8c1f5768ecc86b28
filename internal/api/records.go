package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/richabhowmik03/slashbyte-rjs/internal/domain"
)

func limitFromQuery(r *http.Request) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// HandleListLeads handles GET /api/leads.
func (h *Handler) HandleListLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := h.repo.ListLeads(r.Context(), limitFromQuery(r))
	if err != nil {
		slog.Error("Failed to list leads", "error", err)
		Error(w, http.StatusInternalServerError, "failed to list leads")
		return
	}
	if leads == nil {
		leads = []*domain.Lead{}
	}
	JSON(w, http.StatusOK, map[string]interface{}{"leads": leads})
}

// HandleListAppointments handles GET /api/appointments.
func (h *Handler) HandleListAppointments(w http.ResponseWriter, r *http.Request) {
	appts, err := h.repo.ListAppointments(r.Context(), limitFromQuery(r))
	if err != nil {
		slog.Error("Failed to list appointments", "error", err)
		Error(w, http.StatusInternalServerError, "failed to list appointments")
		return
	}
	if appts == nil {
		appts = []*domain.Appointment{}
	}
	JSON(w, http.StatusOK, map[string]interface{}{"appointments": appts})
}
