package handler

import (
	"net/http"

	"commerce-admin/internal/service"

	"github.com/rs/zerolog"
)

// SalesTotalResponse carries the dashboard sales aggregate.
type SalesTotalResponse struct {
	SalesTotal float64 `json:"salesTotal"`
}

// DashboardHandler handles dashboard HTTP requests.
type DashboardHandler struct {
	service service.DashboardService
	logger  zerolog.Logger
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(service service.DashboardService, logger zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		logger:  logger.With().Str("handler", "dashboard").Logger(),
	}
}

// SalesTotal handles GET /api/dashboard/sales-total requests.
func (h *DashboardHandler) SalesTotal(w http.ResponseWriter, r *http.Request) {
	total, err := h.service.SalesTotal(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "failed to retrieve sales total", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, SalesTotalResponse{SalesTotal: total})
}
