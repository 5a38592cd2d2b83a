package handler

import (
	"net/http"

	"commerce-admin/internal/model"
	"commerce-admin/internal/service"

	"github.com/rs/zerolog"
)

// ReturnHandler handles return-related HTTP requests.
type ReturnHandler struct {
	service service.ReturnService
	logger  zerolog.Logger
}

// NewReturnHandler creates a new return handler.
func NewReturnHandler(service service.ReturnService, logger zerolog.Logger) *ReturnHandler {
	return &ReturnHandler{
		service: service,
		logger:  logger.With().Str("handler", "return").Logger(),
	}
}

// List handles GET /api/returns requests.
func (h *ReturnHandler) List(w http.ResponseWriter, r *http.Request) {
	returns, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "failed to retrieve returns", h.logger)
		return
	}

	if returns == nil {
		returns = []model.Return{}
	}

	writeJSON(w, http.StatusOK, returns)
}

// Create handles POST /api/returns requests.
func (h *ReturnHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.ReturnRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	ret, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, ret)
}

// UpdateStatus handles PUT /api/returns/{id} requests.
func (h *ReturnHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid return ID", h.logger)
		return
	}

	var req model.ReturnStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	ret, err := h.service.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, ret)
}

// Delete handles DELETE /api/returns/{id} requests.
func (h *ReturnHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid return ID", h.logger)
		return
	}

	if _, err := h.service.Delete(r.Context(), id); err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, DeleteResponse{Message: "return deleted"})
}
