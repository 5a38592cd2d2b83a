package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"commerce-admin/internal/middleware"
	"commerce-admin/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// DeleteResponse confirms a deletion.
type DeleteResponse struct {
	Message string `json:"message"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Response is already partially written, nothing left to do
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{
		Error:         message,
		CorrelationID: middleware.GetRequestID(r.Context()),
	})
}

// writeDomainError translates an error into an HTTP status. Business errors
// carry their own message; anything else is a 500 with a generic message and
// the detail stays in the server log.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error, logger zerolog.Logger) {
	var de *model.DomainError
	if errors.As(err, &de) {
		writeError(w, r, statusForCode(de.Code), de.Message, logger)
		return
	}

	logger.Error().Err(err).Msg("unexpected error")
	writeError(w, r, http.StatusInternalServerError, "internal server error", logger)
}

// statusForCode maps a domain error code to an HTTP status. Unknown order
// items on return creation are a 400, matching the returns endpoint contract.
func statusForCode(code string) int {
	switch code {
	case model.ErrCodeDuplicateEmail:
		return http.StatusConflict
	case model.ErrCodeCustomerNotFound,
		model.ErrCodeProductNotFound,
		model.ErrCodeOrderNotFound,
		model.ErrCodeReturnNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

// decodeJSON decodes a strict JSON request body into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// pathID parses the {id} route parameter.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
