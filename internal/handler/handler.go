package handler

import (
	"encoding/json"
	"net/http"

	"shoestore/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, code, message string, logger zerolog.Logger) {
	logger.Error().Str("code", code).Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: code, Message: message})
}

// writeValidationError writes a 400 response carrying field-level
// validation messages.
func writeValidationError(w http.ResponseWriter, fields model.FieldErrors, logger zerolog.Logger) {
	logger.Warn().Int("field_count", len(fields)).Msg("request validation failed")
	writeJSON(w, http.StatusBadRequest, model.ErrorResponse{
		Error:   model.ErrCodeValidationFailed,
		Message: "One or more fields are invalid",
		Fields:  fields,
	})
}
