package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"shoestore/internal/mailer"
	"shoestore/internal/model"

	"github.com/rs/zerolog"
)

// EmailHandler handles transactional-email HTTP requests.
type EmailHandler struct {
	mailer mailer.Mailer
	logger zerolog.Logger
}

// NewEmailHandler creates a new email handler.
func NewEmailHandler(mailer mailer.Mailer, logger zerolog.Logger) *EmailHandler {
	return &EmailHandler{
		mailer: mailer,
		logger: logger.With().Str("handler", "email").Logger(),
	}
}

// sendEmailRequest is the POST /api/send-email payload.
type sendEmailRequest struct {
	Order *model.Order `json:"order"`
}

// sendEmailResponse acknowledges a dispatched email.
type sendEmailResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Send handles POST /api/send-email requests. Email is fire-and-forget
// relative to the order: a failure here is reported but never touches
// the persisted order.
func (h *EmailHandler) Send(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	var req sendEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if req.Order == nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "order is required", h.logger)
		return
	}

	if err := h.mailer.SendOrderEmail(r.Context(), req.Order); err != nil {
		if errors.Is(err, model.ErrMailerNotConfigured) {
			writeError(w, http.StatusInternalServerError, model.ErrCodeMailerNotConfigured, "Email credentials not configured", h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, model.ErrCodeNotificationFailed, err.Error(), h.logger)
		return
	}

	writeJSON(w, http.StatusOK, sendEmailResponse{
		Success: true,
		Message: "Email sent successfully",
	})
}
