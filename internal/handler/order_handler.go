package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"shoestore/internal/model"
	"shoestore/internal/service"

	"github.com/rs/zerolog"
)

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	service service.CheckoutService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.CheckoutService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// createOrderResponse is the envelope returned on successful checkout.
type createOrderResponse struct {
	Success       bool                `json:"success"`
	Order         *model.Order        `json:"order"`
	PaymentStatus model.PaymentStatus `json:"paymentStatus"`
}

// Create handles POST /api/orders requests. The payload is validated
// here, at the edge; the checkout service persists whatever it gets.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	var req model.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if fields := req.Validate(); fields != nil {
		writeValidationError(w, fields, h.logger)
		return
	}

	order, err := h.service.CreateOrder(r.Context(), &req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, model.ErrCodeStorageUnavailable, "Failed to create order", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, createOrderResponse{
		Success:       true,
		Order:         order,
		PaymentStatus: order.Payment.Status,
	})
}

// GetByOrderNumber handles GET /api/orders/{orderNumber} requests.
func (h *OrderHandler) GetByOrderNumber(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	orderNumber := strings.TrimPrefix(r.URL.Path, "/api/orders/")
	if orderNumber == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeOrderNotFound, "order number is required", h.logger)
		return
	}

	order, err := h.service.GetByOrderNumber(r.Context(), orderNumber)
	if err != nil {
		if errors.Is(err, model.ErrOrderNotFound) {
			writeError(w, http.StatusNotFound, model.ErrCodeOrderNotFound, "order not found", h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, model.ErrCodeStorageUnavailable, "failed to fetch order", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}
