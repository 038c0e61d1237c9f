package service

import (
	"context"
	"fmt"
	"time"

	"shoestore/internal/model"
	"shoestore/internal/ordernum"
	"shoestore/internal/payment"
	"shoestore/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// checkoutService implements CheckoutService.
type checkoutService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) CheckoutService {
	return &checkoutService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "checkout").Logger(),
	}
}

// CreateOrder runs the checkout workflow: generate an order number,
// derive the payment status from the card number, persist the order,
// then decrement inventory for approved payments only.
//
// The caller-supplied total is stored as-is and never recomputed here.
// Persisting the order and decrementing inventory are two independent
// store operations, not one transaction: if the decrement fails after
// the order has committed, the order stands and the stale inventory is
// only logged.
func (s *checkoutService) CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.Order, error) {
	if req == nil {
		return nil, fmt.Errorf("order request is nil")
	}

	status := payment.Evaluate(req.Payment.CardNumber)

	order := &model.Order{
		ID:          uuid.New(),
		OrderNumber: ordernum.New(),
		Product:     req.Product.Snapshot(),
		Customer:    req.Customer.Snapshot(),
		Payment: model.PaymentRecord{
			CardNumber: req.Payment.CardNumber,
			ExpiryDate: req.Payment.ExpiryDate,
			CVV:        req.Payment.CVV,
			Status:     status,
		},
		Total:     req.Total,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.logger.Error().
			Err(err).
			Str("order_number", order.OrderNumber).
			Msg("failed to persist order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if status == model.PaymentApproved {
		if err := s.productRepo.DecrementInventory(ctx, req.Product.ProductID, req.Product.Quantity); err != nil {
			// The order is already committed; inventory is now stale.
			s.logger.Error().
				Err(err).
				Str("order_number", order.OrderNumber).
				Str("product_id", req.Product.ProductID).
				Int("quantity", req.Product.Quantity).
				Msg("inventory decrement failed after order commit")
		}
	}

	s.logger.Info().
		Str("order_number", order.OrderNumber).
		Str("payment_status", string(status)).
		Float64("total", order.Total).
		Msg("order created")

	return order, nil
}

// GetByOrderNumber retrieves an order by its order number.
func (s *checkoutService) GetByOrderNumber(ctx context.Context, orderNumber string) (*model.Order, error) {
	if orderNumber == "" {
		return nil, model.ErrOrderNotFound
	}

	order, err := s.orderRepo.GetByOrderNumber(ctx, orderNumber)
	if err != nil {
		s.logger.Error().Err(err).Str("order_number", orderNumber).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if order == nil {
		s.logger.Debug().Str("order_number", orderNumber).Msg("order not found")
		return nil, model.ErrOrderNotFound
	}

	return order, nil
}
