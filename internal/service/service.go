package service

import (
	"context"

	"shoestore/internal/model"
)

// ProductService defines operations for browsing the catalogue.
type ProductService interface {
	// GetAll retrieves every product.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)
}

// CheckoutService defines the order-creation workflow and order lookup.
type CheckoutService interface {
	// CreateOrder assigns an order number, evaluates the mock payment,
	// persists the order and, for approved payments, decrements the
	// product's inventory.
	CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.Order, error)

	// GetByOrderNumber retrieves a persisted order by its order number.
	GetByOrderNumber(ctx context.Context, orderNumber string) (*model.Order, error)
}
