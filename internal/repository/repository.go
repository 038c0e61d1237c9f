package repository

import (
	"context"

	"shoestore/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool the repositories use. It is
// satisfied by *pgxpool.Pool and by pgxmock pools in tests.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// GetAll retrieves every product in the catalogue.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. Returns (nil, nil)
	// when no product has that ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// DecrementInventory atomically reduces a product's inventory count
	// by amount. The subtraction happens inside the store, never as a
	// read-modify-write in this process, and the result is not floored
	// at zero.
	DecrementInventory(ctx context.Context, id string, amount int) error
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// Create persists a new order. Returns
	// model.ErrDuplicateOrderNumber when the order number is already
	// taken.
	Create(ctx context.Context, order *model.Order) error

	// GetByOrderNumber retrieves an order by its business identifier.
	// Exact string match only; returns (nil, nil) when absent.
	GetByOrderNumber(ctx context.Context, orderNumber string) (*model.Order, error)
}
