// Package database owns the process-wide PostgreSQL connection pool.
// The pool is established lazily on first use and shared by every
// caller afterwards; concurrent first callers block on the same
// connection attempt instead of racing to create duplicates.
package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"shoestore/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

var (
	mu     sync.Mutex
	shared *pgxpool.Pool
)

// Get returns the shared connection pool, connecting on first use. A
// failed attempt leaves the cache empty, so the next call retries from
// scratch.
func Get(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (*pgxpool.Pool, error) {
	mu.Lock()
	defer mu.Unlock()

	if shared != nil {
		return shared, nil
	}

	pool, err := NewPool(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	shared = pool
	return shared, nil
}

// Reset closes and clears the shared pool. Intended for test teardown
// and process shutdown; the next Get reconnects.
func Reset() {
	mu.Lock()
	defer mu.Unlock()

	if shared != nil {
		shared.Close()
		shared = nil
	}
}

// NewPool creates a PostgreSQL connection pool, verifies connectivity
// and ensures the storefront schema exists. Unlike Get it always
// creates a fresh pool; it is used directly where a private pool is
// wanted, such as integration tests.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxConnections)
	poolConfig.MinConns = int32(cfg.MinConnections)
	poolConfig.MaxConnLifetime = time.Duration(cfg.MaxConnLifetime) * time.Second
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	logger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Database).
		Int("max_connections", cfg.MaxConnections).
		Int("min_connections", cfg.MinConnections).
		Msg("creating database connection pool")

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := initSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to initialise schema: %w", err)
	}

	logger.Info().Msg("database connection pool created successfully")

	return pool, nil
}

// initSchema creates the storefront tables when they do not exist yet.
func initSchema(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL,
			price DOUBLE PRECISION NOT NULL,
			image TEXT NOT NULL,
			variants JSONB NOT NULL DEFAULT '[]',
			inventory INTEGER NOT NULL DEFAULT 100,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			order_number TEXT NOT NULL,
			product JSONB NOT NULL,
			customer JSONB NOT NULL,
			payment JSONB NOT NULL,
			total DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_orders_order_number ON orders (order_number)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	return nil
}
