package integration

import (
	"context"
	"testing"
	"time"

	"shoestore/internal/config"
	"shoestore/internal/database"
	"shoestore/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
	Config    config.DatabaseConfig
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
// The pool is created through database.NewPool so the schema bootstrap
// runs the same way it does at server startup.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	host, err := postgresContainer.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %v", err)
	}

	mappedPort, err := postgresContainer.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("failed to get mapped port: %v", err)
	}

	dbConfig := config.DatabaseConfig{
		Host:            host,
		Port:            mappedPort.Int(),
		User:            "testuser",
		Password:        "testpass",
		Database:        "testdb",
		MaxConnections:  10,
		MinConnections:  2,
		MaxConnLifetime: 300,
	}

	pool, err := database.NewPool(ctx, dbConfig, zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
		Config:    dbConfig,
	}
}

// SeedProducts inserts test product data and returns the inserted rows.
func SeedProducts(t *testing.T, pool *pgxpool.Pool) []model.Product {
	t.Helper()

	ctx := context.Background()

	products := []model.Product{
		{
			ID:          uuid.NewString(),
			Name:        "Nike Air Max 270",
			Description: "Lifestyle runner with a full-length air unit.",
			Price:       150.00,
			Image:       "/images/air-max-270.jpg",
			Variants: []model.VariantGroup{
				{Type: "Size", Options: []string{"US 8", "US 9", "US 10"}},
				{Type: "Color", Options: []string{"Black", "White"}},
			},
			Inventory: 25,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Adidas Ultraboost 22",
			Description: "Responsive daily trainer.",
			Price:       180.00,
			Image:       "/images/ultraboost-22.jpg",
			Variants: []model.VariantGroup{
				{Type: "Size", Options: []string{"US 9", "US 10"}},
			},
			Inventory: 12,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Converse Chuck 70",
			Description: "Canvas classic.",
			Price:       85.00,
			Image:       "/images/chuck-70.jpg",
			Variants:    []model.VariantGroup{},
			Inventory:   40,
		},
	}

	for i := range products {
		_, err := pool.Exec(ctx,
			`INSERT INTO products (id, name, description, price, image, variants, inventory)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			products[i].ID,
			products[i].Name,
			products[i].Description,
			products[i].Price,
			products[i].Image,
			products[i].Variants,
			products[i].Inventory,
		)
		if err != nil {
			t.Fatalf("failed to seed product %s: %v", products[i].Name, err)
		}
	}

	return products
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	for _, table := range []string{"orders", "products"} {
		_, err := pool.Exec(ctx, "DELETE FROM "+table)
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
