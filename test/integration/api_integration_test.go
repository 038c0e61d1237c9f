package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"shoestore/internal/config"
	"shoestore/internal/handler"
	"shoestore/internal/mailer"
	"shoestore/internal/model"
	"shoestore/internal/repository"
	"shoestore/internal/router"
	"shoestore/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestServer(t *testing.T, testDB *TestDB) http.Handler {
	t.Helper()

	logger := zerolog.Nop()

	productRepo := repository.NewProductRepository(testDB.Pool, logger)
	orderRepo := repository.NewOrderRepository(testDB.Pool, logger)

	productService := service.NewProductService(productRepo, logger)
	checkoutService := service.NewCheckoutService(orderRepo, productRepo, logger)

	// No SMTP credentials: any send attempt fails with a configuration
	// error instead of reaching a real server.
	storeMailer := mailer.New(
		config.SMTPConfig{Host: "smtp.example.com", Port: 587},
		config.StoreConfig{BaseURL: "http://localhost:3000"},
		logger,
	)

	productHandler := handler.NewProductHandler(productService, logger)
	orderHandler := handler.NewOrderHandler(checkoutService, logger)
	emailHandler := handler.NewEmailHandler(storeMailer, logger)

	return router.New(productHandler, orderHandler, emailHandler, logger)
}

func checkoutPayload(productID string, cardNumber string, quantity int, total float64) map[string]any {
	return map[string]any{
		"product": map[string]any{
			"productId": productID,
			"name":      "Nike Air Max 270",
			"price":     150.00,
			"variants":  map[string]string{"Size": "US 9"},
			"quantity":  quantity,
		},
		"customer": map[string]any{
			"fullName": "Jamie Doe",
			"email":    "jamie@example.com",
			"phone":    "5551234567",
			"address":  "1 Main St",
			"city":     "Springfield",
			"state":    "IL",
			"zipCode":  "62704",
		},
		"payment": map[string]any{
			"cardNumber": cardNumber,
			"expiryDate": "12/39",
			"cvv":        "123",
		},
		"total": total,
	}
}

func TestProductAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB)

	t.Run("GET /api/products returns all products", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		seeded := SeedProducts(t, testDB.Pool)

		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var products []model.Product
		require.NoError(t, json.NewDecoder(w.Body).Decode(&products))
		assert.Len(t, products, len(seeded))
	})

	t.Run("GET /api/products returns empty array for empty catalogue", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("GET /api/products/{id} returns specific product", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		seeded := SeedProducts(t, testDB.Pool)

		req := httptest.NewRequest(http.MethodGet, "/api/products/"+seeded[0].ID, nil)
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var product model.Product
		require.NoError(t, json.NewDecoder(w.Body).Decode(&product))
		assert.Equal(t, seeded[0].ID, product.ID)
		assert.Equal(t, "Nike Air Max 270", product.Name)
	})

	t.Run("GET /api/products/{id} returns 404 for non-existent product", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		req := httptest.NewRequest(http.MethodGet, "/api/products/no-such-product", nil)
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("GET /health returns 200", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestCheckoutAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB)

	createOrder := func(t *testing.T, payload map[string]any) *httptest.ResponseRecorder {
		t.Helper()

		body, err := json.Marshal(payload)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)
		return w
	}

	t.Run("Approved checkout decrements inventory", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		seeded := SeedProducts(t, testDB.Pool)

		w := createOrder(t, checkoutPayload(seeded[0].ID, "1111222233334444", 2, 324.00))
		assert.Equal(t, http.StatusCreated, w.Code)

		var resp struct {
			Success       bool        `json:"success"`
			Order         model.Order `json:"order"`
			PaymentStatus string      `json:"paymentStatus"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "approved", resp.PaymentStatus)
		assert.Regexp(t, `^ORD-[0-9A-Z]+-[0-9A-Z]+$`, resp.Order.OrderNumber)

		var inventory int
		err := testDB.Pool.QueryRow(context.Background(), "SELECT inventory FROM products WHERE id = $1", seeded[0].ID).Scan(&inventory)
		require.NoError(t, err)
		assert.Equal(t, seeded[0].Inventory-2, inventory)
	})

	t.Run("Declined checkout persists the order but keeps inventory", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		seeded := SeedProducts(t, testDB.Pool)

		w := createOrder(t, checkoutPayload(seeded[0].ID, "2111222233334444", 1, 162.00))
		assert.Equal(t, http.StatusCreated, w.Code)

		var resp struct {
			Success       bool        `json:"success"`
			Order         model.Order `json:"order"`
			PaymentStatus string      `json:"paymentStatus"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "declined", resp.PaymentStatus)

		var inventory int
		err := testDB.Pool.QueryRow(context.Background(), "SELECT inventory FROM products WHERE id = $1", seeded[0].ID).Scan(&inventory)
		require.NoError(t, err)
		assert.Equal(t, seeded[0].Inventory, inventory)

		var count int
		err = testDB.Pool.QueryRow(context.Background(), "SELECT count(*) FROM orders WHERE order_number = $1", resp.Order.OrderNumber).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("Invalid payload returns field errors", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		seeded := SeedProducts(t, testDB.Pool)

		payload := checkoutPayload(seeded[0].ID, "1111222233334444", 1, 162.00)
		payload["customer"].(map[string]any)["email"] = "not-an-email"

		w := createOrder(t, payload)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp model.ErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, model.ErrCodeValidationFailed, resp.Error)
		assert.Contains(t, resp.Fields, "email")
	})

	t.Run("GET /api/orders/{orderNumber} returns the created order", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		seeded := SeedProducts(t, testDB.Pool)

		w := createOrder(t, checkoutPayload(seeded[0].ID, "1111222233334444", 1, 162.00))
		require.Equal(t, http.StatusCreated, w.Code)

		var createResp struct {
			Order model.Order `json:"order"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&createResp))

		req := httptest.NewRequest(http.MethodGet, "/api/orders/"+createResp.Order.OrderNumber, nil)
		w2 := httptest.NewRecorder()

		server.ServeHTTP(w2, req)

		assert.Equal(t, http.StatusOK, w2.Code)

		var got model.Order
		require.NoError(t, json.NewDecoder(w2.Body).Decode(&got))
		assert.Equal(t, createResp.Order.ID, got.ID)
		assert.Equal(t, seeded[0].ID, got.Product.ProductID)
	})

	t.Run("GET /api/orders/{orderNumber} returns 404 for unknown order", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		req := httptest.NewRequest(http.MethodGet, "/api/orders/ORD-MISSING-1", nil)
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("POST /api/send-email without SMTP credentials fails", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		seeded := SeedProducts(t, testDB.Pool)

		w := createOrder(t, checkoutPayload(seeded[0].ID, "1111222233334444", 1, 162.00))
		require.Equal(t, http.StatusCreated, w.Code)

		var createResp struct {
			Order model.Order `json:"order"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&createResp))

		body, err := json.Marshal(map[string]any{"order": createResp.Order})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/send-email", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w2 := httptest.NewRecorder()

		server.ServeHTTP(w2, req)

		assert.Equal(t, http.StatusInternalServerError, w2.Code)

		var resp model.ErrorResponse
		require.NoError(t, json.NewDecoder(w2.Body).Decode(&resp))
		assert.Equal(t, model.ErrCodeMailerNotConfigured, resp.Error)
	})
}

func TestCORS_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB)

	t.Run("OPTIONS request returns CORS headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/products", nil)
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "GET")
	})
}
