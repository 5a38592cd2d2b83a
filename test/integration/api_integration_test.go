package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"commerce-admin/internal/handler"
	"commerce-admin/internal/model"
	"commerce-admin/internal/repository"
	"commerce-admin/internal/router"
	"commerce-admin/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-api-key"

func setupTestServer(t *testing.T, testDB *TestDB) http.Handler {
	t.Helper()

	logger := zerolog.Nop()

	customerRepo := repository.NewCustomerRepository(testDB.Pool, logger)
	productRepo := repository.NewProductRepository(testDB.Pool, logger)
	orderRepo := repository.NewOrderRepository(testDB.Pool, logger)
	returnRepo := repository.NewReturnRepository(testDB.Pool, logger)
	dashboardRepo := repository.NewDashboardRepository(testDB.Pool, logger)

	customerService := service.NewCustomerService(customerRepo, logger)
	productService := service.NewProductService(productRepo, logger)
	orderService := service.NewOrderService(orderRepo, productRepo, logger)
	returnService := service.NewReturnService(returnRepo, logger)
	dashboardService := service.NewDashboardService(dashboardRepo, logger)

	customerHandler := handler.NewCustomerHandler(customerService, logger)
	productHandler := handler.NewProductHandler(productService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)
	returnHandler := handler.NewReturnHandler(returnService, logger)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, logger)

	return router.New(customerHandler, productHandler, orderHandler, returnHandler, dashboardHandler, testAPIKey, logger)
}

// doJSON issues an authenticated request with an optional JSON body.
func doJSON(t *testing.T, server http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("X-API-Key", testAPIKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&v))
	return v
}

func TestAPI_Authentication(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB)

	t.Run("Rejects missing API key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Rejects wrong API key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
		req.Header.Set("X-API-Key", "wrong-key")
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Health check needs no key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestCustomerAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB)

	t.Run("Create, fetch, update and delete a customer", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		w := doJSON(t, server, http.MethodPost, "/api/customers",
			model.CustomerRequest{Name: "Ada", Email: "ada@example.com"})
		require.Equal(t, http.StatusCreated, w.Code)
		created := decodeBody[model.Customer](t, w)
		assert.Positive(t, created.ID)

		w = doJSON(t, server, http.MethodGet, fmt.Sprintf("/api/customers/%d", created.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, server, http.MethodPut, fmt.Sprintf("/api/customers/%d", created.ID),
			model.CustomerRequest{Name: "Ada L", Email: "ada@example.com"})
		require.Equal(t, http.StatusOK, w.Code)
		updated := decodeBody[model.Customer](t, w)
		assert.Equal(t, "Ada L", updated.Name)

		w = doJSON(t, server, http.MethodDelete, fmt.Sprintf("/api/customers/%d", created.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, server, http.MethodGet, fmt.Sprintf("/api/customers/%d", created.ID), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Duplicate email returns 409", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		w := doJSON(t, server, http.MethodPost, "/api/customers",
			model.CustomerRequest{Name: "Ada", Email: "ada@example.com"})
		require.Equal(t, http.StatusCreated, w.Code)

		w = doJSON(t, server, http.MethodPost, "/api/customers",
			model.CustomerRequest{Name: "Other", Email: "ada@example.com"})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("List is ordered by name", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		for _, c := range []model.CustomerRequest{
			{Name: "Charlie", Email: "charlie@example.com"},
			{Name: "Ada", Email: "ada@example.com"},
			{Name: "Bob", Email: "bob@example.com"},
		} {
			w := doJSON(t, server, http.MethodPost, "/api/customers", c)
			require.Equal(t, http.StatusCreated, w.Code)
		}

		w := doJSON(t, server, http.MethodGet, "/api/customers", nil)
		require.Equal(t, http.StatusOK, w.Code)
		customers := decodeBody[[]model.Customer](t, w)
		require.Len(t, customers, 3)
		assert.Equal(t, "Ada", customers[0].Name)
		assert.Equal(t, "Bob", customers[1].Name)
		assert.Equal(t, "Charlie", customers[2].Name)
	})
}

func TestOrderAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB)

	t.Run("Place order computes total from current prices", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		w := doJSON(t, server, http.MethodPost, "/api/customers",
			model.CustomerRequest{Name: "Ada", Email: "ada@example.com"})
		require.Equal(t, http.StatusCreated, w.Code)
		customer := decodeBody[model.Customer](t, w)

		w = doJSON(t, server, http.MethodPost, "/api/products",
			model.ProductRequest{Name: "Widget", Price: 5.00, Stock: 10})
		require.Equal(t, http.StatusCreated, w.Code)
		widget := decodeBody[model.Product](t, w)

		w = doJSON(t, server, http.MethodPost, "/api/products",
			model.ProductRequest{Name: "Gadget", Price: 3.50, Stock: 10})
		require.Equal(t, http.StatusCreated, w.Code)
		gadget := decodeBody[model.Product](t, w)

		w = doJSON(t, server, http.MethodPost, "/api/orders", model.OrderRequest{
			CustomerID: customer.ID,
			Items: []model.OrderItemRequest{
				{ProductID: widget.ID, Quantity: 2},
				{ProductID: gadget.ID, Quantity: 1},
			},
		})
		require.Equal(t, http.StatusCreated, w.Code)
		placed := decodeBody[model.OrderResponse](t, w)
		assert.Equal(t, 13.50, placed.Order.Total)
		assert.Equal(t, model.OrderStatusPending, placed.Order.Status)
		require.Len(t, placed.Items, 2)
		assert.Equal(t, 5.00, placed.Items[0].UnitPrice)
		assert.Equal(t, 3.50, placed.Items[1].UnitPrice)

		// Captured unit prices survive later price changes
		w = doJSON(t, server, http.MethodPut, fmt.Sprintf("/api/products/%d", widget.ID),
			model.ProductRequest{Name: "Widget", Price: 99.00, Stock: 10})
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, server, http.MethodGet, fmt.Sprintf("/api/orders/%d", placed.Order.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)
		fetched := decodeBody[model.OrderResponse](t, w)
		assert.Equal(t, 13.50, fetched.Order.Total)
		require.Len(t, fetched.Items, 2)
		assert.Equal(t, 5.00, fetched.Items[0].UnitPrice)

		// Dashboard aggregate reflects the placed order
		w = doJSON(t, server, http.MethodGet, "/api/dashboard/sales-total", nil)
		require.Equal(t, http.StatusOK, w.Code)
		dashboard := decodeBody[handler.SalesTotalResponse](t, w)
		assert.Equal(t, 13.50, dashboard.SalesTotal)
	})

	t.Run("Unknown product leaves nothing behind", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		w := doJSON(t, server, http.MethodPost, "/api/customers",
			model.CustomerRequest{Name: "Ada", Email: "ada@example.com"})
		require.Equal(t, http.StatusCreated, w.Code)
		customer := decodeBody[model.Customer](t, w)

		w = doJSON(t, server, http.MethodPost, "/api/orders", model.OrderRequest{
			CustomerID: customer.ID,
			Items:      []model.OrderItemRequest{{ProductID: 9999, Quantity: 1}},
		})
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = doJSON(t, server, http.MethodGet, "/api/orders", nil)
		require.Equal(t, http.StatusOK, w.Code)
		orders := decodeBody[[]model.Order](t, w)
		assert.Empty(t, orders)
	})

	t.Run("Update status and delete", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		w := doJSON(t, server, http.MethodPost, "/api/customers",
			model.CustomerRequest{Name: "Ada", Email: "ada@example.com"})
		require.Equal(t, http.StatusCreated, w.Code)
		customer := decodeBody[model.Customer](t, w)

		w = doJSON(t, server, http.MethodPost, "/api/products",
			model.ProductRequest{Name: "Widget", Price: 5.00, Stock: 10})
		require.Equal(t, http.StatusCreated, w.Code)
		widget := decodeBody[model.Product](t, w)

		w = doJSON(t, server, http.MethodPost, "/api/orders", model.OrderRequest{
			CustomerID: customer.ID,
			Items:      []model.OrderItemRequest{{ProductID: widget.ID, Quantity: 1}},
		})
		require.Equal(t, http.StatusCreated, w.Code)
		placed := decodeBody[model.OrderResponse](t, w)

		w = doJSON(t, server, http.MethodPut, fmt.Sprintf("/api/orders/%d", placed.Order.ID),
			model.OrderStatusRequest{Status: model.OrderStatusCompleted})
		require.Equal(t, http.StatusOK, w.Code)
		updated := decodeBody[model.Order](t, w)
		assert.Equal(t, model.OrderStatusCompleted, updated.Status)

		w = doJSON(t, server, http.MethodPut, fmt.Sprintf("/api/orders/%d", placed.Order.ID),
			model.OrderStatusRequest{Status: "shipped"})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = doJSON(t, server, http.MethodDelete, fmt.Sprintf("/api/orders/%d", placed.Order.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, server, http.MethodDelete, fmt.Sprintf("/api/orders/%d", placed.Order.ID), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestReturnAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB)

	CleanupDB(t, testDB.Pool)

	w := doJSON(t, server, http.MethodPost, "/api/customers",
		model.CustomerRequest{Name: "Ada", Email: "ada@example.com"})
	require.Equal(t, http.StatusCreated, w.Code)
	customer := decodeBody[model.Customer](t, w)

	w = doJSON(t, server, http.MethodPost, "/api/products",
		model.ProductRequest{Name: "Widget", Price: 5.00, Stock: 20})
	require.Equal(t, http.StatusCreated, w.Code)
	widget := decodeBody[model.Product](t, w)

	w = doJSON(t, server, http.MethodPost, "/api/orders", model.OrderRequest{
		CustomerID: customer.ID,
		Items:      []model.OrderItemRequest{{ProductID: widget.ID, Quantity: 10}},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	placed := decodeBody[model.OrderResponse](t, w)
	require.Len(t, placed.Items, 1)
	itemID := placed.Items[0].ID

	t.Run("First return within the ordered quantity", func(t *testing.T) {
		w := doJSON(t, server, http.MethodPost, "/api/returns",
			model.ReturnRequest{OrderItemID: itemID, Quantity: 7, Reason: "damaged"})
		require.Equal(t, http.StatusCreated, w.Code)
		ret := decodeBody[model.Return](t, w)
		assert.Equal(t, model.ReturnStatusProcessing, ret.Status)
	})

	t.Run("Cumulative quantity over the limit is rejected", func(t *testing.T) {
		w := doJSON(t, server, http.MethodPost, "/api/returns",
			model.ReturnRequest{OrderItemID: itemID, Quantity: 4})
		require.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeBody[model.ErrorResponse](t, w)
		assert.Equal(t, "invalid quantity: up to 3 can still be returned", resp.Error)
	})

	t.Run("Remaining quantity can still be returned", func(t *testing.T) {
		w := doJSON(t, server, http.MethodPost, "/api/returns",
			model.ReturnRequest{OrderItemID: itemID, Quantity: 3})
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Unknown order item is rejected", func(t *testing.T) {
		w := doJSON(t, server, http.MethodPost, "/api/returns",
			model.ReturnRequest{OrderItemID: 9999, Quantity: 1})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("List includes product names", func(t *testing.T) {
		w := doJSON(t, server, http.MethodGet, "/api/returns", nil)
		require.Equal(t, http.StatusOK, w.Code)
		returns := decodeBody[[]model.Return](t, w)
		require.Len(t, returns, 2)
		assert.Equal(t, "Widget", returns[0].ProductName)
	})

	t.Run("Approve and delete a return", func(t *testing.T) {
		w := doJSON(t, server, http.MethodGet, "/api/returns", nil)
		require.Equal(t, http.StatusOK, w.Code)
		returns := decodeBody[[]model.Return](t, w)
		require.NotEmpty(t, returns)

		w = doJSON(t, server, http.MethodPut, fmt.Sprintf("/api/returns/%d", returns[0].ID),
			model.ReturnStatusRequest{Status: model.ReturnStatusApproved})
		require.Equal(t, http.StatusOK, w.Code)
		updated := decodeBody[model.Return](t, w)
		assert.Equal(t, model.ReturnStatusApproved, updated.Status)

		w = doJSON(t, server, http.MethodDelete, fmt.Sprintf("/api/returns/%d", returns[0].ID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, server, http.MethodDelete, fmt.Sprintf("/api/returns/%d", returns[0].ID), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
