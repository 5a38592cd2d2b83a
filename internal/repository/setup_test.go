package repository

import (
	"context"
	"testing"
	"time"

	"commerce-admin/internal/database"
	"commerce-admin/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB creates a PostgreSQL testcontainer, applies the schema and
// returns a connection pool.
func setupTestDB(t *testing.T) (*pgxpool.Pool, func()) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	require.NoError(t, database.Migrate(ctx, pool))

	cleanup := func() {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
	}

	return pool, cleanup
}

// seedCustomer inserts a customer and returns its generated ID.
func seedCustomer(t *testing.T, pool *pgxpool.Pool, name, email string) int64 {
	ctx := context.Background()

	var id int64
	err := pool.QueryRow(ctx,
		`INSERT INTO customers (name, email) VALUES ($1, $2) RETURNING id`,
		name, email).Scan(&id)
	require.NoError(t, err)

	return id
}

// seedProduct inserts a product and returns its generated ID.
func seedProduct(t *testing.T, pool *pgxpool.Pool, name string, price float64, stock int) int64 {
	ctx := context.Background()

	var id int64
	err := pool.QueryRow(ctx,
		`INSERT INTO products (name, price, stock) VALUES ($1, $2, $3) RETURNING id`,
		name, price, stock).Scan(&id)
	require.NoError(t, err)

	return id
}

// seedOrderWithItem inserts an order with a single line item and returns the
// order and order item IDs.
func seedOrderWithItem(t *testing.T, pool *pgxpool.Pool, customerID, productID int64, quantity int, unitPrice float64) (int64, int64) {
	ctx := context.Background()

	var orderID int64
	err := pool.QueryRow(ctx,
		`INSERT INTO orders (customer_id, status, total) VALUES ($1, $2, $3) RETURNING id`,
		customerID, model.OrderStatusPending, unitPrice*float64(quantity)).Scan(&orderID)
	require.NoError(t, err)

	var itemID int64
	err = pool.QueryRow(ctx,
		`INSERT INTO order_items (order_id, product_id, quantity, unit_price) VALUES ($1, $2, $3, $4) RETURNING id`,
		orderID, productID, quantity, unitPrice).Scan(&itemID)
	require.NoError(t, err)

	return orderID, itemID
}
