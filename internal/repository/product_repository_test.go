package repository

import (
	"context"
	"testing"

	"commerce-admin/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_CRUD(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewProductRepository(pool, zerolog.Nop())

	description := "A useful widget"
	created, err := repo.Create(ctx, &model.ProductRequest{
		Name:        "Widget",
		Description: &description,
		Price:       9.99,
		Stock:       5,
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Positive(t, created.ID)
	assert.Equal(t, 9.99, created.Price)
	assert.Equal(t, 5, created.Stock)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created, got)

	updated, err := repo.Update(ctx, created.ID, &model.ProductRequest{
		Name:  "Widget v2",
		Price: 12.50,
		Stock: 3,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Widget v2", updated.Name)
	assert.Equal(t, 12.50, updated.Price)
	assert.Nil(t, updated.Description)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, "Widget v2", deleted.Name)

	got, err = repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProductRepository_List(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewProductRepository(pool, zerolog.Nop())

	first := seedProduct(t, pool, "Widget", 9.99, 5)
	second := seedProduct(t, pool, "Gadget", 19.99, 2)

	products, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, first, products[0].ID)
	assert.Equal(t, second, products[1].ID)
}

func TestProductRepository_GetUnitPrices(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewProductRepository(pool, zerolog.Nop())

	widgetID := seedProduct(t, pool, "Widget", 5.00, 10)
	gadgetID := seedProduct(t, pool, "Gadget", 3.50, 10)

	tx, err := pool.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback(ctx) }()

	// The unknown ID is simply absent from the result
	prices, err := repo.GetUnitPrices(ctx, tx, []int64{widgetID, gadgetID, 9999})
	require.NoError(t, err)
	assert.Len(t, prices, 2)
	assert.Equal(t, 5.00, prices[widgetID])
	assert.Equal(t, 3.50, prices[gadgetID])

	empty, err := repo.GetUnitPrices(ctx, tx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestProductRepository_NotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewProductRepository(pool, zerolog.Nop())

	got, err := repo.GetByID(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, got)

	updated, err := repo.Update(ctx, 9999, &model.ProductRequest{Name: "X", Price: 1, Stock: 1})
	require.NoError(t, err)
	assert.Nil(t, updated)

	deleted, err := repo.Delete(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, deleted)
}
