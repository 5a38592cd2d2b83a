package repository

import (
	"context"
	"errors"
	"fmt"

	"commerce-admin/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// List retrieves all products ordered by ID ascending.
func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	query := `
		SELECT id, name, description, price, stock
		FROM products
		ORDER BY id ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// GetByID retrieves a single product by ID.
func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	query := `
		SELECT id, name, description, price, stock
		FROM products
		WHERE id = $1
	`

	var p model.Product
	err := r.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return &p, nil
}

// Create inserts a new product and returns the stored record.
func (r *productRepository) Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	query := `
		INSERT INTO products (name, description, price, stock)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, description, price, stock
	`

	var p model.Product
	err := r.pool.QueryRow(ctx, query, req.Name, req.Description, req.Price, req.Stock).
		Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock)
	if err != nil {
		r.logger.Error().Err(err).Str("name", req.Name).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	r.logger.Debug().Int64("product_id", p.ID).Msg("product created successfully")

	return &p, nil
}

// Update replaces all fields of a product.
func (r *productRepository) Update(ctx context.Context, id int64, req *model.ProductRequest) (*model.Product, error) {
	query := `
		UPDATE products
		SET name = $1, description = $2, price = $3, stock = $4
		WHERE id = $5
		RETURNING id, name, description, price, stock
	`

	var p model.Product
	err := r.pool.QueryRow(ctx, query, req.Name, req.Description, req.Price, req.Stock, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return &p, nil
}

// Delete removes a product and returns the deleted record.
func (r *productRepository) Delete(ctx context.Context, id int64) (*model.Product, error) {
	query := `
		DELETE FROM products
		WHERE id = $1
		RETURNING id, name, description, price, stock
	`

	var p model.Product
	err := r.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to delete product")
		return nil, fmt.Errorf("failed to delete product: %w", err)
	}

	return &p, nil
}

// GetUnitPrices reads the current price of each product within the provided
// transaction. Products absent from the returned map do not exist.
func (r *productRepository) GetUnitPrices(ctx context.Context, tx pgx.Tx, ids []int64) (map[int64]float64, error) {
	prices := make(map[int64]float64, len(ids))
	if len(ids) == 0 {
		return prices, nil
	}

	query := `
		SELECT id, price
		FROM products
		WHERE id = ANY($1)
	`

	rows, err := tx.Query(ctx, query, ids)
	if err != nil {
		r.logger.Error().Err(err).Int("count", len(ids)).Msg("failed to query product prices")
		return nil, fmt.Errorf("failed to query product prices: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		var price float64
		if err := rows.Scan(&id, &price); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product price row")
			return nil, fmt.Errorf("failed to scan product price: %w", err)
		}
		prices[id] = price
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product price rows")
		return nil, fmt.Errorf("error iterating product prices: %w", err)
	}

	return prices, nil
}
