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

// returnRepository implements the ReturnRepository interface using PostgreSQL.
type returnRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewReturnRepository creates a new PostgreSQL-backed return repository.
func NewReturnRepository(pool *pgxpool.Pool, logger zerolog.Logger) ReturnRepository {
	return &returnRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "return").Logger(),
	}
}

// List retrieves all returns ordered by ID ascending, joined with the
// product name of the returned order item.
func (r *returnRepository) List(ctx context.Context) ([]model.Return, error) {
	query := `
		SELECT ret.id, ret.order_item_id, ret.quantity, ret.reason, ret.status, p.name
		FROM returns ret
		JOIN order_items oi ON oi.id = ret.order_item_id
		JOIN products p ON p.id = oi.product_id
		ORDER BY ret.id ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query returns")
		return nil, fmt.Errorf("failed to query returns: %w", err)
	}
	defer rows.Close()

	var returns []model.Return
	for rows.Next() {
		var ret model.Return
		err := rows.Scan(&ret.ID, &ret.OrderItemID, &ret.Quantity, &ret.Reason, &ret.Status, &ret.ProductName)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan return row")
			return nil, fmt.Errorf("failed to scan return: %w", err)
		}
		returns = append(returns, ret)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating return rows")
		return nil, fmt.Errorf("error iterating returns: %w", err)
	}

	return returns, nil
}

// GetByID retrieves a single return by ID.
func (r *returnRepository) GetByID(ctx context.Context, id int64) (*model.Return, error) {
	query := `
		SELECT id, order_item_id, quantity, reason, status
		FROM returns
		WHERE id = $1
	`

	var ret model.Return
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&ret.ID, &ret.OrderItemID, &ret.Quantity, &ret.Reason, &ret.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("return_id", id).Msg("return not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("return_id", id).Msg("failed to query return")
		return nil, fmt.Errorf("failed to query return: %w", err)
	}

	return &ret, nil
}

// BeginTx starts a new database transaction.
func (r *returnRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// OrderItemQuantityForUpdate reads the ordered quantity of an order item,
// locking the row so concurrent returns for the same item serialise.
func (r *returnRepository) OrderItemQuantityForUpdate(ctx context.Context, tx pgx.Tx, orderItemID int64) (int, error) {
	query := `
		SELECT quantity
		FROM order_items
		WHERE id = $1
		FOR UPDATE
	`

	var quantity int
	err := tx.QueryRow(ctx, query, orderItemID).Scan(&quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("order_item_id", orderItemID).Msg("order item not found")
			return 0, model.ErrOrderItemNotFound
		}
		r.logger.Error().Err(err).Int64("order_item_id", orderItemID).Msg("failed to query order item quantity")
		return 0, fmt.Errorf("failed to query order item quantity: %w", err)
	}

	return quantity, nil
}

// SumReturnedQuantity sums previously recorded returned quantities for an order item.
func (r *returnRepository) SumReturnedQuantity(ctx context.Context, tx pgx.Tx, orderItemID int64) (int, error) {
	query := `
		SELECT COALESCE(SUM(quantity), 0)
		FROM returns
		WHERE order_item_id = $1
	`

	var total int
	err := tx.QueryRow(ctx, query, orderItemID).Scan(&total)
	if err != nil {
		r.logger.Error().Err(err).Int64("order_item_id", orderItemID).Msg("failed to sum returned quantities")
		return 0, fmt.Errorf("failed to sum returned quantities: %w", err)
	}

	return total, nil
}

// CreateTx inserts a new return within the provided transaction.
func (r *returnRepository) CreateTx(ctx context.Context, tx pgx.Tx, req *model.ReturnRequest) (*model.Return, error) {
	query := `
		INSERT INTO returns (order_item_id, quantity, reason, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, order_item_id, quantity, reason, status
	`

	var ret model.Return
	err := tx.QueryRow(ctx, query, req.OrderItemID, req.Quantity, req.Reason, model.ReturnStatusProcessing).
		Scan(&ret.ID, &ret.OrderItemID, &ret.Quantity, &ret.Reason, &ret.Status)
	if err != nil {
		r.logger.Error().Err(err).Int64("order_item_id", req.OrderItemID).Msg("failed to create return")
		return nil, fmt.Errorf("failed to create return: %w", err)
	}

	r.logger.Debug().Int64("return_id", ret.ID).Msg("return created successfully")

	return &ret, nil
}

// UpdateStatus sets a return's status.
func (r *returnRepository) UpdateStatus(ctx context.Context, id int64, status string) (*model.Return, error) {
	query := `
		UPDATE returns
		SET status = $1
		WHERE id = $2
		RETURNING id, order_item_id, quantity, reason, status
	`

	var ret model.Return
	err := r.pool.QueryRow(ctx, query, status, id).
		Scan(&ret.ID, &ret.OrderItemID, &ret.Quantity, &ret.Reason, &ret.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("return_id", id).Msg("return not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("return_id", id).Msg("failed to update return status")
		return nil, fmt.Errorf("failed to update return status: %w", err)
	}

	return &ret, nil
}

// Delete removes a return and returns the deleted record.
func (r *returnRepository) Delete(ctx context.Context, id int64) (*model.Return, error) {
	query := `
		DELETE FROM returns
		WHERE id = $1
		RETURNING id, order_item_id, quantity, reason, status
	`

	var ret model.Return
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&ret.ID, &ret.OrderItemID, &ret.Quantity, &ret.Reason, &ret.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("return_id", id).Msg("return not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("return_id", id).Msg("failed to delete return")
		return nil, fmt.Errorf("failed to delete return: %w", err)
	}

	return &ret, nil
}
