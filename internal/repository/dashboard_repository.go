package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// dashboardRepository implements the DashboardRepository interface using PostgreSQL.
type dashboardRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewDashboardRepository creates a new PostgreSQL-backed dashboard repository.
func NewDashboardRepository(pool *pgxpool.Pool, logger zerolog.Logger) DashboardRepository {
	return &dashboardRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "dashboard").Logger(),
	}
}

// SalesTotal returns the sum of all order totals.
func (r *dashboardRepository) SalesTotal(ctx context.Context) (float64, error) {
	query := `SELECT COALESCE(SUM(total), 0) FROM orders`

	var total float64
	err := r.pool.QueryRow(ctx, query).Scan(&total)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query sales total")
		return 0, fmt.Errorf("failed to query sales total: %w", err)
	}

	return total, nil
}
