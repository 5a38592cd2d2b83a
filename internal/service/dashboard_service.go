package service

import (
	"context"
	"fmt"

	"commerce-admin/internal/repository"

	"github.com/rs/zerolog"
)

// dashboardService implements DashboardService.
type dashboardService struct {
	dashboardRepo repository.DashboardRepository
	logger        zerolog.Logger
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(dashboardRepo repository.DashboardRepository, logger zerolog.Logger) DashboardService {
	return &dashboardService{
		dashboardRepo: dashboardRepo,
		logger:        logger.With().Str("service", "dashboard").Logger(),
	}
}

// SalesTotal returns the sum of all order totals.
func (s *dashboardService) SalesTotal(ctx context.Context) (float64, error) {
	total, err := s.dashboardRepo.SalesTotal(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get sales total")
		return 0, fmt.Errorf("failed to get sales total: %w", err)
	}

	return total, nil
}
