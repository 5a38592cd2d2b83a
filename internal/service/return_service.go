package service

import (
	"context"
	"fmt"

	"commerce-admin/internal/model"
	"commerce-admin/internal/repository"

	"github.com/rs/zerolog"
)

// returnService implements ReturnService.
type returnService struct {
	returnRepo repository.ReturnRepository
	logger     zerolog.Logger
}

// NewReturnService creates a new return service.
func NewReturnService(returnRepo repository.ReturnRepository, logger zerolog.Logger) ReturnService {
	return &returnService{
		returnRepo: returnRepo,
		logger:     logger.With().Str("service", "return").Logger(),
	}
}

// List retrieves all returns enriched with product names.
func (s *returnService) List(ctx context.Context) ([]model.Return, error) {
	returns, err := s.returnRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list returns")
		return nil, fmt.Errorf("failed to list returns: %w", err)
	}

	s.logger.Debug().Int("count", len(returns)).Msg("retrieved returns")

	return returns, nil
}

// Create records a return after checking that the cumulative returned
// quantity stays within the ordered quantity. The ordered-quantity read
// locks the order item row, so concurrent returns for the same item
// serialise instead of both passing the check.
func (s *returnService) Create(ctx context.Context, req *model.ReturnRequest) (*model.Return, error) {
	if req == nil || req.OrderItemID <= 0 {
		return nil, model.ErrOrderItemNotFound
	}
	if req.Quantity <= 0 {
		return nil, model.ErrInvalidQuantity
	}

	tx, err := s.returnRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create return: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	ordered, err := s.returnRepo.OrderItemQuantityForUpdate(ctx, tx, req.OrderItemID)
	if err != nil {
		return nil, err
	}

	prior, err := s.returnRepo.SumReturnedQuantity(ctx, tx, req.OrderItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to create return: %w", err)
	}

	if req.Quantity+prior > ordered {
		remaining := ordered - prior
		s.logger.Warn().
			Int64("order_item_id", req.OrderItemID).
			Int("requested", req.Quantity).
			Int("prior", prior).
			Int("ordered", ordered).
			Msg("return quantity exceeds returnable amount")
		err = model.NewReturnLimitError(remaining)
		return nil, err
	}

	ret, err := s.returnRepo.CreateTx(ctx, tx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create return: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Int64("return_id", ret.ID).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to create return: %w", err)
	}

	s.logger.Info().
		Int64("return_id", ret.ID).
		Int64("order_item_id", req.OrderItemID).
		Int("quantity", req.Quantity).
		Msg("return created")

	return ret, nil
}

// UpdateStatus changes a return's status.
func (s *returnService) UpdateStatus(ctx context.Context, id int64, status string) (*model.Return, error) {
	if !model.ValidReturnStatus(status) {
		return nil, model.ErrInvalidReturnStatus
	}

	ret, err := s.returnRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	if ret == nil {
		return nil, model.ErrReturnNotFound
	}

	s.logger.Info().Int64("return_id", id).Str("status", status).Msg("return status updated")

	return ret, nil
}

// Delete removes a return.
func (s *returnService) Delete(ctx context.Context, id int64) (*model.Return, error) {
	ret, err := s.returnRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	if ret == nil {
		return nil, model.ErrReturnNotFound
	}

	s.logger.Info().Int64("return_id", id).Msg("return deleted")

	return ret, nil
}
