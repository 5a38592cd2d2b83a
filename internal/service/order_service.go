package service

import (
	"context"
	"fmt"

	"commerce-admin/internal/model"
	"commerce-admin/internal/repository"

	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "order").Logger(),
	}
}

// List retrieves all orders.
func (s *orderService) List(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	s.logger.Debug().Int("count", len(orders)).Msg("retrieved orders")

	return orders, nil
}

// GetByID retrieves an order with its line items.
func (s *orderService) GetByID(ctx context.Context, id int64) (*model.OrderResponse, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("order_id", id).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	items, err := s.orderRepo.GetItems(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("order_id", id).Msg("failed to get order items")
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}

	return &model.OrderResponse{Order: *order, Items: items}, nil
}

// PlaceOrder atomically creates an order and its line items. Product prices
// are read inside the transaction, the total is computed from those observed
// prices, and each line item captures its unit price at that moment. Any
// failure rolls back every change made in this call.
func (s *orderService) PlaceOrder(ctx context.Context, req *model.OrderRequest) (*model.OrderResponse, error) {
	if err := s.validateOrderRequest(req); err != nil {
		return nil, err
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	// Ensure the transaction is rolled back on any error path
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	productIDs := make([]int64, len(req.Items))
	for i, item := range req.Items {
		productIDs[i] = item.ProductID
	}

	prices, err := s.productRepo.GetUnitPrices(ctx, tx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	var total float64
	for _, item := range req.Items {
		price, ok := prices[item.ProductID]
		if !ok {
			s.logger.Warn().
				Int64("product_id", item.ProductID).
				Msg("order references unknown product")
			err = model.ErrProductNotFound
			return nil, err
		}
		total += price * float64(item.Quantity)
	}

	order := &model.Order{
		CustomerID: req.CustomerID,
		UserID:     req.UserID,
		Status:     model.OrderStatusPending,
		Total:      total,
	}

	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	items := make([]model.OrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = model.OrderItem{
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: prices[item.ProductID],
		}
	}

	if err = s.orderRepo.CreateOrderItems(ctx, tx, items); err != nil {
		return nil, fmt.Errorf("failed to place order items: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Int64("order_id", order.ID).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	s.logger.Info().
		Int64("order_id", order.ID).
		Int("item_count", len(items)).
		Float64("total", total).
		Msg("order placed successfully")

	return &model.OrderResponse{Order: *order, Items: items}, nil
}

// UpdateStatus changes an order's status.
func (s *orderService) UpdateStatus(ctx context.Context, id int64, status string) (*model.Order, error) {
	if !model.ValidOrderStatus(status) {
		return nil, model.ErrInvalidOrderStatus
	}

	order, err := s.orderRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	s.logger.Info().Int64("order_id", id).Str("status", status).Msg("order status updated")

	return order, nil
}

// Delete removes an order and its line items.
func (s *orderService) Delete(ctx context.Context, id int64) (*model.Order, error) {
	order, err := s.orderRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	s.logger.Info().Int64("order_id", id).Msg("order deleted")

	return order, nil
}

// validateOrderRequest validates the order request before any statement runs.
func (s *orderService) validateOrderRequest(req *model.OrderRequest) error {
	if req == nil || req.CustomerID <= 0 || len(req.Items) == 0 {
		return model.ErrMissingCustomerRef
	}

	for i, item := range req.Items {
		if item.ProductID <= 0 {
			return model.ErrProductNotFound
		}
		if item.Quantity <= 0 {
			s.logger.Warn().
				Int("item_index", i).
				Int64("product_id", item.ProductID).
				Int("quantity", item.Quantity).
				Msg("invalid quantity")
			return model.ErrInvalidQuantity
		}
	}

	return nil
}
