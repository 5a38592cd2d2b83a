package service

import (
	"context"
	"fmt"

	"commerce-admin/internal/model"
	"commerce-admin/internal/repository"

	"github.com/rs/zerolog"
)

// customerService implements CustomerService.
type customerService struct {
	customerRepo repository.CustomerRepository
	logger       zerolog.Logger
}

// NewCustomerService creates a new customer service.
func NewCustomerService(customerRepo repository.CustomerRepository, logger zerolog.Logger) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		logger:       logger.With().Str("service", "customer").Logger(),
	}
}

// List retrieves all customers ordered by name.
func (s *customerService) List(ctx context.Context) ([]model.Customer, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list customers")
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	s.logger.Debug().Int("count", len(customers)).Msg("retrieved customers")

	return customers, nil
}

// GetByID retrieves a single customer by ID.
func (s *customerService) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("customer_id", id).Msg("failed to get customer")
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	if customer == nil {
		return nil, model.ErrCustomerNotFound
	}

	return customer, nil
}

// Create validates and stores a new customer.
func (s *customerService) Create(ctx context.Context, req *model.CustomerRequest) (*model.Customer, error) {
	if err := validateCustomerRequest(req); err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("customer_id", customer.ID).Msg("customer created")

	return customer, nil
}

// Update validates and replaces a customer's fields.
func (s *customerService) Update(ctx context.Context, id int64, req *model.CustomerRequest) (*model.Customer, error) {
	if err := validateCustomerRequest(req); err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}

	if customer == nil {
		return nil, model.ErrCustomerNotFound
	}

	return customer, nil
}

// Delete removes a customer and returns the deleted record.
func (s *customerService) Delete(ctx context.Context, id int64) (*model.Customer, error) {
	customer, err := s.customerRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	if customer == nil {
		return nil, model.ErrCustomerNotFound
	}

	s.logger.Info().Int64("customer_id", id).Msg("customer deleted")

	return customer, nil
}

// validateCustomerRequest checks the required customer fields.
func validateCustomerRequest(req *model.CustomerRequest) error {
	if req == nil || req.Name == "" || req.Email == "" {
		return model.ErrMissingCustomerFields
	}
	return nil
}
