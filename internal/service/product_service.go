package service

import (
	"context"
	"fmt"

	"commerce-admin/internal/model"
	"commerce-admin/internal/repository"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// List retrieves all products.
func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	s.logger.Debug().Int("count", len(products)).Msg("retrieved products")

	return products, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to get product")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// Create validates and stores a new product.
func (s *productService) Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	if err := validateProductRequest(req); err != nil {
		return nil, err
	}

	product, err := s.productRepo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("product_id", product.ID).Msg("product created")

	return product, nil
}

// Update validates and replaces a product's fields.
func (s *productService) Update(ctx context.Context, id int64, req *model.ProductRequest) (*model.Product, error) {
	if err := validateProductRequest(req); err != nil {
		return nil, err
	}

	product, err := s.productRepo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}

	if product == nil {
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// Delete removes a product and returns the deleted record.
func (s *productService) Delete(ctx context.Context, id int64) (*model.Product, error) {
	product, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	if product == nil {
		return nil, model.ErrProductNotFound
	}

	s.logger.Info().Int64("product_id", id).Msg("product deleted")

	return product, nil
}

// validateProductRequest checks required fields and non-negative bounds
// before anything is written.
func validateProductRequest(req *model.ProductRequest) error {
	if req == nil || req.Name == "" {
		return model.ErrMissingProductName
	}
	if req.Price < 0 {
		return model.ErrNegativePrice
	}
	if req.Stock < 0 {
		return model.ErrNegativeStock
	}
	return nil
}
