package service

import (
	"context"

	"commerce-admin/internal/model"
)

// CustomerService defines operations for customer management.
type CustomerService interface {
	// List retrieves all customers ordered by name.
	List(ctx context.Context) ([]model.Customer, error)

	// GetByID retrieves a single customer by ID.
	GetByID(ctx context.Context, id int64) (*model.Customer, error)

	// Create validates and stores a new customer.
	Create(ctx context.Context, req *model.CustomerRequest) (*model.Customer, error)

	// Update validates and replaces a customer's fields.
	Update(ctx context.Context, id int64, req *model.CustomerRequest) (*model.Customer, error)

	// Delete removes a customer and returns the deleted record.
	Delete(ctx context.Context, id int64) (*model.Customer, error)
}

// ProductService defines operations for product management.
type ProductService interface {
	// List retrieves all products.
	List(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// Create validates and stores a new product.
	Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error)

	// Update validates and replaces a product's fields.
	Update(ctx context.Context, id int64, req *model.ProductRequest) (*model.Product, error)

	// Delete removes a product and returns the deleted record.
	Delete(ctx context.Context, id int64) (*model.Product, error)
}

// OrderService defines operations for order management.
type OrderService interface {
	// List retrieves all orders.
	List(ctx context.Context) ([]model.Order, error)

	// GetByID retrieves an order with its line items.
	GetByID(ctx context.Context, id int64) (*model.OrderResponse, error)

	// PlaceOrder atomically creates an order and its line items, computing
	// the total from product prices observed within the same transaction.
	PlaceOrder(ctx context.Context, req *model.OrderRequest) (*model.OrderResponse, error)

	// UpdateStatus changes an order's status.
	UpdateStatus(ctx context.Context, id int64, status string) (*model.Order, error)

	// Delete removes an order and its line items.
	Delete(ctx context.Context, id int64) (*model.Order, error)
}

// ReturnService defines operations for return management.
type ReturnService interface {
	// List retrieves all returns enriched with product names.
	List(ctx context.Context) ([]model.Return, error)

	// Create validates that cumulative returned quantity stays within the
	// ordered quantity and records the return.
	Create(ctx context.Context, req *model.ReturnRequest) (*model.Return, error)

	// UpdateStatus changes a return's status.
	UpdateStatus(ctx context.Context, id int64, status string) (*model.Return, error)

	// Delete removes a return.
	Delete(ctx context.Context, id int64) (*model.Return, error)
}

// DashboardService defines read-only dashboard aggregates.
type DashboardService interface {
	// SalesTotal returns the sum of all order totals.
	SalesTotal(ctx context.Context) (float64, error)
}
