package repository

import (
	"context"

	"commerce-admin/internal/model"

	"github.com/jackc/pgx/v5"
)

// CustomerRepository defines the interface for customer data access operations.
type CustomerRepository interface {
	// List retrieves all customers ordered by name ascending.
	List(ctx context.Context) ([]model.Customer, error)

	// GetByID retrieves a single customer by ID. Returns (nil, nil) when absent.
	GetByID(ctx context.Context, id int64) (*model.Customer, error)

	// Create inserts a new customer and returns the stored record.
	// Returns model.ErrDuplicateEmail on a unique-email violation.
	Create(ctx context.Context, req *model.CustomerRequest) (*model.Customer, error)

	// Update replaces all fields of a customer. Returns (nil, nil) when absent.
	Update(ctx context.Context, id int64, req *model.CustomerRequest) (*model.Customer, error)

	// Delete removes a customer and returns the deleted record, or (nil, nil) when absent.
	Delete(ctx context.Context, id int64) (*model.Customer, error)
}

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// List retrieves all products ordered by ID ascending.
	List(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by ID. Returns (nil, nil) when absent.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// Create inserts a new product and returns the stored record.
	Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error)

	// Update replaces all fields of a product. Returns (nil, nil) when absent.
	Update(ctx context.Context, id int64, req *model.ProductRequest) (*model.Product, error)

	// Delete removes a product and returns the deleted record, or (nil, nil) when absent.
	Delete(ctx context.Context, id int64) (*model.Product, error)

	// GetUnitPrices reads the current price of each product within the
	// provided transaction. Products missing from the result do not exist.
	GetUnitPrices(ctx context.Context, tx pgx.Tx, ids []int64) (map[int64]float64, error)
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// List retrieves all orders ordered by ID ascending.
	List(ctx context.Context) ([]model.Order, error)

	// GetByID retrieves a single order by ID. Returns (nil, nil) when absent.
	GetByID(ctx context.Context, id int64) (*model.Order, error)

	// GetItems retrieves the line items of an order ordered by ID ascending.
	GetItems(ctx context.Context, orderID int64) ([]model.OrderItem, error)

	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order within the provided transaction and
	// fills the generated ID and order date on the passed order.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderItems inserts multiple order items within the provided
	// transaction and fills the generated IDs.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// UpdateStatus sets an order's status. Returns (nil, nil) when absent.
	UpdateStatus(ctx context.Context, id int64, status string) (*model.Order, error)

	// Delete removes an order and returns the deleted record, or (nil, nil) when absent.
	Delete(ctx context.Context, id int64) (*model.Order, error)
}

// ReturnRepository defines the interface for return data access operations.
type ReturnRepository interface {
	// List retrieves all returns ordered by ID ascending, enriched with the
	// product name of the returned order item.
	List(ctx context.Context) ([]model.Return, error)

	// GetByID retrieves a single return by ID. Returns (nil, nil) when absent.
	GetByID(ctx context.Context, id int64) (*model.Return, error)

	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// OrderItemQuantityForUpdate reads the ordered quantity of an order item
	// within the provided transaction, locking the row until commit.
	// Returns model.ErrOrderItemNotFound when the item does not exist.
	OrderItemQuantityForUpdate(ctx context.Context, tx pgx.Tx, orderItemID int64) (int, error)

	// SumReturnedQuantity sums previously recorded returned quantities for an
	// order item within the provided transaction. Zero when none exist.
	SumReturnedQuantity(ctx context.Context, tx pgx.Tx, orderItemID int64) (int, error)

	// CreateTx inserts a new return within the provided transaction and
	// returns the stored record.
	CreateTx(ctx context.Context, tx pgx.Tx, req *model.ReturnRequest) (*model.Return, error)

	// UpdateStatus sets a return's status. Returns (nil, nil) when absent.
	UpdateStatus(ctx context.Context, id int64, status string) (*model.Return, error)

	// Delete removes a return and returns the deleted record, or (nil, nil) when absent.
	Delete(ctx context.Context, id int64) (*model.Return, error)
}

// DashboardRepository defines the interface for dashboard aggregates.
type DashboardRepository interface {
	// SalesTotal returns the sum of all order totals, zero when no orders exist.
	SalesTotal(ctx context.Context) (float64, error)
}
