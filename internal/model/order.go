package model

import "time"

// Order statuses.
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
)

// ValidOrderStatus reports whether s is a recognised order status.
func ValidOrderStatus(s string) bool {
	return s == OrderStatusPending || s == OrderStatusCompleted
}

// Order represents a customer order.
type Order struct {
	ID         int64     `json:"id" db:"id"`
	CustomerID int64     `json:"customerId" db:"customer_id"`
	UserID     *int64    `json:"userId,omitempty" db:"user_id"`
	OrderDate  time.Time `json:"orderDate" db:"order_date"`
	Status     string    `json:"status" db:"status"`
	Total      float64   `json:"total" db:"total"`
}

// OrderItem represents a line item in an order. UnitPrice is the product
// price captured at placement time and never changes afterwards.
type OrderItem struct {
	ID        int64   `json:"id" db:"id"`
	OrderID   int64   `json:"orderId" db:"order_id"`
	ProductID int64   `json:"productId" db:"product_id"`
	Quantity  int     `json:"quantity" db:"quantity"`
	UnitPrice float64 `json:"unitPrice" db:"unit_price"`
}

// OrderRequest represents the request payload for placing an order.
type OrderRequest struct {
	CustomerID int64              `json:"customerId"`
	UserID     *int64             `json:"userId,omitempty"`
	Items      []OrderItemRequest `json:"items"`
}

// OrderItemRequest represents a single line in an order request.
type OrderItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// OrderStatusRequest represents the request payload for changing an order's status.
type OrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse represents the response payload for a placed or fetched order.
type OrderResponse struct {
	Order Order       `json:"order"`
	Items []OrderItem `json:"items"`
}
