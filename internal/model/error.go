package model

import "fmt"

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON         = "INVALID_JSON"
	ErrCodeMissingField        = "MISSING_FIELD"
	ErrCodeInvalidPrice        = "INVALID_PRICE"
	ErrCodeInvalidStock        = "INVALID_STOCK"
	ErrCodeInvalidQuantity     = "INVALID_QUANTITY"
	ErrCodeInvalidStatus       = "INVALID_STATUS"
	ErrCodeCustomerNotFound    = "CUSTOMER_NOT_FOUND"
	ErrCodeProductNotFound     = "PRODUCT_NOT_FOUND"
	ErrCodeOrderNotFound       = "ORDER_NOT_FOUND"
	ErrCodeOrderItemNotFound   = "ORDER_ITEM_NOT_FOUND"
	ErrCodeReturnNotFound      = "RETURN_NOT_FOUND"
	ErrCodeDuplicateEmail      = "DUPLICATE_EMAIL"
	ErrCodeReturnLimitExceeded = "RETURN_LIMIT_EXCEEDED"
	ErrCodeInternalError       = "INTERNAL_ERROR"
)

// DomainError is a business-rule failure that handlers translate to an
// HTTP status without exposing infrastructure detail.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrMissingCustomerFields = NewDomainError(ErrCodeMissingField, "name and email are required")
	ErrMissingProductName    = NewDomainError(ErrCodeMissingField, "product name is required")
	ErrMissingCustomerRef    = NewDomainError(ErrCodeMissingField, "customer and items are required")
	ErrNegativePrice         = NewDomainError(ErrCodeInvalidPrice, "price cannot be negative")
	ErrNegativeStock         = NewDomainError(ErrCodeInvalidStock, "stock cannot be negative")
	ErrInvalidQuantity       = NewDomainError(ErrCodeInvalidQuantity, "quantity must be greater than zero")
	ErrInvalidOrderStatus    = NewDomainError(ErrCodeInvalidStatus, "order status must be pending or completed")
	ErrInvalidReturnStatus   = NewDomainError(ErrCodeInvalidStatus, "return status must be processing, approved or rejected")
	ErrCustomerNotFound      = NewDomainError(ErrCodeCustomerNotFound, "customer not found")
	ErrProductNotFound       = NewDomainError(ErrCodeProductNotFound, "product not found")
	ErrOrderNotFound         = NewDomainError(ErrCodeOrderNotFound, "order not found")
	ErrOrderItemNotFound     = NewDomainError(ErrCodeOrderItemNotFound, "order item not found")
	ErrReturnNotFound        = NewDomainError(ErrCodeReturnNotFound, "return not found")
	ErrDuplicateEmail        = NewDomainError(ErrCodeDuplicateEmail, "email is already registered")
)

// NewReturnLimitError reports how many units can still be returned for an
// order item when a return request exceeds the ordered quantity.
func NewReturnLimitError(remaining int) *DomainError {
	return NewDomainError(
		ErrCodeReturnLimitExceeded,
		fmt.Sprintf("invalid quantity: up to %d can still be returned", remaining),
	)
}
