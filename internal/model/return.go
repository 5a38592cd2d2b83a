package model

// Return statuses.
const (
	ReturnStatusProcessing = "processing"
	ReturnStatusApproved   = "approved"
	ReturnStatusRejected   = "rejected"
)

// ValidReturnStatus reports whether s is a recognised return status.
func ValidReturnStatus(s string) bool {
	switch s {
	case ReturnStatusProcessing, ReturnStatusApproved, ReturnStatusRejected:
		return true
	}
	return false
}

// Return represents a request to reverse part or all of a sold order item.
// ProductName is populated on list reads via a join and is not stored.
type Return struct {
	ID          int64  `json:"id" db:"id"`
	OrderItemID int64  `json:"orderItemId" db:"order_item_id"`
	Quantity    int    `json:"quantity" db:"quantity"`
	Reason      string `json:"reason" db:"reason"`
	Status      string `json:"status" db:"status"`
	ProductName string `json:"productName,omitempty" db:"product_name"`
}

// ReturnRequest represents the request payload for recording a return.
type ReturnRequest struct {
	OrderItemID int64  `json:"orderItemId"`
	Quantity    int    `json:"quantity"`
	Reason      string `json:"reason"`
}

// ReturnStatusRequest represents the request payload for changing a return's status.
type ReturnStatusRequest struct {
	Status string `json:"status"`
}
