package model

// Customer represents a business customer.
type Customer struct {
	ID      int64   `json:"id" db:"id"`
	Name    string  `json:"name" db:"name"`
	Surname *string `json:"surname,omitempty" db:"surname"`
	Email   string  `json:"email" db:"email"`
	Phone   *string `json:"phone,omitempty" db:"phone"`
	Address *string `json:"address,omitempty" db:"address"`
}

// CustomerRequest represents the request payload for creating or updating a customer.
type CustomerRequest struct {
	Name    string  `json:"name"`
	Surname *string `json:"surname,omitempty"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}
