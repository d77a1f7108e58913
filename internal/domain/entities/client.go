package entities

import "time"

// Client is an optional customer record an order's contact fields may be
// backed by. When the operator types a new contact on the order form, a
// client is created on demand during order creation.
//
// Storage model (DynamoDB):
//   - PK: id

type Client struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
	Email   string `json:"email,omitempty"`
	Active  bool   `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
