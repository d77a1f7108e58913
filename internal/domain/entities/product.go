package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry with a mutable stock count.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Stock is only mutated through conditional adjustments: a decrement is
// rejected at the store when it would drive the count negative, so two
// concurrent orders for the last pieces cannot oversell.

type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category,omitempty"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
	Sizes    []string        `json:"sizes,omitempty"`
	Colors   []string        `json:"colors,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
