package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Material is a raw-material inventory entry (fabric, thread, buttons).
//
// Storage model (DynamoDB):
//   - PK: id
//
// Quantity follows the same conditional-adjustment discipline as product
// stock. ReorderLevel feeds the low-stock report.

type Material struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Supplier     string          `json:"supplier,omitempty"`
	Unit         string          `json:"unit"`
	Quantity     int             `json:"quantity"`
	ReorderLevel int             `json:"reorder_level"`
	CostPerUnit  decimal.Decimal `json:"cost_per_unit"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
