package request

import "github.com/shopspring/decimal"

// MaterialRequest creates or updates a raw-material entry.
type MaterialRequest struct {
	Name         string          `json:"name" binding:"required"`
	Supplier     string          `json:"supplier"`
	Unit         string          `json:"unit" binding:"required"`
	Quantity     int             `json:"quantity"`
	ReorderLevel int             `json:"reorder_level"`
	CostPerUnit  decimal.Decimal `json:"cost_per_unit"`
}
