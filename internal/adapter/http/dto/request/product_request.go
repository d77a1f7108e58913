package request

import "github.com/shopspring/decimal"

// ProductRequest creates or updates a catalog product. Stock is only honored
// on creation; afterwards it moves through stock adjustments.
type ProductRequest struct {
	Name     string          `json:"name" binding:"required"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
	Sizes    []string        `json:"sizes"`
	Colors   []string        `json:"colors"`
}

// StockAdjustmentRequest applies a signed delta to a product's stock or a
// material's quantity. Zero is rejected by the use case.
type StockAdjustmentRequest struct {
	Delta int `json:"delta" binding:"required"`
}
