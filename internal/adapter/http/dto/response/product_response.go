package response

import (
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"stitchworks/internal/domain/entities"
)

type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category,omitempty"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	Sizes     []string        `json:"sizes,omitempty"`
	Colors    []string        `json:"colors,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Price:     p.Price,
		Stock:     p.Stock,
		Sizes:     p.Sizes,
		Colors:    p.Colors,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func FromProducts(products []entities.Product) []ProductResponse {
	return lo.Map(products, func(p entities.Product, _ int) ProductResponse {
		return FromProduct(p)
	})
}
