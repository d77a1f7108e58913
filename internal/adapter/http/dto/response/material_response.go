package response

import (
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"stitchworks/internal/domain/entities"
)

type MaterialResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Supplier     string          `json:"supplier,omitempty"`
	Unit         string          `json:"unit"`
	Quantity     int             `json:"quantity"`
	ReorderLevel int             `json:"reorder_level"`
	CostPerUnit  decimal.Decimal `json:"cost_per_unit"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func FromMaterial(m entities.Material) MaterialResponse {
	return MaterialResponse{
		ID:           m.ID,
		Name:         m.Name,
		Supplier:     m.Supplier,
		Unit:         m.Unit,
		Quantity:     m.Quantity,
		ReorderLevel: m.ReorderLevel,
		CostPerUnit:  m.CostPerUnit,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func FromMaterials(materials []entities.Material) []MaterialResponse {
	return lo.Map(materials, func(m entities.Material, _ int) MaterialResponse {
		return FromMaterial(m)
	})
}
