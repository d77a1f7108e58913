package interfaces

import (
	"context"

	"stitchworks/internal/domain/entities"
)

//go:generate mockgen -source=material_repository_interface.go -destination=mocks/mock_material_repository.go -package=mock_interfaces

// IMaterialRepository abstracts DynamoDB persistence for raw materials.
// AdjustQuantity follows the same conditional-delta contract as
// IProductRepository.AdjustStock.

type IMaterialRepository interface {
	Create(ctx context.Context, m entities.Material) (entities.Material, error)
	GetByID(ctx context.Context, id string) (entities.Material, error)
	List(ctx context.Context) ([]entities.Material, error)
	Update(ctx context.Context, m entities.Material) (entities.Material, error)
	Delete(ctx context.Context, id string) error

	AdjustQuantity(ctx context.Context, id string, delta int) (entities.Material, error)
}
