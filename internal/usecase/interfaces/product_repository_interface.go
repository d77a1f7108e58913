package interfaces

import (
	"context"

	"stitchworks/internal/domain/entities"
)

//go:generate mockgen -source=product_repository_interface.go -destination=mocks/mock_product_repository.go -package=mock_interfaces

// IProductRepository abstracts DynamoDB persistence for catalog products.
//
// AdjustStock applies a signed delta conditionally: a negative delta only
// succeeds when the stored stock covers it. A failed condition returns a
// zero-value Product and no error; the use case decides between not-found
// and insufficient-stock.

type IProductRepository interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
	Update(ctx context.Context, p entities.Product) (entities.Product, error)
	Delete(ctx context.Context, id string) error

	AdjustStock(ctx context.Context, id string, delta int) (entities.Product, error)
	ListLowStock(ctx context.Context, threshold int) ([]entities.Product, error)
}
