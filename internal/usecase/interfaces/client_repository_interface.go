package interfaces

import (
	"context"

	"stitchworks/internal/domain/entities"
)

//go:generate mockgen -source=client_repository_interface.go -destination=mocks/mock_client_repository.go -package=mock_interfaces

// IClientRepository abstracts DynamoDB persistence for Client records.

type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context, activeOnly bool) ([]entities.Client, error)
	Update(ctx context.Context, c entities.Client) (entities.Client, error)
	Delete(ctx context.Context, id string) error
}
