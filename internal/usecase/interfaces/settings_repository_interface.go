package interfaces

import (
	"context"

	"stitchworks/internal/domain/entities"
)

//go:generate mockgen -source=settings_repository_interface.go -destination=mocks/mock_settings_repository.go -package=mock_interfaces

// ISettingsRepository abstracts DynamoDB persistence for the single
// business-profile record. Get returns DefaultSettings when nothing has been
// stored yet.

type ISettingsRepository interface {
	Get(ctx context.Context) (entities.Settings, error)
	Put(ctx context.Context, s entities.Settings) (entities.Settings, error)
}
