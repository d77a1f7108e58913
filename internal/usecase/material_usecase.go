package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"stitchworks/internal/domain/entities"
	"stitchworks/internal/events"
	"stitchworks/internal/usecase/interfaces"
)

var (
	ErrMaterialNotFound       = errors.New("material not found")
	ErrInvalidMaterialID      = errors.New("invalid material id")
	ErrInvalidMaterialName    = errors.New("invalid material name")
	ErrInvalidMaterialUnit    = errors.New("invalid material unit")
	ErrInsufficientMaterial   = errors.New("insufficient material quantity")
	ErrZeroQuantityAdjustment = errors.New("quantity adjustment delta is zero")
)

// IMaterialUseCase exposes raw-material inventory operations.

type IMaterialUseCase interface {
	Create(ctx context.Context, m entities.Material) (entities.Material, error)
	GetByID(ctx context.Context, id string) (entities.Material, error)
	List(ctx context.Context) ([]entities.Material, error)
	Update(ctx context.Context, m entities.Material) (entities.Material, error)
	Delete(ctx context.Context, id string) error
	AdjustQuantity(ctx context.Context, id string, delta int) (entities.Material, error)
}

type MaterialUseCase struct {
	repo interfaces.IMaterialRepository
	bus  events.Publisher
}

var _ IMaterialUseCase = (*MaterialUseCase)(nil)

func NewMaterialUseCase(repo interfaces.IMaterialRepository, bus events.Publisher) *MaterialUseCase {
	return &MaterialUseCase{repo: repo, bus: bus}
}

func (u *MaterialUseCase) Create(ctx context.Context, m entities.Material) (entities.Material, error) {
	m.Name = strings.TrimSpace(m.Name)
	m.Unit = strings.TrimSpace(m.Unit)
	if m.Name == "" {
		return entities.Material{}, ErrInvalidMaterialName
	}
	if m.Unit == "" {
		return entities.Material{}, ErrInvalidMaterialUnit
	}
	if m.Quantity < 0 || m.ReorderLevel < 0 {
		return entities.Material{}, errors.New("invalid material quantity")
	}

	now := time.Now().UTC()
	m.ID = uuid.NewString()
	m.CreatedAt = now
	m.UpdatedAt = now

	created, err := u.repo.Create(ctx, m)
	if err != nil {
		return entities.Material{}, err
	}
	u.publish("created", created.ID)
	return created, nil
}

func (u *MaterialUseCase) GetByID(ctx context.Context, id string) (entities.Material, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Material{}, ErrInvalidMaterialID
	}

	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Material{}, err
	}
	if m.ID == "" {
		return entities.Material{}, ErrMaterialNotFound
	}
	return m, nil
}

func (u *MaterialUseCase) List(ctx context.Context) ([]entities.Material, error) {
	return u.repo.List(ctx)
}

func (u *MaterialUseCase) Update(ctx context.Context, m entities.Material) (entities.Material, error) {
	m.ID = strings.TrimSpace(m.ID)
	m.Name = strings.TrimSpace(m.Name)
	if m.ID == "" {
		return entities.Material{}, ErrInvalidMaterialID
	}
	if m.Name == "" {
		return entities.Material{}, ErrInvalidMaterialName
	}

	m.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, m)
	if err != nil {
		return entities.Material{}, err
	}
	if updated.ID == "" {
		return entities.Material{}, ErrMaterialNotFound
	}
	u.publish("updated", updated.ID)
	return updated, nil
}

func (u *MaterialUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidMaterialID
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}
	u.publish("deleted", id)
	return nil
}

func (u *MaterialUseCase) AdjustQuantity(ctx context.Context, id string, delta int) (entities.Material, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Material{}, ErrInvalidMaterialID
	}
	if delta == 0 {
		return entities.Material{}, ErrZeroQuantityAdjustment
	}

	adjusted, err := u.repo.AdjustQuantity(ctx, id, delta)
	if err != nil {
		return entities.Material{}, err
	}
	if adjusted.ID == "" {
		m, err := u.repo.GetByID(ctx, id)
		if err != nil {
			return entities.Material{}, err
		}
		if m.ID == "" {
			return entities.Material{}, ErrMaterialNotFound
		}
		return entities.Material{}, ErrInsufficientMaterial
	}

	u.publish("quantity-adjusted", id)
	return adjusted, nil
}

func (u *MaterialUseCase) publish(action, entityID string) {
	if u.bus == nil {
		return
	}
	u.bus.Publish(events.Event{Topic: events.TopicMaterialsChanged, Action: action, EntityID: entityID, At: time.Now().UTC()})
}
