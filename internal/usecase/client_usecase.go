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
	ErrClientNotFound     = errors.New("client not found")
	ErrInvalidClientID    = errors.New("invalid client id")
	ErrInvalidClientName  = errors.New("invalid client name")
	ErrInvalidClientPhone = errors.New("invalid client phone")
)

// IClientUseCase exposes client-record operations. List(activeOnly) backs the
// selection list on the order form.

type IClientUseCase interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context, activeOnly bool) ([]entities.Client, error)
	Update(ctx context.Context, c entities.Client) (entities.Client, error)
	Delete(ctx context.Context, id string) error
}

type ClientUseCase struct {
	repo interfaces.IClientRepository
	bus  events.Publisher
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository, bus events.Publisher) *ClientUseCase {
	return &ClientUseCase{repo: repo, bus: bus}
}

func (u *ClientUseCase) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Phone = strings.TrimSpace(c.Phone)
	if c.Name == "" {
		return entities.Client{}, ErrInvalidClientName
	}
	if c.Phone == "" {
		return entities.Client{}, ErrInvalidClientPhone
	}

	now := time.Now().UTC()
	c.ID = uuid.NewString()
	c.Active = true
	c.CreatedAt = now
	c.UpdatedAt = now

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		return entities.Client{}, err
	}
	u.publish("created", created.ID)
	return created, nil
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) List(ctx context.Context, activeOnly bool) ([]entities.Client, error) {
	return u.repo.List(ctx, activeOnly)
}

func (u *ClientUseCase) Update(ctx context.Context, c entities.Client) (entities.Client, error) {
	c.ID = strings.TrimSpace(c.ID)
	c.Name = strings.TrimSpace(c.Name)
	if c.ID == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	if c.Name == "" {
		return entities.Client{}, ErrInvalidClientName
	}

	c.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, c)
	if err != nil {
		return entities.Client{}, err
	}
	if updated.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	u.publish("updated", updated.ID)
	return updated, nil
}

func (u *ClientUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidClientID
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}
	u.publish("deleted", id)
	return nil
}

func (u *ClientUseCase) publish(action, entityID string) {
	if u.bus == nil {
		return
	}
	u.bus.Publish(events.Event{Topic: events.TopicClientsChanged, Action: action, EntityID: entityID, At: time.Now().UTC()})
}
