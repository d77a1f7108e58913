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
	ErrProductNotFound     = errors.New("product not found")
	ErrInvalidProductID    = errors.New("invalid product id")
	ErrInvalidProductName  = errors.New("invalid product name")
	ErrInvalidProductPrice = errors.New("invalid product price")
	ErrInvalidStockValue   = errors.New("invalid stock value")
	ErrZeroStockAdjustment = errors.New("stock adjustment delta is zero")
)

// IProductUseCase exposes catalog operations. Stock is never set directly
// after creation; AdjustStock applies a signed delta with the negative-stock
// guard enforced at the store.

type IProductUseCase interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
	Update(ctx context.Context, p entities.Product) (entities.Product, error)
	Delete(ctx context.Context, id string) error
	AdjustStock(ctx context.Context, id string, delta int) (entities.Product, error)
}

type ProductUseCase struct {
	repo interfaces.IProductRepository
	bus  events.Publisher
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(repo interfaces.IProductRepository, bus events.Publisher) *ProductUseCase {
	return &ProductUseCase{repo: repo, bus: bus}
}

func (u *ProductUseCase) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return entities.Product{}, ErrInvalidProductName
	}
	if p.Price.IsNegative() {
		return entities.Product{}, ErrInvalidProductPrice
	}
	if p.Stock < 0 {
		return entities.Product{}, ErrInvalidStockValue
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Product{}, err
	}
	u.publish("created", created.ID)
	return created, nil
}

func (u *ProductUseCase) GetByID(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *ProductUseCase) List(ctx context.Context) ([]entities.Product, error) {
	return u.repo.List(ctx)
}

// Update rewrites the catalog fields of a product. Stock is deliberately not
// part of the update payload; it only moves through AdjustStock.
func (u *ProductUseCase) Update(ctx context.Context, p entities.Product) (entities.Product, error) {
	p.ID = strings.TrimSpace(p.ID)
	p.Name = strings.TrimSpace(p.Name)
	if p.ID == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	if p.Name == "" {
		return entities.Product{}, ErrInvalidProductName
	}
	if p.Price.IsNegative() {
		return entities.Product{}, ErrInvalidProductPrice
	}

	p.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		return entities.Product{}, err
	}
	if updated.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	u.publish("updated", updated.ID)
	return updated, nil
}

func (u *ProductUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidProductID
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}
	u.publish("deleted", id)
	return nil
}

// AdjustStock applies a signed delta. A failed store condition means either
// the product is gone or the decrement would oversell; the second read
// decides which error to surface.
func (u *ProductUseCase) AdjustStock(ctx context.Context, id string, delta int) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	if delta == 0 {
		return entities.Product{}, ErrZeroStockAdjustment
	}

	adjusted, err := u.repo.AdjustStock(ctx, id, delta)
	if err != nil {
		return entities.Product{}, err
	}
	if adjusted.ID == "" {
		p, err := u.repo.GetByID(ctx, id)
		if err != nil {
			return entities.Product{}, err
		}
		if p.ID == "" {
			return entities.Product{}, ErrProductNotFound
		}
		return entities.Product{}, ErrInsufficientStock
	}

	u.publish("stock-adjusted", id)
	return adjusted, nil
}

func (u *ProductUseCase) publish(action, entityID string) {
	if u.bus == nil {
		return
	}
	u.bus.Publish(events.Event{Topic: events.TopicProductsChanged, Action: action, EntityID: entityID, At: time.Now().UTC()})
}
