package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"stitchworks/internal/domain/entities"
	"stitchworks/internal/usecase/interfaces"
)

var (
	ErrInvalidBusinessName = errors.New("invalid business name")
	ErrInvalidCurrencyCode = errors.New("invalid currency code")
	ErrInvalidThreshold    = errors.New("invalid low stock threshold")
)

// ISettingsUseCase exposes the configuration page's single record.

type ISettingsUseCase interface {
	Get(ctx context.Context) (entities.Settings, error)
	Put(ctx context.Context, s entities.Settings) (entities.Settings, error)
}

type SettingsUseCase struct {
	repo interfaces.ISettingsRepository
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(repo interfaces.ISettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

func (u *SettingsUseCase) Get(ctx context.Context) (entities.Settings, error) {
	return u.repo.Get(ctx)
}

func (u *SettingsUseCase) Put(ctx context.Context, s entities.Settings) (entities.Settings, error) {
	s.BusinessName = strings.TrimSpace(s.BusinessName)
	s.CurrencyCode = strings.ToUpper(strings.TrimSpace(s.CurrencyCode))
	if s.BusinessName == "" {
		return entities.Settings{}, ErrInvalidBusinessName
	}
	if len(s.CurrencyCode) != 3 {
		return entities.Settings{}, ErrInvalidCurrencyCode
	}
	if s.LowStockThreshold < 0 {
		return entities.Settings{}, ErrInvalidThreshold
	}

	s.UpdatedAt = time.Now().UTC()
	return u.repo.Put(ctx, s)
}
