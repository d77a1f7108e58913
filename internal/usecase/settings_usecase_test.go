package usecase

import (
	"context"
	"errors"
	"testing"

	"stitchworks/internal/domain/entities"
	mock_interfaces "stitchworks/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSettingsUseCase_Put(t *testing.T) {
	t.Run("empty business name", func(t *testing.T) {
		uc := NewSettingsUseCase(nil)
		_, err := uc.Put(context.Background(), entities.Settings{BusinessName: " ", CurrencyCode: "USD"})
		if !errors.Is(err, ErrInvalidBusinessName) {
			t.Fatalf("expected ErrInvalidBusinessName, got %v", err)
		}
	})

	t.Run("bad currency code", func(t *testing.T) {
		uc := NewSettingsUseCase(nil)
		_, err := uc.Put(context.Background(), entities.Settings{BusinessName: "Atelier", CurrencyCode: "DOLLARS"})
		if !errors.Is(err, ErrInvalidCurrencyCode) {
			t.Fatalf("expected ErrInvalidCurrencyCode, got %v", err)
		}
	})

	t.Run("negative threshold", func(t *testing.T) {
		uc := NewSettingsUseCase(nil)
		_, err := uc.Put(context.Background(), entities.Settings{BusinessName: "Atelier", CurrencyCode: "USD", LowStockThreshold: -1})
		if !errors.Is(err, ErrInvalidThreshold) {
			t.Fatalf("expected ErrInvalidThreshold, got %v", err)
		}
	})

	t.Run("currency code uppercased", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSettingsUseCase(repo)

		repo.EXPECT().Put(gomock.Any(), gomock.AssignableToTypeOf(entities.Settings{})).DoAndReturn(
			func(_ context.Context, s entities.Settings) (entities.Settings, error) {
				if s.CurrencyCode != "EUR" {
					t.Fatalf("expected EUR, got %s", s.CurrencyCode)
				}
				return s, nil
			},
		)

		saved, err := uc.Put(context.Background(), entities.Settings{BusinessName: "Atelier", CurrencyCode: "eur", LowStockThreshold: 3})
		if err != nil || saved.CurrencyCode != "EUR" {
			t.Fatalf("unexpected result err=%v settings=%+v", err, saved)
		}
	})
}

func TestSettingsUseCase_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISettingsRepository(ctrl)
	uc := NewSettingsUseCase(repo)
	repo.EXPECT().Get(gomock.Any()).Return(entities.DefaultSettings(), nil)

	s, err := uc.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.CurrencyCode == "" || s.LowStockThreshold == 0 {
		t.Fatalf("defaults should carry currency and threshold: %+v", s)
	}
}
