package usecase

import (
	"context"
	"errors"
	"testing"

	"stitchworks/internal/domain/entities"
	mock_interfaces "stitchworks/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProductUseCase_Create(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		uc := NewProductUseCase(nil, nil)
		_, err := uc.Create(context.Background(), entities.Product{Name: "  "})
		if !errors.Is(err, ErrInvalidProductName) {
			t.Fatalf("expected ErrInvalidProductName, got %v", err)
		}
	})

	t.Run("negative price", func(t *testing.T) {
		uc := NewProductUseCase(nil, nil)
		_, err := uc.Create(context.Background(), entities.Product{Name: "Shirt", Price: dec("-10")})
		if !errors.Is(err, ErrInvalidProductPrice) {
			t.Fatalf("expected ErrInvalidProductPrice, got %v", err)
		}
	})

	t.Run("negative stock", func(t *testing.T) {
		uc := NewProductUseCase(nil, nil)
		_, err := uc.Create(context.Background(), entities.Product{Name: "Shirt", Stock: -1})
		if !errors.Is(err, ErrInvalidStockValue) {
			t.Fatalf("expected ErrInvalidStockValue, got %v", err)
		}
	})

	t.Run("success assigns id and timestamps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Product{})).DoAndReturn(
			func(_ context.Context, p entities.Product) (entities.Product, error) {
				if p.ID == "" || p.CreatedAt.IsZero() {
					t.Fatalf("id and timestamps must be set: %+v", p)
				}
				return p, nil
			},
		)

		created, err := uc.Create(context.Background(), entities.Product{Name: "Shirt", Price: dec("25"), Stock: 10})
		if err != nil || created.Name != "Shirt" {
			t.Fatalf("unexpected result err=%v product=%+v", err, created)
		}
	})
}

func TestProductUseCase_AdjustStock(t *testing.T) {
	t.Run("zero delta", func(t *testing.T) {
		uc := NewProductUseCase(nil, nil)
		_, err := uc.AdjustStock(context.Background(), "prod-1", 0)
		if !errors.Is(err, ErrZeroStockAdjustment) {
			t.Fatalf("expected ErrZeroStockAdjustment, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo, nil)
		repo.EXPECT().AdjustStock(gomock.Any(), "prod-1", -3).Return(entities.Product{ID: "prod-1", Stock: 7}, nil)

		p, err := uc.AdjustStock(context.Background(), "prod-1", -3)
		if err != nil || p.Stock != 7 {
			t.Fatalf("unexpected result err=%v product=%+v", err, p)
		}
	})

	t.Run("condition failed on existing product means insufficient stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo, nil)
		repo.EXPECT().AdjustStock(gomock.Any(), "prod-1", -10).Return(entities.Product{}, nil)
		repo.EXPECT().GetByID(gomock.Any(), "prod-1").Return(entities.Product{ID: "prod-1", Stock: 4}, nil)

		_, err := uc.AdjustStock(context.Background(), "prod-1", -10)
		if !errors.Is(err, ErrInsufficientStock) {
			t.Fatalf("expected ErrInsufficientStock, got %v", err)
		}
	})

	t.Run("condition failed on missing product means not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo, nil)
		repo.EXPECT().AdjustStock(gomock.Any(), "prod-1", -1).Return(entities.Product{}, nil)
		repo.EXPECT().GetByID(gomock.Any(), "prod-1").Return(entities.Product{}, nil)

		_, err := uc.AdjustStock(context.Background(), "prod-1", -1)
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("repo error passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo, nil)
		repo.EXPECT().AdjustStock(gomock.Any(), "prod-1", 5).Return(entities.Product{}, errors.New("db"))

		_, err := uc.AdjustStock(context.Background(), "prod-1", 5)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestProductUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Product{}, nil)

		_, err := uc.Update(context.Background(), entities.Product{ID: "prod-1", Name: "Shirt"})
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("empty id", func(t *testing.T) {
		uc := NewProductUseCase(nil, nil)
		_, err := uc.Update(context.Background(), entities.Product{Name: "Shirt"})
		if !errors.Is(err, ErrInvalidProductID) {
			t.Fatalf("expected ErrInvalidProductID, got %v", err)
		}
	})
}
