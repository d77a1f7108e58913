package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"stitchworks/internal/adapter/http/handlers/mocks"
	"stitchworks/internal/domain/entities"
	"stitchworks/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestProductHandler_CreateProduct(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing name fails binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductUseCase(ctrl)
		h := NewProductHandler(uc)

		r := gin.New()
		r.POST("/v1/products", h.CreateProduct)

		req := httptest.NewRequest(http.MethodPost, "/v1/products", bytes.NewBufferString(`{"price":"10"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductUseCase(ctrl)
		h := NewProductHandler(uc)

		r := gin.New()
		r.POST("/v1/products", h.CreateProduct)

		uc.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Product{})).DoAndReturn(
			func(_ any, p entities.Product) (entities.Product, error) {
				if p.Name != "Shirt" || p.Stock != 10 {
					t.Fatalf("unexpected product: %+v", p)
				}
				p.ID = "prod-1"
				return p, nil
			},
		)

		body := `{"name":"Shirt","price":"25.00","stock":10,"sizes":["S","M"],"colors":["white"]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/products", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestProductHandler_AdjustProductStock(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("insufficient stock maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductUseCase(ctrl)
		h := NewProductHandler(uc)

		r := gin.New()
		r.PATCH("/v1/products/:id/stock", h.AdjustProductStock)

		uc.EXPECT().AdjustStock(gomock.Any(), "prod-1", -5).Return(entities.Product{}, usecase.ErrInsufficientStock)

		req := httptest.NewRequest(http.MethodPatch, "/v1/products/prod-1/stock", bytes.NewBufferString(`{"delta":-5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductUseCase(ctrl)
		h := NewProductHandler(uc)

		r := gin.New()
		r.PATCH("/v1/products/:id/stock", h.AdjustProductStock)

		uc.EXPECT().AdjustStock(gomock.Any(), "prod-404", 5).Return(entities.Product{}, usecase.ErrProductNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/products/prod-404/stock", bytes.NewBufferString(`{"delta":5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductUseCase(ctrl)
		h := NewProductHandler(uc)

		r := gin.New()
		r.PATCH("/v1/products/:id/stock", h.AdjustProductStock)

		uc.EXPECT().AdjustStock(gomock.Any(), "prod-1", 3).Return(entities.Product{ID: "prod-1", Name: "Shirt", Stock: 13, Price: decimal.NewFromInt(25)}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/products/prod-1/stock", bytes.NewBufferString(`{"delta":3}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
