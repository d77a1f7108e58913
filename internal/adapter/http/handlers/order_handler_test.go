package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
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

func TestOrderHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(usecase.CreateOrderOutput{}, usecase.ErrNoOrderLines)

		body := `{"customer_name":"Maria","customer_phone":"555","lines":[{"product_name":"Shirt","quantity":1}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success carries stock warnings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		out := usecase.CreateOrderOutput{
			Order: entities.Order{ID: "ord-1", Number: "ORD-000001", Status: entities.OrderStatusPending},
			Lines: []entities.OrderLine{{ID: "l1", ProductID: "prod-1", ProductName: "Shirt", Quantity: 2, UnitPrice: decimal.NewFromInt(25)}},
			StockAdjustments: []usecase.StockAdjustError{{
				LineID:      "l1",
				ProductID:   "prod-1",
				ProductName: "Shirt",
				Quantity:    2,
				Err:         fmt.Errorf("%w: product prod-1 has 1, ordered 2", usecase.ErrInsufficientStock),
			}},
		}
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.CreateOrderInput) (usecase.CreateOrderOutput, error) {
				if in.CustomerName != "Maria" || len(in.Lines) != 1 {
					t.Fatalf("unexpected input: %+v", in)
				}
				return out, nil
			},
		)

		body := `{"customer_name":" Maria ","customer_phone":"555","lines":[{"product_id":"prod-1","product_name":"Shirt","quantity":2,"unit_price":"25"}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var resp map[string]json.RawMessage
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if _, ok := resp["stock_warnings"]; !ok {
			t.Fatalf("expected stock_warnings in response: %s", w.Body.String())
		}
	})
}

func TestOrderHandler_GetOrderByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:id", h.GetOrderByID)

		uc.EXPECT().GetByID(gomock.Any(), "ord-404").Return(usecase.OrderDetail{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/ord-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success includes lines", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:id", h.GetOrderByID)

		uc.EXPECT().GetByID(gomock.Any(), "ord-1").Return(usecase.OrderDetail{
			Order: entities.Order{ID: "ord-1"},
			Lines: []entities.OrderLine{{ID: "l1"}, {ID: "l2"}},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/ord-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Lines []json.RawMessage `json:"lines"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || len(resp.Lines) != 2 {
			t.Fatalf("expected 2 lines, err=%v body=%s", err, w.Body.String())
		}
	})
}

func TestOrderHandler_UpdateOrderStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid status maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/orders/:id/status", h.UpdateOrderStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "ord-1", entities.OrderStatus("shipped")).Return(entities.Order{}, usecase.ErrInvalidOrderStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/ord-1/status", bytes.NewBufferString(`{"status":"shipped"}`))
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
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/orders/:id/status", h.UpdateOrderStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "ord-1", entities.OrderStatusCompleted).Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusCompleted}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/ord-1/status", bytes.NewBufferString(`{"status":"completed"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOrderHandler_DeleteOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success returns 204", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.DELETE("/v1/orders/:id", h.DeleteOrder)

		uc.EXPECT().Delete(gomock.Any(), "ord-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/orders/ord-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("unknown error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.DELETE("/v1/orders/:id", h.DeleteOrder)

		uc.EXPECT().Delete(gomock.Any(), "ord-1").Return(errors.New("db down"))

		req := httptest.NewRequest(http.MethodDelete, "/v1/orders/ord-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
