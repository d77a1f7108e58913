package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"stitchworks/internal/domain/entities"
	mock_interfaces "stitchworks/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAdvancePaymentUseCase_CollectAdvance_Validations(t *testing.T) {
	t.Run("empty order id", func(t *testing.T) {
		uc := NewAdvancePaymentUseCase(nil, nil, nil)
		_, err := uc.CollectAdvance(context.Background(), " ", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidPaymentOrderID) {
			t.Fatalf("expected ErrInvalidPaymentOrderID, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		uc := NewAdvancePaymentUseCase(nil, nil, nil)
		_, err := uc.CollectAdvance(context.Background(), "ord-1", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		uc := NewAdvancePaymentUseCase(nil, nil, nil)
		_, err := uc.CollectAdvance(context.Background(), "ord-1", json.RawMessage(`{}`))
		if !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})
}

func TestAdvancePaymentUseCase_CollectAdvance_OrderChecks(t *testing.T) {
	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewAdvancePaymentUseCase(nil, orderRepo, gateway)
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")

		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{}, nil)

		_, err := uc.CollectAdvance(context.Background(), "ord-1", json.RawMessage(`{}`))
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("no advance on order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewAdvancePaymentUseCase(nil, orderRepo, gateway)
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")

		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1"}, nil)

		_, err := uc.CollectAdvance(context.Background(), "ord-1", json.RawMessage(`{}`))
		if !errors.Is(err, ErrNoAdvanceOnOrder) {
			t.Fatalf("expected ErrNoAdvanceOnOrder, got %v", err)
		}
	})
}

func TestAdvancePaymentUseCase_CollectAdvance_Gateway(t *testing.T) {
	t.Run("amount and reference come from the order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAdvancePaymentRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewAdvancePaymentUseCase(repo, orderRepo, gateway)
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")

		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(
			entities.Order{ID: "ord-1", Number: "ORD-000007", Advance: dec("150.50")}, nil)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var body map[string]any
				if err := json.Unmarshal(payload, &body); err != nil {
					t.Fatalf("payload should be valid json: %v", err)
				}
				if body["external_reference"] != "ord-1" {
					t.Fatalf("external_reference not set")
				}
				if body["transaction_amount"] != 150.50 {
					t.Fatalf("transaction_amount should come from the order's advance, got %v", body["transaction_amount"])
				}
				return "pay-1", "approved", json.RawMessage(`{"id":"pay-1","status":"approved"}`), nil
			},
		)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.AdvancePayment{})).DoAndReturn(
			func(_ context.Context, p entities.AdvancePayment) (entities.AdvancePayment, error) {
				if p.ID != "pay-1" || p.OrderID != "ord-1" {
					t.Fatalf("unexpected payment: %+v", p)
				}
				if p.Date.IsZero() {
					t.Fatalf("date must be set")
				}
				return p, nil
			},
		)

		res, err := uc.CollectAdvance(context.Background(), "ord-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.PaymentStatusApproved {
			t.Fatalf("expected approved, got %s", res.Status)
		}
	})

	t.Run("gateway error passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewAdvancePaymentUseCase(nil, orderRepo, gateway)
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")

		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(
			entities.Order{ID: "ord-1", Advance: dec("10")}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("provider down"))

		_, err := uc.CollectAdvance(context.Background(), "ord-1", json.RawMessage(`{}`))
		if err == nil || err.Error() != "provider down" {
			t.Fatalf("expected provider down, got %v", err)
		}
	})

	t.Run("mock mode skips the gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAdvancePaymentRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewAdvancePaymentUseCase(repo, orderRepo, nil)
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")

		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(
			entities.Order{ID: "ord-1", Advance: dec("10")}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.AdvancePayment) (entities.AdvancePayment, error) { return p, nil },
		)

		res, err := uc.CollectAdvance(context.Background(), "ord-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" || res.Status != entities.PaymentStatusApproved {
			t.Fatalf("unexpected payment: %+v", res)
		}
	})
}

func TestAdvancePaymentUseCase_LatestByOrderID(t *testing.T) {
	t.Run("empty order id", func(t *testing.T) {
		uc := NewAdvancePaymentUseCase(nil, nil, nil)
		_, err := uc.LatestByOrderID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidPaymentOrderID) {
			t.Fatalf("expected ErrInvalidPaymentOrderID, got %v", err)
		}
	})

	t.Run("no payments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAdvancePaymentRepository(ctrl)
		uc := NewAdvancePaymentUseCase(repo, nil, nil)
		repo.EXPECT().ListByOrderID(gomock.Any(), "ord-1").Return(nil, nil)

		_, err := uc.LatestByOrderID(context.Background(), "ord-1")
		if !errors.Is(err, ErrAdvancePaymentNotFound) {
			t.Fatalf("expected ErrAdvancePaymentNotFound, got %v", err)
		}
	})

	t.Run("picks the newest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAdvancePaymentRepository(ctrl)
		uc := NewAdvancePaymentUseCase(repo, nil, nil)

		now := time.Now().UTC()
		repo.EXPECT().ListByOrderID(gomock.Any(), "ord-1").Return([]entities.AdvancePayment{
			{ID: "old", Date: now.Add(-time.Hour)},
			{ID: "new", Date: now},
			{ID: "older", Date: now.Add(-2 * time.Hour)},
		}, nil)

		latest, err := uc.LatestByOrderID(context.Background(), " ord-1 ")
		if err != nil || latest.ID != "new" {
			t.Fatalf("unexpected result err=%v latest=%+v", err, latest)
		}
	})
}
