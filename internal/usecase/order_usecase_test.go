package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"stitchworks/internal/domain/entities"
	mock_interfaces "stitchworks/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func validCreateInput() CreateOrderInput {
	return CreateOrderInput{
		ClientID:      "cli-1",
		CustomerName:  "Maria Lopez",
		CustomerPhone: "555-0101",
		Lines: []CreateOrderLineInput{
			{ProductID: "prod-1", ProductName: "Shirt", Quantity: 10, UnitPrice: dec("25.00")},
			{ProductID: "prod-2", ProductName: "Dress", Quantity: 5, UnitPrice: dec("40.00")},
		},
	}
}

func TestOrderUseCase_Create_Validations(t *testing.T) {
	// No mocks wired on purpose: a rejected draft must not touch the store.
	t.Run("no lines", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil, nil)
		in := validCreateInput()
		in.Lines = nil
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrNoOrderLines) {
			t.Fatalf("expected ErrNoOrderLines, got %v", err)
		}
	})

	t.Run("missing customer name", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil, nil)
		in := validCreateInput()
		in.CustomerName = "   "
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrMissingCustomerName) {
			t.Fatalf("expected ErrMissingCustomerName, got %v", err)
		}
	})

	t.Run("missing customer phone", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil, nil)
		in := validCreateInput()
		in.CustomerPhone = ""
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrMissingCustomerPhone) {
			t.Fatalf("expected ErrMissingCustomerPhone, got %v", err)
		}
	})

	t.Run("zero quantity line", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil, nil)
		in := validCreateInput()
		in.Lines[0].Quantity = 0
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrInvalidLineQuantity) {
			t.Fatalf("expected ErrInvalidLineQuantity, got %v", err)
		}
	})

	t.Run("negative unit price", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil, nil)
		in := validCreateInput()
		in.Lines[1].UnitPrice = dec("-1")
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrInvalidLineUnitPrice) {
			t.Fatalf("expected ErrInvalidLineUnitPrice, got %v", err)
		}
	})
}

func TestOrderUseCase_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	productRepo := mock_interfaces.NewMockIProductRepository(ctrl)
	uc := NewOrderUseCase(repo, productRepo, nil, nil)

	repo.EXPECT().NextOrderNumber(gomock.Any()).Return(int64(42), nil)
	repo.EXPECT().InsertOrder(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
		func(_ context.Context, o entities.Order) (entities.Order, error) {
			if o.Number != "ORD-000042" {
				t.Fatalf("unexpected order number %s", o.Number)
			}
			if !o.Subtotal.Equal(dec("450.00")) {
				t.Fatalf("expected subtotal 450.00, got %s", o.Subtotal)
			}
			if o.Status != entities.OrderStatusPending {
				t.Fatalf("expected pending status, got %s", o.Status)
			}
			return o, nil
		},
	)
	repo.EXPECT().InsertOrderLine(gomock.Any(), gomock.AssignableToTypeOf(entities.OrderLine{})).DoAndReturn(
		func(_ context.Context, l entities.OrderLine) (entities.OrderLine, error) {
			if !l.Subtotal.Equal(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))) {
				t.Fatalf("line subtotal not recomputed: %+v", l)
			}
			return l, nil
		},
	).Times(2)
	productRepo.EXPECT().AdjustStock(gomock.Any(), "prod-1", -10).Return(entities.Product{ID: "prod-1", Stock: 2}, nil)
	productRepo.EXPECT().AdjustStock(gomock.Any(), "prod-2", -5).Return(entities.Product{ID: "prod-2", Stock: 0}, nil)

	out, err := uc.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(out.Lines))
	}
	if len(out.StockAdjustments) != 0 {
		t.Fatalf("expected no stock warnings, got %+v", out.StockAdjustments)
	}
	if !out.Order.Balance.Equal(dec("450.00")) {
		t.Fatalf("expected balance 450.00, got %s", out.Order.Balance)
	}
}

func TestOrderUseCase_Create_ClientCreation(t *testing.T) {
	t.Run("creates client when client id empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		productRepo := mock_interfaces.NewMockIProductRepository(ctrl)
		clientRepo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewOrderUseCase(repo, productRepo, clientRepo, nil)

		clientRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Client{})).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) {
				if c.Name != "Maria Lopez" || c.Phone != "555-0101" {
					t.Fatalf("client not built from customer fields: %+v", c)
				}
				if !c.Active {
					t.Fatalf("created client must be active")
				}
				return c, nil
			},
		)
		repo.EXPECT().NextOrderNumber(gomock.Any()).Return(int64(1), nil)
		repo.EXPECT().InsertOrder(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.ClientID == "" {
					t.Fatalf("order must carry the created client id")
				}
				return o, nil
			},
		)
		repo.EXPECT().InsertOrderLine(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l entities.OrderLine) (entities.OrderLine, error) { return l, nil },
		).Times(2)
		productRepo.EXPECT().AdjustStock(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Product{ID: "p"}, nil).Times(2)

		in := validCreateInput()
		in.ClientID = ""
		if _, err := uc.Create(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("client create failure aborts before any order write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		clientRepo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, clientRepo, nil)

		boom := errors.New("client table down")
		clientRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Client{}, boom)

		in := validCreateInput()
		in.ClientID = ""
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, boom) {
			t.Fatalf("expected original error, got %v", err)
		}
	})
}

func TestOrderUseCase_Create_Compensation(t *testing.T) {
	t.Run("line insert failure deletes lines and header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil)

		boom := errors.New("line write failed")
		var orderID string

		repo.EXPECT().NextOrderNumber(gomock.Any()).Return(int64(7), nil)
		repo.EXPECT().InsertOrder(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				orderID = o.ID
				return o, nil
			},
		)
		first := repo.EXPECT().InsertOrderLine(gomock.Any(), gomock.Any()).Return(entities.OrderLine{}, boom)
		lineComp := repo.EXPECT().DeleteOrderLines(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id string) error {
				if id != orderID {
					t.Fatalf("compensation targeted wrong order: %s", id)
				}
				return nil
			},
		).After(first)
		repo.EXPECT().DeleteOrder(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id string) error {
				if id != orderID {
					t.Fatalf("compensation targeted wrong order: %s", id)
				}
				return nil
			},
		).After(lineComp)

		_, err := uc.Create(context.Background(), validCreateInput())
		if !errors.Is(err, boom) {
			t.Fatalf("expected original line error, got %v", err)
		}
	})

	t.Run("header failure also removes on-demand client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		clientRepo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, clientRepo, nil)

		boom := errors.New("header write failed")

		clientRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) { return c, nil },
		)
		repo.EXPECT().NextOrderNumber(gomock.Any()).Return(int64(8), nil)
		repo.EXPECT().InsertOrder(gomock.Any(), gomock.Any()).Return(entities.Order{}, boom)
		clientRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		in := validCreateInput()
		in.ClientID = ""
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, boom) {
			t.Fatalf("expected original header error, got %v", err)
		}
	})
}

func TestOrderUseCase_Create_StockAdjustments(t *testing.T) {
	t.Run("insufficient stock is collected, order stays committed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		productRepo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewOrderUseCase(repo, productRepo, nil, nil)

		repo.EXPECT().NextOrderNumber(gomock.Any()).Return(int64(9), nil)
		repo.EXPECT().InsertOrder(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil },
		)
		repo.EXPECT().InsertOrderLine(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l entities.OrderLine) (entities.OrderLine, error) { return l, nil },
		).Times(2)

		// prod-1 decrements fine; prod-2's condition fails and the follow-up
		// read shows remaining stock below the ordered quantity.
		productRepo.EXPECT().AdjustStock(gomock.Any(), "prod-1", -10).Return(entities.Product{ID: "prod-1"}, nil)
		productRepo.EXPECT().AdjustStock(gomock.Any(), "prod-2", -5).Return(entities.Product{}, nil)
		productRepo.EXPECT().GetByID(gomock.Any(), "prod-2").Return(entities.Product{ID: "prod-2", Stock: 3}, nil)

		out, err := uc.Create(context.Background(), validCreateInput())
		if err != nil {
			t.Fatalf("order must stay committed, got %v", err)
		}
		if len(out.StockAdjustments) != 1 {
			t.Fatalf("expected 1 stock warning, got %d", len(out.StockAdjustments))
		}
		w := out.StockAdjustments[0]
		if w.ProductID != "prod-2" || w.Quantity != 5 {
			t.Fatalf("unexpected warning: %+v", w)
		}
		if !errors.Is(w.Err, ErrInsufficientStock) {
			t.Fatalf("expected ErrInsufficientStock, got %v", w.Err)
		}
	})

	t.Run("vanished product reported as not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		productRepo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewOrderUseCase(repo, productRepo, nil, nil)

		repo.EXPECT().NextOrderNumber(gomock.Any()).Return(int64(10), nil)
		repo.EXPECT().InsertOrder(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil },
		)
		repo.EXPECT().InsertOrderLine(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l entities.OrderLine) (entities.OrderLine, error) { return l, nil },
		)
		productRepo.EXPECT().AdjustStock(gomock.Any(), "prod-1", -10).Return(entities.Product{}, nil)
		productRepo.EXPECT().GetByID(gomock.Any(), "prod-1").Return(entities.Product{}, nil)

		in := validCreateInput()
		in.Lines = in.Lines[:1]
		out, err := uc.Create(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.StockAdjustments) != 1 || !errors.Is(out.StockAdjustments[0].Err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound warning, got %+v", out.StockAdjustments)
		}
	})

	t.Run("lines without product reference skip stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil)

		repo.EXPECT().NextOrderNumber(gomock.Any()).Return(int64(11), nil)
		repo.EXPECT().InsertOrder(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil },
		)
		repo.EXPECT().InsertOrderLine(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l entities.OrderLine) (entities.OrderLine, error) { return l, nil },
		)

		in := validCreateInput()
		in.Lines = []CreateOrderLineInput{{ProductName: "Custom gown", Quantity: 1, UnitPrice: dec("120")}}
		out, err := uc.Create(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.StockAdjustments) != 0 {
			t.Fatalf("expected no warnings, got %+v", out.StockAdjustments)
		}
	})
}

func TestOrderUseCase_GetByID(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil, nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{}, nil)

		_, err := uc.GetByID(context.Background(), "ord-1")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("success with lines", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1"}, nil)
		repo.EXPECT().ListOrderLines(gomock.Any(), "ord-1").Return([]entities.OrderLine{{ID: "l1"}, {ID: "l2"}}, nil)

		detail, err := uc.GetByID(context.Background(), " ord-1 ")
		if err != nil || len(detail.Lines) != 2 {
			t.Fatalf("unexpected result err=%v detail=%+v", err, detail)
		}
	})
}

func TestOrderUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil, nil)
		_, err := uc.UpdateStatus(context.Background(), "ord-1", entities.OrderStatus("shipped"))
		if !errors.Is(err, ErrInvalidOrderStatus) {
			t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "ord-1", entities.OrderStatusCompleted).Return(entities.Order{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "ord-1", entities.OrderStatusCompleted)
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "ord-1", entities.OrderStatusDelivered).Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusDelivered}, nil)

		updated, err := uc.UpdateStatus(context.Background(), "ord-1", entities.OrderStatusDelivered)
		if err != nil || updated.Status != entities.OrderStatusDelivered {
			t.Fatalf("unexpected result err=%v order=%+v", err, updated)
		}
	})
}

func TestOrderUseCase_Delete(t *testing.T) {
	t.Run("lines deleted before header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1"}, nil)
		lines := repo.EXPECT().DeleteOrderLines(gomock.Any(), "ord-1").Return(nil)
		repo.EXPECT().DeleteOrder(gomock.Any(), "ord-1").Return(nil).After(lines)

		if err := uc.Delete(context.Background(), "ord-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{}, nil)

		err := uc.Delete(context.Background(), "ord-1")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestSaga_CompensatesInReverseOrder(t *testing.T) {
	var trail []string

	sg := newSaga("test")
	sg.addStep(sagaStep{
		name: "one",
		run:  func(context.Context) error { trail = append(trail, "run-one"); return nil },
		compensate: func(context.Context) error {
			trail = append(trail, "comp-one")
			return nil
		},
	})
	sg.addStep(sagaStep{
		name: "two",
		run:  func(context.Context) error { trail = append(trail, "run-two"); return nil },
		compensate: func(context.Context) error {
			trail = append(trail, "comp-two")
			return nil
		},
	})
	sg.addStep(sagaStep{
		name: "three",
		run:  func(context.Context) error { return errors.New("boom") },
	})

	err := sg.execute(context.Background())
	if err == nil || !strings.Contains(err.Error(), "three") {
		t.Fatalf("expected failure naming the step, got %v", err)
	}

	want := []string{"run-one", "run-two", "comp-two", "comp-one"}
	if len(trail) != len(want) {
		t.Fatalf("unexpected trail: %v", trail)
	}
	for i := range want {
		if trail[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, trail)
		}
	}
}
