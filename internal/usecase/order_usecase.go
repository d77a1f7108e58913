package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"stitchworks/internal/domain/entities"
	"stitchworks/internal/events"
	"stitchworks/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrInvalidOrderID       = errors.New("invalid order id")
	ErrNoOrderLines         = errors.New("order has no lines")
	ErrMissingCustomerName  = errors.New("missing customer name")
	ErrMissingCustomerPhone = errors.New("missing customer phone")
	ErrInvalidLineQuantity  = errors.New("invalid line quantity")
	ErrInvalidLineUnitPrice = errors.New("invalid line unit price")
	ErrInvalidOrderStatus   = errors.New("invalid order status")
	ErrInsufficientStock    = errors.New("insufficient stock")
)

// CreateOrderLineInput is one draft line on the order form.
type CreateOrderLineInput struct {
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Size        string
	Color       string
}

// CreateOrderInput is the command accepted by the order-creation saga.
// ClientID is optional: when empty, a client record is created from the
// customer contact fields before the order is written.
type CreateOrderInput struct {
	ClientID string

	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	CustomerEmail   string

	Priority      entities.OrderPriority
	PaymentMethod string
	Notes         string
	DeliveryDate  *time.Time

	Discount decimal.Decimal
	Advance  decimal.Decimal

	Lines []CreateOrderLineInput
}

// StockAdjustError records one failed post-commit stock decrement. The order
// stays committed; the failure is reported to the caller instead of being
// silently dropped.
type StockAdjustError struct {
	LineID      string
	ProductID   string
	ProductName string
	Quantity    int
	Err         error
}

// CreateOrderOutput is the committed order plus its lines and any stock
// adjustments that could not be applied.
type CreateOrderOutput struct {
	Order            entities.Order
	Lines            []entities.OrderLine
	StockAdjustments []StockAdjustError
}

// OrderDetail is an order header with its lines attached.
type OrderDetail struct {
	Order entities.Order
	Lines []entities.OrderLine
}

// IOrderUseCase exposes order operations.
//
// Create runs the full creation saga: validation, on-demand client creation,
// totals computation, header+lines write with compensation, then per-line
// conditional stock decrements.

type IOrderUseCase interface {
	Create(ctx context.Context, in CreateOrderInput) (CreateOrderOutput, error)
	GetByID(ctx context.Context, id string) (OrderDetail, error)
	List(ctx context.Context) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
	Delete(ctx context.Context, id string) error
}

type OrderUseCase struct {
	repo        interfaces.IOrderRepository
	productRepo interfaces.IProductRepository
	clientRepo  interfaces.IClientRepository
	bus         events.Publisher
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, productRepo interfaces.IProductRepository, clientRepo interfaces.IClientRepository, bus events.Publisher) *OrderUseCase {
	return &OrderUseCase{repo: repo, productRepo: productRepo, clientRepo: clientRepo, bus: bus}
}

func (u *OrderUseCase) Create(ctx context.Context, in CreateOrderInput) (CreateOrderOutput, error) {
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.CustomerPhone = strings.TrimSpace(in.CustomerPhone)

	// All validation happens before any store call: a rejected draft must not
	// leave a header behind.
	if in.CustomerName == "" {
		return CreateOrderOutput{}, ErrMissingCustomerName
	}
	if in.CustomerPhone == "" {
		return CreateOrderOutput{}, ErrMissingCustomerPhone
	}
	if len(in.Lines) == 0 {
		return CreateOrderOutput{}, ErrNoOrderLines
	}
	for _, l := range in.Lines {
		if l.Quantity <= 0 {
			return CreateOrderOutput{}, ErrInvalidLineQuantity
		}
		if l.UnitPrice.IsNegative() {
			return CreateOrderOutput{}, ErrInvalidLineUnitPrice
		}
	}
	if in.Priority == "" {
		in.Priority = entities.OrderPriorityMedium
	}

	now := time.Now().UTC()
	orderID := uuid.NewString()

	lines := make([]entities.OrderLine, 0, len(in.Lines))
	for _, l := range in.Lines {
		lines = append(lines, entities.OrderLine{
			ID:          uuid.NewString(),
			OrderID:     orderID,
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Subtotal:    LineSubtotal(l.Quantity, l.UnitPrice),
			Size:        l.Size,
			Color:       l.Color,
			CreatedAt:   now,
		})
	}

	totals := ComputeTotals(lines, in.Discount, in.Advance)

	order := entities.Order{
		ID:              orderID,
		ClientID:        in.ClientID,
		CustomerName:    in.CustomerName,
		CustomerPhone:   in.CustomerPhone,
		CustomerAddress: in.CustomerAddress,
		CustomerEmail:   in.CustomerEmail,
		Status:          entities.OrderStatusPending,
		Priority:        in.Priority,
		Subtotal:        totals.Subtotal,
		Discount:        totals.Discount,
		Total:           totals.Total,
		Advance:         totals.Advance,
		Balance:         totals.Balance,
		PaymentMethod:   in.PaymentMethod,
		Notes:           in.Notes,
		DeliveryDate:    in.DeliveryDate,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	sg := newSaga("create-order")

	if order.ClientID == "" {
		var createdClientID string
		sg.addStep(sagaStep{
			name: "ensure-client",
			run: func(ctx context.Context) error {
				c, err := u.clientRepo.Create(ctx, entities.Client{
					ID:        uuid.NewString(),
					Name:      order.CustomerName,
					Phone:     order.CustomerPhone,
					Address:   order.CustomerAddress,
					Email:     order.CustomerEmail,
					Active:    true,
					CreatedAt: now,
					UpdatedAt: now,
				})
				if err != nil {
					return err
				}
				createdClientID = c.ID
				order.ClientID = c.ID
				return nil
			},
			compensate: func(ctx context.Context) error {
				return u.clientRepo.Delete(ctx, createdClientID)
			},
		})
	}

	sg.addStep(sagaStep{
		name: "assign-number",
		run: func(ctx context.Context) error {
			n, err := u.repo.NextOrderNumber(ctx)
			if err != nil {
				return err
			}
			order.Number = fmt.Sprintf("ORD-%06d", n)
			return nil
		},
	})

	sg.addStep(sagaStep{
		name: "insert-header",
		run: func(ctx context.Context) error {
			created, err := u.repo.InsertOrder(ctx, order)
			if err != nil {
				return err
			}
			order = created
			return nil
		},
		compensate: func(ctx context.Context) error {
			return u.repo.DeleteOrder(ctx, order.ID)
		},
	})

	sg.addStep(sagaStep{
		name: "insert-lines",
		run: func(ctx context.Context) error {
			for i, l := range lines {
				inserted, err := u.repo.InsertOrderLine(ctx, l)
				if err != nil {
					// Remove whatever lines made it in before handing the
					// failure to the saga, which then deletes the header.
					if delErr := u.repo.DeleteOrderLines(ctx, order.ID); delErr != nil {
						log.Printf("[order][usecase] line cleanup failed order_id=%s err=%v", order.ID, delErr)
					}
					return err
				}
				lines[i] = inserted
			}
			return nil
		},
	})

	if err := sg.execute(ctx); err != nil {
		return CreateOrderOutput{}, err
	}

	// The order is committed from here on. Stock decrements run per line and
	// their failures are collected, not rolled back.
	stockErrs := u.adjustStock(ctx, lines)

	u.publish(events.TopicOrdersChanged, "created", order.ID)
	if len(stockErrs) < len(linesWithProduct(lines)) {
		u.publish(events.TopicProductsChanged, "stock-adjusted", order.ID)
	}

	log.Printf("[order][usecase] create success order_id=%s number=%s lines=%d stock_errors=%d",
		order.ID, order.Number, len(lines), len(stockErrs))

	return CreateOrderOutput{Order: order, Lines: lines, StockAdjustments: stockErrs}, nil
}

// adjustStock decrements catalog stock for every line carrying a product
// reference. The decrement is conditional at the store: it never drives stock
// negative, even when the operator's stock snapshot was stale.
func (u *OrderUseCase) adjustStock(ctx context.Context, lines []entities.OrderLine) []StockAdjustError {
	var out []StockAdjustError

	for _, l := range lines {
		if l.ProductID == "" {
			continue
		}

		adjusted, err := u.productRepo.AdjustStock(ctx, l.ProductID, -l.Quantity)
		if err == nil && adjusted.ID == "" {
			// Condition failed: either the product vanished or the remaining
			// stock does not cover the line.
			p, getErr := u.productRepo.GetByID(ctx, l.ProductID)
			switch {
			case getErr != nil:
				err = getErr
			case p.ID == "":
				err = ErrProductNotFound
			default:
				err = fmt.Errorf("%w: product %s has %d, ordered %d", ErrInsufficientStock, l.ProductID, p.Stock, l.Quantity)
			}
		}
		if err != nil {
			log.Printf("[order][usecase] stock adjust failed order_id=%s product_id=%s qty=%d err=%v",
				l.OrderID, l.ProductID, l.Quantity, err)
			out = append(out, StockAdjustError{
				LineID:      l.ID,
				ProductID:   l.ProductID,
				ProductName: l.ProductName,
				Quantity:    l.Quantity,
				Err:         err,
			})
		}
	}
	return out
}

func linesWithProduct(lines []entities.OrderLine) []entities.OrderLine {
	var out []entities.OrderLine
	for _, l := range lines {
		if l.ProductID != "" {
			out = append(out, l)
		}
	}
	return out
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (OrderDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return OrderDetail{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return OrderDetail{}, err
	}
	if o.ID == "" {
		return OrderDetail{}, ErrOrderNotFound
	}

	lines, err := u.repo.ListOrderLines(ctx, id)
	if err != nil {
		return OrderDetail{}, err
	}
	return OrderDetail{Order: o, Lines: lines}, nil
}

func (u *OrderUseCase) List(ctx context.Context) ([]entities.Order, error) {
	return u.repo.ListOrders(ctx)
}

func (u *OrderUseCase) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if !status.Valid() {
		return entities.Order{}, ErrInvalidOrderStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	u.publish(events.TopicOrdersChanged, "status-updated", id)
	return updated, nil
}

// Delete removes an order and cascades to its lines. Lines go first so a
// partial failure cannot orphan lines behind a missing header.
func (u *OrderUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if o.ID == "" {
		return ErrOrderNotFound
	}

	if err := u.repo.DeleteOrderLines(ctx, id); err != nil {
		return err
	}
	if err := u.repo.DeleteOrder(ctx, id); err != nil {
		return err
	}

	u.publish(events.TopicOrdersChanged, "deleted", id)
	return nil
}

func (u *OrderUseCase) publish(topic events.Topic, action, entityID string) {
	if u.bus == nil {
		return
	}
	u.bus.Publish(events.Event{Topic: topic, Action: action, EntityID: entityID, At: time.Now().UTC()})
}
