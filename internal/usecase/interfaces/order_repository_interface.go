package interfaces

import (
	"context"

	"stitchworks/internal/domain/entities"
)

//go:generate mockgen -source=order_repository_interface.go -destination=mocks/mock_order_repository.go -package=mock_interfaces

// IOrderRepository abstracts DynamoDB persistence for Order headers and lines.
//
// The order-creation saga needs the primitives separately:
//   - InsertOrder / InsertOrderLine are the forward steps
//   - DeleteOrder / DeleteOrderLines are their compensations
//
// NextOrderNumber draws from an atomic counter so order numbers stay
// monotonic across concurrent creations.

type IOrderRepository interface {
	NextOrderNumber(ctx context.Context) (int64, error)

	InsertOrder(ctx context.Context, o entities.Order) (entities.Order, error)
	InsertOrderLine(ctx context.Context, l entities.OrderLine) (entities.OrderLine, error)

	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListOrders(ctx context.Context) ([]entities.Order, error)
	ListOrderLines(ctx context.Context, orderID string) ([]entities.OrderLine, error)

	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)

	DeleteOrder(ctx context.Context, id string) error
	DeleteOrderLines(ctx context.Context, orderID string) error
}
