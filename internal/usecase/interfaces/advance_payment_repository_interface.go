package interfaces

import (
	"context"

	"stitchworks/internal/domain/entities"
)

//go:generate mockgen -source=advance_payment_repository_interface.go -destination=mocks/mock_advance_payment_repository.go -package=mock_interfaces

// IAdvancePaymentRepository abstracts DynamoDB persistence for AdvancePayment.

type IAdvancePaymentRepository interface {
	Create(ctx context.Context, p entities.AdvancePayment) (entities.AdvancePayment, error)
	GetByID(ctx context.Context, id string) (entities.AdvancePayment, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.AdvancePayment, error)
}
