package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the production lifecycle of an order.
//
// Domain notes:
//   - An order is created as Pending and moves forward as the workshop
//     produces and hands over the garments.
//   - Status transitions happen through a dedicated status-update operation,
//     never as a side effect of other writes.

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusInProcess OrderStatus = "in_process"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusInProcess, OrderStatusCompleted,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type OrderPriority string

const (
	OrderPriorityHigh   OrderPriority = "high"
	OrderPriorityMedium OrderPriority = "medium"
	OrderPriorityLow    OrderPriority = "low"
)

func (p OrderPriority) Valid() bool {
	switch p {
	case OrderPriorityHigh, OrderPriorityMedium, OrderPriorityLow:
		return true
	}
	return false
}

// Order is the order header persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Customer contact fields are captured redundantly on the header so the order
// keeps its historical contact data even if the client record changes later.
//
// Monetary representation:
//   - Subtotal, Discount, Total, Advance and Balance are exact decimals.
//   - Total = Subtotal - Discount; Balance = Total - Advance. Neither is
//     floored at zero: over-discounts and over-advances pass through signed.

type Order struct {
	ID       string `json:"id"`
	Number   string `json:"number"`
	ClientID string `json:"client_id,omitempty"`

	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerAddress string `json:"customer_address,omitempty"`
	CustomerEmail   string `json:"customer_email,omitempty"`

	Status   OrderStatus   `json:"status"`
	Priority OrderPriority `json:"priority"`

	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
	Advance  decimal.Decimal `json:"advance"`
	Balance  decimal.Decimal `json:"balance"`

	PaymentMethod string `json:"payment_method,omitempty"`
	Notes         string `json:"notes,omitempty"`

	DeliveryDate *time.Time `json:"delivery_date,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// OrderLine is one product-quantity-price entry owned by exactly one Order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
//
// ProductName is a denormalized copy taken when the line is created; it is
// kept as-is even if the catalog product is later renamed or deleted.
// Subtotal equals Quantity x UnitPrice at creation time and is not
// re-validated afterwards.

type OrderLine struct {
	ID          string `json:"id"`
	OrderID     string `json:"order_id"`
	ProductID   string `json:"product_id,omitempty"`
	ProductName string `json:"product_name"`

	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`

	Size  string `json:"size,omitempty"`
	Color string `json:"color,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// OrderTotals is the result of the pure totals computation over a draft
// order's lines.
type OrderTotals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
	Advance  decimal.Decimal `json:"advance"`
	Balance  decimal.Decimal `json:"balance"`
}
