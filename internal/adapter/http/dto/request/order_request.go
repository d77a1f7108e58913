package request

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderLineRequest is one draft line on the new-order form. Subtotal is not
// accepted from the client; the server recomputes quantity x unit_price.
type OrderLineRequest struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name" binding:"required"`
	Quantity    int             `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Size        string          `json:"size"`
	Color       string          `json:"color"`
}

// CreateOrderRequest is the payload of POST /orders. Either client_id or the
// customer contact fields identify the customer; contact fields are stored on
// the order either way.
type CreateOrderRequest struct {
	ClientID string `json:"client_id"`

	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerAddress string `json:"customer_address"`
	CustomerEmail   string `json:"customer_email"`

	Priority      string `json:"priority"`
	PaymentMethod string `json:"payment_method"`
	Notes         string `json:"notes"`

	Discount decimal.Decimal `json:"discount"`
	Advance  decimal.Decimal `json:"advance"`

	DeliveryDate *time.Time `json:"delivery_date"`

	Lines []OrderLineRequest `json:"lines"`
}

func (r CreateOrderRequest) ResolveCustomerName() string {
	return strings.TrimSpace(r.CustomerName)
}

func (r CreateOrderRequest) ResolveCustomerPhone() string {
	return strings.TrimSpace(r.CustomerPhone)
}

// UpdateOrderStatusRequest is the payload of PATCH /orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
