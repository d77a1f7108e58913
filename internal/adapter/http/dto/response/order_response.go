package response

import (
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"stitchworks/internal/domain/entities"
	"stitchworks/internal/usecase"
)

type OrderLineResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id,omitempty"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Size        string          `json:"size,omitempty"`
	Color       string          `json:"color,omitempty"`
}

type OrderResponse struct {
	ID       string `json:"id"`
	Number   string `json:"number"`
	ClientID string `json:"client_id,omitempty"`

	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerAddress string `json:"customer_address,omitempty"`
	CustomerEmail   string `json:"customer_email,omitempty"`

	Status   string `json:"status"`
	Priority string `json:"priority"`

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

	Lines []OrderLineResponse `json:"lines,omitempty"`
}

// StockWarningResponse reports one post-commit stock decrement that could not
// be applied. The order itself is committed; the caller decides how to
// reconcile.
type StockWarningResponse struct {
	LineID      string `json:"line_id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Reason      string `json:"reason"`
}

type CreateOrderResponse struct {
	Order         OrderResponse          `json:"order"`
	StockWarnings []StockWarningResponse `json:"stock_warnings,omitempty"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:              o.ID,
		Number:          o.Number,
		ClientID:        o.ClientID,
		CustomerName:    o.CustomerName,
		CustomerPhone:   o.CustomerPhone,
		CustomerAddress: o.CustomerAddress,
		CustomerEmail:   o.CustomerEmail,
		Status:          string(o.Status),
		Priority:        string(o.Priority),
		Subtotal:        o.Subtotal,
		Discount:        o.Discount,
		Total:           o.Total,
		Advance:         o.Advance,
		Balance:         o.Balance,
		PaymentMethod:   o.PaymentMethod,
		Notes:           o.Notes,
		DeliveryDate:    o.DeliveryDate,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func FromOrderLine(l entities.OrderLine) OrderLineResponse {
	return OrderLineResponse{
		ID:          l.ID,
		ProductID:   l.ProductID,
		ProductName: l.ProductName,
		Quantity:    l.Quantity,
		UnitPrice:   l.UnitPrice,
		Subtotal:    l.Subtotal,
		Size:        l.Size,
		Color:       l.Color,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	return lo.Map(orders, func(o entities.Order, _ int) OrderResponse {
		return FromOrder(o)
	})
}

func FromOrderDetail(d usecase.OrderDetail) OrderResponse {
	resp := FromOrder(d.Order)
	resp.Lines = lo.Map(d.Lines, func(l entities.OrderLine, _ int) OrderLineResponse {
		return FromOrderLine(l)
	})
	return resp
}

func FromCreateOrder(out usecase.CreateOrderOutput) CreateOrderResponse {
	resp := CreateOrderResponse{
		Order: FromOrderDetail(usecase.OrderDetail{Order: out.Order, Lines: out.Lines}),
	}
	for _, w := range out.StockAdjustments {
		warning := StockWarningResponse{
			LineID:      w.LineID,
			ProductID:   w.ProductID,
			ProductName: w.ProductName,
			Quantity:    w.Quantity,
		}
		if w.Err != nil {
			warning.Reason = w.Err.Error()
		}
		resp.StockWarnings = append(resp.StockWarnings, warning)
	}
	return resp
}
