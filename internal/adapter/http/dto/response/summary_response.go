package response

import (
	"github.com/shopspring/decimal"

	"stitchworks/internal/usecase"
)

type SummaryResponse struct {
	TotalOrders        int               `json:"total_orders"`
	OrdersByStatus     map[string]int    `json:"orders_by_status"`
	OutstandingBalance decimal.Decimal   `json:"outstanding_balance"`
	LowStockThreshold  int               `json:"low_stock_threshold"`
	LowStockProducts   []ProductResponse `json:"low_stock_products"`
}

func FromSummary(s usecase.Summary) SummaryResponse {
	byStatus := make(map[string]int, len(s.OrdersByStatus))
	for status, n := range s.OrdersByStatus {
		byStatus[string(status)] = n
	}
	return SummaryResponse{
		TotalOrders:        s.TotalOrders,
		OrdersByStatus:     byStatus,
		OutstandingBalance: s.OutstandingBalance,
		LowStockThreshold:  s.LowStockThreshold,
		LowStockProducts:   FromProducts(s.LowStockProducts),
	}
}
