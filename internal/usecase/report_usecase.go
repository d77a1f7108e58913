package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"stitchworks/internal/domain/entities"
	"stitchworks/internal/usecase/interfaces"
)

// Summary feeds the dashboard tiles: order counts by status, outstanding
// balance over undelivered orders, and products at or below the configured
// low-stock threshold.
type Summary struct {
	TotalOrders        int                          `json:"total_orders"`
	OrdersByStatus     map[entities.OrderStatus]int `json:"orders_by_status"`
	OutstandingBalance decimal.Decimal              `json:"outstanding_balance"`
	LowStockProducts   []entities.Product           `json:"low_stock_products"`
	LowStockThreshold  int                          `json:"low_stock_threshold"`
}

type IReportUseCase interface {
	Summary(ctx context.Context) (Summary, error)
}

type ReportUseCase struct {
	orderRepo    interfaces.IOrderRepository
	productRepo  interfaces.IProductRepository
	settingsRepo interfaces.ISettingsRepository
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(orderRepo interfaces.IOrderRepository, productRepo interfaces.IProductRepository, settingsRepo interfaces.ISettingsRepository) *ReportUseCase {
	return &ReportUseCase{orderRepo: orderRepo, productRepo: productRepo, settingsRepo: settingsRepo}
}

func (u *ReportUseCase) Summary(ctx context.Context) (Summary, error) {
	settings, err := u.settingsRepo.Get(ctx)
	if err != nil {
		return Summary{}, err
	}

	orders, err := u.orderRepo.ListOrders(ctx)
	if err != nil {
		return Summary{}, err
	}

	lowStock, err := u.productRepo.ListLowStock(ctx, settings.LowStockThreshold)
	if err != nil {
		return Summary{}, err
	}

	s := Summary{
		TotalOrders:       len(orders),
		OrdersByStatus:    make(map[entities.OrderStatus]int),
		LowStockProducts:  lowStock,
		LowStockThreshold: settings.LowStockThreshold,
	}
	for _, o := range orders {
		s.OrdersByStatus[o.Status]++
		switch o.Status {
		case entities.OrderStatusDelivered, entities.OrderStatusCancelled:
		default:
			s.OutstandingBalance = s.OutstandingBalance.Add(o.Balance)
		}
	}
	return s, nil
}
