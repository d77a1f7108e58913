package routes

import (
	"stitchworks/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders   = "/orders"
	PathPayments = "/payments"
)

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, paymentHandler *handlers.PaymentHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrderByID)
		orders.PATCH("/:id/status", orderHandler.UpdateOrderStatus)
		orders.DELETE("/:id", orderHandler.DeleteOrder)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:order_id", paymentHandler.CollectAdvanceByOrderID)
		payments.GET("/:order_id", paymentHandler.GetAdvanceByOrderID)
	}
}
