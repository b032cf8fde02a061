package routes

import (
	"ipfiling/internal/adapter/http/handlers"
	"ipfiling/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		// Called by the checkout UI after the gateway redirect; the
		// signature is the only credential.
		payments.POST("/verify", h.VerifyPayment)
		payments.GET("/:transaction_id", middleware.RequireAdmin(), h.GetPayment)
		payments.GET("/:transaction_id/orders", middleware.RequireAdmin(), h.ListPaymentOrders)
	}
}

func addOrderRoutes(rg *gin.RouterGroup, h *handlers.OrderHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.GET("", middleware.RequireUser(), h.ListMyOrders)
		orders.PATCH("/:id/status", middleware.RequireAdmin(), h.UpdateOrderStatus)
	}
}
