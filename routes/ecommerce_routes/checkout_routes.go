package ecommerce_routes

import (
	"github.com/Modeva-Ecommerce/modeva-storefront/controllers/ecommerce/checkout_controller"
	"github.com/Modeva-Ecommerce/modeva-storefront/controllers/ecommerce/order_controller"
	"github.com/gin-gonic/gin"
)

// SetupCheckoutRoutes sets up checkout and order history routes
func SetupCheckoutRoutes(router *gin.RouterGroup) {
	checkout := router.Group("/checkout")
	{
		checkout.GET("", checkout_controller.GetCheckout)
		checkout.POST("", checkout_controller.BeginCheckout)
		checkout.POST("/email", checkout_controller.SubmitCheckoutEmail)
		checkout.POST("/cancel", checkout_controller.CancelCheckout)
		checkout.POST("/callback", checkout_controller.CompleteCheckout)
	}

	orders := router.Group("/orders")
	{
		orders.GET("", order_controller.GetOrders)
		orders.GET("/:reference", order_controller.GetOrderByReference)
		orders.GET("/:reference/receipt", order_controller.DownloadOrderReceiptPDF)
	}
}
