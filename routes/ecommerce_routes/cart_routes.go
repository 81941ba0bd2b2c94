package ecommerce_routes

import (
	"github.com/Modeva-Ecommerce/modeva-storefront/controllers/ecommerce/cart_controller"
	"github.com/Modeva-Ecommerce/modeva-storefront/controllers/ecommerce/wishlist_controller"
	"github.com/gin-gonic/gin"
)

// SetupCartRoutes sets up the cart and wishlist routes
func SetupCartRoutes(router *gin.RouterGroup) {
	cart := router.Group("/cart")
	{
		cart.GET("", cart_controller.GetCart)
		cart.POST("/items", cart_controller.AddToCart)
		cart.PATCH("/items/:id", cart_controller.UpdateCartItem)
		cart.DELETE("/items/:id", cart_controller.RemoveCartItem)
	}

	wishlist := router.Group("/wishlist")
	{
		wishlist.GET("", wishlist_controller.GetWishlist)
		wishlist.POST("/toggle", wishlist_controller.ToggleWishlist)
		wishlist.GET("/items/:id", wishlist_controller.GetWishlistItem)
		wishlist.DELETE("/items/:id", wishlist_controller.RemoveWishlistItem)
		wishlist.POST("/items/:id/move-to-cart", wishlist_controller.MoveToCart)
	}
}
