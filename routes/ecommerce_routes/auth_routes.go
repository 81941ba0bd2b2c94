package ecommerce_routes

import (
	"github.com/Modeva-Ecommerce/modeva-storefront/controllers/ecommerce/auth_controller"
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up all authentication routes
func SetupAuthRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/signup", auth_controller.Signup)
		auth.POST("/login", auth_controller.Login)
		auth.POST("/logout", auth_controller.Logout)
		auth.GET("/me", auth_controller.GetMe)
	}
}
