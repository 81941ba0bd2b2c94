package ecommerce_routes

import (
	"time"

	"github.com/Modeva-Ecommerce/modeva-storefront/middleware"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RouterOptions are the pieces the storefront API is mounted with.
type RouterOptions struct {
	Sessions  *services.SessionManager
	JWT       *services.JWTService
	Redis     *redis.Client // nil disables rate limiting
	RateLimit int
}

// SetupRoutes mounts the whole storefront API under router. Every route
// runs inside a session.
func SetupRoutes(router *gin.RouterGroup, opts RouterOptions) {
	limit := opts.RateLimit
	if limit <= 0 {
		limit = 100
	}

	api := router.Group("")
	api.Use(middleware.RateLimiter(opts.Redis, limit, time.Minute))
	api.Use(middleware.Session(opts.Sessions, opts.JWT))

	SetupStorefrontRoutes(api)
	SetupCartRoutes(api)
	SetupCheckoutRoutes(api)
	SetupAuthRoutes(api)
}
