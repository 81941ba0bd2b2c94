// @title Modeva Storefront API
// @version 1.0
// @description Session-scoped cart, wishlist, checkout and catalog API for the Modeva storefront
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"
	"os"
	"time"

	"github.com/Modeva-Ecommerce/modeva-storefront/cache"
	"github.com/Modeva-Ecommerce/modeva-storefront/catalog"
	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	"github.com/Modeva-Ecommerce/modeva-storefront/middleware"
	"github.com/Modeva-Ecommerce/modeva-storefront/routes/ecommerce_routes"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/Modeva-Ecommerce/modeva-storefront/storage"
	"github.com/Modeva-Ecommerce/modeva-storefront/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	cfg := config.LoadStorefront()

	// Storage backend
	base := openStorage(cfg)
	defer config.CloseDB()
	defer config.CloseRedis()

	// ✅ Initialize JWT Service for session cookies
	secret := cfg.SessionSecret
	if secret == "" {
		if cfg.Env == "production" {
			log.Fatal("❌ SESSION_SECRET environment variable not set")
		}
		secret = "dev-secret-key-change-in-production"
		log.Println("⚠️ SESSION_SECRET not set, using development secret")
	}
	if err := services.InitJWTService(secret, cfg.SessionTTL); err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	log.Println("✅ JWT Service initialized")

	// Catalog
	catalog_cache.SetTTL(cfg.CatalogTTL)
	catalogService := services.NewCatalogService(catalog.NewLoader(catalog.NewSource(cfg.CatalogURL)))

	sessions := services.NewSessionManager(base)
	services.InitStorefront(sessions, catalogService, services.NewCheckoutService(cfg.PaymentKey, cfg.PaymentCurrency))

	corsCfg := cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders: []string{
			"Content-Disposition", "Content-Length", // Expose these headers for downloads
			middleware.CartCountHeader, middleware.WishlistHeader, middleware.SessionTokenHeader,
			middleware.RateLimitHeader, middleware.RateRemainingHeader, middleware.RateResetHeader,
		},
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(cors.New(corsCfg))

	api := router.Group("/api/v1")
	ecommerce_routes.SetupRoutes(api, ecommerce_routes.RouterOptions{
		Sessions:  sessions,
		JWT:       services.GetJWTService(),
		Redis:     config.RedisClient,
		RateLimit: cfg.RateLimit,
	})
	log.Println("✅ Storefront routes registered")

	log.Printf("🚀 Server is running on http://localhost:%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Server stopped: %v", err)
	}
}

// openStorage connects the configured backend. Redis is also used for
// rate limiting whenever REDIS_URL is set.
func openStorage(cfg config.StorefrontConfig) storage.Store {
	if cfg.StorageDriver == config.StorageRedis || os.Getenv("REDIS_URL") != "" {
		config.ConnectRedis()
	}

	switch cfg.StorageDriver {
	case config.StorageRedis:
		log.Println("✅ Using Redis storage")
		return storage.NewRedisStore(config.RedisClient, cfg.SessionTTL)

	case config.StoragePostgres:
		config.InitDB()
		ctx, cancel := config.WithTimeout()
		defer cancel()
		if err := utils.EnsureLoginEventsTable(ctx); err != nil {
			log.Printf("⚠️ login_events table not ready: %v", err)
		}
		store, err := storage.NewGormStore(config.EcommerceGorm)
		if err != nil {
			log.Fatalf("❌ Failed to migrate storage table: %v", err)
		}
		log.Println("✅ Using Postgres storage")
		return store

	default:
		log.Println("⚠️ Using in-memory storage, state is lost on restart")
		return storage.NewMemoryStore()
	}
}
