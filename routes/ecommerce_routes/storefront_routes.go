package ecommerce_routes

import (
	store_filter "github.com/Modeva-Ecommerce/modeva-storefront/controllers/ecommerce/filter_controller"
	store_product "github.com/Modeva-Ecommerce/modeva-storefront/controllers/ecommerce/product_controller"
	store_search "github.com/Modeva-Ecommerce/modeva-storefront/controllers/ecommerce/search_controller"
	"github.com/gin-gonic/gin"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	store := router.Group("/store")

	// Product routes
	products := store.Group("/products")
	{
		products.GET("", store_product.GetStorefrontProducts) // List with filters
		products.GET("/sale", store_product.GetSaleProducts)
		products.GET("/new", store_product.GetNewProducts)
		products.GET("/:id", store_product.GetStorefrontProductByID) // Single product
	}

	store.GET("/filters/metadata", store_filter.GetFilterMetadata)

	store.GET("/search", store_search.SearchProducts)
	store.GET("/search/results", store_search.GetSearchResults)
}
