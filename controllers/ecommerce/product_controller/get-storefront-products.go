package product_controller

import (
	"log"
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-storefront/catalog"
	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/gin-gonic/gin"
)

// GetStorefrontProducts godoc
// @Summary List storefront products with filters
// @Description Filters the catalog by inclusive price range, stock and sale flags, then sorts it
// @Tags store
// @Produce json
// @Param minPrice query number false "Minimum price (inclusive)"
// @Param maxPrice query number false "Maximum price (inclusive)"
// @Param inStock query bool false "Only in-stock products"
// @Param onSale query bool false "Only products with an original price"
// @Param sort query string false "popularity | price-low-high | price-high-low"
// @Success 200 {object} models.ApiResponse{data=models.ProductListResponse}
// @Router /store/products [get]
func GetStorefrontProducts(c *gin.Context) {
	renderListing(c, func(cat models.Catalog) []models.Product { return cat.All() })
}

// GetSaleProducts godoc
// @Summary List sale products
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.ProductListResponse}
// @Router /store/products/sale [get]
func GetSaleProducts(c *gin.Context) {
	renderListing(c, func(cat models.Catalog) []models.Product { return cat.SaleProducts })
}

// GetNewProducts godoc
// @Summary List new arrivals
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.ProductListResponse}
// @Router /store/products/new [get]
func GetNewProducts(c *gin.Context) {
	renderListing(c, func(cat models.Catalog) []models.Product { return cat.NewProducts })
}

func renderListing(c *gin.Context, pick func(models.Catalog) []models.Product) {
	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	cat := services.GetCatalogService().Catalog(ctx)
	products := pick(cat)

	cfg := parseFilterConfig(c, products)
	sortKey := catalog.ParseSortKey(c.Query("sort"))
	listed := catalog.SortProducts(catalog.ApplyFilters(products, cfg), sortKey)

	resp := models.ProductListResponse{
		Products: ToCards(c, listed),
		Filters:  cfg,
		Sort:     sortKey,
		Count:    len(listed),
	}

	if !cat.Available {
		log.Printf("[store.products] catalog unavailable, rendering empty listing")
		c.JSON(http.StatusOK, models.DegradedResponse(c, catalogUnavailable, resp))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products retrieved successfully", resp))
}
