package product_controller

import (
	"strconv"

	"github.com/Modeva-Ecommerce/modeva-storefront/catalog"
	"github.com/Modeva-Ecommerce/modeva-storefront/middleware"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/gin-gonic/gin"
)

const catalogUnavailable = "Error loading products. Please try again later."

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

// parseFilterConfig starts from the full price range of products and
// applies whatever the query overrides. Unparseable values are ignored.
func parseFilterConfig(c *gin.Context, products []models.Product) models.FilterConfig {
	cfg := catalog.DefaultFilter(products)

	if v, err := strconv.ParseFloat(c.Query("minPrice"), 64); err == nil {
		cfg.MinPrice = v
	}
	if v, err := strconv.ParseFloat(c.Query("maxPrice"), 64); err == nil {
		cfg.MaxPrice = v
	}
	if v, err := strconv.ParseBool(c.Query("inStock")); err == nil {
		cfg.InStockOnly = v
	}
	if v, err := strconv.ParseBool(c.Query("onSale")); err == nil {
		cfg.OnSaleOnly = v
	}
	return cfg
}

// ToCard projects a catalog product onto the thin card the grids render.
func ToCard(c *gin.Context, p models.Product) models.StorefrontProductResponse {
	card := models.StorefrontProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Image:         p.Image,
		Price:         p.Price,
		Amount:        catalog.PriceOf(p),
		OriginalPrice: p.OriginalPrice,
		Discount:      p.Discount,
		InStock:       p.InStock,
		OnSale:        p.OnSale(),
	}
	if st, ok := middleware.GetStoreFromContext(c); ok {
		card.InWishlist = st.Wishlist.Contains(p.ID)
	}
	return card
}

// ToCards projects a whole listing.
func ToCards(c *gin.Context, products []models.Product) []models.StorefrontProductResponse {
	cards := make([]models.StorefrontProductResponse, 0, len(products))
	for _, p := range products {
		cards = append(cards, ToCard(c, p))
	}
	return cards
}
