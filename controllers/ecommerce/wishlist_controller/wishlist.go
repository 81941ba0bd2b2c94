package wishlist_controller

import (
	"log"
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	"github.com/Modeva-Ecommerce/modeva-storefront/controllers/ecommerce/cart_controller"
	"github.com/Modeva-Ecommerce/modeva-storefront/middleware"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/Modeva-Ecommerce/modeva-storefront/store"
	"github.com/gin-gonic/gin"
)

func wishlistView(st *store.Store) models.WishlistResponse {
	return models.WishlistResponse{
		Items:     st.Wishlist.Items(),
		ItemCount: st.Wishlist.Count(),
	}
}

// GetWishlist godoc
// @Summary Get the session's wishlist
// @Tags Wishlist
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.WishlistResponse}
// @Router /wishlist [get]
func GetWishlist(c *gin.Context) {
	st, ok := middleware.GetStoreFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session not loaded"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wishlist retrieved successfully", wishlistView(st)))
}

// ToggleWishlist godoc
// @Summary Add or remove a product from the wishlist
// @Tags Wishlist
// @Accept json
// @Produce json
// @Param body body models.AddToCartRequest true "Product to toggle"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /wishlist/toggle [post]
func ToggleWishlist(c *gin.Context) {
	st, ok := middleware.GetStoreFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session not loaded"))
		return
	}

	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "productId is required"))
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	product, found := services.GetCatalogService().Product(ctx, req.ProductID)
	if !found && !st.Wishlist.Contains(req.ProductID) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}
	if !found {
		// saved product that has since left the catalog: toggling removes it
		product = models.Product{ID: req.ProductID}
	}

	added, err := st.Wishlist.Toggle(ctx, product)
	if err != nil {
		log.Printf("[wishlist.toggle] failed to persist wishlist: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update wishlist"))
		return
	}

	message := "Removed from wishlist"
	if added {
		message = "Added to wishlist"
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, gin.H{
		"in_wishlist": added,
		"wishlist":    wishlistView(st),
	}))
}

// GetWishlistItem godoc
// @Summary Check whether a product is saved
// @Tags Wishlist
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Router /wishlist/items/{id} [get]
func GetWishlistItem(c *gin.Context) {
	st, ok := middleware.GetStoreFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session not loaded"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wishlist membership retrieved", gin.H{
		"id":          c.Param("id"),
		"in_wishlist": st.Wishlist.Contains(c.Param("id")),
	}))
}

// RemoveWishlistItem godoc
// @Summary Remove a product from the wishlist
// @Tags Wishlist
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.WishlistResponse}
// @Router /wishlist/items/{id} [delete]
func RemoveWishlistItem(c *gin.Context) {
	st, ok := middleware.GetStoreFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session not loaded"))
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	if err := st.Wishlist.Remove(ctx, c.Param("id")); err != nil {
		log.Printf("[wishlist.remove] failed to persist wishlist: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update wishlist"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Removed from wishlist", wishlistView(st)))
}

// MoveToCart godoc
// @Summary Move a saved product into the cart
// @Tags Wishlist
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Payment pending"
// @Router /wishlist/items/{id}/move-to-cart [post]
func MoveToCart(c *gin.Context) {
	st, ok := middleware.GetStoreFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session not loaded"))
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	if !cart_controller.EnsureCartEditable(ctx, c, st) {
		return
	}
	moved, err := st.MoveToCart(ctx, c.Param("id"))
	if err != nil {
		log.Printf("[wishlist.move-to-cart] failed to persist: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to move item to cart"))
		return
	}
	if !moved {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Item is not in the wishlist"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Moved to cart", cart_controller.CartView(st)))
}
