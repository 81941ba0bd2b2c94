package cart_controller

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	"github.com/Modeva-Ecommerce/modeva-storefront/middleware"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/pricing"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/Modeva-Ecommerce/modeva-storefront/store"
	"github.com/gin-gonic/gin"
)

// CartView renders the cart page projection.
func CartView(st *store.Store) models.CartResponse {
	total := st.Cart.Total()
	return models.CartResponse{
		Items:          st.Cart.Items(),
		Total:          total,
		FormattedTotal: pricing.Format(total),
		ItemCount:      st.Cart.Count(),
	}
}

// EnsureCartEditable writes a 409 and reports false while a payment is
// pending for the session's cart.
func EnsureCartEditable(ctx context.Context, c *gin.Context, st *store.Store) bool {
	err := services.GetCheckoutService().CartEditable(ctx, st)
	switch {
	case err == nil:
		return true
	case errors.Is(err, services.ErrPaymentPending):
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Finish or cancel your payment before changing the cart"))
	default:
		log.Printf("[cart.guard] failed to load checkout state: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load checkout state"))
	}
	return false
}

// GetCart godoc
// @Summary Get the session's cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Router /cart [get]
func GetCart(c *gin.Context) {
	st, ok := middleware.GetStoreFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session not loaded"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart retrieved successfully", CartView(st)))
}

// AddToCart godoc
// @Summary Add a catalog product to the cart
// @Description Adds one unit. A product already in the cart has its quantity incremented; its price stays the one locked at first add.
// @Tags Cart
// @Accept json
// @Produce json
// @Param body body models.AddToCartRequest true "Product to add"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Payment pending"
// @Router /cart/items [post]
func AddToCart(c *gin.Context) {
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
	if !found {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}
	if !EnsureCartEditable(ctx, c, st) {
		return
	}

	if err := st.Cart.Add(ctx, product); err != nil {
		log.Printf("[cart.add] failed to persist cart: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, product.Name+" added to cart!", CartView(st)))
}

// UpdateCartItem godoc
// @Summary Set a cart item's quantity
// @Description Quantities of 0 or less remove the item. Unknown ids are ignored.
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param body body models.UpdateQuantityRequest true "New quantity"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Payment pending"
// @Router /cart/items/{id} [patch]
func UpdateCartItem(c *gin.Context) {
	st, ok := middleware.GetStoreFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session not loaded"))
		return
	}

	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Quantity == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "quantity is required"))
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	if !EnsureCartEditable(ctx, c, st) {
		return
	}
	if err := st.Cart.UpdateQuantity(ctx, c.Param("id"), *req.Quantity); err != nil {
		log.Printf("[cart.update] failed to persist cart: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart updated successfully", CartView(st)))
}

// RemoveCartItem godoc
// @Summary Remove an item from the cart
// @Tags Cart
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 409 {object} models.ApiResponse "Payment pending"
// @Router /cart/items/{id} [delete]
func RemoveCartItem(c *gin.Context) {
	st, ok := middleware.GetStoreFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session not loaded"))
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	if !EnsureCartEditable(ctx, c, st) {
		return
	}
	if err := st.Cart.Remove(ctx, c.Param("id")); err != nil {
		log.Printf("[cart.remove] failed to persist cart: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item removed from cart", CartView(st)))
}
