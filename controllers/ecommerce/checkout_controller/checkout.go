package checkout_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	"github.com/Modeva-Ecommerce/modeva-storefront/middleware"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/gin-gonic/gin"
)

func toResponse(sess models.CheckoutSession) models.CheckoutResponse {
	return models.CheckoutResponse{State: sess.State, Email: sess.Email, Payment: sess.Payment}
}

// respondCheckoutError maps checkout errors onto status codes.
func respondCheckoutError(c *gin.Context, action string, err error) {
	switch {
	case errors.Is(err, services.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Your cart is empty"))
	case errors.Is(err, services.ErrInvalidEmail):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Please enter a valid email address"))
	case errors.Is(err, services.ErrInvalidTransition):
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Checkout step not allowed right now"))
	case errors.Is(err, services.ErrReferenceMismatch):
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Payment reference does not match this checkout"))
	case errors.Is(err, services.ErrAmountMismatch):
		log.Printf("❌ [checkout.%s] %v", action, err)
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Payment amount does not match this checkout"))
	default:
		log.Printf("[checkout.%s] %v", action, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Checkout failed"))
	}
}

// GetCheckout godoc
// @Summary Get the session's checkout state
// @Tags Checkout
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CheckoutResponse}
// @Router /checkout [get]
func GetCheckout(c *gin.Context) {
	st, ok := middleware.GetStoreFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session not loaded"))
		return
	}

	sess, err := services.GetCheckoutService().State(c.Request.Context(), st)
	if err != nil {
		respondCheckoutError(c, "state", err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Checkout state retrieved", toResponse(sess)))
}

// BeginCheckout godoc
// @Summary Start checkout
// @Description Opens the email step. The last email used in this session is returned for prefill.
// @Tags Checkout
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CheckoutResponse}
// @Failure 400 {object} models.ApiResponse "Cart is empty"
// @Failure 409 {object} models.ApiResponse "Checkout already in progress"
// @Router /checkout [post]
func BeginCheckout(c *gin.Context) {
	st, ok := middleware.GetStoreFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session not loaded"))
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	sess, err := services.GetCheckoutService().Begin(ctx, st)
	if err != nil {
		respondCheckoutError(c, "begin", err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Enter your email to continue", toResponse(sess)))
}

// SubmitCheckoutEmail godoc
// @Summary Submit the checkout email
// @Description Validates the email and returns the payment widget setup payload
// @Tags Checkout
// @Accept json
// @Produce json
// @Param body body models.CheckoutEmailRequest true "Email"
// @Success 200 {object} models.ApiResponse{data=models.CheckoutResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /checkout/email [post]
func SubmitCheckoutEmail(c *gin.Context) {
	st, ok := middleware.GetStoreFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session not loaded"))
		return
	}

	var req models.CheckoutEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	sess, err := services.GetCheckoutService().SubmitEmail(ctx, st, req.Email)
	if err != nil {
		respondCheckoutError(c, "email", err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Payment initialized", toResponse(sess)))
}

// CancelCheckout godoc
// @Summary Cancel checkout
// @Description Called when the email dialog or the payment widget is closed. The cart is kept.
// @Tags Checkout
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CheckoutResponse}
// @Failure 409 {object} models.ApiResponse
// @Router /checkout/cancel [post]
func CancelCheckout(c *gin.Context) {
	st, ok := middleware.GetStoreFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session not loaded"))
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	sess, err := services.GetCheckoutService().Cancel(ctx, st)
	if err != nil {
		respondCheckoutError(c, "cancel", err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Checkout canceled", toResponse(sess)))
}

// CompleteCheckout godoc
// @Summary Payment success callback
// @Description Archives the cart as a paid order and empties the cart
// @Tags Checkout
// @Accept json
// @Produce json
// @Param body body models.PaymentCallbackRequest true "Widget response"
// @Success 200 {object} models.ApiResponse{data=models.CheckoutResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /checkout/callback [post]
func CompleteCheckout(c *gin.Context) {
	st, ok := middleware.GetStoreFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session not loaded"))
		return
	}

	var req models.PaymentCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "reference is required"))
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	order, err := services.GetCheckoutService().Complete(ctx, st, req.Reference, req.Response)
	if err != nil {
		respondCheckoutError(c, "complete", err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Payment successful! Thank you for your order.", models.CheckoutResponse{
		State: models.CheckoutSettled,
		Order: &order,
	}))
}
