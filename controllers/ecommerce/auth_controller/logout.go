package auth_controller

import (
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	"github.com/Modeva-Ecommerce/modeva-storefront/middleware"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/gin-gonic/gin"
)

// Logout godoc
// @Summary Sign out
// @Description Forgets the signed-in user. Cart, wishlist and orders stay with the session.
// @Tags Auth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	session, ok := middleware.GetSessionStorage(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session not loaded"))
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	if err := services.GetAuthService().Logout(ctx, session); err != nil {
		respondAuthError(c, "logout", err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "You have been logged out", nil))
}
