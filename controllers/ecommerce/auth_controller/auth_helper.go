package auth_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-storefront/middleware"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/Modeva-Ecommerce/modeva-storefront/utils"
	"github.com/gin-gonic/gin"
)

func respondAuthError(c *gin.Context, action string, err error) {
	switch {
	case errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Email already registered"))
	case errors.Is(err, services.ErrPasswordMismatch):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Passwords do not match"))
	case errors.Is(err, services.ErrInvalidEmail):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Please enter a valid email address"))
	case errors.Is(err, services.ErrMissingFields):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Name, email and password are required"))
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
	default:
		log.Printf("[auth.%s] %v", action, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Authentication failed"))
	}
}

// recordSignIn stores the sign-in event when a database is configured.
// Failures are logged and never block the sign-in.
func recordSignIn(c *gin.Context, email string) {
	sessionID, _ := middleware.GetSessionIDFromContext(c)
	if err := utils.LogLoginEvent(c, email, sessionID); err != nil {
		log.Printf("⚠️ [auth.login] sign-in event not recorded: %v", err)
	}
}
