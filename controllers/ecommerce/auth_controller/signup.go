package auth_controller

import (
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	"github.com/Modeva-Ecommerce/modeva-storefront/middleware"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/gin-gonic/gin"
)

// Signup godoc
// @Summary Register a shopper
// @Description Registers a user and signs the session in. Duplicate emails are rejected.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body models.SignupRequest true "Signup form"
// @Success 201 {object} models.ApiResponse{data=models.UserResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /auth/signup [post]
func Signup(c *gin.Context) {
	session, ok := middleware.GetSessionStorage(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session not loaded"))
		return
	}

	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Name, email and password are required"))
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	user, err := services.GetAuthService().Signup(ctx, session, req)
	if err != nil {
		respondAuthError(c, "signup", err)
		return
	}
	recordSignIn(c, user.Email)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "You have successfully signed in", user.ToResponse()))
}
