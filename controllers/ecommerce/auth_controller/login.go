package auth_controller

import (
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	"github.com/Modeva-Ecommerce/modeva-storefront/middleware"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/gin-gonic/gin"
)

// Login godoc
// @Summary Sign in
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body models.LoginRequest true "Credentials"
// @Success 200 {object} models.ApiResponse{data=models.UserResponse}
// @Failure 401 {object} models.ApiResponse
// @Router /auth/login [post]
func Login(c *gin.Context) {
	session, ok := middleware.GetSessionStorage(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session not loaded"))
		return
	}

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Email and password are required"))
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	user, err := services.GetAuthService().Login(ctx, session, req)
	if err != nil {
		respondAuthError(c, "login", err)
		return
	}
	recordSignIn(c, user.Email)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "You have successfully signed in", user.ToResponse()))
}

// GetMe godoc
// @Summary Get the signed-in user
// @Tags Auth
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.UserResponse}
// @Failure 401 {object} models.ApiResponse
// @Router /auth/me [get]
func GetMe(c *gin.Context) {
	session, ok := middleware.GetSessionStorage(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session not loaded"))
		return
	}

	user, err := services.GetAuthService().Current(c.Request.Context(), session)
	if err != nil {
		respondAuthError(c, "me", err)
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not signed in"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "User retrieved successfully", user.ToResponse()))
}
