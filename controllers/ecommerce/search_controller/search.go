package search_controller

import (
	"log"
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	"github.com/Modeva-Ecommerce/modeva-storefront/controllers/ecommerce/product_controller"
	"github.com/Modeva-Ecommerce/modeva-storefront/middleware"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/gin-gonic/gin"
)

type searchResponse struct {
	Term     string                             `json:"term"`
	Products []models.StorefrontProductResponse `json:"products"`
	Count    int                                `json:"count"`
}

// SearchProducts godoc
// @Summary Search products by name
// @Description Case-insensitive name match over sale and new products. The results are remembered for the session.
// @Tags store
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {object} models.ApiResponse
// @Router /store/search [get]
func SearchProducts(c *gin.Context) {
	session, ok := middleware.GetSessionStorage(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session not loaded"))
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	term := c.Query("q")
	found, searched, err := services.GetSearchService().Search(ctx, session, term)
	if err != nil {
		log.Printf("[store.search] failed to store results: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to store search results"))
		return
	}

	message := "Search results retrieved successfully"
	if !searched {
		message = "Empty search term"
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, searchResponse{
		Term:     term,
		Products: product_controller.ToCards(c, found),
		Count:    len(found),
	}))
}

// GetSearchResults godoc
// @Summary Get the session's last search results
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /store/search/results [get]
func GetSearchResults(c *gin.Context) {
	session, ok := middleware.GetSessionStorage(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session not loaded"))
		return
	}

	found, err := services.GetSearchService().Last(c.Request.Context(), session)
	if err != nil {
		log.Printf("[store.search-results] failed to load results: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load search results"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Search results retrieved successfully", searchResponse{
		Products: product_controller.ToCards(c, found),
		Count:    len(found),
	}))
}
