package filter_controller

import (
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-storefront/catalog"
	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/gin-gonic/gin"
)

// GetFilterMetadata godoc
// @Summary Get all filter metadata
// @Description Returns the price range, in-stock count and deals count of the catalog
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Router /store/filters/metadata [get]
func GetFilterMetadata(c *gin.Context) {
	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	cat := services.GetCatalogService().Catalog(ctx)
	metadata := catalog.Metadata(cat.All())

	if !cat.Available {
		c.JSON(http.StatusOK, models.DegradedResponse(c, "Error loading products. Please try again later.", metadata))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata retrieved successfully", metadata))
}
