package order_controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/Modeva-Ecommerce/modeva-storefront/middleware"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/Modeva-Ecommerce/modeva-storefront/storage"
	"github.com/gin-gonic/gin"
)

// GetOrders godoc
// @Summary List the session's paid orders
// @Description Newest first
// @Tags Orders
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.ApiResponse{data=[]models.Order}
// @Router /orders [get]
func GetOrders(c *gin.Context) {
	session, ok := middleware.GetSessionStorage(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session not loaded"))
		return
	}

	orders, err := services.GetCheckoutService().Orders(c.Request.Context(), session)
	if err != nil {
		log.Printf("[orders.list] failed to load orders: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load orders"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit > 100 {
		limit = 100
	}
	meta := models.NewPagination(page, limit, len(orders))

	newestFirst := make([]models.Order, 0, len(orders))
	for i := len(orders) - 1; i >= 0; i-- {
		newestFirst = append(newestFirst, orders[i])
	}

	start := (meta.Page - 1) * meta.Limit
	if start > len(newestFirst) {
		start = len(newestFirst)
	}
	end := start + meta.Limit
	if end > len(newestFirst) {
		end = len(newestFirst)
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Orders retrieved successfully", newestFirst[start:end], meta))
}

// GetOrderByReference godoc
// @Summary Get one paid order
// @Tags Orders
// @Produce json
// @Param reference path string true "Payment reference"
// @Success 200 {object} models.ApiResponse{data=models.Order}
// @Failure 404 {object} models.ApiResponse
// @Router /orders/{reference} [get]
func GetOrderByReference(c *gin.Context) {
	session, ok := middleware.GetSessionStorage(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session not loaded"))
		return
	}

	order, err := services.GetCheckoutService().FindOrder(c.Request.Context(), session, c.Param("reference"))
	if errors.Is(err, services.ErrOrderNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		return
	}
	if err != nil {
		log.Printf("[orders.get] failed to load orders: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load order"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order retrieved successfully", order))
}

// DownloadOrderReceiptPDF godoc
// @Summary Download a paid order's receipt
// @Tags Orders
// @Produce application/pdf
// @Param reference path string true "Payment reference"
// @Success 200 "PDF file"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /orders/{reference}/receipt [get]
func DownloadOrderReceiptPDF(c *gin.Context) {
	reference := c.Param("reference")
	log.Printf("[order.download-receipt] request for order: %s", reference)

	session, ok := middleware.GetSessionStorage(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session not loaded"))
		return
	}
	ctx := c.Request.Context()

	order, err := services.GetCheckoutService().FindOrder(ctx, session, reference)
	if errors.Is(err, services.ErrOrderNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		return
	}
	if err != nil {
		log.Printf("[order.download-receipt] failed to load orders: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	var email string
	if _, err := storage.LoadJSON(ctx, session, storage.KeyUserEmail, &email); err != nil {
		log.Printf("[order.download-receipt] failed to load email: %v", err)
	}

	pdfBuffer, err := services.GenerateReceiptPDF(order, email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate receipt"))
		return
	}

	filename := fmt.Sprintf("receipt-%s.pdf", order.Reference)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, filename, filename))
	c.Header("Content-Length", fmt.Sprintf("%d", pdfBuffer.Len()))
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Header("Pragma", "no-cache")
	c.Header("Expires", "0")

	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())

	log.Printf("[order.download-receipt] receipt PDF downloaded for order %s", reference)
}
