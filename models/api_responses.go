package models

import (
	"time"

	"github.com/gin-gonic/gin"
)

type ApiResponse struct {
	Message         string       `json:"message"`
	Data            any          `json:"data,omitempty"`
	Error           bool         `json:"error,omitempty"`
	Meta            *Pagination  `json:"meta"`
	Badges          *Badges      `json:"badges,omitempty"`
	Rate            *RateLimiter `json:"rate_limit,omitempty"`
	RequestedEntity string       `json:"requested_entity,omitempty"`
}

type Pagination struct {
	Page       int `json:"page" example:"1"`
	Limit      int `json:"limit" example:"10"`
	Total      int `json:"total" example:"42"`
	TotalPages int `json:"total_pages" example:"5"`
}

type RateLimiter struct {
	Limit          int       `json:"limit"`
	Remaining      int       `json:"remaining"`
	ResetAt        time.Time `json:"reset_at"`
	ResetInSeconds int       `json:"reset_in_seconds"`
}

// BadgeSource reports the session's current header counters. The session
// middleware stores one in the gin context under "badges".
type BadgeSource func() Badges

// helper to fetch rate limiter info from Gin context
func getRateFromContext(c *gin.Context) *RateLimiter {
	if c == nil {
		return nil
	}
	if rate, exists := c.Get("rateLimiter"); exists {
		if rl, ok := rate.(*RateLimiter); ok {
			return rl
		}
	}
	return nil
}

func getBadgesFromContext(c *gin.Context) *Badges {
	if c == nil {
		return nil
	}
	if v, exists := c.Get("badges"); exists {
		if src, ok := v.(BadgeSource); ok {
			b := src()
			return &b
		}
	}
	return nil
}

func requestedEntity(c *gin.Context) string {
	if c == nil || c.Request == nil {
		return ""
	}
	return c.Request.Method + " " + c.FullPath()
}

func SuccessResponse(c *gin.Context, message string, data any) ApiResponse {
	return ApiResponse{
		Message:         message,
		Data:            data,
		Badges:          getBadgesFromContext(c),
		Rate:            getRateFromContext(c),
		RequestedEntity: requestedEntity(c),
	}
}

func PaginatedResponse(c *gin.Context, message string, data any, meta *Pagination) ApiResponse {
	return ApiResponse{
		Message:         message,
		Data:            data,
		Meta:            meta,
		Badges:          getBadgesFromContext(c),
		Rate:            getRateFromContext(c),
		RequestedEntity: requestedEntity(c),
	}
}

// DegradedResponse carries usable (empty) data alongside an error flag, as
// the product listing does when the catalog could not be loaded.
func DegradedResponse(c *gin.Context, message string, data any) ApiResponse {
	resp := SuccessResponse(c, message, data)
	resp.Error = true
	return resp
}

func ErrorResponse(c *gin.Context, message string) ApiResponse {
	return ApiResponse{
		Message:         message,
		Error:           true,
		Badges:          getBadgesFromContext(c),
		Rate:            getRateFromContext(c),
		RequestedEntity: requestedEntity(c),
	}
}

// NewPagination clamps page and limit and computes the page count.
func NewPagination(page, limit, total int) *Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return &Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	}
}
