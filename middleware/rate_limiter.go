package middleware

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	RateLimitHeader     = "X-RateLimit-Limit"
	RateRemainingHeader = "X-RateLimit-Remaining"
	RateResetHeader     = "X-RateLimit-Reset"
)

// RateLimiter is a fixed-window limiter keyed by client IP, method and
// route. With no client configured every request passes, and a Redis
// failure lets the request through rather than taking the shop down.
func RateLimiter(client *redis.Client, maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil || maxRequests <= 0 {
			c.Next()
			return
		}

		key := "rl:" + c.ClientIP() + ":" + c.Request.Method + ":" + c.FullPath()
		count, ttl, err := hit(c.Request.Context(), client, key, window)
		if err != nil {
			log.Printf("⚠️ [ratelimit] redis unavailable, skipping limit: %v", err)
			c.Next()
			return
		}

		remaining := maxRequests - int(count)
		if remaining < 0 {
			remaining = 0
		}
		rate := &models.RateLimiter{
			Limit:          maxRequests,
			Remaining:      remaining,
			ResetAt:        time.Now().Add(ttl),
			ResetInSeconds: int(ttl.Seconds()),
		}
		c.Set("rateLimiter", rate)

		c.Header(RateLimitHeader, strconv.Itoa(rate.Limit))
		c.Header(RateRemainingHeader, strconv.Itoa(rate.Remaining))
		c.Header(RateResetHeader, strconv.FormatInt(rate.ResetAt.Unix(), 10))

		if int(count) > maxRequests {
			c.Header("Retry-After", strconv.Itoa(rate.ResetInSeconds))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.ApiResponse{
				Message: "Too many requests",
				Error:   true,
				Rate:    rate,
			})
			return
		}

		c.Next()
	}
}

// hit counts one request in the current window and returns the new count
// with the time left before the window resets.
func hit(ctx context.Context, client *redis.Client, key string, window time.Duration) (int64, time.Duration, error) {
	var incr *redis.IntCmd
	var pttl *redis.DurationCmd
	_, err := client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pttl = pipe.PTTL(ctx, key)
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	ttl := pttl.Val()
	if ttl < 0 {
		// new window
		if err := client.PExpire(ctx, key, window).Err(); err != nil {
			return 0, 0, err
		}
		ttl = window
	}
	return incr.Val(), ttl, nil
}
