// ════════════════════════════════════════════════════════════
// Path: utils/login_tracker.go
// Track storefront sign-in events
// ════════════════════════════════════════════════════════════

package utils

import (
	"context"
	"log"
	"strings"

	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const loginEventsDDL = `
	CREATE TABLE IF NOT EXISTS login_events (
		id           UUID PRIMARY KEY,
		user_email   TEXT NOT NULL,
		session_id   TEXT NOT NULL,
		logged_in_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		ip_address   TEXT,
		user_agent   TEXT,
		device_type  TEXT,
		browser      TEXT,
		os           TEXT
	)
`

// EnsureLoginEventsTable creates the login_events table when missing.
// Without a database pool it does nothing.
func EnsureLoginEventsTable(ctx context.Context) error {
	if config.EcommerceDB == nil {
		return nil
	}
	_, err := config.EcommerceDB.Exec(ctx, loginEventsDDL)
	return err
}

// LogLoginEvent records a sign-in to the database. Without a database
// pool it does nothing.
func LogLoginEvent(c *gin.Context, email, sessionID string) error {
	if config.EcommerceDB == nil {
		return nil
	}
	ctx := c.Request.Context()

	ipAddress := c.ClientIP()
	userAgent := c.GetHeader("User-Agent")

	query := `
		INSERT INTO login_events (
			id, user_email, session_id, logged_in_at, ip_address, user_agent,
			device_type, browser, os
		) VALUES ($1, $2, $3, NOW(), $4, $5, $6, $7, $8)
	`

	_, err := config.EcommerceDB.Exec(ctx, query,
		uuid.New().String(),
		email,
		sessionID,
		ipAddress,
		userAgent,
		ParseDeviceType(userAgent),
		ParseBrowser(userAgent),
		ParseOS(userAgent),
	)
	if err != nil {
		log.Printf("❌ Failed to log login event: %v", err)
		return err
	}

	log.Printf("✅ Login event logged for %s from IP: %s", email, ipAddress)
	return nil
}

// ParseDeviceType determines if the request is from mobile, tablet, or desktop
func ParseDeviceType(userAgent string) string {
	ua := strings.ToLower(userAgent)

	if strings.Contains(ua, "tablet") || strings.Contains(ua, "ipad") {
		return "tablet"
	}
	if strings.Contains(ua, "mobile") || strings.Contains(ua, "android") {
		return "mobile"
	}
	return "desktop"
}

// ParseBrowser extracts browser name from user agent
func ParseBrowser(userAgent string) string {
	ua := strings.ToLower(userAgent)

	switch {
	case strings.Contains(ua, "edg"):
		return "Edge"
	case strings.Contains(ua, "chrome"):
		return "Chrome"
	case strings.Contains(ua, "firefox"):
		return "Firefox"
	case strings.Contains(ua, "safari"):
		return "Safari"
	}
	return "Other"
}

// ParseOS extracts operating system from user agent
func ParseOS(userAgent string) string {
	ua := strings.ToLower(userAgent)

	switch {
	case strings.Contains(ua, "windows"):
		return "Windows"
	case strings.Contains(ua, "iphone"), strings.Contains(ua, "ipad"):
		return "iOS"
	case strings.Contains(ua, "mac os"):
		return "macOS"
	case strings.Contains(ua, "android"):
		return "Android"
	case strings.Contains(ua, "linux"):
		return "Linux"
	}
	return "Other"
}
