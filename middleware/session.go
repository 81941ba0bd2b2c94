package middleware

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/Modeva-Ecommerce/modeva-storefront/storage"
	"github.com/Modeva-Ecommerce/modeva-storefront/store"
	"github.com/gin-gonic/gin"
)

const (
	SessionCookie      = "storefront_session"
	SessionTokenHeader = "X-Session-Token"
	CartCountHeader    = "X-Cart-Count"
	WishlistHeader     = "X-Wishlist-Count"
)

// Session resolves the browsing session from the signed cookie (or a
// Bearer token), issuing a new one when absent or invalid. The session's
// store is locked for the rest of the request and the header badges are
// kept in sync with every cart and wishlist mutation.
func Session(mgr *services.SessionManager, jwt *services.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := ""
		if token := sessionToken(c); token != "" {
			if claims, err := jwt.VerifySessionJWT(token); err == nil {
				sessionID = claims.SessionID
			}
		}

		if sessionID == "" {
			sessionID = services.NewSessionID()
			token, err := jwt.GenerateSessionJWT(sessionID)
			if err != nil {
				log.Printf("❌ [session.issue] failed to sign session token: %v", err)
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to start session"))
				c.Abort()
				return
			}
			secure := config.Storefront.Env == "production"
			c.SetCookie(SessionCookie, token, int(jwt.TTL().Seconds()), "/", "", secure, true)
			c.Header(SessionTokenHeader, token)
		}

		// bounds the handler and the session lock it holds
		ctx, cancel := config.WithRequestTimeout(c.Request.Context())
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		st, release, err := mgr.Open(ctx, sessionID)
		if err != nil {
			log.Printf("❌ [session.open] session %s: %v", sessionID, err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load session"))
			c.Abort()
			return
		}
		defer release()

		writeBadges(c, st.Badges())
		unsubscribe := st.Subscribe(func(store.Event) {
			writeBadges(c, st.Badges())
		})
		defer unsubscribe()

		c.Set("sessionID", sessionID)
		c.Set("store", st)
		c.Set("badges", models.BadgeSource(st.Badges))

		c.Next()
	}
}

func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}
	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

func writeBadges(c *gin.Context, b models.Badges) {
	c.Header(CartCountHeader, strconv.Itoa(b.CartCount))
	c.Header(WishlistHeader, strconv.Itoa(b.WishlistCount))
}

// GetStoreFromContext returns the store opened by Session.
func GetStoreFromContext(c *gin.Context) (*store.Store, bool) {
	v, exists := c.Get("store")
	if !exists {
		return nil, false
	}
	st, ok := v.(*store.Store)
	return st, ok
}

// GetSessionStorage returns the session-scoped backend opened by Session.
func GetSessionStorage(c *gin.Context) (storage.Store, bool) {
	st, ok := GetStoreFromContext(c)
	if !ok {
		return nil, false
	}
	return st.Storage(), true
}

func GetSessionIDFromContext(c *gin.Context) (string, bool) {
	id, exists := c.Get("sessionID")
	if !exists {
		return "", false
	}
	return id.(string), true
}
