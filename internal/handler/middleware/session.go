package middleware

import (
	"appointment-assistant/internal/pkg/config"
	"appointment-assistant/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionHeader   = "X-Session-ID"
	ctxSessionIDKey = "session_id"
)

// SessionMiddleware resolves the conversation id from the header, then the cookie, and mints one when
// neither carries a valid UUID. The id is echoed back in both places.
func SessionMiddleware(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(SessionHeader)
		if id == "" {
			id = cookie.GetSessionID(c, cfg.Cookie)
		}
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Set(ctxSessionIDKey, id)
		c.Header(SessionHeader, id)
		cookie.SetSessionCookie(c, cfg.Cookie, id, cfg.Session.IdleTTL)
		c.Next()
	}
}

func GetSessionID(c *gin.Context) string {
	if v, exists := c.Get(ctxSessionIDKey); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
