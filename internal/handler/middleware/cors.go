package middleware

import (
	"log/slog"
	"net/http"
	"slices"

	"appointment-assistant/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware always allows and exposes the session header; browser clients read the minted id from it.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     withHeader(cfg.AllowHeaders, SessionHeader),
		ExposeHeaders:    withHeader(cfg.ExposeHeaders, SessionHeader),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "AllowOrigins", cfg.AllowOrigins, "ExposeHeaders", corsCfg.ExposeHeaders)
	return cors.New(corsCfg)
}

func withHeader(headers []string, h string) []string {
	canonical := http.CanonicalHeaderKey(h)
	for _, existing := range headers {
		if http.CanonicalHeaderKey(existing) == canonical {
			return headers
		}
	}
	return append(slices.Clone(headers), h)
}
