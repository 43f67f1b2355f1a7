package middleware

import (
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS applies the configured cross-origin policy.
func (m Middleware) CORS() gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     m.cors.AllowedMethods,
		AllowHeaders:     m.cors.AllowedHeaders,
		ExposeHeaders:    []string{HeaderRequestID, "Retry-After"},
		AllowCredentials: m.cors.AllowCredentials,
		MaxAge:           m.cors.MaxAge,
	}
	if slices.Contains(m.cors.AllowedOrigins, "*") {
		// A wildcard cannot be combined with credentials; echo the origin instead.
		cfg.AllowOriginFunc = func(string) bool { return true }
	} else {
		cfg.AllowOrigins = m.cors.AllowedOrigins
	}
	return cors.New(cfg)
}
