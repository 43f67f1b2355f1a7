package middleware

import (
	pkgErrors "api-scaffold/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorLogger logs the errors handlers recorded with c.Error, at a level
// derived from their severity.
func (m Middleware) ErrorLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		ctx := c.Request.Context()
		for _, ginErr := range c.Errors {
			e := pkgErrors.From(ginErr.Err)
			l := m.l.With(
				zap.Object("error", e),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
			)
			switch e.Severity() {
			case pkgErrors.SeverityCritical, pkgErrors.SeverityHigh:
				l.Error(ctx, e.Error())
			case pkgErrors.SeverityMedium:
				l.Warn(ctx, e.Error())
			default:
				l.Info(ctx, e.Error())
			}
		}
	}
}
