package middleware

import (
	"slices"
	"strings"

	pkgErrors "api-scaffold/pkg/errors"
	"api-scaffold/pkg/response"
	"api-scaffold/pkg/scope"

	"github.com/gin-gonic/gin"
)

const payloadKey = "scope"

// Auth requires a valid Bearer token and stores its payload on the request.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			response.Error(c, pkgErrors.NewAuthentication("Missing bearer token"))
			return
		}

		payload, err := m.jwtManager.Verify(strings.TrimSpace(token))
		if err != nil {
			m.l.Debugf(c.Request.Context(), "middleware.Auth: %v", err)
			response.Error(c, pkgErrors.NewAuthentication("Invalid or expired token", pkgErrors.WithCause(err)))
			return
		}

		c.Set(payloadKey, payload)
		c.Request = c.Request.WithContext(scope.SetPayloadToContext(c.Request.Context(), payload))
		c.Next()
	}
}

// RequireRoles allows only callers whose role is listed. It must run after Auth.
func (m Middleware) RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, ok := GetPayload(c)
		if !ok {
			response.Error(c, pkgErrors.NewAuthentication("Authentication required"))
			return
		}
		if !slices.Contains(roles, payload.Role) {
			response.Error(c, pkgErrors.NewAuthorization("Insufficient role",
				pkgErrors.WithField("required", roles),
			))
			return
		}
		c.Next()
	}
}

// GetPayload returns the caller stored by Auth.
func GetPayload(c *gin.Context) (scope.Payload, bool) {
	v, ok := c.Get(payloadKey)
	if !ok {
		return scope.Payload{}, false
	}
	p, ok := v.(scope.Payload)
	return p, ok
}
