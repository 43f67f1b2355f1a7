package middleware

import (
	"fmt"

	pkgErrors "api-scaffold/pkg/errors"
	"api-scaffold/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into an Internal error response.
func (m Middleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				var cause error
				if err, ok := r.(error); ok {
					cause = err
				} else {
					cause = fmt.Errorf("%v", r)
				}
				response.Error(c, pkgErrors.New(pkgErrors.KindInternal, "panic recovered",
					pkgErrors.WithCause(cause),
				))
			}
		}()
		c.Next()
	}
}
