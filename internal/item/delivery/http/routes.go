package http

import (
	"api-scaffold/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Every item route requires authentication.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	items := rg.Group("/items", mw.Auth())
	{
		items.POST("", h.Create)
		items.POST("/bulk", h.CreateBulk)
		items.GET("", h.List)
		items.PATCH("/status", h.UpdateStatusBulk)
		items.GET("/:id", h.Detail)
		items.PUT("/:id", h.Update)
		items.DELETE("/:id", h.Delete)
	}
}
