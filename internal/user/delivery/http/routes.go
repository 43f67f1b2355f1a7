package http

import (
	"api-scaffold/internal/middleware"
	"api-scaffold/internal/model"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the auth and user endpoints.
// Login and registration are public; listing and deleting users need the admin role.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Create)
	}

	users := rg.Group("/users", mw.Auth())
	{
		users.GET("/me", h.Me)
		users.GET("/:id", h.Detail)
		users.PUT("/:id", h.Update)

		admin := users.Group("", mw.RequireRoles(model.RoleAdmin))
		admin.GET("", h.List)
		admin.POST("", h.Create)
		admin.DELETE("/:id", h.Delete)
	}
}
