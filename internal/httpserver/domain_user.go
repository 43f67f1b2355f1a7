package httpserver

import (
	"context"

	"api-scaffold/internal/middleware"
	userHTTP "api-scaffold/internal/user/delivery/http"
	userRepo "api-scaffold/internal/user/repository/postgre"
	userUC "api-scaffold/internal/user/usecase"

	"github.com/gin-gonic/gin"
)

// setupUserDomain registers /api/v1/auth and /api/v1/users.
func (srv HTTPServer) setupUserDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := userRepo.New(srv.db, srv.l)
	uc := userUC.New(repo, srv.jwtManager, srv.l)
	h := userHTTP.New(srv.l, uc)

	userHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "User domain registered")
	return nil
}
