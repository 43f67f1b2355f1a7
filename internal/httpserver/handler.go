package httpserver

import (
	"context"

	"api-scaffold/config"
	"api-scaffold/internal/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const apiPrefix = "/api/v1"

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.jwtManager, srv.cors, srv.rateLimit)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

// registerMiddlewares installs the global chain. The error logger sits
// outside recovery so errors recorded for recovered panics are still logged.
func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(
		mw.RequestID(),
		mw.Logger(),
		mw.ErrorLogger(),
		mw.Recovery(),
		mw.SecurityHeaders(),
		mw.CORS(),
		mw.RateLimit(),
	)

	ctx := context.Background()
	if srv.environment == config.EnvProduction {
		srv.l.Infof(ctx, "CORS mode: production, origins: %v", srv.cors.AllowedOrigins)
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()
	api := srv.gin.Group(apiPrefix)

	for _, setup := range []func(context.Context, *gin.RouterGroup, middleware.Middleware) error{
		srv.setupUserDomain,
		srv.setupItemDomain,
	} {
		if err := setup(ctx, api, mw); err != nil {
			return err
		}
	}

	return nil
}
