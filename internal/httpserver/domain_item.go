package httpserver

import (
	"context"

	itemHTTP "api-scaffold/internal/item/delivery/http"
	itemRepo "api-scaffold/internal/item/repository/postgre"
	itemUC "api-scaffold/internal/item/usecase"
	"api-scaffold/internal/middleware"

	"github.com/gin-gonic/gin"
)

// setupItemDomain initializes the item domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.db, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) setupItemDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := itemRepo.New(srv.db, srv.l)
	uc := itemUC.New(repo, srv.l)
	h := itemHTTP.New(srv.l, uc)

	// registers /api/v1/items
	itemHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Item domain registered")
	return nil
}
