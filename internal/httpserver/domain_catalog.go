package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	catalogHTTP "items-fixture-api/internal/catalog/delivery/http"
	catalogRepo "items-fixture-api/internal/catalog/repository/memory"
	catalogUC "items-fixture-api/internal/catalog/usecase"
)

// setupCatalogDomain initializes the catalog domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(...)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(rg, h)
func (srv HTTPServer) setupCatalogDomain(ctx context.Context, rg *gin.RouterGroup) error {
	// 1. Repository: the seeded in-memory store
	repo := catalogRepo.New(srv.l, catalogRepo.Seed())

	// 2. UseCase
	uc := catalogUC.New(repo, srv.l)

	// 3. HTTP Handler
	h := catalogHTTP.New(srv.l, uc)

	// 4. Routes: POST /items, POST /search, GET /items/:id
	catalogHTTP.RegisterRoutes(rg, h)

	srv.l.Infof(ctx, "Catalog domain registered")
	return nil
}
