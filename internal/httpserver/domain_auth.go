package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	authHTTP "inventory-management/internal/auth/delivery/http"
	authUC "inventory-management/internal/auth/usecase"
)

// setupAuthDomain registers the public sign-in endpoint.
func (srv *HTTPServer) setupAuthDomain(ctx context.Context, api *gin.RouterGroup) error {
	uc := authUC.New(srv.userRepo, srv.jwtManager, srv.l)
	h := authHTTP.New(srv.l, uc)

	// Routes: registers /v1/auth/signin
	authHTTP.RegisterRoutes(api.Group("/auth"), h)

	srv.l.Infof(ctx, "Auth domain registered")
	return nil
}
