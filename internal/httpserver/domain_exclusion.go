package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	exclusionHTTP "videxcl-srv/internal/exclusion/delivery/http"
	exclusionPostgre "videxcl-srv/internal/exclusion/repository/postgre"
	exclusionUsecase "videxcl-srv/internal/exclusion/usecase"
	"videxcl-srv/internal/middleware"
)

func (srv *HTTPServer) setupExclusionDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := exclusionPostgre.New(srv.postgresDB)

	uc := exclusionUsecase.New(srv.l, repo, srv.adsClient, srv.objectStore,
		srv.config.MinIO.DataBucket)

	handler := exclusionHTTP.New(srv.l, uc)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Exclusion domain registered")
	return nil
}
