package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	keywordHTTP "videxcl-srv/internal/keyword/delivery/http"
	keywordPostgre "videxcl-srv/internal/keyword/repository/postgre"
	keywordUsecase "videxcl-srv/internal/keyword/usecase"
	"videxcl-srv/internal/middleware"
)

func (srv *HTTPServer) setupKeywordDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := keywordPostgre.New(srv.postgresDB)

	uc := keywordUsecase.New(srv.l, repo, srv.sheetsClient, srv.config.Sheets.KeywordsRange)

	handler := keywordHTTP.New(srv.l, uc)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Keyword domain registered")
	return nil
}
