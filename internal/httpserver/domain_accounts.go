package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	accountsHTTP "videxcl-srv/internal/accounts/delivery/http"
	accountsProducer "videxcl-srv/internal/accounts/delivery/kafka/producer"
	accountsUsecase "videxcl-srv/internal/accounts/usecase"
	"videxcl-srv/internal/middleware"
)

func (srv *HTTPServer) setupAccountsDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	producer := accountsProducer.New(srv.l, srv.producer)

	uc := accountsUsecase.New(srv.l, srv.sheetsClient, producer,
		srv.config.Sheets.AccountsRange, srv.config.Pipeline.WorkerLimit)

	handler := accountsHTTP.New(srv.l, uc)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Accounts domain registered")
	return nil
}
