package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	agecheckHTTP "videxcl-srv/internal/agecheck/delivery/http"
	agecheckProducer "videxcl-srv/internal/agecheck/delivery/kafka/producer"
	agecheckPostgre "videxcl-srv/internal/agecheck/repository/postgre"
	agecheckUsecase "videxcl-srv/internal/agecheck/usecase"
	"videxcl-srv/internal/middleware"
)

func (srv *HTTPServer) setupAgecheckDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := agecheckPostgre.New(srv.postgresDB)
	producer := agecheckProducer.New(srv.l, srv.producer)

	uc := agecheckUsecase.New(srv.l, repo, srv.geminiClient, srv.httpClient,
		srv.sheetsClient, producer, agecheckUsecase.Config{
			DispatchLimit: srv.config.Pipeline.DispatchLimit,
			BatchSize:     srv.config.Pipeline.AgeBatchSize,
			WorkerLimit:   srv.config.Pipeline.WorkerLimit,
		})

	handler := agecheckHTTP.New(srv.l, uc)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Agecheck domain registered")
	return nil
}
