package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"videxcl-srv/internal/middleware"
	thumbnailHTTP "videxcl-srv/internal/thumbnail/delivery/http"
	thumbnailProducer "videxcl-srv/internal/thumbnail/delivery/kafka/producer"
	thumbnailPostgre "videxcl-srv/internal/thumbnail/repository/postgre"
	thumbnailUsecase "videxcl-srv/internal/thumbnail/usecase"
)

func (srv *HTTPServer) setupThumbnailDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := thumbnailPostgre.New(srv.postgresDB)
	producer := thumbnailProducer.New(srv.l, srv.producer)

	uc := thumbnailUsecase.New(srv.l, repo, srv.visionClient, srv.httpClient,
		srv.objectStore, producer, thumbnailUsecase.Config{
			CropoutsBucket:    srv.config.MinIO.CropoutsBucket,
			DispatchLimit:     srv.config.Pipeline.DispatchLimit,
			CropMinConfidence: srv.config.Pipeline.CropMinConfidence,
			WorkerLimit:       srv.config.Pipeline.WorkerLimit,
		})

	handler := thumbnailHTTP.New(srv.l, uc)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Thumbnail domain registered")
	return nil
}
