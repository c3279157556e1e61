package httpserver

import (
	"context"

	"videxcl-srv/internal/middleware"
)

func (srv *HTTPServer) mapHandlers() error {
	ctx := context.Background()
	mw := middleware.New(srv.l, srv.config.InternalConfig)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	api := srv.gin.Group("/api/v1")

	if err := srv.setupAccountsDomain(ctx, api, mw); err != nil {
		return err
	}
	if err := srv.setupThumbnailDomain(ctx, api, mw); err != nil {
		return err
	}
	if err := srv.setupKeywordDomain(ctx, api, mw); err != nil {
		return err
	}
	if err := srv.setupExclusionDomain(ctx, api, mw); err != nil {
		return err
	}
	if err := srv.setupAgecheckDomain(ctx, api, mw); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(middleware.Recovery(srv.l))
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}
