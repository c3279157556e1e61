package http

import (
	"github.com/gin-gonic/gin"

	"videxcl-srv/internal/exclusion"
	"videxcl-srv/internal/middleware"
	"videxcl-srv/pkg/log"
)

// Handler defines the HTTP handler interface
type Handler interface {
	Apply(c *gin.Context)
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

// handler - HTTP handler implementation
type handler struct {
	l  log.Logger
	uc exclusion.UseCase
}

// New creates a new HTTP handler
func New(l log.Logger, uc exclusion.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
