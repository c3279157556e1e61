package http

import (
	"github.com/gin-gonic/gin"

	"videxcl-srv/internal/agecheck"
	"videxcl-srv/internal/middleware"
	"videxcl-srv/pkg/log"
)

// Handler defines the HTTP handler interface
type Handler interface {
	Run(c *gin.Context)
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

// handler - HTTP handler implementation
type handler struct {
	l  log.Logger
	uc agecheck.UseCase
}

// New creates a new HTTP handler
func New(l log.Logger, uc agecheck.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
