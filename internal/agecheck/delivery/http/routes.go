package http

import (
	"github.com/gin-gonic/gin"

	"videxcl-srv/internal/middleware"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	group := r.Group("/age-evaluations")
	group.Use(mw.InternalAuth())
	{
		group.POST("/run", h.Run)
	}
}
