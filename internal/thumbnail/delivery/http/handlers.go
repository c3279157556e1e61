package http

import (
	"github.com/gin-gonic/gin"

	"videxcl-srv/pkg/response"
)

// Dispatch - Handler for POST /api/v1/thumbnails/dispatch
// Manual trigger for a classification run, normally kicked off by the report
// extractor.
func (h *handler) Dispatch(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDispatchRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "thumbnail.delivery.http.Dispatch: processDispatchRequest failed: %v", err)
		response.BadRequest(c, err.Error())
		return
	}

	output, err := h.uc.Dispatch(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "thumbnail.delivery.http.Dispatch: Dispatch failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDispatchResp(output))
}
