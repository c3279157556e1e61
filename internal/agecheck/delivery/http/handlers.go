package http

import (
	"github.com/gin-gonic/gin"

	"videxcl-srv/pkg/response"
)

// Run - Handler for POST /api/v1/age-evaluations/run
// Kicks off an age evaluation run over videos that have no verdict yet.
func (h *handler) Run(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRunRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "agecheck.delivery.http.Run: processRunRequest failed: %v", err)
		response.BadRequest(c, err.Error())
		return
	}

	output, err := h.uc.Dispatch(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "agecheck.delivery.http.Run: Dispatch failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newRunResp(output))
}
