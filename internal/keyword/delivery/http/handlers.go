package http

import (
	"github.com/gin-gonic/gin"

	"videxcl-srv/pkg/response"
)

// Run - Handler for POST /api/v1/keywords/run
// On-demand full recompute of the keyword match materialization.
func (h *handler) Run(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRunRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "keyword.delivery.http.Run: processRunRequest failed: %v", err)
		response.BadRequest(c, err.Error())
		return
	}

	output, err := h.uc.Run(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "keyword.delivery.http.Run: Run failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newRunResp(output))
}
