package http

import (
	"github.com/gin-gonic/gin"

	"videxcl-srv/pkg/response"
)

// Run - Handler for POST /api/v1/accounts/run
// Root trigger of the pipeline: fans out one work unit per enabled account.
func (h *handler) Run(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRunRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "accounts.delivery.http.Run: processRunRequest failed: %v", err)
		response.BadRequest(c, err.Error())
		return
	}

	output, err := h.uc.Select(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "accounts.delivery.http.Run: Select failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newRunResp(output))
}
