package http

import (
	"github.com/gin-gonic/gin"

	"videxcl-srv/pkg/response"
)

// Apply - Handler for POST /api/v1/exclusions/apply
// Pushes matched placements to the account's shared exclusion list.
func (h *handler) Apply(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processApplyRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "exclusion.delivery.http.Apply: processApplyRequest failed: %v", err)
		response.BadRequest(c, err.Error())
		return
	}

	output, err := h.uc.Apply(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "exclusion.delivery.http.Apply: Apply failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newApplyResp(output))
}
