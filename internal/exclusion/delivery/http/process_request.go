package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processApplyRequest(c *gin.Context) (applyReq, error) {
	var req applyReq

	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(c.Request.Context(), "exclusion.delivery.http.processApplyRequest: ShouldBindJSON failed: %v", err)
		return req, err
	}

	return req, nil
}
