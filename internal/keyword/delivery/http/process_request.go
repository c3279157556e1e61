package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processRunRequest(c *gin.Context) (runReq, error) {
	var req runReq

	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(c.Request.Context(), "keyword.delivery.http.processRunRequest: ShouldBindJSON failed: %v", err)
		return req, err
	}

	return req, nil
}
