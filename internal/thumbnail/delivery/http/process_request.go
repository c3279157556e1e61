package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processDispatchRequest(c *gin.Context) (dispatchReq, error) {
	var req dispatchReq

	if c.Request.ContentLength == 0 {
		return req, nil // All fields optional, empty body means defaults
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(c.Request.Context(), "thumbnail.delivery.http.processDispatchRequest: ShouldBindJSON failed: %v", err)
		return req, err
	}

	return req, nil
}
