package http

import (
	"github.com/gin-gonic/gin"
)

// processFilterReq binds and validates the ItemFilter request body shared by
// POST /items and POST /search.
func (h *handler) processFilterReq(c *gin.Context) (filterReq, error) {
	var req filterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processDetailReq binds the integer item key from the URI.
func (h *handler) processDetailReq(c *gin.Context) (detailReq, error) {
	var req detailReq
	if err := c.ShouldBindUri(&req); err != nil {
		return req, err
	}
	return req, nil
}
