package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the fixture paths to Handler methods. The paths are
// the wire contract schema-driven clients are generated against, so they
// sit at the root rather than under a versioned prefix.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("/items", h.List)
	rg.POST("/search", h.Search)
	rg.GET("/items/:id", h.Detail)
}
