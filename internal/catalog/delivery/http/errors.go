package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"items-fixture-api/internal/catalog"
	pkgErrors "items-fixture-api/pkg/errors"
	"items-fixture-api/pkg/response"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) pkgErrors.HTTPError {
	switch {
	case errors.Is(err, catalog.ErrItemNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "item not found")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, response.DefaultErrorMessage)
	}
}

// respondError writes the envelope matching the mapped status.
func (h *handler) respondError(c *gin.Context, err error) {
	httpErr := h.mapError(err)
	switch httpErr.Status {
	case http.StatusNotFound:
		response.NotFound(c, httpErr)
	default:
		response.InternalError(c, httpErr)
	}
}
