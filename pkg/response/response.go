package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new OK envelope with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with the enveloped data. Used by system routes.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Raw sends 200 JSON with the payload exactly as given, no envelope.
// Fixture endpoints are read by schema-driven clients that expect the
// documented shape with no wrapper around it.
func Raw(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// Error sends a 400 envelope. fieldErrs, when non-nil, lists per-field
// validation messages under "errors".
func Error(c *gin.Context, err error, fieldErrs any) {
	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: 1,
		Message:   err.Error(),
		Errors:    fieldErrs,
	})
}

// NotFound sends a 404 envelope.
func NotFound(c *gin.Context, err error) {
	c.JSON(http.StatusNotFound, Resp{
		ErrorCode: http.StatusNotFound,
		Message:   err.Error(),
	})
}

// TooManyRequests sends a 429 envelope.
func TooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, Resp{
		ErrorCode: http.StatusTooManyRequests,
		Message:   "too many requests",
	})
}

// InternalError sends a 500 envelope with a fixed message so internals
// never leak to clients.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}
