package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"items-fixture-api/pkg/log"
)

const (
	// RequestIDHeader is the HTTP header carrying the request correlation id.
	RequestIDHeader = "X-Request-ID"

	// RequestIDKey is the gin context key the id is stored under.
	RequestIDKey = "request_id"
)

// RequestID ensures every request carries a correlation id. An inbound
// X-Request-ID is reused so upstream proxies keep their trace; otherwise a
// UUID is minted. The id is stored on the request context for pkg/log and
// echoed on the response header.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), requestID))
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}
