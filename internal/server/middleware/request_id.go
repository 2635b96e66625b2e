// file: internal/server/middleware/request_id.go
// version: 1.0.0
// guid: 2e9c4a71-8f3b-4d06-a5c2-7b1e9d3f0a84

package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	ulid "github.com/oklog/ulid/v2"
)

const (
	// RequestIDHeader carries the request id in and out.
	RequestIDHeader   = "X-Request-ID"
	contextRequestKey = "request_id"
	maxRequestIDLen   = 128
)

// RequestID assigns every request an id, reusing a sane inbound X-Request-ID.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(RequestIDHeader))
		if id == "" || len(id) > maxRequestIDLen {
			id = ulid.Make().String()
		}
		c.Set(contextRequestKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the id set by RequestID, or "" outside that middleware.
func GetRequestID(c *gin.Context) string {
	if c == nil {
		return ""
	}
	return c.GetString(contextRequestKey)
}
