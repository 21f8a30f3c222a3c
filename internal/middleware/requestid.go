package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	contextKeyRequestID = "request_id"
	headerRequestID     = "X-Request-ID"
)

// WithRequestID assigns each request a UUID (or reuses the inbound header)
// and echoes it back for log correlation.
func WithRequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(contextKeyRequestID, id)
		c.Header(headerRequestID, id)
		c.Next()
	}
}

// RequestID extracts the request id from context.
func RequestID(c *gin.Context) string {
	v, _ := c.Get(contextKeyRequestID)
	id, _ := v.(string)
	return id
}
