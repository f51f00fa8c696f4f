package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key under which the request identifier is stored.
const RequestIDKey = "request_id"

// RequestID injects a unique identifier into every incoming request.
//
// Behavior:
//   - Generates a UUID v4 per request.
//   - Stores it in the gin context under RequestIDKey.
//   - Echoes it back to the client in the X-Request-ID header.
//
// Returns:
//   - gin.HandlerFunc: the middleware function.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set(RequestIDKey, id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// requestIDFrom extracts the request identifier from the context, or "" when absent.
func requestIDFrom(c *gin.Context) string {
	v, ok := c.Get(RequestIDKey)
	if !ok {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
