package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CtxRequestIDKey names the correlation id set on the gin context; the
// handlers attach it to their log entries.
const CtxRequestIDKey = "request_id"

// RequestIDMiddleware tags every request with a correlation id. An id
// supplied by an upstream proxy is kept; otherwise a fresh one is issued.
// The id is echoed back in the X-Request-ID response header.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(CtxRequestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
