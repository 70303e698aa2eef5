package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	pkgLog "smart-todo-backend/pkg/log"
)

// RequestIDHeader carries the correlation id in responses.
const RequestIDHeader = "X-Request-ID"

// RequestID assigns each request a correlation id, propagated through the
// request context so the logger can attach it to every line.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		ctx := pkgLog.WithRequestID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}
