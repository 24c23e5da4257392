package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/todolist-backend/internal/platform/logger"
)

const RequestIDKey = "request_id"

type RequestIDMiddleware struct {
	log *logger.Logger
}

func NewRequestIDMiddleware(baseLog *logger.Logger) *RequestIDMiddleware {
	middlewareLog := baseLog.With("middleware", "RequestIDMiddleware")
	return &RequestIDMiddleware{log: middlewareLog}
}

// Inject tags each request with an id, echoing a caller-provided
// X-Request-ID when present.
func (m *RequestIDMiddleware) Inject() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Writer.Header().Set("X-Request-ID", id)
		m.log.Debug("request", "request_id", id, "method", c.Request.Method, "path", c.Request.URL.Path)
		c.Next()
	}
}
