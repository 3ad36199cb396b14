package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ncobase/taskboard/logging/logger"
)

// Logger logs one line per request.
func Logger(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		fields := []any{
			"method", method,
			"path", path,
			"status", status,
			"latency", time.Since(start).String(),
			"ip", c.ClientIP(),
		}
		ctx := c.Request.Context()
		switch {
		case status >= 500:
			l.Error(ctx, append([]any{"HTTP request"}, fields...)...)
		case status >= 400:
			l.Warn(ctx, append([]any{"HTTP request"}, fields...)...)
		default:
			l.Info(ctx, append([]any{"HTTP request"}, fields...)...)
		}
	}
}
