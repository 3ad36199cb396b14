package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"

	"github.com/ncobase/taskboard/ctxutil"
	"github.com/ncobase/taskboard/logging/logger"
	"github.com/ncobase/taskboard/net/resp"
)

// Recovery turns a panic into a 500 INTERNAL_ERROR, logging it and
// reporting it to sentry when sentry is configured.
func Recovery(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			ctx := c.Request.Context()
			l.Error(ctx, "panic recovered", "panic", fmt.Sprint(rec), "stack", string(debug.Stack()))

			hub := sentry.CurrentHub().Clone()
			hub.Scope().SetRequest(c.Request)
			hub.Scope().SetTag(ctxutil.TraceIDKey, ctxutil.GetTraceID(ctx))
			hub.Recover(rec)

			if !c.Writer.Written() {
				resp.Fail(c.Writer, resp.InternalServer())
			}
			c.Abort()
		}()
		c.Next()
	}
}
