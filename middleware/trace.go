// Package middleware holds the gin middleware shared by every route.
package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/ncobase/taskboard/ctxutil"
	"github.com/ncobase/taskboard/logging/observes"
)

// TraceHeader carries the request trace id in and out.
const TraceHeader = "X-Trace-ID"

// Trace assigns every request a trace id, taken from TraceHeader when the
// client sent one, and opens a server span around the handler.
func Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := otel.GetTextMapPropagator().Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))

		traceID := c.GetHeader(TraceHeader)
		if traceID != "" {
			ctx = ctxutil.SetTraceID(ctx, traceID)
		} else {
			ctx, traceID = ctxutil.EnsureTraceID(ctx)
		}
		c.Set(ctxutil.TraceIDKey, traceID)
		c.Header(TraceHeader, traceID)

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		ctx, span := observes.Tracer().Start(ctx, fmt.Sprintf("%s %s", c.Request.Method, route),
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", c.Request.Method),
				attribute.String("http.route", route),
				attribute.String("layer", observes.LayerHandler.String()),
				attribute.String(ctxutil.TraceIDKey, traceID),
			),
		)
		defer span.End()

		c.Request = c.Request.WithContext(ctxutil.WithGinContext(ctx, c))
		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(attribute.Int("http.status_code", status))
		if status >= 500 {
			span.SetStatus(codes.Error, fmt.Sprintf("status %d", status))
		}
		if len(c.Errors) > 0 {
			span.RecordError(c.Errors.Last())
		}
	}
}
