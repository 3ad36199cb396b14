package logger

import (
	"context"

	"github.com/ncobase/taskboard/ctxutil"
)

var traceKey = ctxutil.TraceIDKey

// getTraceID gets a trace ID from the context.
func getTraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	return ctxutil.GetTraceID(ctx)
}
