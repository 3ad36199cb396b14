// Package ctxutil provides helpers for request-scoped values.
//
// Values are stored on the standard context and, when the context carries
// a *gin.Context, mirrored onto it so handlers and middleware see the same
// data:
//
//	ctx, traceID := ctxutil.EnsureTraceID(ctx)
//	l.Info(ctx, "handling request") // includes trace_id
package ctxutil
