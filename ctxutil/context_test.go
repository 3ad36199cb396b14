package ctxutil

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TestEnsureTraceIDGeneratesOnce(t *testing.T) {
	ctx, first := EnsureTraceID(context.Background())
	if _, err := uuid.Parse(first); err != nil {
		t.Fatalf("trace id %q is not a uuid: %v", first, err)
	}

	ctx, second := EnsureTraceID(ctx)
	if first != second {
		t.Errorf("EnsureTraceID regenerated id: %q != %q", first, second)
	}
	if got := GetTraceID(ctx); got != first {
		t.Errorf("GetTraceID() = %q, want %q", got, first)
	}
}

func TestSetTraceIDMirrorsGinContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	ctx := WithGinContext(context.Background(), c)
	SetTraceID(ctx, "abc")

	if v, ok := c.Get(TraceIDKey); !ok || v != "abc" {
		t.Errorf("gin context trace id = %v, want %q", v, "abc")
	}
	if got := GetTraceID(ctx); got != "abc" {
		t.Errorf("GetTraceID() = %q, want %q", got, "abc")
	}
}
