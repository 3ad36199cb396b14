package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ncobase/taskboard/ctxutil"
	"github.com/ncobase/taskboard/logging/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newLogger(buf *bytes.Buffer) *logger.Logger {
	l := logger.NewLogger()
	l.SetOutput(buf)
	return l
}

func TestTraceGeneratesAndEchoesID(t *testing.T) {
	r := gin.New()
	r.Use(Trace())
	var seen string
	r.GET("/x", func(c *gin.Context) {
		seen = ctxutil.GetTraceID(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(TraceHeader))

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(TraceHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", w.Header().Get(TraceHeader))
}

func TestLoggerWritesRequestLine(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(Trace(), Logger(newLogger(&buf)))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(TraceHeader, "trace-1")
	r.ServeHTTP(httptest.NewRecorder(), req)

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "HTTP request", line["msg"])
	assert.Equal(t, "GET", line["method"])
	assert.Equal(t, "/ping", line["path"])
	assert.EqualValues(t, 200, line["status"])
	assert.Equal(t, "trace-1", line["trace_id"])
}

func TestRecovery(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(Recovery(newLogger(&buf)))
	r.GET("/boom", func(*gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"INTERNAL_ERROR","message":"Internal server error"}`, w.Body.String())
	assert.Contains(t, buf.String(), "kaboom")
}
