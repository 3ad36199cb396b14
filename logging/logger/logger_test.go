package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/ncobase/taskboard/ctxutil"
	"github.com/ncobase/taskboard/logging/logger/config"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	return m
}

func TestInfoWithKeyValues(t *testing.T) {
	l := NewLogger()
	var buf bytes.Buffer
	l.SetOutput(&buf)
	l.SetVersion("v0.1.0")

	ctx := ctxutil.SetTraceID(context.Background(), "trace-1")
	l.Info(ctx, "task created", "id", "abc", "error", errors.New("boom"))

	m := decodeLine(t, &buf)
	if m["msg"] != "task created" {
		t.Errorf("msg = %v", m["msg"])
	}
	if m["id"] != "abc" {
		t.Errorf("id = %v", m["id"])
	}
	if m["error"] != "boom" {
		t.Errorf("error = %v", m["error"])
	}
	if m[ctxutil.TraceIDKey] != "trace-1" {
		t.Errorf("trace_id = %v", m[ctxutil.TraceIDKey])
	}
	if m[VersionKey] != "v0.1.0" {
		t.Errorf("version = %v", m[VersionKey])
	}
}

func TestPlainArgsAreNotSplit(t *testing.T) {
	l := NewLogger()
	var buf bytes.Buffer
	l.SetOutput(&buf)

	l.Info(context.Background(), "listening on", 8080)

	m := decodeLine(t, &buf)
	if m["msg"] != "listening on8080" {
		t.Errorf("msg = %v", m["msg"])
	}
}

func TestLevelFiltering(t *testing.T) {
	l := NewLogger()
	var buf bytes.Buffer
	l.SetOutput(&buf)

	cleanup, err := l.Init(&config.Config{Level: 3, Format: "json", Output: "stdout"})
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer cleanup()
	l.SetOutput(&buf)

	l.Info(context.Background(), "hidden")
	if buf.Len() != 0 {
		t.Errorf("info should be filtered at warn level, got %q", buf.String())
	}
	l.Warn(context.Background(), "shown")
	if buf.Len() == 0 {
		t.Error("warn should be written at warn level")
	}
}

func TestInitFileOutputRequiresPath(t *testing.T) {
	l := NewLogger()
	if _, err := l.Init(&config.Config{Level: 4, Output: "file"}); err == nil {
		t.Error("expected error for file output without output_file")
	}
}
