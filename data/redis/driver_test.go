package redis

import (
	"context"
	"testing"

	"github.com/ncobase/taskboard/data/config"
)

func TestDriverName(t *testing.T) {
	if got := (&driver{}).Name(); got != "redis" {
		t.Errorf("Name() = %q, want %q", got, "redis")
	}
}

func TestConnectValidatesConfig(t *testing.T) {
	d := &driver{}
	if _, err := d.Connect(context.Background(), &config.Redis{}); err == nil {
		t.Error("expected error for empty address")
	}
	if _, err := d.Connect(context.Background(), "localhost:6379"); err == nil {
		t.Error("expected error for invalid configuration type")
	}
}
