package mysql

import (
	"context"
	"strings"
	"testing"

	"github.com/ncobase/taskboard/data/config"
)

func TestDriverName(t *testing.T) {
	d := &driver{}
	if got := d.Name(); got != "mysql" {
		t.Errorf("Name() = %q, want %q", got, "mysql")
	}
	if got := d.Dialect(); got != "mysql" {
		t.Errorf("Dialect() = %q, want %q", got, "mysql")
	}
}

func TestConnectRequiresParseTime(t *testing.T) {
	d := &driver{}
	_, err := d.Connect(context.Background(), &config.DBNode{
		Driver: "mysql",
		Source: "root:secret@tcp(127.0.0.1:3306)/taskboard",
	})
	if err == nil || !strings.Contains(err.Error(), "parseTime") {
		t.Errorf("Connect() error = %v, want parseTime error", err)
	}
}

func TestConnectRejectsWrongConfigType(t *testing.T) {
	d := &driver{}
	if _, err := d.Connect(context.Background(), "not-a-node"); err == nil {
		t.Error("expected error for invalid configuration type")
	}
}
