// Package sqlite registers the SQLite database driver backed by
// mattn/go-sqlite3 (CGO).
//
//	import _ "github.com/ncobase/taskboard/data/sqlite"
//
// Schema migration requires foreign keys, so sources must carry _fk=1:
//
//	"file:taskboard.db?cache=shared&_fk=1"
//	"file:test?mode=memory&cache=shared&_fk=1"
package sqlite

import (
	"context"
	"fmt"

	"github.com/ncobase/taskboard/data"
	"github.com/ncobase/taskboard/data/config"

	"entgo.io/ent/dialect"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// driver implements data.DatabaseDriver for SQLite.
type driver struct{}

// Name returns the driver identifier used in configuration files.
func (d *driver) Name() string {
	return "sqlite"
}

// Dialect returns the ent dialect for SQLite.
func (d *driver) Dialect() string {
	return dialect.SQLite
}

// Connect establishes a SQLite connection. Without explicit pool settings a
// single open connection is used, which serialises writes.
func (d *driver) Connect(ctx context.Context, cfg any) (any, error) {
	dbCfg, ok := cfg.(*config.DBNode)
	if !ok {
		return nil, fmt.Errorf("sqlite: invalid configuration type, expected *config.DBNode")
	}

	node := *dbCfg
	if node.MaxIdleConn <= 0 {
		node.MaxIdleConn = 2
	}
	if node.MaxOpenConn <= 0 {
		node.MaxOpenConn = 1
	}

	return data.OpenSQL(ctx, "sqlite3", &node)
}

// Close terminates the SQLite connection and releases resources.
func (d *driver) Close(conn any) error {
	if err := data.CloseSQL(conn); err != nil {
		return fmt.Errorf("sqlite: failed to close connection: %w", err)
	}
	return nil
}

// Ping verifies the SQLite connection is alive and functional.
func (d *driver) Ping(ctx context.Context, conn any) error {
	if err := data.PingSQL(ctx, conn); err != nil {
		return fmt.Errorf("sqlite: ping failed: %w", err)
	}
	return nil
}

func init() {
	data.RegisterDatabaseDriver(&driver{})
}
