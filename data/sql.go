package data

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ncobase/taskboard/data/config"
)

// OpenSQL opens a database/sql pool for a registered sql driver name,
// applies the pool settings from node and verifies it with a ping.
func OpenSQL(ctx context.Context, sqlDriver string, node *config.DBNode) (*sql.DB, error) {
	if node.Source == "" {
		return nil, fmt.Errorf("%s: connection source is empty", node.Driver)
	}

	db, err := sql.Open(sqlDriver, node.Source)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to open connection: %w", node.Driver, err)
	}

	if node.MaxIdleConn > 0 {
		db.SetMaxIdleConns(node.MaxIdleConn)
	}
	if node.MaxOpenConn > 0 {
		db.SetMaxOpenConns(node.MaxOpenConn)
	}
	if node.ConnMaxLifeTime > 0 {
		db.SetConnMaxLifetime(node.ConnMaxLifeTime)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: failed to ping database: %w", node.Driver, err)
	}

	return db, nil
}

// CloseSQL closes a connection returned by OpenSQL.
func CloseSQL(conn any) error {
	db, ok := conn.(*sql.DB)
	if !ok {
		return fmt.Errorf("invalid connection type %T, expected *sql.DB", conn)
	}
	return db.Close()
}

// PingSQL pings a connection returned by OpenSQL.
func PingSQL(ctx context.Context, conn any) error {
	db, ok := conn.(*sql.DB)
	if !ok {
		return fmt.Errorf("invalid connection type %T, expected *sql.DB", conn)
	}
	return db.PingContext(ctx)
}
