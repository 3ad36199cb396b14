// Package mysql registers the MySQL database driver.
//
// The DSN must set parseTime=true so timestamps scan into time.Time:
//
//	user:pass@tcp(localhost:3306)/taskboard?parseTime=true&loc=UTC
package mysql

import (
	"context"
	"fmt"

	"github.com/ncobase/taskboard/data"
	"github.com/ncobase/taskboard/data/config"

	"entgo.io/ent/dialect"
	gomysql "github.com/go-sql-driver/mysql"
)

type driver struct{}

func (d *driver) Name() string {
	return "mysql"
}

func (d *driver) Dialect() string {
	return dialect.MySQL
}

func (d *driver) Connect(ctx context.Context, cfg any) (any, error) {
	dbCfg, ok := cfg.(*config.DBNode)
	if !ok {
		return nil, fmt.Errorf("mysql: invalid configuration type, expected *config.DBNode")
	}

	dsn, err := gomysql.ParseDSN(dbCfg.Source)
	if err != nil {
		return nil, fmt.Errorf("mysql: invalid source: %w", err)
	}
	if !dsn.ParseTime {
		return nil, fmt.Errorf("mysql: source must enable parseTime=true")
	}

	return data.OpenSQL(ctx, "mysql", dbCfg)
}

func (d *driver) Close(conn any) error {
	if err := data.CloseSQL(conn); err != nil {
		return fmt.Errorf("mysql: failed to close connection: %w", err)
	}
	return nil
}

func (d *driver) Ping(ctx context.Context, conn any) error {
	if err := data.PingSQL(ctx, conn); err != nil {
		return fmt.Errorf("mysql: ping failed: %w", err)
	}
	return nil
}

func init() {
	data.RegisterDatabaseDriver(&driver{})
}
