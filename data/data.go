package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/ncobase/taskboard/data/config"
	"github.com/ncobase/taskboard/data/schema"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/redis/go-redis/v9"
)

// ErrClosed is returned when the data layer is used after Close.
var ErrClosed = errors.New("data layer is closed")

// Data represents the data layer implementation
type Data struct {
	mu     sync.RWMutex
	closed bool

	conf *config.Config

	db       *sql.DB
	dbDriver DatabaseDriver
	driver   dialect.Driver

	rc          *redis.Client
	cacheDriver CacheDriver

	queryLogger func(context.Context, ...any)
}

// Option function type for configuring Data
type Option func(*Data)

// WithQueryLogger logs every statement through fn when the master node
// has logging enabled.
func WithQueryLogger(fn func(context.Context, ...any)) Option {
	return func(d *Data) {
		d.queryLogger = fn
	}
}

// New creates new data layer
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*Data, func(), error) {
	if cfg == nil || cfg.Database == nil || cfg.Database.Master == nil {
		return nil, nil, errors.New("data: database master node is not configured")
	}

	d := &Data{conf: cfg}
	for _, opt := range opts {
		opt(d)
	}

	if err := d.openDatabase(ctx, cfg.Database.Master); err != nil {
		return nil, nil, err
	}

	if cfg.Redis != nil && cfg.Redis.Addr != "" {
		if err := d.openRedis(ctx, cfg.Redis); err != nil {
			_ = d.Close()
			return nil, nil, err
		}
	}

	if cfg.Database.Migrate {
		if err := d.Migrate(ctx); err != nil {
			_ = d.Close()
			return nil, nil, err
		}
	}

	cleanup := func() {
		if err := d.Close(); err != nil {
			fmt.Printf("cleanup errors: %v\n", err)
		}
	}

	return d, cleanup, nil
}

func (d *Data) openDatabase(ctx context.Context, node *config.DBNode) error {
	drv, err := GetDatabaseDriver(node.Driver)
	if err != nil {
		return err
	}

	conn, err := drv.Connect(ctx, node)
	if err != nil {
		return err
	}

	db, ok := conn.(*sql.DB)
	if !ok {
		_ = drv.Close(conn)
		return fmt.Errorf("data: driver %s returned %T, expected *sql.DB", drv.Name(), conn)
	}

	d.db = db
	d.dbDriver = drv

	var entDriver dialect.Driver = entsql.OpenDB(drv.Dialect(), db)
	if node.Logging && d.queryLogger != nil {
		entDriver = dialect.DebugWithContext(entDriver, d.queryLogger)
	}
	d.driver = entDriver

	return nil
}

func (d *Data) openRedis(ctx context.Context, cfg *config.Redis) error {
	drv, err := GetCacheDriver("redis")
	if err != nil {
		return err
	}

	conn, err := drv.Connect(ctx, cfg)
	if err != nil {
		return err
	}

	rc, ok := conn.(*redis.Client)
	if !ok {
		_ = drv.Close(conn)
		return fmt.Errorf("data: cache driver returned %T, expected *redis.Client", conn)
	}

	d.rc = rc
	d.cacheDriver = drv
	return nil
}

// Driver returns the ent dialect driver used by repositories.
func (d *Data) Driver() dialect.Driver {
	return d.driver
}

// Dialect returns the SQL dialect of the master database.
func (d *Data) Dialect() string {
	return d.driver.Dialect()
}

// Redis returns the redis client, nil when no cache is configured.
func (d *Data) Redis() *redis.Client {
	return d.rc
}

// CacheConfig returns the redis configuration, nil when not set.
func (d *Data) CacheConfig() *config.Redis {
	return d.conf.Redis
}

// Migrate creates or updates the tables managed by this service.
func (d *Data) Migrate(ctx context.Context) error {
	if err := schema.Create(ctx, d.driver); err != nil {
		return fmt.Errorf("data: migrate: %w", err)
	}
	return nil
}

// WithTx runs fn inside a database transaction, committing on success and
// rolling back on error.
func (d *Data) WithTx(ctx context.Context, fn func(tx dialect.Tx) error) error {
	d.mu.RLock()
	closed := d.closed
	d.mu.RUnlock()
	if closed {
		return ErrClosed
	}

	tx, err := d.driver.Tx(ctx)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %v, rollback err: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Ping checks the database and, when configured, the cache.
func (d *Data) Ping(ctx context.Context) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return ErrClosed
	}

	if err := d.dbDriver.Ping(ctx, d.db); err != nil {
		return err
	}
	if d.rc != nil {
		if err := d.cacheDriver.Ping(ctx, d.rc); err != nil {
			return err
		}
	}
	return nil
}

// Close closes all connections. It is safe to call more than once.
func (d *Data) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil
	}
	d.closed = true

	var errs []error
	if d.db != nil {
		if err := d.dbDriver.Close(d.db); err != nil {
			errs = append(errs, err)
		}
	}
	if d.rc != nil {
		if err := d.cacheDriver.Close(d.rc); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
