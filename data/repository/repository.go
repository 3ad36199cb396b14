// Package repository persists projects and tasks through ent's SQL builder,
// so the same statements serve postgres, mysql and sqlite.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/ncobase/taskboard/data"
	"github.com/ncobase/taskboard/logging/logger"
	"github.com/ncobase/taskboard/utils/nanoid"
)

// ErrNotFound is returned when the requested row does not exist.
var ErrNotFound = errors.New("record not found")

// Repository groups the repositories used by the service layer.
type Repository struct {
	Project ProjectRepository
	Task    TaskRepository
}

// Option configures the repositories.
type Option func(*options)

type options struct {
	now   func() time.Time
	newID func() string
}

// WithClock replaces the clock used for created_at and updated_at.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// New creates all repositories on top of the data layer.
func New(d *data.Data, l *logger.Logger, opts ...Option) *Repository {
	o := &options{
		now:   time.Now,
		newID: nanoid.PrimaryKey(),
	}
	for _, opt := range opts {
		opt(o)
	}

	return &Repository{
		Project: NewProjectRepository(d, l, o),
		Task:    NewTaskRepository(d, l, o),
	}
}

// base holds what every repository needs.
type base struct {
	d      *data.Data
	logger *logger.Logger
	now    func() time.Time
	newID  func() string
}

func newBase(d *data.Data, l *logger.Logger, o *options) base {
	return base{d: d, logger: l, now: o.now, newID: o.newID}
}

func (b base) builder() *entsql.DialectBuilder {
	return entsql.Dialect(b.d.Dialect())
}

// timestamp truncates to microseconds, the finest precision shared by the
// supported databases, and normalises to UTC.
func (b base) timestamp() time.Time {
	return b.now().UTC().Truncate(time.Microsecond)
}

// querier is satisfied by both the ent driver and a transaction.
type querier interface {
	Query(ctx context.Context, query string, args, v any) error
	Exec(ctx context.Context, query string, args, v any) error
}

var (
	_ querier = dialect.Driver(nil)
	_ querier = dialect.Tx(nil)
)

// scanner is implemented by entsql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// queryRows runs a select and calls scan once per row.
func queryRows(ctx context.Context, q querier, query string, args []any, scan func(scanner) error) error {
	var rows entsql.Rows
	if err := q.Query(ctx, query, args, &rows); err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(&rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

// exec runs a statement and returns the number of affected rows.
func exec(ctx context.Context, q querier, query string, args []any) (int64, error) {
	var res entsql.Result
	if err := q.Exec(ctx, query, args, &res); err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}
