// Package datatest opens throwaway in-memory sqlite data layers for tests.
package datatest

import (
	"context"
	"io"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/ncobase/taskboard/data"
	"github.com/ncobase/taskboard/data/config"
	"github.com/ncobase/taskboard/logging/logger"
	"github.com/ncobase/taskboard/utils/nanoid"

	_ "github.com/ncobase/taskboard/data/redis"
	_ "github.com/ncobase/taskboard/data/sqlite"
)

// RedisAddrEnv names the variable holding a redis address for tests that
// need a live cache. Those tests are skipped when it is unset.
const RedisAddrEnv = "TASKBOARD_TEST_REDIS_ADDR"

// Open returns a migrated data layer backed by a private in-memory sqlite
// database. It is closed when the test ends.
func Open(t testing.TB) *data.Data {
	t.Helper()
	return open(t, nil)
}

// OpenWithRedis is Open plus the redis at RedisAddrEnv, using db 15. Keys
// under prefix are removed before the test starts.
func OpenWithRedis(t testing.TB, prefix string) *data.Data {
	t.Helper()

	addr := os.Getenv(RedisAddrEnv)
	if addr == "" {
		t.Skipf("%s not set", RedisAddrEnv)
	}

	d := open(t, &config.Redis{Addr: addr, Db: 15, CacheTTL: time.Minute})

	ctx := context.Background()
	keys, err := d.Redis().Keys(ctx, prefix+":*").Result()
	if err != nil {
		t.Fatalf("list redis keys: %v", err)
	}
	if len(keys) > 0 {
		if err := d.Redis().Del(ctx, keys...).Err(); err != nil {
			t.Fatalf("clear redis keys: %v", err)
		}
	}
	return d
}

func open(t testing.TB, rc *config.Redis) *data.Data {
	t.Helper()

	cfg := &config.Config{
		Database: &config.Database{
			Migrate: true,
			Master: &config.DBNode{
				Driver: "sqlite",
				Source: "file:" + nanoid.Must() + "?mode=memory&cache=shared&_fk=1",
			},
		},
		Redis: rc,
	}

	d, cleanup, err := data.New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(cleanup)
	return d
}

// Logger returns a logger that discards everything.
func Logger() *logger.Logger {
	l := logger.NewLogger()
	l.SetOutput(io.Discard)
	return l
}

// Clock hands out strictly increasing times one second apart, so rows
// created in sequence have a stable newest-first order.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock starts a clock at start.
func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

// Now advances the clock and returns the new time.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}
