package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"
)

const generationField = "generation"

// Cache stores JSON values in redis. Every command runs through a circuit
// breaker so a failing redis is skipped instead of slowing each request.
// A Cache built with a nil client is disabled: Get always misses and
// writes are no-ops.
type Cache[T any] struct {
	rc      *redis.Client
	key     string
	ttl     time.Duration
	breaker *gobreaker.CircuitBreaker
}

// Option configures a Cache.
type Option func(*settings)

type settings struct {
	ttl         time.Duration
	maxFailures uint32
	openTimeout time.Duration
	onState     func(name string, from, to gobreaker.State)
}

// WithTTL sets the default expiration for Set.
func WithTTL(ttl time.Duration) Option {
	return func(s *settings) { s.ttl = ttl }
}

// WithBreaker tunes the circuit breaker: it opens after maxFailures
// consecutive errors and probes again after openTimeout. Zero values keep
// the defaults.
func WithBreaker(maxFailures uint32, openTimeout time.Duration) Option {
	return func(s *settings) {
		if maxFailures > 0 {
			s.maxFailures = maxFailures
		}
		if openTimeout > 0 {
			s.openTimeout = openTimeout
		}
	}
}

// WithStateChange registers a callback for breaker state transitions.
func WithStateChange(fn func(name string, from, to gobreaker.State)) Option {
	return func(s *settings) { s.onState = fn }
}

// NewCache creates a new Cache instance whose keys are prefixed with key.
func NewCache[T any](rc *redis.Client, key string, opts ...Option) *Cache[T] {
	s := &settings{maxFailures: 5, openTimeout: 30 * time.Second}
	for _, opt := range opts {
		opt(s)
	}

	return &Cache[T]{
		rc:  rc,
		key: key,
		ttl: s.ttl,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "cache:" + key,
			Timeout: s.openTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= s.maxFailures
			},
			OnStateChange: s.onState,
		}),
	}
}

// Enabled reports whether the cache has a backing client.
func (c *Cache[T]) Enabled() bool {
	return c.rc != nil
}

// Key returns the full redis key for field.
func (c *Cache[T]) Key(field string) string {
	if c.key == "" {
		return field
	}
	return fmt.Sprintf("%s:%s", c.key, field)
}

// Generation returns the current value of the cache's generation counter.
// A missing counter reads as zero.
func (c *Cache[T]) Generation(ctx context.Context) (int64, error) {
	if c.rc == nil {
		return 0, nil
	}

	res, err := c.breaker.Execute(func() (interface{}, error) {
		n, err := c.rc.Get(ctx, c.Key(generationField)).Int64()
		if errors.Is(err, redis.Nil) {
			return int64(0), nil
		}
		return n, err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get cache generation: %w", err)
	}
	return res.(int64), nil
}

// Bump advances the generation counter. Entries stored under an older
// generation are never read again and expire with their TTL.
func (c *Cache[T]) Bump(ctx context.Context) (int64, error) {
	if c.rc == nil {
		return 0, nil
	}

	res, err := c.breaker.Execute(func() (interface{}, error) {
		return c.rc.Incr(ctx, c.Key(generationField)).Result()
	})
	if err != nil {
		return 0, fmt.Errorf("failed to bump cache generation: %w", err)
	}
	return res.(int64), nil
}

// Get retrieves a single item from cache. A miss returns (nil, nil).
func (c *Cache[T]) Get(ctx context.Context, field string) (*T, error) {
	if c.rc == nil {
		return nil, nil
	}

	res, err := c.breaker.Execute(func() (interface{}, error) {
		val, err := c.rc.Get(ctx, c.Key(field)).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return val, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get cache: %w", err)
	}
	if res == nil {
		return nil, nil
	}

	var row T
	if err := json.Unmarshal(res.([]byte), &row); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cache data: %w", err)
	}
	return &row, nil
}

// Set saves a single item into cache
func (c *Cache[T]) Set(ctx context.Context, field string, data *T, expire ...time.Duration) error {
	if c.rc == nil {
		return nil
	}

	bytes, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	exp := c.ttl
	if len(expire) > 0 {
		exp = expire[0]
	}

	_, err = c.breaker.Execute(func() (interface{}, error) {
		return nil, c.rc.Set(ctx, c.Key(field), bytes, exp).Err()
	})
	if err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

// Delete removes data from cache
func (c *Cache[T]) Delete(ctx context.Context, field string) error {
	if c.rc == nil {
		return nil
	}

	_, err := c.breaker.Execute(func() (interface{}, error) {
		return nil, c.rc.Del(ctx, c.Key(field)).Err()
	})
	if err != nil {
		return fmt.Errorf("failed to delete cache: %w", err)
	}
	return nil
}
