package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/eos420/indexer-api/internal/adapter"
)

const (
	DefaultCapacity = 1200
	DefaultTTL      = 30 * time.Minute
	DefaultTTI      = 5 * time.Minute
)

// Config holds the cache configuration. A zero TTL or TTI disables that horizon.
type Config struct {
	Enabled  bool
	Capacity int
	TTL      time.Duration
	TTI      time.Duration
}

// DefaultConfig returns the configuration used for every entity cache
func DefaultConfig() Config {
	return Config{
		Enabled:  true,
		Capacity: DefaultCapacity,
		TTL:      DefaultTTL,
		TTI:      DefaultTTI,
	}
}

// Cache is a read-through cache where concurrent misses on one key share a
// single computation. The bool result reports presence; absent results are
// cached like present ones.
type Cache[T any] interface {
	// GetWith returns the cached result for key, computing it with compute on a miss
	GetWith(ctx context.Context, key Key, compute func(ctx context.Context) (T, bool)) (T, bool)
	// Invalidate drops the entry for key
	Invalidate(key Key)
	// Len returns the number of resident entries
	Len() int
}

// New returns the LRU cache when caching is enabled and the pass-through otherwise
func New[T any](cfg Config, clock adapter.Clock) (Cache[T], error) {
	if !cfg.Enabled {
		return NewPassthrough[T](), nil
	}
	return NewLRU[T](cfg, clock)
}

type entry[T any] struct {
	value      T
	ok         bool
	insertedAt time.Time
	lastAccess time.Time
}

type result[T any] struct {
	value T
	ok    bool
}

// panicError carries a panic out of the shared computation so it is raised
// in the waiting goroutines rather than crashing the process
type panicError struct {
	value any
}

func (p *panicError) Error() string {
	return fmt.Sprintf("cache computation panicked: %v", p.value)
}

type lruCache[T any] struct {
	config Config
	clock  adapter.Clock
	group  singleflight.Group

	mu      sync.Mutex
	entries *lru.Cache[Key, *entry[T]]
}

// NewLRU creates a bounded cache with TTL and TTI expiry
func NewLRU[T any](cfg Config, clock adapter.Clock) (Cache[T], error) {
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultCapacity
	}

	entries, err := lru.New[Key, *entry[T]](cfg.Capacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create lru: %w", err)
	}

	return &lruCache[T]{
		config:  cfg,
		clock:   clock,
		entries: entries,
	}, nil
}

func (c *lruCache[T]) GetWith(ctx context.Context, key Key, compute func(ctx context.Context) (T, bool)) (T, bool) {
	if e, hit := c.lookup(key); hit {
		return e.value, e.ok
	}

	// The shared computation must outlive any single waiter
	shared := context.WithoutCancel(ctx)
	ch := c.group.DoChan(string(key), func() (v any, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = &panicError{value: r}
			}
		}()

		// a flight that finished just before this one started may have filled the entry
		if e, hit := c.lookup(key); hit {
			return result[T]{value: e.value, ok: e.ok}, nil
		}

		value, ok := compute(shared)
		c.store(key, value, ok)
		return result[T]{value: value, ok: ok}, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			var pe *panicError
			if errors.As(res.Err, &pe) {
				panic(pe.value)
			}
			var zero T
			return zero, false
		}
		r := res.Val.(result[T])
		return r.value, r.ok
	case <-ctx.Done():
		var zero T
		return zero, false
	}
}

func (c *lruCache[T]) Invalidate(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries.Remove(key)
	c.group.Forget(string(key))
}

func (c *lruCache[T]) Len() int {
	return c.entries.Len()
}

func (c *lruCache[T]) lookup(key Key) (entry[T], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries.Get(key)
	if !ok {
		return entry[T]{}, false
	}

	now := c.clock.Now()
	if c.expired(e, now) {
		c.entries.Remove(key)
		return entry[T]{}, false
	}
	e.lastAccess = now

	return *e, true
}

func (c *lruCache[T]) expired(e *entry[T], now time.Time) bool {
	if c.config.TTL > 0 && now.Sub(e.insertedAt) >= c.config.TTL {
		return true
	}
	if c.config.TTI > 0 && now.Sub(e.lastAccess) >= c.config.TTI {
		return true
	}
	return false
}

func (c *lruCache[T]) store(key Key, value T, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	c.entries.Add(key, &entry[T]{
		value:      value,
		ok:         ok,
		insertedAt: now,
		lastAccess: now,
	})
}

type passthrough[T any] struct{}

// NewPassthrough returns a Cache that always computes and never shares work
func NewPassthrough[T any]() Cache[T] {
	return passthrough[T]{}
}

func (passthrough[T]) GetWith(ctx context.Context, _ Key, compute func(ctx context.Context) (T, bool)) (T, bool) {
	return compute(ctx)
}

func (passthrough[T]) Invalidate(Key) {}

func (passthrough[T]) Len() int {
	return 0
}
