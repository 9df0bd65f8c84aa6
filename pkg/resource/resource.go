package resource

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name for resource fetch spans.
const defaultTracerName = "velocity"

// Fetcher produces the data for one resource key. It runs on its own
// goroutine after Request dispatches it; the result is written back into
// the cache entry when it returns.
type Fetcher func(ctx context.Context) (any, error)

// entry is the cached state for one key. Exactly one of loading, ready
// (err empty, loading false) or error (err set) holds at a time.
type entry struct {
	data      any
	loading   bool
	err       string
	updatedAt time.Time

	// fetcher is retained so Refetch can re-dispatch without the caller
	// supplying it again.
	fetcher Fetcher
}

func (e *entry) triple() (any, bool, string) {
	return e.data, e.loading, e.err
}

// Stats counts cache activity since creation.
type Stats struct {
	Hits    uint64
	Misses  uint64
	Fetches uint64
	Errors  uint64
}

// Cache is a key-addressed cache of asynchronous fetch results.
//
// The cache is not wired into the reactive dependency graph: completing
// a fetch mutates the entry in place but notifies no reader. Callers
// poll via State or re-render for other reasons.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*entry

	hits    atomic.Uint64
	misses  atomic.Uint64
	fetches atomic.Uint64
	errors  atomic.Uint64

	logger *slog.Logger
	tracer trace.Tracer
}

// Option configures a Cache.
type Option func(*Cache)

// WithLogger sets the logger used for fetch failure reports.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) {
		c.logger = logger
	}
}

// WithTracer sets the tracer used for fetch spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *Cache) {
		c.tracer = tracer
	}
}

// NewCache creates an empty Cache.
func NewCache(opts ...Option) *Cache {
	c := &Cache{
		entries: make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default().With("component", "resource")
	}
	if c.tracer == nil {
		c.tracer = otel.Tracer(defaultTracerName)
	}
	return c
}

// Request returns the resource triple for key, dispatching a fetch if
// the key is absent.
//
// If any entry exists for key, its current triple is returned and no
// fetch is dispatched; a concurrent second caller arriving while the
// state is loading sees that loading entry, which is the sole dedup
// mechanism. If the key is absent, a loading entry is inserted
// synchronously, the loading triple is returned, and fetcher runs
// asynchronously; completion overwrites the same entry in place.
func (c *Cache) Request(key string, fetcher Fetcher) (data any, loading bool, errMsg string) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok {
		data, loading, errMsg = e.triple()
		c.mu.Unlock()
		c.hits.Add(1)
		return data, loading, errMsg
	}

	c.entries[key] = &entry{
		loading:   true,
		updatedAt: time.Now(),
		fetcher:   fetcher,
	}
	c.mu.Unlock()
	c.misses.Add(1)

	go c.fetch(key, fetcher)
	return nil, true, ""
}

// fetch runs fetcher and writes the outcome into the entry for key.
// A late completion overwrites whatever entry exists for key by then;
// if the entry was invalidated and not recreated, the result is dropped.
func (c *Cache) fetch(key string, fetcher Fetcher) {
	c.fetches.Add(1)

	ctx, span := c.tracer.Start(context.Background(), "resource.fetch",
		trace.WithAttributes(attribute.String("resource.key", key)))
	defer span.End()

	data, err := runFetcher(ctx, fetcher)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.errors.Add(1)
		c.logger.Error("fetch failed", "key", key, "error", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return
	}
	if err != nil {
		e.loading = false
		e.err = err.Error()
	} else {
		e.data = data
		e.loading = false
		e.err = ""
	}
	e.updatedAt = time.Now()
}

// runFetcher invokes fetcher, converting a panic into an error so a
// failing fetcher surfaces as entry state rather than killing the
// fetch goroutine.
func runFetcher(ctx context.Context, fetcher Fetcher) (data any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("fetcher panic: %v", r)
		}
	}()
	return fetcher(ctx)
}

// State returns the current triple for key without ever dispatching a
// fetch. An absent key reads as (nil, false, "").
func (c *Cache) State(key string) (data any, loading bool, errMsg string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false, ""
	}
	return e.triple()
}

// Invalidate removes the entry for key outright. An in-flight fetch is
// not cancelled: if it later resolves it overwrites whatever entry
// exists for the key by then, or is dropped if none does.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Refetch invalidates key and re-requests it with the retained fetcher.
// A key with no entry (or no retained fetcher) is a no-op.
func (c *Cache) Refetch(key string) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok || e.fetcher == nil {
		c.mu.Unlock()
		return
	}
	fetcher := e.fetcher
	c.mu.Unlock()

	c.Invalidate(key)
	c.Request(key, fetcher)
}

// SetOptimistic overwrites the entry's data in place, leaving loading
// and error untouched. The reactive graph is not notified. Absent keys
// are ignored.
func (c *Cache) SetOptimistic(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.data = value
	}
}

// Clear removes every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*entry)
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns cumulative cache counters.
func (c *Cache) Stats() Stats {
	return Stats{
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Fetches: c.fetches.Load(),
		Errors:  c.errors.Load(),
	}
}
