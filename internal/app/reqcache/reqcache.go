// Package reqcache provides a request-scoped memoization cache for
// application-layer orchestration.
//
// A new Cache is created per HTTP request (by the RequestCache middleware)
// and carried in the request context. Services use GetOrFetch to share the
// result of expensive lookups, such as reagent catalog calls, across every
// item of a batch without refetching:
//
//	cache := reqcache.FromContext(ctx)
//	r, err := reqcache.GetOrFetch(ctx, cache, "reagent:"+name, fetchReagent)
//
// Unlike a process-wide cache, entries live only as long as the request, so
// staleness is bounded by request duration and no invalidation is needed.
// Cache is safe for concurrent use; batch conversion fans out worker
// goroutines that share one cache.
package reqcache

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrTypeMismatch is returned by GetOrFetch when a cached value's type does
// not match the requested type T. This indicates a programming error where
// the same cache key is used with different types.
var ErrTypeMismatch = errors.New("reqcache: cached value type mismatch")

// entry holds the outcome of a single fetch. The once gate makes the first
// caller for a key run the fetch while concurrent callers block on it, so a
// key is fetched at most once per request.
type entry struct {
	once  sync.Once
	value any
	err   error
}

// Cache is a request-scoped memoization cache. The zero value is not usable;
// create instances with New. Cache is safe for concurrent use by multiple
// goroutines, but must not be shared between requests.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*entry
}

// New creates an empty Cache.
func New() *Cache {
	return &Cache{entries: make(map[string]*entry)}
}

// entryFor returns the entry for key, creating it under the lock on first
// use. The per-key fetch itself runs outside the lock, so fetches for
// distinct keys proceed concurrently.
func (c *Cache) entryFor(key string) *entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		e = &entry{}
		c.entries[key] = e
	}
	return e
}

// GetOrFetch returns the cached value for key, calling fetchFn to fetch and
// cache it on first use. Concurrent callers of the same key share a single
// fetch: one runs fetchFn, the rest block until it completes. Both
// successful results and errors are cached for the lifetime of the Cache.
//
// The same key must always be used with the same type T. If a cached value
// exists but its type does not match T, GetOrFetch returns ErrTypeMismatch.
func GetOrFetch[T any](ctx context.Context, c *Cache, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	e := c.entryFor(key)
	e.once.Do(func() {
		e.value, e.err = fetchFn(ctx)
	})

	if e.err != nil {
		var zero T
		return zero, e.err
	}
	v, ok := e.value.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, e.value, zero)
	}
	return v, nil
}

// cacheKey is the context key for storing a request's Cache.
type cacheKey struct{}

// WithCache returns a new context carrying the given Cache. Downstream
// application services retrieve it via FromContext.
func WithCache(ctx context.Context, c *Cache) context.Context {
	return context.WithValue(ctx, cacheKey{}, c)
}

// FromContext extracts the Cache from the context. Returns nil if no Cache
// is stored; callers that can run outside the HTTP request path should fall
// back to a fresh Cache.
func FromContext(ctx context.Context) *Cache {
	if c, ok := ctx.Value(cacheKey{}).(*Cache); ok {
		return c
	}
	return nil
}
