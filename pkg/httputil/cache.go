package httputil

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gitcanvas/gitcanvas/pkg/cache"
)

// JSONCache stores JSON-encoded values in a [cache.Cache].
//
// Use [JSONCache.Namespace] to create scoped views that prefix keys,
// avoiding collisions between upstream endpoints:
//
//	users := c.Namespace("users:")
//	users.Set(ctx, "ada", user) // key becomes "users:ada"
type JSONCache struct {
	backend cache.Cache
	ttl     time.Duration
	prefix  string
}

// NewJSONCache wraps backend. A nil backend disables caching. A ttl of
// zero keeps entries until the backend evicts them.
func NewJSONCache(backend cache.Cache, ttl time.Duration) *JSONCache {
	if backend == nil {
		backend = cache.NewNullCache()
	}
	return &JSONCache{backend: backend, ttl: ttl}
}

// Get decodes the entry for key into v. A miss returns false and leaves v
// untouched; an undecodable entry is dropped and also reported as a miss.
func (c *JSONCache) Get(ctx context.Context, key string, v any) (bool, error) {
	data, ok, err := c.backend.Get(ctx, c.prefix+key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		_ = c.backend.Delete(ctx, c.prefix+key)
		return false, nil
	}
	return true, nil
}

// Set encodes v and stores it under key.
func (c *JSONCache) Set(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.backend.Set(ctx, c.prefix+key, data, c.ttl)
}

// Delete removes key.
func (c *JSONCache) Delete(ctx context.Context, key string) error {
	return c.backend.Delete(ctx, c.prefix+key)
}

// Namespace returns a view whose keys are additionally prefixed.
func (c *JSONCache) Namespace(prefix string) *JSONCache {
	return &JSONCache{backend: c.backend, ttl: c.ttl, prefix: c.prefix + prefix}
}

// TTL returns the lifetime applied to new entries.
func (c *JSONCache) TTL() time.Duration { return c.ttl }
