// Package cache stores fetched GitHub profiles between renders.
//
// Every backend implements [Cache], a byte-oriented key/value store with
// per-entry expiration:
//   - [FileCache]: JSON entries under the user cache directory, for the CLI
//   - [RedisCache]: shared cache for server deployments
//   - [MongoCache]: document store with a TTL index, for deployments that
//     already run MongoDB
//   - [NullCache]: disables caching (--no-cache)
//
// [Open] picks a backend from configuration. Keys come from a [Keyer] so
// several deployments can share one Redis or Mongo instance.
//
// Backends report hits, misses and writes through
// [observability.Cache].
package cache

import (
	"context"
	"time"
)

// Default lifetimes for cached entries.
const (
	// ProfileTTL bounds how stale a rendered card can be.
	ProfileTTL = time.Hour

	// HTTPTTL applies to raw upstream responses.
	HTTPTTL = 30 * time.Minute
)

// Cache is a key/value store with expiration. Implementations are safe for
// concurrent use.
type Cache interface {
	// Get returns the value for key. A missing or expired entry is a miss,
	// not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases connections held by the backend.
	Close() error
}

// Clearer is implemented by backends that can drop every entry they own.
type Clearer interface {
	Clear(ctx context.Context) error
}
