package cache

import (
	"context"
	"fmt"
)

// Config selects a backend. The first configured option wins: Disabled,
// then RedisURL, then MongoURI, then a FileCache in Dir.
type Config struct {
	Disabled bool
	RedisURL string
	MongoURI string
	Dir      string // empty means DefaultDir()

	// Prefix scopes keys on shared backends.
	Prefix string
}

// Open builds the cache described by cfg together with a matching Keyer.
func Open(ctx context.Context, cfg Config) (Cache, Keyer, error) {
	keyer := NewScopedKeyer(nil, cfg.Prefix)

	switch {
	case cfg.Disabled:
		return NewNullCache(), keyer, nil
	case cfg.RedisURL != "":
		c, err := NewRedisCache(ctx, cfg.RedisURL, cfg.Prefix)
		if err != nil {
			return nil, nil, err
		}
		return c, keyer, nil
	case cfg.MongoURI != "":
		c, err := NewMongoCache(ctx, cfg.MongoURI)
		if err != nil {
			return nil, nil, err
		}
		return c, keyer, nil
	}

	dir := cfg.Dir
	if dir == "" {
		var err error
		if dir, err = DefaultDir(); err != nil {
			return nil, nil, fmt.Errorf("cache dir: %w", err)
		}
	}
	c, err := NewFileCache(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("cache dir: %w", err)
	}
	return c, keyer, nil
}
