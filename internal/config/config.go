// Package config gathers gitcanvas settings from the environment.
//
// An optional .env file in the working directory is read first; variables
// already set in the process environment win over it.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/gitcanvas/gitcanvas/pkg/cache"
	"github.com/gitcanvas/gitcanvas/pkg/theme"
)

// Environment variables.
const (
	EnvToken       = "GITCANVAS_TOKEN"
	EnvGitHubToken = "GITHUB_TOKEN"
	EnvRedisURL    = "GITCANVAS_REDIS_URL"
	EnvMongoURI    = "GITCANVAS_MONGO_URI"
	EnvCacheDir    = "GITCANVAS_CACHE_DIR"
	EnvCachePrefix = "GITCANVAS_CACHE_PREFIX"
	EnvNoCache     = "GITCANVAS_NO_CACHE"
	EnvThemes      = "GITCANVAS_THEMES"
	EnvAddr        = "GITCANVAS_ADDR"
	EnvOffline     = "GITCANVAS_OFFLINE"
	EnvAPIURL      = "GITCANVAS_API_URL"
	EnvContribURL  = "GITCANVAS_CONTRIBUTIONS_URL"
)

// Defaults.
const (
	DefaultAddr        = ":8080"
	DefaultCachePrefix = "gitcanvas:"
)

// Config is the resolved runtime configuration. CLI flags are applied on
// top of it by the caller.
type Config struct {
	Token       string
	RedisURL    string
	MongoURI    string
	CacheDir    string
	CachePrefix string
	ThemesDir   string
	Addr        string
	NoCache     bool
	Offline     bool

	// Upstream endpoints; empty selects the public services.
	APIURL     string
	ContribURL string
}

// Load reads .env (if present) and then the process environment.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the process environment alone.
func FromEnv() Config {
	token := env(EnvToken, "")
	if token == "" {
		token = env(EnvGitHubToken, "")
	}
	return Config{
		Token:       token,
		RedisURL:    env(EnvRedisURL, ""),
		MongoURI:    env(EnvMongoURI, ""),
		CacheDir:    env(EnvCacheDir, ""),
		CachePrefix: env(EnvCachePrefix, DefaultCachePrefix),
		ThemesDir:   env(EnvThemes, ""),
		Addr:        env(EnvAddr, DefaultAddr),
		NoCache:     envBool(EnvNoCache),
		Offline:     envBool(EnvOffline),
		APIURL:      env(EnvAPIURL, ""),
		ContribURL:  env(EnvContribURL, ""),
	}
}

// CacheConfig selects the cache backend for this configuration.
func (c Config) CacheConfig() cache.Config {
	return cache.Config{
		Disabled: c.NoCache,
		RedisURL: c.RedisURL,
		MongoURI: c.MongoURI,
		Dir:      c.CacheDir,
		Prefix:   c.CachePrefix,
	}
}

// Themes returns the builtin registry, extended with ThemesDir when set.
func (c Config) Themes() (*theme.Registry, error) {
	if c.ThemesDir == "" {
		return theme.Builtin(), nil
	}
	return theme.Load(c.ThemesDir)
}

func env(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envBool(key string) bool {
	b, _ := strconv.ParseBool(os.Getenv(key))
	return b
}
