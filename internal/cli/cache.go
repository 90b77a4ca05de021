package cli

import (
	"context"
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/gitcanvas/gitcanvas/pkg/cache"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the profile cache",
		Long: `Manage the cache of fetched GitHub profiles.

The backend is Redis when GITCANVAS_REDIS_URL is set, MongoDB when
GITCANVAS_MONGO_URI is set, and a directory under $XDG_CACHE_HOME otherwise.`,
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.Config.NoCache {
				printInfo("Cache is disabled")
				return nil
			}
			backend, err := c.openCache(cmd.Context())
			if err != nil {
				return err
			}
			defer backend.Close()

			clearer, ok := backend.(cache.Clearer)
			if !ok {
				printWarning("The %s backend cannot be cleared", backendName(backend))
				return nil
			}
			if err := clearer.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}
			printSuccess("Cleared the %s cache", backendName(backend))
			printDetail("%s", c.cacheLocation(backend))
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where profiles are cached",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := c.openCache(cmd.Context())
			if err != nil {
				return err
			}
			defer backend.Close()

			if fc, ok := backend.(*cache.FileCache); ok {
				fmt.Fprintln(out, fc.Dir())
				return nil
			}
			printKeyValue("Backend", backendName(backend))
			printKeyValue("Location", c.cacheLocation(backend))
			return nil
		},
	}
}

// openCache opens the configured backend, ignoring --no-cache.
func (c *CLI) openCache(ctx context.Context) (cache.Cache, error) {
	cfg := c.Config.CacheConfig()
	cfg.Disabled = false
	backend, _, err := cache.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	return backend, nil
}

func backendName(backend cache.Cache) string {
	switch backend.(type) {
	case *cache.FileCache:
		return "file"
	case *cache.RedisCache:
		return "redis"
	case *cache.MongoCache:
		return "mongo"
	default:
		return "null"
	}
}

// cacheLocation describes where backend keeps its data, with credentials
// removed.
func (c *CLI) cacheLocation(backend cache.Cache) string {
	switch b := backend.(type) {
	case *cache.FileCache:
		return b.Dir()
	case *cache.RedisCache:
		return redact(c.Config.RedisURL) + " (prefix " + c.Config.CachePrefix + ")"
	case *cache.MongoCache:
		return redact(c.Config.MongoURI)
	default:
		return "-"
	}
}

func redact(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<invalid url>"
	}
	return u.Redacted()
}
