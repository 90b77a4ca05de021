package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gitcanvas/gitcanvas/internal/config"
	"github.com/gitcanvas/gitcanvas/pkg/buildinfo"
	"github.com/gitcanvas/gitcanvas/pkg/cache"
	"github.com/gitcanvas/gitcanvas/pkg/card"
	gcerrors "github.com/gitcanvas/gitcanvas/pkg/errors"
	"github.com/gitcanvas/gitcanvas/pkg/github"
	"github.com/gitcanvas/gitcanvas/pkg/observability"
	"github.com/gitcanvas/gitcanvas/pkg/profile"
)

// appName is the application name used for directories and display.
const appName = "gitcanvas"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Config holds environment settings. Global flags override it.
	Config config.Config
}

// New creates a new CLI instance with a default logger and the settings
// found in the process environment.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.FromEnv(),
	}
}

// Exit reports err to the user and returns the process exit status: 0 on
// success, 130 after an interrupt, 1 for any other failure. The full error
// chain is logged at debug level; the user sees the short message.
func (c *CLI) Exit(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return 130
	}
	c.Logger.Debug("command failed", "err", err)
	fmt.Fprintln(errOut, styleIconError.Render(iconError)+" "+gcerrors.UserMessage(err))
	return 1
}

// SetLogLevel updates the logger's level. At debug level render, cache and
// HTTP events are logged as well.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		h := observability.NewLogHooks(c.Logger)
		observability.SetRenderHooks(h)
		observability.SetCacheHooks(h)
		observability.SetHTTPHooks(h)
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "gitcanvas draws GitHub profile cards as SVG",
		Long:         `gitcanvas renders themed SVG cards (stats, top languages and contribution activity) for a GitHub user, from the command line or as an HTTP service.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.BoolVar(&c.Config.NoCache, "no-cache", c.Config.NoCache, "disable the profile cache")
	flags.BoolVar(&c.Config.Offline, "offline", c.Config.Offline, "render a built-in sample profile instead of calling GitHub")
	flags.StringVar(&c.Config.ThemesDir, "themes", c.Config.ThemesDir, "directory of extra theme definitions (.toml, .yaml, .json)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.themesCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Factories
// =============================================================================

// newRenderer builds a card renderer over the configured theme registry.
func (c *CLI) newRenderer() (*card.Renderer, error) {
	themes, err := c.Config.Themes()
	if err != nil {
		return nil, fmt.Errorf("load themes: %w", err)
	}
	return card.New(card.WithThemes(themes), card.WithLogger(c.Logger)), nil
}

// newSource returns the profile source for the current settings and a
// function releasing it. Offline mode never touches the cache or network.
func (c *CLI) newSource(ctx context.Context) (profile.Source, func(), error) {
	if c.Config.Offline {
		return profile.SampleSource{}, func() {}, nil
	}

	backend, keyer, err := cache.Open(ctx, c.Config.CacheConfig())
	if err != nil {
		c.Logger.Warn("cache unavailable, continuing without it", "err", err)
		backend, keyer = cache.NewNullCache(), cache.NewDefaultKeyer()
	}
	if c.Config.Token == "" {
		c.Logger.Warn("no GITCANVAS_TOKEN or GITHUB_TOKEN set, using the unauthenticated GitHub API (rate limited)")
	}

	opts := []github.Option{github.WithLogger(c.Logger)}
	if c.Config.APIURL != "" {
		opts = append(opts, github.WithBaseURL(c.Config.APIURL))
	}
	if c.Config.ContribURL != "" {
		opts = append(opts, github.WithContributionsURL(c.Config.ContribURL))
	}
	client := github.NewClient(c.Config.Token, backend, keyer, opts...)
	return client, func() { _ = backend.Close() }, nil
}
