package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gitcanvas/gitcanvas/pkg/card"
	"github.com/gitcanvas/gitcanvas/pkg/errors"
	"github.com/gitcanvas/gitcanvas/pkg/profile"
	"github.com/gitcanvas/gitcanvas/pkg/theme"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	user      string
	output    string
	theme     string
	overrides theme.Overrides
	seed      uint64
	refresh   bool
	errorCard bool // write the error card instead of failing on fetch errors

	hideStars, hideCommits, hideRepos, hideFollowers bool
}

func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{theme: "Default"}

	cmd := &cobra.Command{
		Use:   "render <stats|languages|activity>",
		Short: "Render a profile card to SVG",
		Long: `Render a stats, top-languages or activity card for a GitHub user.

Activity cards take the motif of their theme (Gaming draws a snake, Space a
starfield, and so on). Cyberpunk, Retro, Space, Constellation and Default
scatter their decoration randomly; pass --seed for a reproducible result.`,
		Example: `  gitcanvas render stats --user octocat --theme Glass
  gitcanvas render activity --user octocat --theme Gaming -o snake.svg
  gitcanvas render languages --user octocat --bg 0d1117 --title ff79c6`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(card.KindStats), string(card.KindLanguages), string(card.KindActivity)},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := card.ParseKind(args[0])
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), kind, &opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.user, "user", "u", "", "GitHub username (required)")
	f.StringVarP(&opts.output, "output", "o", "", "output file (default <user>-<card>.svg)")
	f.StringVarP(&opts.theme, "theme", "t", opts.theme, "theme name")
	f.StringVar(&opts.overrides.Background, "bg", "", "background color override (hex)")
	f.StringVar(&opts.overrides.Title, "title", "", "title color override (hex)")
	f.StringVar(&opts.overrides.Text, "text", "", "text color override (hex)")
	f.StringVar(&opts.overrides.Border, "border", "", "border color override (hex)")
	f.Uint64Var(&opts.seed, "seed", 0, "random seed for decorative scenes (0 picks one)")
	f.BoolVar(&opts.refresh, "refresh", false, "bypass the profile cache")
	f.BoolVar(&opts.errorCard, "error-card", false, "on fetch failure, write the error card and exit 0")
	f.BoolVar(&opts.hideStars, "hide-stars", false, "omit the stars row (stats)")
	f.BoolVar(&opts.hideCommits, "hide-commits", false, "omit the commits row (stats)")
	f.BoolVar(&opts.hideRepos, "hide-repos", false, "omit the repositories row (stats)")
	f.BoolVar(&opts.hideFollowers, "hide-followers", false, "omit the followers row (stats)")

	_ = cmd.MarkFlagRequired("user")
	_ = cmd.RegisterFlagCompletionFunc("theme", c.completeThemes)

	return cmd
}

func (c *CLI) runRender(ctx context.Context, kind card.Kind, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	renderer, err := c.newRenderer()
	if err != nil {
		return err
	}
	if !renderer.Themes.Has(opts.theme) {
		printWarning("unknown theme %q, using Default", opts.theme)
	}

	path := opts.output
	if path == "" {
		path = fmt.Sprintf("%s-%s.svg", opts.user, kind)
	}

	d, err := c.fetch(ctx, opts.user, opts.refresh)
	if err != nil {
		if !opts.errorCard {
			return fmt.Errorf("fetch %s: %w", opts.user, err)
		}
		logger.Debug("fetch failed, writing error card", "user", opts.user, "err", err)
		if err := writeCard(path, card.RenderErrorFor(err)); err != nil {
			return err
		}
		printWarning("%s: %s", opts.user, errors.UserMessage(err))
		printFile(path)
		return nil
	}
	printProfile(d)

	svg, err := renderer.Render(kind, d, card.StatsOptions{
		Options: card.Options{
			Theme:     opts.theme,
			Overrides: opts.overrides,
			Seed:      opts.seed,
		},
		HideStars:     opts.hideStars,
		HideCommits:   opts.hideCommits,
		HideRepos:     opts.hideRepos,
		HideFollowers: opts.hideFollowers,
	})
	if err != nil {
		return err
	}
	if err := writeCard(path, svg); err != nil {
		return err
	}

	printSuccess("Rendered %s card (%s)", kind, renderer.Themes.Lookup(opts.theme).Name)
	printFile(path)
	printNextStep("Serve it live", fmt.Sprintf("gitcanvas serve, then GET /api/%s?username=%s&theme=%s", route(kind), opts.user, opts.theme))
	return nil
}

// fetch loads a profile behind a spinner.
func (c *CLI) fetch(ctx context.Context, user string, refresh bool) (profile.Data, error) {
	src, release, err := c.newSource(ctx)
	if err != nil {
		return profile.Data{}, err
	}
	defer release()

	prog := newProgress(loggerFromContext(ctx))
	var d profile.Data
	err = spin(ctx, "Fetching "+user, "Fetched "+user, func(ctx context.Context) error {
		var err error
		if r, ok := src.(refresher); ok && refresh {
			d, err = r.Refresh(ctx, user)
		} else {
			d, err = src.Fetch(ctx, user)
		}
		return err
	})
	if err != nil {
		return profile.Data{}, err
	}
	prog.done("fetched profile", "user", user, "offline", c.Config.Offline)
	return d, nil
}

type refresher interface {
	Refresh(ctx context.Context, username string) (profile.Data, error)
}

func writeCard(path string, svg []byte) error {
	if err := os.WriteFile(path, svg, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// route is the HTTP path segment serving kind.
func route(kind card.Kind) string {
	if kind == card.KindActivity {
		return "contributions"
	}
	return string(kind)
}
