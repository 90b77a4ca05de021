package card

import (
	"io"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/gitcanvas/gitcanvas/pkg/canvas"
	"github.com/gitcanvas/gitcanvas/pkg/errors"
	"github.com/gitcanvas/gitcanvas/pkg/observability"
	"github.com/gitcanvas/gitcanvas/pkg/profile"
	"github.com/gitcanvas/gitcanvas/pkg/scene"
	"github.com/gitcanvas/gitcanvas/pkg/theme"
)

// Kind names one of the three cards.
type Kind string

const (
	KindStats     Kind = "stats"
	KindLanguages Kind = "languages"
	KindActivity  Kind = "activity"
)

// Kinds lists every card kind in display order.
var Kinds = []Kind{KindStats, KindLanguages, KindActivity}

// ParseKind accepts a card name case-insensitively. "contributions" is an
// alias for the activity card, matching the HTTP route.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindStats, KindLanguages, KindActivity:
		return k, nil
	case "contributions":
		return KindActivity, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidCard, "unknown card %q (want stats, languages or activity)", s)
	}
}

// Options configures a single render.
type Options struct {
	// Theme is the theme name. Empty and unknown names render with Default.
	Theme string

	// Overrides replace the theme's color slots for this render only.
	Overrides theme.Overrides

	// Seed fixes the decorative randomness. Zero draws a seed from the clock.
	Seed uint64
}

// StatsOptions adds the per-row visibility flags of the stats card.
type StatsOptions struct {
	Options
	HideStars     bool
	HideCommits   bool
	HideRepos     bool
	HideFollowers bool
}

// Renderer turns profile data into card documents.
//
// A Renderer holds only read-only registries, so one value may serve any
// number of goroutines.
type Renderer struct {
	Themes *theme.Registry
	Scenes *scene.Registry
	Logger *log.Logger

	// Seeds supplies seeds for renders that do not fix one.
	Seeds func() uint64
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithThemes replaces the built-in theme registry.
func WithThemes(r *theme.Registry) Option {
	return func(rr *Renderer) {
		if r != nil {
			rr.Themes = r
		}
	}
}

// WithScenes replaces the built-in composer registry.
func WithScenes(r *scene.Registry) Option {
	return func(rr *Renderer) {
		if r != nil {
			rr.Scenes = r
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(rr *Renderer) {
		if l != nil {
			rr.Logger = l
		}
	}
}

// WithSeeds sets the seed source used when Options.Seed is zero.
func WithSeeds(fn func() uint64) Option {
	return func(rr *Renderer) {
		if fn != nil {
			rr.Seeds = fn
		}
	}
}

// New returns a Renderer over the built-in themes and composers.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		Themes: theme.Builtin(),
		Scenes: scene.NewRegistry(),
		Logger: log.NewWithOptions(io.Discard, log.Options{}),
		Seeds:  clockSeed,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func clockSeed() uint64 { return uint64(time.Now().UnixNano()) }

// RenderStats draws the stats card.
func (r *Renderer) RenderStats(d profile.Data, opts StatsOptions) ([]byte, error) {
	comp := scene.Stats{
		HideStars:     opts.HideStars,
		HideCommits:   opts.HideCommits,
		HideRepos:     opts.HideRepos,
		HideFollowers: opts.HideFollowers,
	}
	return r.render(KindStats, comp, d, opts.Options)
}

// RenderLanguages draws the language breakdown card. Its height grows
// with the number of languages.
func (r *Renderer) RenderLanguages(d profile.Data, opts Options) ([]byte, error) {
	return r.render(KindLanguages, scene.Languages{}, d, opts)
}

// RenderActivity draws the contribution activity card with the motif
// registered for the theme.
func (r *Renderer) RenderActivity(d profile.Data, opts Options) ([]byte, error) {
	return r.render(KindActivity, r.Scenes.Lookup(opts.Theme), d, opts)
}

// Render dispatches on kind. The hide flags only affect the stats card.
func (r *Renderer) Render(kind Kind, d profile.Data, opts StatsOptions) ([]byte, error) {
	switch kind {
	case KindStats:
		return r.RenderStats(d, opts)
	case KindLanguages:
		return r.RenderLanguages(d, opts.Options)
	case KindActivity:
		return r.RenderActivity(d, opts.Options)
	default:
		return nil, errors.New(errors.ErrCodeInvalidCard, "unknown card %q", kind)
	}
}

func (r *Renderer) render(kind Kind, comp scene.Composer, d profile.Data, opts Options) (out []byte, err error) {
	hooks := observability.Render()
	hooks.OnRenderStart(string(kind), opts.Theme)
	start := time.Now()
	defer func() {
		hooks.OnRenderComplete(string(kind), opts.Theme, len(out), time.Since(start), err)
	}()

	th, err := r.Themes.Resolve(opts.Theme, opts.Overrides)
	if err != nil {
		return nil, err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = r.Seeds()
	}
	rng := rand.New(rand.NewPCG(seed, seed^0xdeadbeef))

	w, h := scene.SizeOf(comp, d)
	c := canvas.New(w, h)
	comp.Compose(d, th, c, rng)
	out = c.Bytes()

	r.Logger.Debug("rendered card",
		"card", kind,
		"theme", th.Name,
		"user", d.Username,
		"size", len(out))
	return out, nil
}
