package scene

import (
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gitcanvas/gitcanvas/pkg/canvas"
	"github.com/gitcanvas/gitcanvas/pkg/profile"
	"github.com/gitcanvas/gitcanvas/pkg/theme"
)

// Composer draws one card motif. Implementations only append to the
// canvas and take all randomness from rng, so a fixed seed reproduces the
// same document.
type Composer interface {
	Compose(d profile.Data, th theme.Theme, c *canvas.Canvas, rng *rand.Rand)
}

// Sizer is implemented by composers that need a canvas other than the
// default activity card size.
type Sizer interface {
	Size(d profile.Data) (width, height float64)
}

// Activity card dimensions used when a composer is not a [Sizer].
const (
	DefaultWidth  = 500
	DefaultHeight = 150
)

// SizeOf returns the canvas size comp asks for.
func SizeOf(comp Composer, d profile.Data) (width, height float64) {
	if s, ok := comp.(Sizer); ok {
		return s.Size(d)
	}
	return DefaultWidth, DefaultHeight
}

// DefaultID identifies the composer used for themes without a motif of
// their own.
const DefaultID = "default"

// Registry maps theme identifiers to activity composers. Register
// everything before sharing it; lookups do not lock.
type Registry struct {
	composers map[string]Composer
}

// NewRegistry returns a registry holding every built-in motif.
func NewRegistry() *Registry {
	r := &Registry{composers: make(map[string]Composer)}
	r.Register(DefaultID, Grid{})
	r.Register("gaming", Snake{})
	r.Register("space", Space{})
	r.Register("constellation", Constellation{})
	r.Register("glass", Glass{})
	r.Register("marvel", Marvel{})
	r.Register("cyberpunk", Cyberpunk())
	r.Register("retro", Retro())
	return r
}

// Register binds id (case-insensitive) to comp, replacing any previous
// binding.
func (r *Registry) Register(id string, comp Composer) {
	r.composers[strings.ToLower(strings.TrimSpace(id))] = comp
}

// Lookup returns the composer for a theme name, falling back to the
// default grid.
func (r *Registry) Lookup(name string) Composer {
	if comp, ok := r.composers[strings.ToLower(strings.TrimSpace(name))]; ok {
		return comp
	}
	return r.composers[DefaultID]
}

// Motif returns the identifier Lookup resolves name to.
func (r *Registry) Motif(name string) string {
	id := strings.ToLower(strings.TrimSpace(name))
	if _, ok := r.composers[id]; ok {
		return id
	}
	return DefaultID
}

// IDs returns the registered identifiers, sorted.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.composers))
	for id := range r.composers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// frame draws the rounded card background and its title.
func frame(c *canvas.Canvas, th theme.Theme, title string) {
	c.Rect(1, 1, c.Width()-2, c.Height()-2,
		canvas.Radius(10), canvas.Fill(th.Background), canvas.Stroke(th.Border), canvas.StrokeWidth(2))
	heading(c, th, 20, 30, title)
}

func heading(c *canvas.Canvas, th theme.Theme, x, y float64, s string) {
	c.Text(x, y, s, canvas.With(
		canvas.Font(th.FontFamily, th.TitleFontSize),
		[]canvas.Attr{canvas.Fill(th.Title), canvas.FontWeight("bold")},
	)...)
}

func body(th theme.Theme, extra ...canvas.Attr) []canvas.Attr {
	return canvas.With(canvas.Font(th.FontFamily, th.TextFontSize), []canvas.Attr{canvas.Fill(th.Text)}, extra)
}

func contributionsTitle(d profile.Data) string {
	if d.Username == "" {
		return "Contributions"
	}
	return d.Username + "'s Contributions"
}

// blend mixes two hex colors in Lab space. t=0 is a, t=1 is b.
func blend(a, b string, t float64) string {
	ca, err := colorful.Hex(a)
	if err != nil {
		return a
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return a
	}
	return ca.BlendLab(cb, t).Clamped().Hex()
}

// between returns a uniformly distributed integer in [lo, hi].
func between(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}

// uniform returns a uniformly distributed float in [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
