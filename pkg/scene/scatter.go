package scene

import (
	"math/rand/v2"

	"github.com/gitcanvas/gitcanvas/pkg/canvas"
	"github.com/gitcanvas/gitcanvas/pkg/profile"
	"github.com/gitcanvas/gitcanvas/pkg/theme"
)

// Scatter drops one dot per active day at a random spot, sized by the
// day's count and colored from a fixed palette. Cyberpunk and Retro are
// both Scatter configurations.
type Scatter struct {
	Palette   []string
	Header    string  // drawn top-left when set
	Top       int     // minimum y for dots
	Growth    float64 // radius gained per contribution
	MaxRadius float64
	Glow      bool    // draw a faint halo behind each dot
	Opacity   float64 // dot fill opacity, zero means opaque
}

// Cyberpunk is a neon scatter with glow halos.
func Cyberpunk() Scatter {
	return Scatter{
		Palette:   []string{"#00ffff", "#39ff14", "#fcee0c", "#ff00ff"},
		Top:       20,
		Growth:    0.6,
		MaxRadius: 9,
		Glow:      true,
	}
}

// Retro is an ink-on-paper scatter under a log header.
func Retro() Scatter {
	return Scatter{
		Palette:   []string{"#5c4632", "#7a5c3e", "#3b2b20"},
		Header:    "Contribution Log",
		Top:       60,
		Growth:    0.4,
		MaxRadius: 7,
		Opacity:   0.8,
	}
}

func (Scatter) Size(profile.Data) (float64, float64) { return 800, 400 }

func (s Scatter) Compose(d profile.Data, th theme.Theme, c *canvas.Canvas, rng *rand.Rand) {
	w, h := int(c.Width()), int(c.Height())
	c.Rect(0, 0, c.Width(), c.Height(), canvas.Fill(th.Background))
	if s.Header != "" {
		c.Text(20, 40, s.Header, canvas.Fill(th.Title), canvas.FontSize(22), canvas.FontFamily(th.FontFamily))
	}
	if len(s.Palette) == 0 {
		return
	}

	for _, day := range d.Activity {
		if day.Count <= 0 {
			continue
		}
		x := float64(between(rng, 20, w-20))
		y := float64(between(rng, s.Top, h-20))
		r := min(2+float64(day.Count)*s.Growth, s.MaxRadius)
		color := s.Palette[day.Count%len(s.Palette)]

		if s.Glow {
			c.Circle(x, y, r*2.5, canvas.Fill(color), canvas.FillOpacity(0.12))
		}
		attrs := []canvas.Attr{canvas.Fill(color)}
		if s.Opacity > 0 {
			attrs = append(attrs, canvas.FillOpacity(s.Opacity))
		}
		c.Circle(x, y, r, attrs...)
	}
}
