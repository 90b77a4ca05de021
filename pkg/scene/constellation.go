package scene

import (
	"math"
	"math/rand/v2"

	"github.com/gitcanvas/gitcanvas/pkg/canvas"
	"github.com/gitcanvas/gitcanvas/pkg/profile"
	"github.com/gitcanvas/gitcanvas/pkg/theme"
)

const (
	constellationDays = 80
	linkDistance      = 140.0
	radiusJitter      = 0.15
	haloCount         = 5
)

// Constellation scatters recent days inside an ellipse and links nearby
// ones. Even days fall in the left half, odd days in the right. Brighter,
// larger stars had more activity; days with five or more contributions
// also get a halo.
type Constellation struct{}

func (Constellation) Size(profile.Data) (float64, float64) { return 500, 220 }

type star struct {
	x, y  float64
	count int
}

func (Constellation) Compose(d profile.Data, th theme.Theme, c *canvas.Canvas, rng *rand.Rand) {
	frame(c, th, contributionsTitle(d))

	days := d.RecentActivity(constellationDays)
	if len(days) == 0 {
		return
	}

	cx, cy := c.Width()/2, c.Height()/2+15
	rx, ry := c.Width()/2-40, c.Height()/2-40
	stars := make([]star, len(days))
	for i, day := range days {
		angle := uniform(rng, -math.Pi/2, math.Pi/2)
		if i%2 == 0 {
			angle += math.Pi
		}
		spread := math.Sqrt(rng.Float64()) * uniform(rng, 1-radiusJitter, 1+radiusJitter)
		spread = min(spread, 1)
		stars[i] = star{
			x:     cx + math.Cos(angle)*rx*spread,
			y:     cy + math.Sin(angle)*ry*spread,
			count: max(0, day.Count),
		}
	}

	for i, a := range stars {
		for range between(rng, 2, 6) {
			j := rng.IntN(len(stars))
			if j == i {
				continue
			}
			b := stars[j]
			if math.Hypot(a.x-b.x, a.y-b.y) >= linkDistance {
				continue
			}
			opacity := min(0.6, 0.08+float64(a.count+b.count)*0.04)
			c.Line(a.x, a.y, b.x, b.y, canvas.Stroke(th.Icon), canvas.StrokeWidth(0.8),
				canvas.StrokeOpacity(opacity), canvas.LineCap("round"))
		}
	}

	c.RadialGradient("starHalo",
		canvas.Stop{Offset: 0, Color: th.Title, Opacity: 0.45},
		canvas.Stop{Offset: 1, Color: th.Title, Opacity: 0.001},
	)
	for _, s := range stars {
		if s.count >= haloCount {
			c.Circle(s.x, s.y, 6+float64(min(s.count, 10)), canvas.FillURL("starHalo"))
		}
	}

	for _, s := range stars {
		level := float64(min(s.count, 10))
		fill := th.Title
		if s.count == 0 {
			fill = th.Text
		}
		c.Circle(s.x, s.y, 1.5+level*0.35, canvas.Fill(fill), canvas.Opacity(0.25+level*0.07))
	}
}
