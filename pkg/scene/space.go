package scene

import (
	"fmt"
	"math/rand/v2"

	"github.com/gitcanvas/gitcanvas/pkg/canvas"
	"github.com/gitcanvas/gitcanvas/pkg/profile"
	"github.com/gitcanvas/gitcanvas/pkg/theme"
)

// Space is a starfield with a small ship firing a beam off the right edge.
// Star placement is random and unrelated to activity.
type Space struct {
	Stars int // zero means 30
}

const (
	shipHull  = "#00a8ff"
	shipFlame = "orange"
)

func (s Space) Compose(d profile.Data, th theme.Theme, c *canvas.Canvas, rng *rand.Rand) {
	frame(c, th, contributionsTitle(d))

	w, h := c.Width(), c.Height()
	n := s.Stars
	if n <= 0 {
		n = 30
	}
	for range n {
		x := between(rng, 20, int(w)-20)
		y := between(rng, 50, int(h)-20)
		c.Circle(float64(x), float64(y), uniform(rng, 1, 3),
			canvas.Fill("white"), canvas.Opacity(uniform(rng, 0.5, 1)))
	}

	sx, sy := w-60, h/2+10
	c.Path(triangle(sx-10, sy, sx-20, sy-5, sx-20, sy+5), canvas.Fill(shipFlame))
	c.Path(triangle(sx, sy, sx-15, sy-8, sx-15, sy+8), canvas.Fill(shipHull))
	c.Line(sx, sy, w, sy, canvas.Stroke(shipHull), canvas.StrokeWidth(2), canvas.Dash("4,2"))
}

func triangle(x1, y1, x2, y2, x3, y3 float64) string {
	return fmt.Sprintf("M %g %g L %g %g L %g %g Z", x1, y1, x2, y2, x3, y3)
}
