package scene

import (
	"math/rand/v2"

	"github.com/gitcanvas/gitcanvas/pkg/canvas"
	"github.com/gitcanvas/gitcanvas/pkg/profile"
	"github.com/gitcanvas/gitcanvas/pkg/theme"
)

// Levels are the contribution-graph intensity colors, empty to busiest.
var Levels = [5]string{"#161b22", "#0e4429", "#006d32", "#26a641", "#39d353"}

// Grid is the plain contribution-graph motif: a 25x5 block of squares.
//
// Cell levels are drawn from rng, not from the profile's activity. The
// card is illustrative only.
type Grid struct{}

func (Grid) Compose(d profile.Data, th theme.Theme, c *canvas.Canvas, rng *rand.Rand) {
	const (
		cols, rows = 25, 5
		box, gap   = 12.0, 3.0
		x0, y0     = 20.0, 60.0
	)
	frame(c, th, contributionsTitle(d))
	for col := range cols {
		for row := range rows {
			x := x0 + float64(col)*(box+gap)
			y := y0 + float64(row)*(box+gap)
			c.Rect(x, y, box, box, canvas.Fill(Levels[rng.IntN(len(Levels))]), canvas.Radius(2))
		}
	}
}
