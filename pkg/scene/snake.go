package scene

import (
	"math/rand/v2"

	"github.com/gitcanvas/gitcanvas/pkg/canvas"
	"github.com/gitcanvas/gitcanvas/pkg/grid"
	"github.com/gitcanvas/gitcanvas/pkg/profile"
	"github.com/gitcanvas/gitcanvas/pkg/theme"
)

// SnakeGrid is the 28-week by 7-day board the snake moves on.
var SnakeGrid = grid.Params{Cols: 28, Rows: 7, Tile: 12, Gap: 2, OriginX: 20, OriginY: 55}

const (
	groundColor = "#1e293b"
	appleColor  = "#ff5252"
	leafColor   = "#43a047"
	outline     = "#020617"
)

// Snake is the arcade motif: the last 196 days as terrain, high-activity
// days as apples, and a snake whose head sits on the most recent active
// day. It uses no randomness.
type Snake struct{}

func (Snake) Size(profile.Data) (float64, float64) { return 560, 180 }

func (Snake) Compose(d profile.Data, th theme.Theme, c *canvas.Canvas, _ *rand.Rand) {
	frame(c, th, contributionsTitle(d))
	c.Text(c.Width()-150, 30, "SCORE: "+d.TotalCommits.String(),
		canvas.Fill(th.Text), canvas.FontFamily("Courier New"), canvas.FontSize(14), canvas.FontWeight("bold"))

	cells := grid.Layout(d.Activity, SnakeGrid)
	tile := SnakeGrid.Tile
	for _, cell := range cells {
		c.Rect(cell.X, cell.Y, tile, tile, canvas.Fill(terrain(cell.Count)), canvas.Radius(1))
	}

	path := grid.Synthesize(cells, SnakeGrid, grid.WithRamp(grid.Ramp{
		Dark:   blend(th.Background, th.Icon, 0.45),
		Mid:    th.Icon,
		Bright: th.Title,
	}))

	for _, h := range path.Hotspots {
		cx, cy := h.Center(tile)
		c.Circle(cx, cy, tile*0.4, canvas.Fill(appleColor), canvas.FillOpacity(0.9))
		c.Rect(cx-1.5, cy-tile*0.4-2, 3, 4, canvas.Fill(leafColor))
	}

	for _, s := range path.Segments {
		if s.Head {
			continue
		}
		c.Rect(s.X, s.Y, tile, tile, canvas.Fill(s.Color), canvas.Radius(2),
			canvas.Stroke(outline), canvas.StrokeWidth(0.5))
	}

	head, ok := path.Head()
	if !ok {
		return
	}
	c.Rect(head.X, head.Y, tile, tile, canvas.Fill(th.Title), canvas.Radius(2),
		canvas.Stroke(outline), canvas.StrokeWidth(1))
	const eye, inset = 2.5, 2.5
	c.Rect(head.X+inset, head.Y+inset, eye, eye, canvas.Fill("black"))
	c.Rect(head.X+tile-eye-inset, head.Y+inset, eye, eye, canvas.Fill("black"))
}

// terrain colors a tile by activity: bare ground, then three grass shades.
func terrain(count int) string {
	switch {
	case count <= 0:
		return groundColor
	case count < 3:
		return "#2e7d32"
	case count < 7:
		return "#43a047"
	default:
		return "#81c784"
	}
}
