package scene

import (
	"math/rand/v2"

	"github.com/gitcanvas/gitcanvas/pkg/canvas"
	"github.com/gitcanvas/gitcanvas/pkg/profile"
	"github.com/gitcanvas/gitcanvas/pkg/theme"
)

const (
	glassDays    = 180
	glassCols    = 24
	glassMarginX = 28.0
	glassMarginY = 30.0
)

// Glass is a frosted panel over a dark gradient holding the last 180 days
// as bubbles, 24 to a row.
type Glass struct{}

type bubble struct {
	r, opacity float64
	color      string
}

// bubbleFor buckets a day: none, light, medium, heavy.
func bubbleFor(count int) bubble {
	switch {
	case count <= 0:
		return bubble{2, 0.12, "#e5e7eb"}
	case count < 3:
		return bubble{3.5, 0.25, "#bae6fd"}
	case count < 7:
		return bubble{4.5, 0.45, "#7dd3fc"}
	default:
		return bubble{6, 0.7, "#38bdf8"}
	}
}

// Size leaves room for all eight bubble rows inside the panel.
func (Glass) Size(profile.Data) (float64, float64) { return 500, 210 }

func (Glass) Compose(d profile.Data, th theme.Theme, c *canvas.Canvas, _ *rand.Rand) {
	w, h := c.Width(), c.Height()

	c.LinearGradient("glassBg",
		canvas.Stop{Offset: 0, Color: th.Background},
		canvas.Stop{Offset: 0.5, Color: blend(th.Background, "#1e293b", 0.35)},
		canvas.Stop{Offset: 1, Color: th.Background},
	)
	c.FrostFilter("glassBlur", 10)
	c.GlowFilter("glassGlow", 6)

	c.Rect(0, 0, w, h, canvas.Radius(18), canvas.FillURL("glassBg"))
	c.Rect(0, 0, w, h, canvas.Radius(18), canvas.Fill("#ffffff"), canvas.FillOpacity(0.02))

	pw, ph := w-glassMarginX*2, h-glassMarginY*2
	c.Rect(glassMarginX, glassMarginY, pw, ph,
		canvas.Radius(22), canvas.Fill("#ffffff"), canvas.FillOpacity(0.10),
		canvas.Stroke(th.Border), canvas.StrokeWidth(1.2), canvas.FilterURL("glassBlur"))
	c.Rect(glassMarginX-2, glassMarginY-2, pw+4, ph+4,
		canvas.Radius(24), canvas.Fill(th.Border), canvas.FillOpacity(0.06), canvas.FilterURL("glassGlow"))

	headerY := glassMarginY + 20
	heading(c, th, glassMarginX+16, headerY, contributionsTitle(d))
	c.Text(glassMarginX+16, headerY+18, "Recent activity", canvas.With(
		canvas.Font(th.FontFamily, th.TextFontSize-2),
		[]canvas.Attr{canvas.Fill(th.Text), canvas.FillOpacity(0.7)},
	)...)

	x0, y0 := glassMarginX+20, glassMarginY+42
	for i, day := range d.RecentActivity(glassDays) {
		x := x0 + float64(i%glassCols)*16
		y := y0 + float64(i/glassCols)*14
		b := bubbleFor(day.Count)
		c.Circle(x, y, b.r, canvas.Fill(b.color), canvas.FillOpacity(b.opacity))
		if day.Count > 0 {
			c.Circle(x-b.r*0.3, y-b.r*0.4, b.r*0.45, canvas.Fill("#ffffff"), canvas.FillOpacity(0.35))
			c.Ellipse(x, y+b.r*0.4, b.r*0.9, b.r*0.3, canvas.Fill(outline), canvas.FillOpacity(0.35))
		}
	}
}
