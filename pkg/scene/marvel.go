package scene

import (
	"fmt"
	"math/rand/v2"

	"github.com/gitcanvas/gitcanvas/pkg/canvas"
	"github.com/gitcanvas/gitcanvas/pkg/profile"
	"github.com/gitcanvas/gitcanvas/pkg/theme"
)

// Stones are the six gem colors, in slot order.
var Stones = [6]string{"#FFD700", "#FF0000", "#0000FF", "#800080", "#008000", "#FFA500"}

// Marvel draws six glowing stones in a row with a caption. Purely
// decorative.
type Marvel struct{}

func (Marvel) Compose(d profile.Data, th theme.Theme, c *canvas.Canvas, _ *rand.Rand) {
	frame(c, th, contributionsTitle(d))

	cy := c.Height()/2 + 10
	for i, color := range Stones {
		sx := 60 + float64(i)*60
		c.Circle(sx, cy, 15, canvas.Fill(color), canvas.Opacity(0.3))
		c.Circle(sx, cy, 8, canvas.Fill(color), canvas.Stroke("white"), canvas.StrokeWidth(1))
		c.Text(sx, cy+30, fmt.Sprintf("Stone %d", i+1),
			canvas.Fill("white"), canvas.FontSize(10), canvas.Anchor("middle"))
	}
	c.Text(c.Width()-80, cy, "SNAP!",
		canvas.Fill(th.Title), canvas.FontSize(24), canvas.FontWeight("bold"), canvas.FontFamily("Impact"))
}
