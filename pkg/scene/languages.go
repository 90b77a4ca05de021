package scene

import (
	"fmt"
	"math/rand/v2"

	"github.com/gitcanvas/gitcanvas/pkg/canvas"
	"github.com/gitcanvas/gitcanvas/pkg/profile"
	"github.com/gitcanvas/gitcanvas/pkg/theme"
)

// Language card geometry.
const (
	LanguagesWidth  = 300.0
	languagesHeader = 40.0
	languageRow     = 35.0
	languagesFooter = 10.0
	languagesTop    = 60.0
)

// NoData is the placeholder row drawn when a profile has no languages.
const NoData = "No Data"

// Languages draws the language breakdown: one row per language with a
// share label and a bar. The height grows with the number of rows.
type Languages struct{}

func (Languages) Size(d profile.Data) (float64, float64) {
	return LanguagesWidth, languagesHeader + float64(len(languageRows(d)))*languageRow + languagesFooter
}

// Share is a language's fraction of the total weight, in percent.
type Share struct {
	Name    string
	Percent float64
}

// Shares computes every language's percentage. A zero total is treated as
// one so an all-zero list renders as 0.0% rows. Negative weights count
// as zero.
func Shares(d profile.Data) []Share {
	rows := languageRows(d)
	total := 0
	for _, l := range rows {
		total += max(0, l.Weight)
	}
	if total == 0 {
		total = 1
	}
	out := make([]Share, len(rows))
	for i, l := range rows {
		out[i] = Share{Name: l.Name, Percent: float64(max(0, l.Weight)) / float64(total) * 100}
	}
	return out
}

func languageRows(d profile.Data) []profile.Language {
	if len(d.TopLanguages) == 0 {
		return []profile.Language{{Name: NoData}}
	}
	return d.TopLanguages
}

func (Languages) Compose(d profile.Data, th theme.Theme, c *canvas.Canvas, _ *rand.Rand) {
	frame(c, th, "Top Languages")

	barWidth := c.Width() - 40
	for i, s := range Shares(d) {
		y := languagesTop + float64(i)*languageRow
		c.Text(20, y, s.Name, body(th)...)
		c.Text(c.Width()-20, y, fmt.Sprintf("%.1f%%", s.Percent), body(th, canvas.Anchor("end"))...)

		barY := y + 5
		c.Rect(20, barY, barWidth, 6, canvas.Radius(3), canvas.Fill(th.Border), canvas.Opacity(0.3))
		c.Rect(20, barY, s.Percent/100*barWidth, 6, canvas.Radius(3), canvas.Fill(th.Title))
	}
}
