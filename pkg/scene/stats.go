package scene

import (
	"math/rand/v2"
	"strconv"

	"github.com/gitcanvas/gitcanvas/pkg/canvas"
	"github.com/gitcanvas/gitcanvas/pkg/profile"
	"github.com/gitcanvas/gitcanvas/pkg/theme"
)

// Stats card geometry. Every row owns a fixed slot, so hiding one leaves
// the others where they were.
const (
	StatsWidth  = 450.0
	StatsHeight = 195.0
	statsTop    = 70.0
	statsRow    = 28.0
	statsValueX = 240.0
)

// StatRow identifies one line of the stats card.
type StatRow int

const (
	RowStars StatRow = iota
	RowCommits
	RowRepos
	RowFollowers
)

// Label is the text shown for the row.
func (r StatRow) Label() string {
	switch r {
	case RowStars:
		return "Total Stars:"
	case RowCommits:
		return "Total Commits:"
	case RowRepos:
		return "Public Repos:"
	case RowFollowers:
		return "Followers:"
	}
	return ""
}

// Y is the baseline of the row's slot.
func (r StatRow) Y() float64 { return statsTop + float64(r)*statsRow }

func (r StatRow) value(d profile.Data) string {
	switch r {
	case RowStars:
		return strconv.Itoa(d.TotalStars)
	case RowCommits:
		return d.TotalCommits.String()
	case RowRepos:
		return strconv.Itoa(d.PublicRepos)
	case RowFollowers:
		return strconv.Itoa(d.Followers)
	}
	return ""
}

// Stats draws the four headline numbers. Each Hide flag blanks its slot.
type Stats struct {
	HideStars     bool
	HideCommits   bool
	HideRepos     bool
	HideFollowers bool
}

// Visible reports whether row r is drawn.
func (s Stats) Visible(r StatRow) bool {
	switch r {
	case RowStars:
		return !s.HideStars
	case RowCommits:
		return !s.HideCommits
	case RowRepos:
		return !s.HideRepos
	case RowFollowers:
		return !s.HideFollowers
	}
	return false
}

func (Stats) Size(profile.Data) (float64, float64) { return StatsWidth, StatsHeight }

func (s Stats) Compose(d profile.Data, th theme.Theme, c *canvas.Canvas, _ *rand.Rand) {
	title := "GitHub Stats"
	if d.Username != "" {
		title = d.Username + "'s GitHub Stats"
	}
	frame(c, th, title)

	for r := RowStars; r <= RowFollowers; r++ {
		if !s.Visible(r) {
			continue
		}
		y := r.Y()
		c.Group(func() {
			c.Circle(32, y-5, 5, canvas.Fill(th.Icon))
			c.Text(48, y, r.Label(), body(th)...)
			c.Text(statsValueX, y, r.value(d), body(th, canvas.FontWeight("bold"))...)
		}, canvas.Class("stat"))
	}
}
