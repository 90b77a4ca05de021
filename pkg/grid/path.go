package grid

import (
	"cmp"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	minPathLen     = 15
	maxPathLen     = 40
	fallbackLen    = 18
	hotspotFloor   = 3
	hotspotPercent = 0.3
)

// Ramp is the three-stop gradient applied from tail to head: dark to mid
// over the first half of the path, mid to bright over the second.
type Ramp struct {
	Dark, Mid, Bright string
}

// DefaultRamp is the contribution-graph green.
var DefaultRamp = Ramp{Dark: "#0e4429", Mid: "#26a641", Bright: "#39d353"}

// Segment is one step of the path.
type Segment struct {
	Cell
	Color string
	Head  bool
}

// Path is a winding route through active cells ending at the most recent
// one. Segments run tail to head.
type Path struct {
	Segments []Segment
	Hotspots []Cell
}

// Head returns the final segment. ok is false for an empty path.
func (p Path) Head() (s Segment, ok bool) {
	if len(p.Segments) == 0 {
		return Segment{}, false
	}
	return p.Segments[len(p.Segments)-1], true
}

// Len returns the number of segments.
func (p Path) Len() int { return len(p.Segments) }

// PathOption configures [Synthesize].
type PathOption func(*pathConfig)

type pathConfig struct {
	ramp Ramp
}

// WithRamp replaces the default ramp. Colors that fail to parse fall back
// to the corresponding default stop.
func WithRamp(r Ramp) PathOption {
	return func(c *pathConfig) { c.ramp = r }
}

// Synthesize derives the activity path for cells laid out with p. It is
// pure and deterministic: the same cells always produce the same path.
//
// With at least one active cell the path visits active cells in
// chronological order at an even stride, holds between 15 and 40 segments
// (or every active cell when there are fewer than 15), and always ends at
// the most recent active cell. Without activity it is a straight run of
// min(18, p.Cols) cells along the middle row, placed from the grid geometry
// so a short history still gets a full run.
func Synthesize(cells []Cell, p Params, opts ...PathOption) Path {
	cfg := pathConfig{ramp: DefaultRamp}
	for _, opt := range opts {
		opt(&cfg)
	}
	if p.Size() == 0 {
		return Path{}
	}

	active := activeCells(cells)
	if len(active) == 0 {
		return Path{Segments: colorize(fallbackRun(p), cfg.ramp)}
	}

	return Path{
		Segments: colorize(walk(active), cfg.ramp),
		Hotspots: hotspots(active),
	}
}

// activeCells returns the cells with activity, oldest first.
func activeCells(cells []Cell) []Cell {
	var active []Cell
	for _, c := range cells {
		if c.Active() {
			active = append(active, c)
		}
	}
	slices.SortStableFunc(active, func(a, b Cell) int { return cmp.Compare(a.Index, b.Index) })
	return active
}

// fallbackRun is the first min(18, cols) cells of the middle row.
func fallbackRun(p Params) []Cell {
	center := p.Rows / 2
	run := make([]Cell, min(fallbackLen, p.Cols))
	for col := range run {
		run[col] = p.cell(col*p.Rows+center, 0)
	}
	return run
}

// hotspots returns the active cells at or above max(3, 30% of the peak).
func hotspots(active []Cell) []Cell {
	peak := 0
	for _, c := range active {
		peak = max(peak, c.Count)
	}
	threshold := max(hotspotFloor, hotspotPercent*float64(peak))

	var out []Cell
	for _, c := range active {
		if float64(c.Count) >= threshold {
			out = append(out, c)
		}
	}
	return out
}

// targetLen is clamp(active/2, 15, 40).
func targetLen(active int) int {
	return min(max(active/2, minPathLen), maxPathLen)
}

// walk selects evenly spaced active cells and pins the most recent one as
// the head.
func walk(active []Cell) []Cell {
	n := len(active)
	target := targetLen(n)
	stride := max(1, n/target)

	visited := make([]bool, n)
	picked := make([]int, 0, target)
	for pos := 0; pos < n && len(picked) < target; pos += stride {
		for pos < n && visited[pos] {
			pos++
		}
		if pos >= n {
			break
		}
		visited[pos] = true
		picked = append(picked, pos)
	}

	head := n - 1
	if i := slices.Index(picked, head); i >= 0 {
		picked = slices.Delete(picked, i, i+1)
	} else if len(picked) >= target {
		picked = picked[:len(picked)-1]
	}
	picked = append(picked, head)

	out := make([]Cell, len(picked))
	for i, p := range picked {
		out[i] = active[p]
	}
	return out
}

// colorize turns cells into segments, assigning the ramp from tail to head.
func colorize(cells []Cell, r Ramp) []Segment {
	dark := parseOr(r.Dark, DefaultRamp.Dark)
	mid := parseOr(r.Mid, DefaultRamp.Mid)
	bright := parseOr(r.Bright, DefaultRamp.Bright)

	segs := make([]Segment, len(cells))
	body := len(cells) - 1
	for i, c := range cells {
		segs[i] = Segment{Cell: c}
		if i == body {
			segs[i].Head = true
			segs[i].Color = bright.Hex()
			continue
		}
		t := 0.0
		if body > 1 {
			t = float64(i) / float64(body-1)
		}
		switch {
		case t == 0:
			segs[i].Color = dark.Hex()
		case t < 0.5:
			segs[i].Color = dark.BlendLab(mid, t*2).Clamped().Hex()
		default:
			segs[i].Color = mid.BlendLab(bright, (t-0.5)*2).Clamped().Hex()
		}
	}
	return segs
}

func parseOr(hex, fallback string) colorful.Color {
	if c, err := colorful.Hex(hex); err == nil {
		return c
	}
	c, _ := colorful.Hex(fallback)
	return c
}
