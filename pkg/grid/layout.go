package grid

import "github.com/gitcanvas/gitcanvas/pkg/profile"

// Params fixes the shape of a grid and where it sits on the canvas.
type Params struct {
	Cols, Rows       int
	Tile, Gap        float64
	OriginX, OriginY float64
}

// Size is the number of cells a full grid holds.
func (p Params) Size() int { return max(0, p.Cols) * max(0, p.Rows) }

// Pitch is the distance between the origins of two adjacent cells.
func (p Params) Pitch() float64 { return p.Tile + p.Gap }

// Cell is one laid-out day.
type Cell struct {
	X, Y     float64
	Count    int
	Index    int // 0 is the oldest day in the window
	Col, Row int
}

// Active reports whether the day had any activity.
func (c Cell) Active() bool { return c.Count > 0 }

// Center returns the midpoint of the cell's tile.
func (c Cell) Center(tile float64) (x, y float64) {
	return c.X + tile/2, c.Y + tile/2
}

// Layout places the most recent Cols*Rows days column-major: each column
// is a week read top to bottom, columns run left to right. Indices are
// renumbered from 0 within that window.
//
// An empty history yields a full grid of zero cells so there is always a
// shape to draw.
func Layout(days []profile.Day, p Params) []Cell {
	size := p.Size()
	if size == 0 {
		return nil
	}
	if len(days) == 0 {
		cells := make([]Cell, size)
		for i := range cells {
			cells[i] = p.cell(i, 0)
		}
		return cells
	}

	if len(days) > size {
		days = days[len(days)-size:]
	}
	cells := make([]Cell, len(days))
	for i, d := range days {
		cells[i] = p.cell(i, max(0, d.Count))
	}
	return cells
}

func (p Params) cell(i, count int) Cell {
	col, row := i/p.Rows, i%p.Rows
	return Cell{
		X:     p.OriginX + float64(col)*p.Pitch(),
		Y:     p.OriginY + float64(row)*p.Pitch(),
		Count: count,
		Index: i,
		Col:   col,
		Row:   row,
	}
}
