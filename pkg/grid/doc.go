// Package grid lays daily activity onto a week-by-day grid and derives the
// snake path drawn over it.
//
// [Layout] is column-major like a contribution graph: seven rows per
// column, oldest day top-left. [Synthesize] walks the active cells of a
// laid-out grid and returns a [Path]:
//
//	p := grid.Params{Cols: 28, Rows: 7, Tile: 12, Gap: 2}
//	cells := grid.Layout(data.Activity, p)
//	path := grid.Synthesize(cells, p)
//	head, _ := path.Head() // always the most recent active day
//
// Both functions are pure. Decorative randomness lives in package scene,
// never here.
package grid
