package effect

import "math"

// GridDimensions derives the cell grid size covering a viewport of w×h
// pixels, rounding up so partial cells at the edges are still rendered.
func GridDimensions(w, h, cellWidth, cellHeight int) (cols, rows int) {
	cols = (w + cellWidth - 1) / cellWidth
	rows = (h + cellHeight - 1) / cellHeight
	return
}

// Grid holds one activation scalar in [0, 1] per cell, row-major. The
// updater is the only writer; the renderer only reads it.
type Grid struct {
	Cols  int
	Rows  int
	cells []float64
}

// NewGrid allocates a zeroed grid of the given dimensions.
func NewGrid(cols, rows int) *Grid {
	return &Grid{
		Cols:  cols,
		Rows:  rows,
		cells: make([]float64, cols*rows),
	}
}

// Reset reallocates the grid for new dimensions, discarding all activation.
func (g *Grid) Reset(cols, rows int) {
	g.Cols = cols
	g.Rows = rows
	g.cells = make([]float64, cols*rows)
}

// At returns the activation of the cell at (row, col).
func (g *Grid) At(row, col int) float64 {
	return g.cells[row*g.Cols+col]
}

// Add raises a cell's activation, clamped to 1.
func (g *Grid) Add(row, col int, v float64) {
	i := row*g.Cols + col
	a := g.cells[i] + v
	if a > 1 {
		a = 1
	}
	g.cells[i] = a
}

// Decay multiplies every cell by rate. Activation shrinks toward zero but
// never reaches it exactly.
func (g *Grid) Decay(rate float64) {
	for i := range g.cells {
		g.cells[i] *= rate
	}
}

// Max returns the largest activation in the grid. Used by diagnostics.
func (g *Grid) Max() float64 {
	m := 0.0
	for _, a := range g.cells {
		m = math.Max(m, a)
	}
	return m
}
