package life

import "fmt"

// Default board dimensions used by the host.
const (
	DefaultWidth  = 64
	DefaultHeight = 64
)

// Grid stores Life cells in row-major order on a torus.
type Grid struct {
	w, h int
	cur  []Cell
	nxt  []Cell
	gen  uint64
}

// New returns a grid filled with the standard seed pattern.
func New(width, height int) *Grid {
	g := NewEmpty(width, height)
	g.Seed()
	return g
}

// NewEmpty returns a grid with every cell dead.
func NewEmpty(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("life: invalid grid size %dx%d", width, height))
	}
	total := width * height
	return &Grid{w: width, h: height, cur: make([]Cell, total), nxt: make([]Cell, total)}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Generation returns how many times the grid has been advanced since it was
// last seeded or cleared.
func (g *Grid) Generation() uint64 { return g.gen }

// Cells exposes the current generation. Callers must not retain it across
// Advance, which swaps the backing buffers.
func (g *Grid) Cells() []Cell { return g.cur }

// IndexOf returns the linear index of (row, column).
func (g *Grid) IndexOf(row, column int) int {
	if row < 0 || row >= g.h || column < 0 || column >= g.w {
		panic(fmt.Sprintf("life: cell (%d,%d) outside %dx%d grid", row, column, g.w, g.h))
	}
	return row*g.w + column
}

// CellAt returns the state at (row, column).
func (g *Grid) CellAt(row, column int) Cell { return g.cur[g.IndexOf(row, column)] }

// SetCell overwrites the state at (row, column).
func (g *Grid) SetCell(row, column int, c Cell) { g.cur[g.IndexOf(row, column)] = c }

// Toggle flips the cell at (row, column) between alive and dead.
func (g *Grid) Toggle(row, column int) {
	idx := g.IndexOf(row, column)
	g.cur[idx] = g.cur[idx].Toggled()
}

// Seed restores the initial pattern: index i is alive when i is a multiple of
// 2 or of 7.
func (g *Grid) Seed() {
	for i := range g.cur {
		if i%2 == 0 || i%7 == 0 {
			g.cur[i] = Alive
			continue
		}
		g.cur[i] = Dead
	}
	g.gen = 0
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.cur {
		g.cur[i] = Dead
	}
	g.gen = 0
}

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cur {
		n += contribution(c)
	}
	return n
}
