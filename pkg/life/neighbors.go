package life

// LiveNeighborCount returns how many of the 8 wrapped neighbour offsets of
// (row, column) hold a live cell.
//
// The offsets are {h-1, 0, 1} x {w-1, 0, 1} without (0, 0), taken modulo the
// grid size. The self offset is skipped by value, so when the width or height
// is 1 every pair whose deltas are both zero is skipped. On grids one or two
// cells wide (or tall) the remaining offsets can resolve to the same cell, or
// to the cell itself; each visited offset is still counted.
func LiveNeighborCount(g *Grid, row, column int) int {
	g.IndexOf(row, column)
	return g.liveNeighbors(row, column)
}

func (g *Grid) liveNeighbors(row, column int) int {
	w, h := g.w, g.h
	count := 0
	for _, dr := range [3]int{h - 1, 0, 1} {
		for _, dc := range [3]int{w - 1, 0, 1} {
			if dr == 0 && dc == 0 {
				continue
			}
			r := (row + dr) % h
			c := (column + dc) % w
			count += contribution(g.cur[r*w+c])
		}
	}
	return count
}
