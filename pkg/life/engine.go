package life

// Next applies the Life rule to a cell with the given live neighbour count.
func Next(cell Cell, liveNeighbors int) Cell {
	switch {
	case cell == Alive && liveNeighbors < 2:
		return Dead
	case cell == Alive && (liveNeighbors == 2 || liveNeighbors == 3):
		return Alive
	case cell == Alive && liveNeighbors > 3:
		return Dead
	case cell == Dead && liveNeighbors == 3:
		return Alive
	}
	return cell
}

// Advance moves the grid forward one generation. Every next state is derived
// from the current buffer only; the result is written to the spare buffer and
// the two are swapped once the pass completes.
func Advance(g *Grid) {
	w, h := g.w, g.h
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			idx := row*w + col
			g.nxt[idx] = Next(g.cur[idx], g.liveNeighbors(row, col))
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
	g.gen++
}
