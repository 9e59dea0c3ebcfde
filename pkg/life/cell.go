package life

// Cell is the state of a single grid position.
type Cell uint8

const (
	// Dead marks an empty cell.
	Dead Cell = iota
	// Alive marks a populated cell.
	Alive
)

// IsAlive reports whether the cell is populated.
func (c Cell) IsAlive() bool { return c == Alive }

// Toggled returns the opposite state.
func (c Cell) Toggled() Cell {
	if c == Alive {
		return Dead
	}
	return Alive
}

func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}

// contribution is the amount a cell adds to its neighbours' live counts.
func contribution(c Cell) int {
	if c == Alive {
		return 1
	}
	return 0
}
