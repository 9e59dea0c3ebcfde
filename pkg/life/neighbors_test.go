package life

import "testing"

func TestLiveNeighborCountAllDead(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {1, 5}, {5, 1}, {3, 3}, {64, 64}} {
		g := NewEmpty(size[0], size[1])
		for row := 0; row < g.Height(); row++ {
			for col := 0; col < g.Width(); col++ {
				if n := LiveNeighborCount(g, row, col); n != 0 {
					t.Fatalf("%dx%d (%d,%d) count=%d, expected 0", size[0], size[1], row, col, n)
				}
			}
		}
	}
}

func TestLiveNeighborCountWraps(t *testing.T) {
	g := NewEmpty(64, 64)
	g.SetCell(0, 0, Alive)
	if n := LiveNeighborCount(g, 0, 0); n != 0 {
		t.Fatalf("self counted: %d", n)
	}
	for _, rc := range [][2]int{{63, 63}, {63, 0}, {63, 1}, {0, 63}, {0, 1}, {1, 63}, {1, 0}, {1, 1}} {
		if n := LiveNeighborCount(g, rc[0], rc[1]); n != 1 {
			t.Fatalf("(%d,%d) count=%d, expected 1", rc[0], rc[1], n)
		}
	}
	if n := LiveNeighborCount(g, 2, 2); n != 0 {
		t.Fatalf("(2,2) count=%d, expected 0", n)
	}

	g.SetCell(0, 1, Alive)
	checks := []struct {
		row, col, want int
	}{
		{0, 0, 1},
		{63, 0, 2},
		{0, 63, 1},
		{63, 63, 1},
	}
	for _, c := range checks {
		if n := LiveNeighborCount(g, c.row, c.col); n != c.want {
			t.Fatalf("(%d,%d) count=%d, expected %d", c.row, c.col, n, c.want)
		}
	}

	g.SetCell(0, 63, Alive)
	if n := LiveNeighborCount(g, 1, 63); n != 2 {
		t.Fatalf("(1,63) count=%d, expected 2", n)
	}
}

func TestLiveNeighborCountDegenerate(t *testing.T) {
	cases := []struct {
		name string
		w, h int
		live [][2]int
		at   [2]int
		want int
	}{
		// Offsets h-1 and w-1 are both zero, so four of the nine pairs are
		// skipped as (0,0) and the remaining five land on the cell itself.
		{"1x1 alive", 1, 1, [][2]int{{0, 0}}, [2]int{0, 0}, 5},
		// Only (0,+1) wraps back onto the cell in a 1-wide column.
		{"1 wide self", 1, 5, [][2]int{{2, 0}}, [2]int{2, 0}, 1},
		{"1 wide north", 1, 5, [][2]int{{1, 0}}, [2]int{2, 0}, 3},
		{"1 tall east", 5, 1, [][2]int{{0, 3}}, [2]int{0, 2}, 3},
		// On a 2-wide grid the west and east offsets hit the same column.
		{"2 wide", 2, 4, [][2]int{{1, 1}}, [2]int{1, 0}, 2},
		{"2x2 full", 2, 2, [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, [2]int{0, 0}, 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewEmpty(tc.w, tc.h)
			for _, rc := range tc.live {
				g.SetCell(rc[0], rc[1], Alive)
			}
			if n := LiveNeighborCount(g, tc.at[0], tc.at[1]); n != tc.want {
				t.Fatalf("count=%d, expected %d", n, tc.want)
			}
		})
	}
}

func TestLiveNeighborCountRange(t *testing.T) {
	g := New(7, 5)
	for i := 0; i < 4; i++ {
		for row := 0; row < g.Height(); row++ {
			for col := 0; col < g.Width(); col++ {
				if n := LiveNeighborCount(g, row, col); n < 0 || n > 8 {
					t.Fatalf("(%d,%d) count=%d out of range", row, col, n)
				}
			}
		}
		Advance(g)
	}
}
