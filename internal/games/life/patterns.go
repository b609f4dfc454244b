package life

// Pattern is a named set of live-cell offsets.
type Pattern struct {
	Name  string
	Cells [][2]int // (dx, dy) from the anchor
}

// Patterns are bound to keys 1..6.
var Patterns = [6]Pattern{
	{"Glider", [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}},
	{"Blinker", [][2]int{{1, 0}, {1, 1}, {1, 2}}},
	{"Block", [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
	{"Toad", [][2]int{{1, 1}, {1, 2}, {1, 3}, {2, 0}, {2, 1}, {2, 2}}},
	{"Beacon", [][2]int{
		{0, 0}, {0, 1}, {1, 0}, {1, 1},
		{2, 2}, {2, 3}, {3, 2}, {3, 3},
	}},
	{"Pulsar", pulsar()},
}

// pulsar builds the period 3 oscillator from one quadrant mirrored four
// ways around (8, 8).
func pulsar() [][2]int {
	quadrant := [][2]int{
		{2, 4}, {2, 5}, {2, 6},
		{4, 2}, {5, 2}, {6, 2},
		{7, 4}, {7, 5}, {7, 6},
		{4, 7}, {5, 7}, {6, 7},
	}
	cells := make([][2]int, 0, 4*len(quadrant))
	for _, c := range quadrant {
		for _, m := range [4][2]bool{{false, false}, {true, false}, {false, true}, {true, true}} {
			x, y := c[0], c[1]
			if m[0] {
				x = 16 - x
			}
			if m[1] {
				y = 16 - y
			}
			cells = append(cells, [2]int{x, y})
		}
	}
	return cells
}

// Place stamps the pattern with its origin at (x, y). Cells that fall off
// the grid are dropped.
func (p Pattern) Place(g *Grid, x, y int) {
	for _, c := range p.Cells {
		g.Set(x+c[0], y+c[1], true)
	}
}
