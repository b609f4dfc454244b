package minesweeper

import "math/rand"

// CellState is what the player sees of a cell.
type CellState uint8

const (
	Hidden CellState = iota
	Revealed
	Flagged
)

// Cell is one square of the field.
type Cell struct {
	Mine     bool
	Adjacent uint8 // mines in the 8 neighbours
	State    CellState
}

// Field is the mine field. Mines are laid on the first reveal so that the
// first revealed cell and its neighbours are always safe.
type Field struct {
	width, height int
	mines         int
	cells         []Cell
	laid          bool
	revealed      int // safe cells revealed
	flags         int
}

// NewField returns an empty w x h field that will hold the given mines.
func NewField(w, h, mines int) *Field {
	return &Field{width: w, height: h, mines: mines, cells: make([]Cell, w*h)}
}

func (f *Field) Width() int  { return f.width }
func (f *Field) Height() int { return f.height }
func (f *Field) Mines() int  { return f.mines }
func (f *Field) Flags() int  { return f.flags }

// Revealed returns the number of safe cells revealed so far.
func (f *Field) Revealed() int { return f.revealed }

// Laid reports whether mines have been placed.
func (f *Field) Laid() bool { return f.laid }

func (f *Field) inside(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// At returns the cell at (x, y). It panics outside the field.
func (f *Field) At(x, y int) Cell {
	return f.cells[y*f.width+x]
}

func (f *Field) cell(x, y int) *Cell {
	return &f.cells[y*f.width+x]
}

// neighbours calls fn for each in-field neighbour of (x, y).
func (f *Field) neighbours(x, y int, fn func(nx, ny int)) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if nx, ny := x+dx, y+dy; f.inside(nx, ny) {
				fn(nx, ny)
			}
		}
	}
}

// Lay places the mines uniformly at random outside the 3x3 block around
// (safeX, safeY) and counts neighbours.
func (f *Field) Lay(rng *rand.Rand, safeX, safeY int) {
	var candidates []int
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			if abs(x-safeX) <= 1 && abs(y-safeY) <= 1 {
				continue
			}
			candidates = append(candidates, y*f.width+x)
		}
	}
	n := min(f.mines, len(candidates))
	for _, i := range rng.Perm(len(candidates))[:n] {
		f.cells[candidates[i]].Mine = true
	}
	f.mines = n
	f.count()
	f.laid = true
}

// Place puts mines at the given cells. Used to set up known layouts.
func (f *Field) Place(points ...[2]int) {
	for _, p := range points {
		f.cell(p[0], p[1]).Mine = true
	}
	f.mines = len(points)
	f.count()
	f.laid = true
}

func (f *Field) count() {
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			c := f.cell(x, y)
			c.Adjacent = 0
			f.neighbours(x, y, func(nx, ny int) {
				if f.At(nx, ny).Mine {
					c.Adjacent++
				}
			})
		}
	}
}

// Reveal uncovers (x, y). A cell with no adjacent mines also uncovers its
// neighbours, flooding outwards. Flagged and revealed cells are left alone.
// It returns the number of cells uncovered and whether a mine was hit.
func (f *Field) Reveal(x, y int) (opened int, hit bool) {
	if !f.inside(x, y) || f.At(x, y).State != Hidden {
		return 0, false
	}
	if f.At(x, y).Mine {
		f.cell(x, y).State = Revealed
		return 1, true
	}

	queue := [][2]int{{x, y}}
	f.cell(x, y).State = Revealed
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		opened++
		if f.At(p[0], p[1]).Adjacent > 0 {
			continue
		}
		f.neighbours(p[0], p[1], func(nx, ny int) {
			c := f.cell(nx, ny)
			if c.State == Hidden && !c.Mine {
				c.State = Revealed
				queue = append(queue, [2]int{nx, ny})
			}
		})
	}
	f.revealed += opened
	return opened, false
}

// ToggleFlag flags or unflags a hidden cell. No more flags than mines can
// be placed. It returns the new state.
func (f *Field) ToggleFlag(x, y int) CellState {
	if !f.inside(x, y) {
		return Hidden
	}
	c := f.cell(x, y)
	switch c.State {
	case Hidden:
		if f.flags < f.mines {
			c.State = Flagged
			f.flags++
		}
	case Flagged:
		c.State = Hidden
		f.flags--
	}
	return c.State
}

// ShowMines reveals every mine, after a loss.
func (f *Field) ShowMines() {
	for i := range f.cells {
		if f.cells[i].Mine {
			f.cells[i].State = Revealed
		}
	}
}

// Cleared reports whether every safe cell is revealed.
func (f *Field) Cleared() bool {
	return f.laid && f.revealed == f.width*f.height-f.mines
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
