package t2048

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	return [...]string{"up", "down", "left", "right"}[d]
}

// Size is the board dimension.
const Size = 4

// Board is the 4x4 grid, indexed [y][x]. Zero is an empty cell.
type Board [Size][Size]int

// Cell is a board coordinate.
type Cell struct {
	X, Y int
}

// line returns the coordinates of line i in the order tiles travel
// towards: the first element is the edge tiles slide against.
func line(dir Direction, i int) [Size]Cell {
	var out [Size]Cell
	for k := range Size {
		switch dir {
		case DirLeft:
			out[k] = Cell{X: k, Y: i}
		case DirRight:
			out[k] = Cell{X: Size - 1 - k, Y: i}
		case DirUp:
			out[k] = Cell{X: i, Y: k}
		case DirDown:
			out[k] = Cell{X: i, Y: Size - 1 - k}
		}
	}
	return out
}

// slideRow slides and merges a single row towards index 0. A tile merges
// at most once per move. Returns the new row and the merge score.
func slideRow(row [Size]int) (result [Size]int, score int) {
	writePos := 0
	merged := false

	for i := range Size {
		if row[i] == 0 {
			continue
		}
		if writePos > 0 && !merged && result[writePos-1] == row[i] {
			result[writePos-1] *= 2
			score += result[writePos-1]
			merged = true
			continue
		}
		result[writePos] = row[i]
		writePos++
		merged = false
	}
	return result, score
}

// Slide moves every tile in dir. Returns the new board, the score gained
// from merges and whether anything moved.
func (b Board) Slide(dir Direction) (Board, int, bool) {
	out := b
	total := 0
	for i := range Size {
		cells := line(dir, i)
		var row [Size]int
		for k, c := range cells {
			row[k] = b[c.Y][c.X]
		}
		slid, score := slideRow(row)
		for k, c := range cells {
			out[c.Y][c.X] = slid[k]
		}
		total += score
	}
	return out, total, out != b
}

// Empty returns the coordinates of all empty cells, row by row.
func (b Board) Empty() []Cell {
	var cells []Cell
	for y := range Size {
		for x := range Size {
			if b[y][x] == 0 {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// CanMove reports whether any slide would change the board.
func (b Board) CanMove() bool {
	for y := range Size {
		for x := range Size {
			v := b[y][x]
			if v == 0 {
				return true
			}
			if x < Size-1 && b[y][x+1] == v {
				return true
			}
			if y < Size-1 && b[y+1][x] == v {
				return true
			}
		}
	}
	return false
}

// MaxTile returns the highest tile on the board.
func (b Board) MaxTile() int {
	m := 0
	for y := range Size {
		for x := range Size {
			m = max(m, b[y][x])
		}
	}
	return m
}
