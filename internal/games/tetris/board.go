package tetris

import "strings"

// Board dimensions.
const (
	Width  = 10
	Height = 20
)

// cell is 0 when empty, otherwise PieceType+1.
type cell uint8

// Board is the well of settled blocks, stored row-major.
type Board struct {
	cells []cell
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{cells: make([]cell, Width*Height)}
}

func inside(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// At returns the piece type settled at (x, y). ok is false for empty or
// out-of-range cells.
func (b *Board) At(x, y int) (t PieceType, ok bool) {
	if !inside(x, y) {
		return 0, false
	}
	c := b.cells[y*Width+x]
	if c == 0 {
		return 0, false
	}
	return PieceType(c - 1), true
}

// Occupied reports whether (x, y) holds a settled block.
func (b *Board) Occupied(x, y int) bool {
	_, ok := b.At(x, y)
	return ok
}

// Set settles a block of type t at (x, y). Out-of-range cells are ignored.
func (b *Board) Set(x, y int, t PieceType) {
	if inside(x, y) {
		b.cells[y*Width+x] = cell(t) + 1
	}
}

// Reset empties the board.
func (b *Board) Reset() {
	clear(b.cells)
}

// Valid reports whether p fits: every cell inside the side walls and above
// the floor, and not overlapping a settled block. Cells above the top edge
// are allowed.
func (b *Board) Valid(p Piece) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= Width || c.Y >= Height {
			return false
		}
		if c.Y >= 0 && b.Occupied(c.X, c.Y) {
			return false
		}
	}
	return true
}

// Place writes the piece's cells into the board. Cells above the top edge
// are dropped.
func (b *Board) Place(p Piece) {
	for _, c := range p.Cells() {
		if c.Y >= 0 {
			b.Set(c.X, c.Y, p.Type)
		}
	}
}

// RowFull reports whether every cell of row y is occupied.
func (b *Board) RowFull(y int) bool {
	for _, c := range b.row(y) {
		if c == 0 {
			return false
		}
	}
	return true
}

// FullRows lists the full rows, top to bottom.
func (b *Board) FullRows() []int {
	var rows []int
	for y := 0; y < Height; y++ {
		if b.RowFull(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// ClearLines removes every full row, moves the rows above them down and
// returns how many rows were removed.
//
// Rows are compacted bottom-up in one pass: write trails read by the number
// of full rows seen so far, so adjacent full rows are never shifted twice.
func (b *Board) ClearLines() int {
	cleared := 0
	write := Height - 1
	for read := Height - 1; read >= 0; read-- {
		if b.RowFull(read) {
			cleared++
			continue
		}
		if write != read {
			copy(b.row(write), b.row(read))
		}
		write--
	}
	for ; write >= 0; write-- {
		clear(b.row(write))
	}
	return cleared
}

func (b *Board) row(y int) []cell {
	return b.cells[y*Width : (y+1)*Width]
}

// String draws the board one row per line: '.' for empty cells, the piece
// letter otherwise.
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < Width; x++ {
			if t, ok := b.At(x, y); ok {
				sb.WriteString(t.String())
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
