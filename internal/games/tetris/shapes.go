package tetris

import "github.com/vovakirdan/termplay/internal/core"

// PieceType is one of the seven tetrominoes.
type PieceType uint8

const (
	PieceI PieceType = iota
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceJ
	PieceL
)

// NumPieceTypes is the number of tetromino variants.
const NumPieceTypes = 7

// numRotations is the number of distinct orientations tracked per piece.
const numRotations = 4

// Point is a board coordinate: x grows to the right, y grows downward.
type Point struct {
	X, Y int
}

// Occupancy matrices, rotation 0. Each piece sits in a square box so one
// rotation rule works for all of them; I uses a 4x4 box, O a 2x2 box.
var shapeRows = [NumPieceTypes][]string{
	PieceI: {
		"....",
		"####",
		"....",
		"....",
	},
	PieceO: {
		"##",
		"##",
	},
	PieceT: {
		".#.",
		"###",
		"...",
	},
	PieceS: {
		".##",
		"##.",
		"...",
	},
	PieceZ: {
		"##.",
		".##",
		"...",
	},
	PieceJ: {
		"#..",
		"###",
		"...",
	},
	PieceL: {
		"..#",
		"###",
		"...",
	},
}

var pieceColors = [NumPieceTypes]core.Color{
	PieceI: core.ColorCyan,
	PieceO: core.ColorYellow,
	PieceT: core.ColorMagenta,
	PieceS: core.ColorGreen,
	PieceZ: core.ColorRed,
	PieceJ: core.ColorBlue,
	PieceL: core.ColorOrange,
}

// Shape is a square occupancy matrix.
type Shape [][]bool

func parseShape(rows []string) Shape {
	s := make(Shape, len(rows))
	for r, row := range rows {
		s[r] = make([]bool, len(row))
		for c, ch := range row {
			s[r][c] = ch == '#'
		}
	}
	return s
}

// Rotate returns the matrix turned 90° clockwise: (row, col) moves to
// (col, N-1-row).
func (s Shape) Rotate() Shape {
	n := len(s)
	out := make(Shape, n)
	for r := range out {
		out[r] = make([]bool, n)
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			out[c][n-1-r] = s[r][c]
		}
	}
	return out
}

// cells lists the occupied (col, row) offsets in row-major order.
func (s Shape) cells() []Point {
	var out []Point
	for r, row := range s {
		for c, filled := range row {
			if filled {
				out = append(out, Point{X: c, Y: r})
			}
		}
	}
	return out
}

// rotationTable[type][rotation] holds the occupied offsets relative to the
// piece anchor. Built once; pieces never store their own cells.
var rotationTable = buildRotationTable()

func buildRotationTable() [NumPieceTypes][numRotations][]Point {
	var table [NumPieceTypes][numRotations][]Point
	for t := range NumPieceTypes {
		shape := PieceType(t).Shape()
		for rot := range numRotations {
			table[t][rot] = shape.cells()
			shape = shape.Rotate()
		}
	}
	return table
}

// Shape returns the rotation 0 matrix of the piece type.
func (t PieceType) Shape() Shape {
	return parseShape(shapeRows[t])
}

// Color is the display color of the piece type.
func (t PieceType) Color() core.Color {
	return pieceColors[t]
}

func (t PieceType) String() string {
	return string("IOTSZJL"[t])
}
