package tetris

// Spawn anchor of every new piece.
const (
	SpawnX = 4
	SpawnY = 0
)

// Piece is the falling tetromino. It is a value: moves and rotations return
// a new Piece and the caller decides whether to keep it.
type Piece struct {
	Type     PieceType
	X, Y     int // anchor: top-left of the shape's box
	Rotation int // 0 to 3
}

// NewPiece creates a piece of type t at the spawn anchor.
func NewPiece(t PieceType) Piece {
	return Piece{Type: t, X: SpawnX, Y: SpawnY}
}

// Cells returns the absolute board cells the piece covers.
func (p Piece) Cells() []Point {
	offsets := rotationTable[p.Type][p.Rotation]
	out := make([]Point, len(offsets))
	for i, o := range offsets {
		out[i] = Point{X: p.X + o.X, Y: p.Y + o.Y}
	}
	return out
}

// Moved returns the piece shifted by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns the piece turned one step clockwise.
func (p Piece) Rotated() Piece {
	p.Rotation = (p.Rotation + 1) % numRotations
	return p
}
