package tetris

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sortedCells(p Piece) []Point {
	cells := p.Cells()
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
	return cells
}

func TestEveryPieceHasFourCells(t *testing.T) {
	for pt := PieceType(0); pt < NumPieceTypes; pt++ {
		for rot := 0; rot < numRotations; rot++ {
			p := Piece{Type: pt, Rotation: rot}
			assert.Len(t, p.Cells(), 4, "%v rotation %d", pt, rot)
		}
	}
}

func TestSpawnCells(t *testing.T) {
	tests := []struct {
		piece    PieceType
		expected []Point
	}{
		{PieceT, []Point{{5, 0}, {4, 1}, {5, 1}, {6, 1}}},
		{PieceI, []Point{{4, 1}, {5, 1}, {6, 1}, {7, 1}}},
		{PieceO, []Point{{4, 0}, {5, 0}, {4, 1}, {5, 1}}},
		{PieceL, []Point{{6, 0}, {4, 1}, {5, 1}, {6, 1}}},
	}
	for _, tc := range tests {
		t.Run(tc.piece.String(), func(t *testing.T) {
			assert.Equal(t, tc.expected, sortedCells(NewPiece(tc.piece)))
		})
	}
}

func TestRotationMapsRowColToColFlippedRow(t *testing.T) {
	// The horizontal I in row 1 of its 4x4 box becomes the vertical I in column 2.
	p := NewPiece(PieceI).Rotated()
	assert.Equal(t, []Point{{6, 0}, {6, 1}, {6, 2}, {6, 3}}, sortedCells(p))

	// T pointing up turns to point right.
	p = Piece{Type: PieceT}.Rotated()
	assert.Equal(t, []Point{{1, 0}, {1, 1}, {2, 1}, {1, 2}}, sortedCells(p))
}

func TestShapeRotate(t *testing.T) {
	s := Shape{
		{true, false},
		{false, false},
	}
	r := s.Rotate()
	assert.Equal(t, Shape{{false, true}, {false, false}}, r)
}

func TestRotationIdempotence(t *testing.T) {
	for pt := PieceType(0); pt < NumPieceTypes; pt++ {
		p := Piece{Type: pt, X: 3, Y: 5}
		r := p.Rotated().Rotated().Rotated().Rotated()
		assert.Equal(t, p, r, "%v", pt)
		assert.Equal(t, sortedCells(p), sortedCells(r), "%v", pt)
	}
}

func TestORotationKeepsCells(t *testing.T) {
	p := NewPiece(PieceO)
	for range 3 {
		next := p.Rotated()
		assert.Equal(t, sortedCells(p), sortedCells(next))
		p = next
	}
}

func TestMovedReturnsNewValue(t *testing.T) {
	p := NewPiece(PieceS)
	moved := p.Moved(-2, 3)

	assert.Equal(t, SpawnX, p.X, "original piece must not change")
	assert.Equal(t, Piece{Type: PieceS, X: SpawnX - 2, Y: SpawnY + 3}, moved)
}
