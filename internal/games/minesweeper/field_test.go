package minesweeper

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayKeepsFirstRevealSafe(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		f := NewField(16, 16, 40)
		f.Lay(rand.New(rand.NewSource(seed)), 0, 0)

		mines := 0
		for y := 0; y < 16; y++ {
			for x := 0; x < 16; x++ {
				if f.At(x, y).Mine {
					mines++
					assert.False(t, x <= 1 && y <= 1, "mine at (%d,%d) next to the first reveal", x, y)
				}
			}
		}
		require.Equal(t, 40, mines)
		assert.Equal(t, 40, f.Mines())
	}
}

func TestLayCapsMinesToFreeCells(t *testing.T) {
	f := NewField(4, 4, 100)
	f.Lay(rand.New(rand.NewSource(1)), 1, 1)
	// 16 cells minus the 3x3 block around (1,1).
	assert.Equal(t, 7, f.Mines())
}

func TestAdjacentCounts(t *testing.T) {
	f := NewField(3, 3, 0)
	f.Place([2]int{0, 0}, [2]int{2, 0})

	assert.Equal(t, uint8(2), f.At(1, 0).Adjacent)
	assert.Equal(t, uint8(2), f.At(1, 1).Adjacent)
	assert.Equal(t, uint8(1), f.At(0, 1).Adjacent)
	assert.Equal(t, uint8(0), f.At(1, 2).Adjacent)
}

func TestRevealFloodsZeros(t *testing.T) {
	// Mine in the bottom-right corner of a 5x5 field.
	f := NewField(5, 5, 0)
	f.Place([2]int{4, 4})

	opened, hit := f.Reveal(0, 0)
	assert.False(t, hit)
	assert.Equal(t, 24, opened)
	assert.True(t, f.Cleared())
	assert.Equal(t, Hidden, f.At(4, 4).State)
}

func TestRevealStopsAtNumbers(t *testing.T) {
	// A wall of mines at x=2 splits the field.
	f := NewField(5, 3, 0)
	f.Place([2]int{2, 0}, [2]int{2, 1}, [2]int{2, 2})

	opened, _ := f.Reveal(0, 1)
	assert.Equal(t, 6, opened, "left two columns")
	assert.Equal(t, Hidden, f.At(3, 1).State)
	assert.False(t, f.Cleared())
}

func TestRevealSkipsFlags(t *testing.T) {
	f := NewField(5, 5, 0)
	f.Place([2]int{4, 4})
	f.ToggleFlag(0, 4)

	opened, _ := f.Reveal(0, 0)
	assert.Equal(t, 23, opened)
	assert.Equal(t, Flagged, f.At(0, 4).State)

	// Revealing a flagged cell does nothing.
	opened, hit := f.Reveal(0, 4)
	assert.Zero(t, opened)
	assert.False(t, hit)
}

func TestRevealMine(t *testing.T) {
	f := NewField(3, 3, 0)
	f.Place([2]int{1, 1})

	_, hit := f.Reveal(1, 1)
	assert.True(t, hit)
	assert.Equal(t, 0, f.Revealed(), "mines don't count as revealed safe cells")
}

func TestRevealTwiceIsNoop(t *testing.T) {
	f := NewField(3, 3, 0)
	f.Place([2]int{2, 2})

	opened, _ := f.Reveal(1, 1)
	require.Equal(t, 1, opened)
	opened, _ = f.Reveal(1, 1)
	assert.Zero(t, opened)
}

func TestFlagLimit(t *testing.T) {
	f := NewField(4, 4, 0)
	f.Place([2]int{0, 0})

	assert.Equal(t, Flagged, f.ToggleFlag(1, 1))
	assert.Equal(t, Hidden, f.ToggleFlag(2, 2), "only as many flags as mines")
	assert.Equal(t, 1, f.Flags())

	assert.Equal(t, Hidden, f.ToggleFlag(1, 1))
	assert.Equal(t, 0, f.Flags())
}

func TestFlagRevealedCell(t *testing.T) {
	f := NewField(3, 3, 0)
	f.Place([2]int{2, 2})
	f.Reveal(0, 0)

	assert.Equal(t, Revealed, f.ToggleFlag(0, 0))
	assert.Equal(t, 0, f.Flags())
}
