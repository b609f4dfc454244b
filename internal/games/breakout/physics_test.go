package breakout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedToCell(t *testing.T) {
	assert.Equal(t, 0, Fixed(999).ToCell())
	assert.Equal(t, 1, Fixed(1000).ToCell())
	assert.Equal(t, -1, Fixed(-1).ToCell(), "rounds toward negative infinity")
	assert.Equal(t, -1, Fixed(-1000).ToCell())
	assert.Equal(t, -2, Fixed(-1001).ToCell())
	assert.Equal(t, Fixed(0), Fixed(5).Div(0))
}

func TestWallCollision(t *testing.T) {
	b := &Ball{X: ToFixed(60), Y: ToFixed(5)}
	side, fell := CheckWallCollision(b, 60, 20)
	assert.Equal(t, CollisionRight, side)
	assert.False(t, fell)
	assert.Equal(t, ToFixed(60)-1, b.X)

	b = &Ball{X: ToFixed(5), Y: ToFixed(20)}
	side, fell = CheckWallCollision(b, 60, 20)
	assert.Equal(t, CollisionBottom, side)
	assert.True(t, fell)
}

func TestPaddleCollisionMinimumLift(t *testing.T) {
	p := &Paddle{X: ToFixed(10), Y: 18, Width: 8}
	b := &Ball{X: ToFixed(14), Y: 17500, VY: 50}
	assert.True(t, CheckPaddleCollision(b, p, 300))
	assert.Equal(t, Fixed(-150), b.VY)

	b = &Ball{X: ToFixed(9), Y: 17500, VY: 300}
	assert.False(t, CheckPaddleCollision(b, p, 300), "missed to the left")

	b = &Ball{X: ToFixed(14), Y: 17500, VY: -300}
	assert.False(t, CheckPaddleCollision(b, p, 300), "rising balls pass through")
}

func TestBrickCollisionSides(t *testing.T) {
	l := layout{top: 1, brickWidth: 3, brickHeight: 1}
	level := ParseLevel("t", []string{"..#"})

	// Entering the brick at (6..9, 1..2) from the left while moving flat.
	b := &Ball{X: 6100, Y: 1500, VX: 300, VY: 50}
	row, col, side := l.CheckBrickCollision(b, level)
	assert.Equal(t, 0, row)
	assert.Equal(t, 2, col)
	assert.Equal(t, CollisionLeft, side)

	b = &Ball{X: ToFixed(1), Y: 1500}
	_, _, side = l.CheckBrickCollision(b, level)
	assert.Equal(t, CollisionNone, side, "empty cell")

	b = &Ball{X: ToFixed(7), Y: 500}
	_, _, side = l.CheckBrickCollision(b, level)
	assert.Equal(t, CollisionNone, side, "above the bricks")
}

func TestLevels(t *testing.T) {
	assert.Equal(t, 9, LevelCount())
	for i := range LevelCount() {
		l := GetLevel(i)
		assert.Equal(t, 20, l.Width, l.Name)
		assert.Positive(t, l.CountAlive(), l.Name)
		assert.LessOrEqual(t, l.Height, paddleRow-brickTop-4, l.Name)
	}
	assert.Equal(t, "Classic", GetLevel(LevelCount()).Name, "indices wrap")

	l := ParseLevel("mixed", []string{"#H", "X5", "."})
	assert.Equal(t, 2, l.Width)
	assert.Equal(t, 3, l.CountAlive())
	assert.Equal(t, 50, l.Bricks[1][1].Points)
	assert.Equal(t, BrickEmpty, l.Bricks[2][1].Type, "short lines are padded")

	c := l.Clone()
	c.Bricks[0][0].Alive = false
	assert.True(t, l.Bricks[0][0].Alive)
	assert.Equal(t, 2, c.CountAlive())
	assert.Equal(t, 3, c.Total())
}
