package breakout

// Fixed-point scale factor: 1 cell = 1000 units.
const Scale = 1000

// Fixed is a fixed-point value scaled by Scale. Integer physics keeps a
// seeded game exactly reproducible.
type Fixed int

// ToFixed converts a cell coordinate to fixed-point.
func ToFixed(cell int) Fixed {
	return Fixed(cell * Scale)
}

// ToCell converts fixed-point to a cell coordinate, rounding toward
// negative infinity so positions just left of the field stay negative.
func (f Fixed) ToCell() int {
	if f < 0 {
		return (int(f) - Scale + 1) / Scale
	}
	return int(f) / Scale
}

func (f Fixed) Add(other Fixed) Fixed { return f + other }
func (f Fixed) Sub(other Fixed) Fixed { return f - other }

// Mul multiplies by an integer.
func (f Fixed) Mul(n int) Fixed {
	return Fixed(int(f) * n)
}

// Div divides by an integer. Division by zero yields zero.
func (f Fixed) Div(n int) Fixed {
	if n == 0 {
		return 0
	}
	return Fixed(int(f) / n)
}

func (f Fixed) Abs() Fixed {
	if f < 0 {
		return -f
	}
	return f
}

// Sign returns -1, 0, or 1.
func (f Fixed) Sign() int {
	switch {
	case f < 0:
		return -1
	case f > 0:
		return 1
	}
	return 0
}

// ClampFixed restricts a value to [lo, hi].
func ClampFixed(val, lo, hi Fixed) Fixed {
	return max(lo, min(hi, val))
}

// Ball is one ball in field coordinates.
type Ball struct {
	X, Y   Fixed // position
	VX, VY Fixed // velocity per tick
	Stuck  bool  // held on the paddle until launched
	Active bool  // false once it has fallen out
}

func (b *Ball) CellX() int { return b.X.ToCell() }
func (b *Ball) CellY() int { return b.Y.ToCell() }

// Move advances the ball by its velocity.
func (b *Ball) Move() {
	b.X = b.X.Add(b.VX)
	b.Y = b.Y.Add(b.VY)
}

// Paddle is the player's bat on a fixed row.
type Paddle struct {
	X     Fixed // left edge
	Y     int   // row
	Width int   // in cells
}

func (p *Paddle) CellX() int     { return p.X.ToCell() }
func (p *Paddle) Left() Fixed    { return p.X }
func (p *Paddle) Right() Fixed   { return p.X.Add(ToFixed(p.Width)) }
func (p *Paddle) CenterX() Fixed { return p.X.Add(ToFixed(p.Width).Div(2)) }

// CollisionSide indicates which side of an object was hit.
type CollisionSide int

const (
	CollisionNone CollisionSide = iota
	CollisionTop
	CollisionBottom
	CollisionLeft
	CollisionRight
)

// Bounce reflects the ball off the given side.
func (b *Ball) Bounce(side CollisionSide) {
	switch side {
	case CollisionTop, CollisionBottom:
		b.VY = -b.VY
	case CollisionLeft, CollisionRight:
		b.VX = -b.VX
	}
}

// CheckWallCollision keeps the ball inside a w×h field. The bottom is
// open: a ball past it has fallen off.
func CheckWallCollision(ball *Ball, w, h int) (side CollisionSide, fellOff bool) {
	switch {
	case ball.X < 0:
		ball.X = 0
		return CollisionLeft, false
	case ball.X >= ToFixed(w):
		ball.X = ToFixed(w) - 1
		return CollisionRight, false
	case ball.Y < 0:
		ball.Y = 0
		return CollisionTop, false
	case ball.Y >= ToFixed(h):
		return CollisionBottom, true
	}
	return CollisionNone, false
}

// CheckPaddleCollision bounces a falling ball off the paddle. The
// horizontal speed is set from where it hit: the edges send it off at the
// steepest angle, the center straight up.
func CheckPaddleCollision(ball *Ball, paddle *Paddle, baseSpeed Fixed) bool {
	if ball.VY <= 0 {
		return false
	}
	if y := ball.CellY(); y != paddle.Y && y != paddle.Y-1 {
		return false
	}
	if ball.X < paddle.Left() || ball.X > paddle.Right() {
		return false
	}

	// -1000 (left edge) to +1000 (right edge)
	var hit Fixed
	if half := ToFixed(paddle.Width).Div(2); half > 0 {
		hit = ball.X.Sub(paddle.CenterX()).Mul(Scale).Div(int(half))
	}

	ball.VY = -ball.VY.Abs()
	if ball.VY > -baseSpeed/2 {
		ball.VY = -baseSpeed / 2
	}
	ball.VX = hit.Mul(int(baseSpeed)) / Scale
	ball.Y = ToFixed(paddle.Y - 1)
	return true
}

// layout places the brick grid in the field.
type layout struct {
	top         int // first brick row
	brickWidth  int
	brickHeight int
}

// brickAt maps a ball position to a brick cell, or -1, -1.
func (l layout) brickAt(ball *Ball, level *Level) (row, col int) {
	row = (ball.CellY() - l.top) / l.brickHeight
	col = ball.CellX() / l.brickWidth
	if ball.CellY() < l.top || row >= level.Height || col < 0 || col >= level.Width {
		return -1, -1
	}
	return row, col
}

// CheckBrickCollision finds the live brick the ball is in and the side it
// most likely came through.
func (l layout) CheckBrickCollision(ball *Ball, level *Level) (row, col int, side CollisionSide) {
	row, col = l.brickAt(ball, level)
	if row < 0 {
		return -1, -1, CollisionNone
	}
	brick := &level.Bricks[row][col]
	if !brick.Alive || brick.Type == BrickEmpty {
		return -1, -1, CollisionNone
	}

	left := ToFixed(col * l.brickWidth)
	right := left.Add(ToFixed(l.brickWidth))
	top := ToFixed(l.top + row*l.brickHeight)
	bottom := top.Add(ToFixed(l.brickHeight))

	horiz, horizSide := ball.X.Sub(left).Abs(), CollisionLeft
	if d := ball.X.Sub(right).Abs(); d < horiz {
		horiz, horizSide = d, CollisionRight
	}
	vert, vertSide := ball.Y.Sub(top).Abs(), CollisionTop
	if d := ball.Y.Sub(bottom).Abs(); d < vert {
		vert, vertSide = d, CollisionBottom
	}

	// Prefer a vertical bounce for mostly vertical motion.
	if ball.VY.Abs() > ball.VX.Abs() || vert <= horiz {
		return row, col, vertSide
	}
	return row, col, horizSide
}
