package pong

// Snapshot is the complete Pong state in plain values.
type Snapshot struct {
	Tick     int
	BallX    float64
	BallY    float64
	BallVX   float64
	BallVY   float64
	Paddle1Y float64
	Paddle2Y float64
	Score1   int
	Score2   int
	GameOver bool
	Winner   int // 0=none, 1=player 1, 2=CPU or player 2
	Serving  bool
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tickCount,
		BallX:    g.ballX,
		BallY:    g.ballY,
		BallVX:   g.ballVX,
		BallVY:   g.ballVY,
		Paddle1Y: g.paddle1Y,
		Paddle2Y: g.paddle2Y,
		Score1:   g.score1,
		Score2:   g.score2,
		GameOver: g.gameOver,
		Winner:   g.winner,
		Serving:  g.serving,
	}
}

// ApplySnapshot overwrites the game state, for example to set up a rally.
// The serve countdown is cleared when Serving is false.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tickCount = snap.Tick
	g.ballX = snap.BallX
	g.ballY = snap.BallY
	g.ballVX = snap.BallVX
	g.ballVY = snap.BallVY
	g.paddle1Y = snap.Paddle1Y
	g.paddle2Y = snap.Paddle2Y
	g.score1 = snap.Score1
	g.score2 = snap.Score2
	g.gameOver = snap.GameOver
	g.winner = snap.Winner
	g.serving = snap.Serving
	if !snap.Serving {
		g.serveDelay = 0
	}
}
