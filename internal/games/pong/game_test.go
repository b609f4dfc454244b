package pong

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/termplay/internal/audio"
	"github.com/vovakirdan/termplay/internal/config"
	"github.com/vovakirdan/termplay/internal/core"
	"github.com/vovakirdan/termplay/internal/input"
)

var testConfig = config.PongConfig{
	WinScore:    5,
	TickMS:      33,
	BallSpeed:   0.5,
	PaddleSpeed: 2,
	CPUSkill:    0.6,
}

func newTestGame(cfg config.PongConfig) (*Game, *audio.Recorder) {
	rec := audio.NewRecorder()
	return New(rand.New(rand.NewSource(7)), rec, cfg), rec
}

// rally puts the ball in play at the given position and velocity.
func rally(g *Game, x, y, vx, vy float64) {
	s := g.Snapshot()
	s.BallX, s.BallY, s.BallVX, s.BallVY = x, y, vx, vy
	s.Serving = false
	g.ApplySnapshot(s)
}

func TestNewGame(t *testing.T) {
	g, _ := newTestGame(testConfig)
	s := g.Snapshot()

	assert.Equal(t, 8.0, s.Paddle1Y)
	assert.Equal(t, 8.0, s.Paddle2Y)
	assert.True(t, s.Serving)
	assert.Equal(t, 30.0, s.BallX)
	assert.Equal(t, 10.0, s.BallY)
	assert.Equal(t, -0.5, s.BallVX, "first serve goes to player 1")
	assert.InDelta(t, 0, s.BallVY, 0.15)
	assert.Equal(t, 33, int(g.TickRate().Milliseconds()))
}

func TestServeDelay(t *testing.T) {
	g, _ := newTestGame(testConfig)

	for range serveTicks - 1 {
		g.Update()
	}
	s := g.Snapshot()
	assert.True(t, s.Serving)
	assert.Equal(t, 30.0, s.BallX)

	g.Update()
	s = g.Snapshot()
	assert.False(t, s.Serving)
	assert.Equal(t, 29.5, s.BallX)
}

func TestPaddleMovesAndClamps(t *testing.T) {
	g, _ := newTestGame(testConfig)

	g.HandleKey(input.CmdUp)
	assert.Equal(t, 6.0, g.Snapshot().Paddle1Y)

	for range 10 {
		g.HandleKey(input.CmdUp)
	}
	assert.Equal(t, 0.0, g.Snapshot().Paddle1Y)

	for range 20 {
		g.HandleKey(input.CmdDown)
	}
	assert.Equal(t, float64(FieldHeight-PaddleHeight), g.Snapshot().Paddle1Y)

	g.HandleKey(input.CmdUp2)
	assert.Equal(t, 8.0, g.Snapshot().Paddle2Y, "the CPU paddle ignores player 2 keys")
}

func TestPaddleReturnsBall(t *testing.T) {
	g, rec := newTestGame(testConfig)
	rally(g, 3.4, 10, -0.5, 0)

	assert.Equal(t, core.ActionContinue, g.Update())
	s := g.Snapshot()
	assert.Equal(t, 3.0, s.BallX)
	assert.InDelta(t, 0.525, s.BallVX, 1e-9)
	assert.InDelta(t, 0, s.BallVY, 1e-9, "a center hit adds no spin")
	assert.Equal(t, 1, rec.Count(audio.EffectPongPaddle))
	assert.Equal(t, 1, g.State().Details["hits"])
}

func TestSpinFromPaddleEdge(t *testing.T) {
	g, _ := newTestGame(testConfig)
	rally(g, 3.4, 8, -0.5, 0)

	g.Update()
	assert.InDelta(t, -0.15, g.Snapshot().BallVY, 1e-9)
}

func TestWallBounce(t *testing.T) {
	g, rec := newTestGame(testConfig)
	rally(g, 30, 0.2, -0.5, -0.5)

	g.Update()
	s := g.Snapshot()
	assert.Equal(t, 0.0, s.BallY)
	assert.Equal(t, 0.5, s.BallVY)
	assert.Equal(t, 1, rec.Count(audio.EffectPongWall))
}

func TestMissConcedesPoint(t *testing.T) {
	g, rec := newTestGame(testConfig)
	s := g.Snapshot()
	s.Paddle1Y = 12
	g.ApplySnapshot(s)
	rally(g, 0.3, 2, -0.5, 0)

	assert.Equal(t, core.ActionContinue, g.Update())
	s = g.Snapshot()
	assert.Equal(t, 1, s.Score2)
	assert.True(t, s.Serving)
	assert.Equal(t, -0.5, s.BallVX, "serve goes to the player who conceded")
	assert.Equal(t, 1, rec.Count(audio.EffectPongScore))
	assert.Equal(t, 1, g.State().Details["opponent"])
}

func TestCPUWinsMatch(t *testing.T) {
	g, rec := newTestGame(testConfig)
	s := g.Snapshot()
	s.Score2 = 4
	s.Paddle1Y = 12
	g.ApplySnapshot(s)
	rally(g, 0.3, 2, -0.5, 0)

	assert.Equal(t, core.ActionGameOver, g.Update())
	st := g.State()
	assert.True(t, st.GameOver)
	assert.False(t, st.Won)
	assert.Zero(t, st.Score)
	assert.Equal(t, audio.TrackVictory, rec.Tracks[len(rec.Tracks)-1])

	assert.Equal(t, core.ActionContinue, g.Update(), "game over is reported once")
	g.HandleKey(input.CmdUp)
	assert.Equal(t, 12.0, g.Snapshot().Paddle1Y)
	assert.Equal(t, core.ActionQuit, g.HandleKey(input.CmdQuit))

	g.HandleKey(input.CmdRestart)
	s = g.Snapshot()
	assert.False(t, s.GameOver)
	assert.Zero(t, s.Score2)
}

func TestPlayerWinsMatch(t *testing.T) {
	g, _ := newTestGame(testConfig)
	s := g.Snapshot()
	s.Score1 = 4
	s.Paddle2Y = 0
	g.ApplySnapshot(s)
	rally(g, 59.8, 18, 0.5, 0)

	require.Equal(t, core.ActionGameOver, g.Update())
	st := g.State()
	assert.True(t, st.Won)
	assert.Equal(t, 5, st.Score)
}

func TestCPUTracksApproachingBall(t *testing.T) {
	g, _ := newTestGame(testConfig)
	s := g.Snapshot()
	s.Paddle2Y = 0
	g.ApplySnapshot(s)

	rally(g, 30, 15, -0.5, 0)
	g.Update()
	assert.Equal(t, 0.0, g.Snapshot().Paddle2Y, "ball going away")

	rally(g, 30, 15, 0.5, 0)
	g.Update()
	assert.InDelta(t, 1.2, g.Snapshot().Paddle2Y, 1e-9)
}

func TestSpeedLimit(t *testing.T) {
	g, _ := newTestGame(testConfig)
	rally(g, 30, 10, 5, 5)

	g.Update()
	s := g.Snapshot()
	assert.Equal(t, 1.5, s.BallVX)
	assert.Equal(t, 0.75, s.BallVY)
}

func TestTwoPlayer(t *testing.T) {
	cfg := testConfig
	cfg.TwoPlayer = true
	g, _ := newTestGame(cfg)

	assert.Equal(t, input.CmdUp2, input.Map(g.Keymap(), core.Press("up")))
	assert.Equal(t, input.CmdUp, input.Map(g.Keymap(), core.Press("w")))

	g.HandleKey(input.CmdDown2)
	assert.Equal(t, 10.0, g.Snapshot().Paddle2Y)

	rally(g, 30, 18, 0.5, 0)
	g.Update()
	assert.Equal(t, 10.0, g.Snapshot().Paddle2Y, "no CPU in two player mode")
}

func TestPause(t *testing.T) {
	g, _ := newTestGame(testConfig)
	rally(g, 30, 10, 0.5, 0)

	g.HandleKey(input.CmdPause)
	assert.True(t, g.State().Paused)
	g.Update()
	g.HandleKey(input.CmdUp)
	s := g.Snapshot()
	assert.Equal(t, 30.0, s.BallX)
	assert.Equal(t, 8.0, s.Paddle1Y)

	g.HandleKey(input.CmdPause)
	g.Update()
	assert.Equal(t, 30.5, g.Snapshot().BallX)
}

func TestMusic(t *testing.T) {
	g, rec := newTestGame(testConfig)
	g.Update()
	require.NotEmpty(t, rec.Tracks)
	assert.Equal(t, audio.TrackPong, rec.Tracks[0])

	g.HandleKey(input.CmdToggleMusic)
	assert.True(t, rec.MusicIdle())
}

func TestDeterminism(t *testing.T) {
	g1, _ := newTestGame(testConfig)
	g2, _ := newTestGame(testConfig)
	for i := range 500 {
		cmd := input.CmdNone
		if i%7 == 0 {
			cmd = input.CmdDown
		}
		g1.HandleKey(cmd)
		g2.HandleKey(cmd)
		g1.Update()
		g2.Update()
	}
	assert.Equal(t, g1.Snapshot(), g2.Snapshot())
}

func TestDraw(t *testing.T) {
	g, _ := newTestGame(testConfig)
	screen := core.NewScreen(80, 24)
	rally(g, 30, 10, 0.5, 0)
	g.Draw(screen)

	out := screen.String()
	assert.Contains(t, out, "P1")
	assert.Contains(t, out, "CPU")
	assert.Contains(t, out, "0   0")
	// Field origin is (9, 1); the ball sits at field (30, 10).
	assert.Equal(t, BallChar, screen.Get(9+1+30, 1+1+10))
	assert.Equal(t, PaddleChar, screen.Get(9+1+PaddleOffset, 1+1+8))

	small := core.NewScreen(20, 10)
	g.Draw(small)
	assert.Contains(t, small.String(), "small")
}
