// Package pong implements a classic Pong game.
// Player 1 controls the left paddle; the right paddle is the CPU or, in
// two player mode, a second player on the arrow keys.
package pong

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/termplay/internal/audio"
	"github.com/vovakirdan/termplay/internal/config"
	"github.com/vovakirdan/termplay/internal/core"
	"github.com/vovakirdan/termplay/internal/input"
	"github.com/vovakirdan/termplay/internal/registry"
)

// Name is the registry key.
const Name = "pong"

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '│'
)

// Field geometry, in cells.
const (
	FieldWidth   = 60
	FieldHeight  = 20
	PaddleHeight = 4
	PaddleOffset = 2 // distance from the side walls
)

const (
	serveTicks  = 30
	cpuSkillMax = 0.95
	// fastBall is the horizontal speed from which the fast theme plays.
	fastBall = 1.5
)

// Game implements the Pong game logic.
type Game struct {
	round int // bumped by Restart

	cfg   config.PongConfig
	rng   *rand.Rand
	audio audio.Player

	// Paddles (top edge)
	paddle1Y float64
	paddle2Y float64

	// Ball
	ballX  float64
	ballY  float64
	ballVX float64
	ballVY float64

	score1 int
	score2 int
	hits   int

	gameOver   bool
	paused     bool
	winner     int  // 1 or 2
	serving    bool // true while waiting to serve
	serveDelay int

	cpuSkill  float64
	tickCount int
}

// New creates a Pong game.
func New(rng *rand.Rand, player audio.Player, cfg config.PongConfig) *Game {
	if player == nil {
		player = audio.NewSilent(audio.Settings{})
	}
	g := &Game{cfg: cfg, rng: rng, audio: player}
	g.Restart()
	return g
}

func init() {
	registry.Register(Name, "Classic paddle game against the CPU", func(env registry.Env) registry.Game {
		return New(env.Rand, env.Audio, env.Config.Pong)
	})
}

func (g *Game) Name() string            { return Name }
func (g *Game) Description() string     { return "Classic paddle game against the CPU" }
func (g *Game) TickRate() time.Duration { return config.Tick(g.cfg.TickMS) }

// Restart resets scores and paddles and serves toward player 1.
func (g *Game) Restart() {
	g.round++
	center := (FieldHeight - PaddleHeight) / 2.0
	g.paddle1Y = center
	g.paddle2Y = center

	g.score1 = 0
	g.score2 = 0
	g.hits = 0
	g.gameOver = false
	g.paused = false
	g.winner = 0
	g.tickCount = 0
	g.cpuSkill = g.cfg.CPUSkill

	g.audio.StopMusic()
	g.startServe(1)
}

// startServe centers the ball aimed at the given player.
func (g *Game) startServe(receiver int) {
	g.serving = true
	g.serveDelay = serveTicks

	g.ballX = FieldWidth / 2.0
	g.ballY = FieldHeight / 2.0

	speed := g.cfg.BallSpeed
	if receiver == 1 {
		g.ballVX = -speed
	} else {
		g.ballVX = speed
	}
	// Random vertical angle
	g.ballVY = speed * (g.rng.Float64() - 0.5) * 0.6
}

func (g *Game) maxPaddleY() float64 { return FieldHeight - PaddleHeight }

func (g *Game) movePaddle(y *float64, dir float64) {
	*y = core.Clamp(*y+dir*g.cfg.PaddleSpeed, 0, g.maxPaddleY())
}

// HandleKey moves the paddles and handles the common commands.
func (g *Game) HandleKey(cmd input.Command) core.Action {
	switch cmd {
	case input.CmdQuit:
		return core.ActionQuit
	case input.CmdRestart:
		g.Restart()
		return core.ActionContinue
	case input.CmdToggleMusic:
		if g.audio.ToggleMusic() && !g.gameOver {
			g.audio.StartMusic(g.track())
		}
		return core.ActionContinue
	case input.CmdToggleEffects:
		g.audio.ToggleEffects()
		return core.ActionContinue
	}
	if g.gameOver {
		return core.ActionContinue
	}

	if cmd == input.CmdPause {
		g.paused = !g.paused
		return core.ActionContinue
	}
	if g.paused {
		return core.ActionContinue
	}

	switch cmd {
	case input.CmdUp:
		g.movePaddle(&g.paddle1Y, -1)
	case input.CmdDown:
		g.movePaddle(&g.paddle1Y, 1)
	case input.CmdUp2:
		if g.cfg.TwoPlayer {
			g.movePaddle(&g.paddle2Y, -1)
		}
	case input.CmdDown2:
		if g.cfg.TwoPlayer {
			g.movePaddle(&g.paddle2Y, 1)
		}
	}
	return core.ActionContinue
}

// Update advances the game by one tick.
func (g *Game) Update() core.Action {
	if g.gameOver || g.paused {
		return core.ActionContinue
	}

	g.tickCount++
	g.keepMusicPlaying()

	if g.serving {
		g.serveDelay--
		if g.serveDelay <= 0 {
			g.serving = false
		}
	}

	if !g.cfg.TwoPlayer {
		g.updateCPU()
	}
	if !g.serving {
		g.updateBall()
	}

	// Gradually increase CPU skill
	if g.tickCount%600 == 0 && g.cpuSkill < cpuSkillMax {
		g.cpuSkill = math.Min(g.cpuSkill+0.02, cpuSkillMax)
	}

	if g.gameOver {
		g.audio.StopMusic()
		g.audio.StartMusic(audio.TrackVictory)
		return core.ActionGameOver
	}
	return core.ActionContinue
}

// updateCPU tracks the ball while it approaches, at a skill-scaled speed.
func (g *Game) updateCPU() {
	if g.ballVX <= 0 {
		return
	}
	diff := g.ballY - PaddleHeight/2.0 - g.paddle2Y
	step := g.cfg.PaddleSpeed * g.cpuSkill
	if math.Abs(diff) > step {
		g.paddle2Y += math.Copysign(step, diff)
	} else {
		g.paddle2Y += diff
	}
	g.paddle2Y = core.Clamp(g.paddle2Y, 0, g.maxPaddleY())
}

// updateBall moves the ball and resolves walls, paddles and goals.
func (g *Game) updateBall() {
	g.ballX += g.ballVX
	g.ballY += g.ballVY

	if g.ballY <= 0 {
		g.ballY = 0
		g.ballVY = -g.ballVY
		g.audio.Play(audio.EffectPongWall)
	}
	if g.ballY >= FieldHeight-1 {
		g.ballY = FieldHeight - 1
		g.ballVY = -g.ballVY
		g.audio.Play(audio.EffectPongWall)
	}

	paddle1X := float64(PaddleOffset)
	paddle2X := float64(FieldWidth - PaddleOffset - 1)

	if g.ballVX < 0 && g.ballX <= paddle1X+1 && g.ballX >= paddle1X-1 && g.hitsPaddle(g.paddle1Y) {
		g.ballX = paddle1X + 1
		g.bounce(g.paddle1Y)
	}
	if g.ballVX > 0 && g.ballX >= paddle2X-1 && g.ballX <= paddle2X+1 && g.hitsPaddle(g.paddle2Y) {
		g.ballX = paddle2X - 1
		g.bounce(g.paddle2Y)
	}

	// Limit ball speed
	maxSpeed := g.cfg.BallSpeed * 3
	if math.Abs(g.ballVX) > maxSpeed {
		g.ballVX = math.Copysign(maxSpeed, g.ballVX)
	}
	if math.Abs(g.ballVY) > maxSpeed/2 {
		g.ballVY = math.Copysign(maxSpeed/2, g.ballVY)
	}

	switch {
	case g.ballX < 0:
		g.point(2)
	case g.ballX >= FieldWidth:
		g.point(1)
	}
}

func (g *Game) hitsPaddle(top float64) bool {
	return g.ballY >= top && g.ballY <= top+PaddleHeight
}

// bounce reflects the ball off a paddle, adding spin by hit position and
// speeding it up slightly.
func (g *Game) bounce(top float64) {
	g.ballVX = -g.ballVX * 1.05
	hitPos := (g.ballY - top) / PaddleHeight
	g.ballVY += (hitPos - 0.5) * 0.3
	g.hits++
	g.audio.Play(audio.EffectPongPaddle)
}

// point credits a goal and either ends the match or serves again toward
// the player who conceded.
func (g *Game) point(scorer int) {
	g.audio.Play(audio.EffectPongScore)
	if scorer == 1 {
		g.score1++
	} else {
		g.score2++
	}
	if g.score1 >= g.cfg.WinScore || g.score2 >= g.cfg.WinScore {
		g.gameOver = true
		g.winner = scorer
		return
	}
	g.startServe(3 - scorer)
}

func (g *Game) track() audio.Track {
	if math.Abs(g.ballVX) > fastBall {
		return audio.TrackPongFast
	}
	return audio.TrackPong
}

func (g *Game) keepMusicPlaying() {
	if g.audio.MusicEnabled() && g.audio.MusicIdle() {
		g.audio.StartMusic(g.track())
	}
}

// Draw renders the field centered on the screen.
func (g *Game) Draw(dst *core.Screen) {
	w, h := FieldWidth+2, FieldHeight+2
	if dst.Width() < w || dst.Height() < h+2 {
		dst.DrawTextCenteredColored(dst.Height()/2, "Window too small", core.ColorRed)
		return
	}
	ox := (dst.Width() - w) / 2
	oy := 1
	dst.DrawBoxColored(core.NewRect(ox, oy, w, h), core.ColorWhite)

	// Net
	centerX := ox + 1 + FieldWidth/2
	for y := 0; y < FieldHeight; y += 2 {
		dst.SetColored(centerX, oy+1+y, NetChar, core.ColorGray)
	}

	paddle1X := ox + 1 + PaddleOffset
	paddle2X := ox + 1 + FieldWidth - PaddleOffset - 1
	for i := range PaddleHeight {
		dst.SetColored(paddle1X, oy+1+int(g.paddle1Y)+i, PaddleChar, core.ColorBrightCyan)
		dst.SetColored(paddle2X, oy+1+int(g.paddle2Y)+i, PaddleChar, core.ColorBrightMagenta)
	}

	// Blink during serve
	if !g.serving || (g.serveDelay/5)%2 == 0 {
		dst.SetColored(ox+1+int(g.ballX), oy+1+int(g.ballY), BallChar, core.ColorBrightYellow)
	}

	right := "CPU"
	if g.cfg.TwoPlayer {
		right = "P2"
	}
	dst.DrawTextColored(ox, 0, "P1", core.ColorBrightCyan)
	dst.DrawTextColored(ox+w-len(right), 0, right, core.ColorBrightMagenta)
	dst.DrawTextCenteredColored(0, fmt.Sprintf("%d   %d", g.score1, g.score2), core.ColorBrightWhite)

	switch {
	case g.gameOver:
		msg := "YOU WIN!"
		switch {
		case g.winner == 2 && g.cfg.TwoPlayer:
			msg = "PLAYER 2 WINS!"
		case g.winner == 2:
			msg = "CPU WINS!"
		case g.cfg.TwoPlayer:
			msg = "PLAYER 1 WINS!"
		}
		dst.DrawMessageBox(core.ColorBrightYellow, msg, fmt.Sprintf("%d - %d", g.score1, g.score2), "r: restart   q: quit")
	case g.paused:
		dst.DrawMessageBox(core.ColorYellow, "PAUSED", "p: resume")
	default:
		dst.DrawTextCenteredColored(oy+h, "w/s or arrows: move  p: pause  q: quit", core.ColorGray)
	}
}

// State reports player 1's goals as the score.
func (g *Game) State() core.GameState {
	return core.GameState{
		Round:    g.round,
		Score:    g.score1,
		GameOver: g.gameOver,
		Paused:   g.paused,
		Won:      g.winner == 1,
		Details: map[string]int{
			"opponent": g.score2,
			"hits":     g.hits,
		},
	}
}
