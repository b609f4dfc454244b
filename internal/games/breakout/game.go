// Package breakout implements a brick breaker with power-ups. The campaign
// plays through the built-in levels once; endless mode cycles them and
// speeds the ball up every round.
package breakout

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/termplay/internal/audio"
	"github.com/vovakirdan/termplay/internal/config"
	"github.com/vovakirdan/termplay/internal/core"
	"github.com/vovakirdan/termplay/internal/input"
	"github.com/vovakirdan/termplay/internal/registry"
)

// Registry keys.
const (
	Name        = "breakout"
	EndlessName = "breakout_endless"
)

// Field geometry, in cells.
const (
	FieldWidth  = 60
	FieldHeight = 20
	brickTop    = 1
	paddleRow   = FieldHeight - 2
)

const (
	serveTicks = 60
	// endlessSpeedUp is added to the ball speed each endless cycle.
	endlessSpeedUp = 20
	// fastCompletion is the share of broken bricks from which the fast
	// theme plays.
	fastCompletion = 0.7
)

// Mode selects campaign or endless play.
type Mode int

const (
	Campaign Mode = iota
	Endless
)

type state int

const (
	stateServe state = iota // ball on the paddle
	statePlaying
	statePaused
	stateOver // out of lives
	stateWon  // campaign cleared
)

// Game implements the breakout game logic.
type Game struct {
	round int // bumped by Restart

	cfg   config.BreakoutConfig
	mode  Mode
	audio audio.Player

	layout   layout
	paddle   *Paddle
	balls    []*Ball
	level    *Level
	powerups *PowerUpManager

	state      state
	score      int
	lives      int
	levelIndex int
	cycle      int // completed endless rounds
	tick       int
	serveDelay int
	speed      Fixed // current ball speed including effects
}

// New creates a breakout game.
func New(rng *rand.Rand, player audio.Player, cfg config.BreakoutConfig, mode Mode) *Game {
	if player == nil {
		player = audio.NewSilent(audio.Settings{})
	}
	g := &Game{
		cfg:      cfg,
		mode:     mode,
		audio:    player,
		powerups: NewPowerUpManager(rng, DefaultPowerUpConfig()),
	}
	g.layout = layout{top: brickTop, brickWidth: FieldWidth / GetLevel(0).Width, brickHeight: 1}
	g.Restart()
	return g
}

func init() {
	registry.Register(Name, "Break every brick through the campaign levels", func(env registry.Env) registry.Game {
		return New(env.Rand, env.Audio, env.Config.Breakout, Campaign)
	})
	registry.Register(EndlessName, "Breakout levels on repeat, faster each round", func(env registry.Env) registry.Game {
		return New(env.Rand, env.Audio, env.Config.Breakout, Endless)
	})
}

func (g *Game) Name() string {
	if g.mode == Endless {
		return EndlessName
	}
	return Name
}

func (g *Game) Description() string {
	if g.mode == Endless {
		return "Breakout levels on repeat, faster each round"
	}
	return "Break every brick through the campaign levels"
}

func (g *Game) TickRate() time.Duration { return config.Tick(g.cfg.TickMS) }

// Restart starts over from the first level with full lives.
func (g *Game) Restart() {
	g.round++
	g.score = 0
	g.lives = g.cfg.Lives
	g.levelIndex = 0
	g.cycle = 0
	g.tick = 0
	g.serveDelay = 0
	g.speed = g.baseSpeed()
	g.powerups.Reset()
	g.level = GetLevel(0)
	g.paddle = &Paddle{
		X:     ToFixed((FieldWidth - g.cfg.PaddleWidth) / 2),
		Y:     paddleRow,
		Width: g.cfg.PaddleWidth,
	}
	g.resetBalls()
	g.audio.StopMusic()
}

func (g *Game) over() bool { return g.state == stateOver || g.state == stateWon }

func (g *Game) baseSpeed() Fixed {
	return Fixed(g.cfg.BallSpeed + g.cycle*endlessSpeedUp)
}

// resetBalls leaves a single ball on the paddle.
func (g *Game) resetBalls() {
	g.balls = append(g.balls[:0], &Ball{Stuck: true, Active: true})
	g.followPaddle()
	g.state = stateServe
}

// followPaddle keeps stuck balls centered on the paddle.
func (g *Game) followPaddle() {
	for _, b := range g.balls {
		if b.Active && b.Stuck {
			b.X = g.paddle.CenterX()
			b.Y = ToFixed(g.paddle.Y - 1)
		}
	}
}

func (g *Game) launch() {
	for _, b := range g.balls {
		if b.Active && b.Stuck {
			b.VX = g.speed / 4
			b.VY = -g.speed
			b.Stuck = false
		}
	}
	g.state = statePlaying
}

func (g *Game) movePaddle(dir int) {
	g.paddle.X = g.paddle.X.Add(ToFixed(g.cfg.PaddleStep).Mul(dir))
	g.clampPaddle()
	g.followPaddle()
}

func (g *Game) clampPaddle() {
	g.paddle.X = ClampFixed(g.paddle.X, 0, ToFixed(FieldWidth-g.paddle.Width))
}

// HandleKey moves the paddle, launches the ball and handles the common
// commands.
func (g *Game) HandleKey(cmd input.Command) core.Action {
	switch cmd {
	case input.CmdQuit:
		return core.ActionQuit
	case input.CmdRestart:
		g.Restart()
		return core.ActionContinue
	case input.CmdToggleMusic:
		if g.audio.ToggleMusic() && !g.over() {
			g.audio.StartMusic(g.track())
		}
		return core.ActionContinue
	case input.CmdToggleEffects:
		g.audio.ToggleEffects()
		return core.ActionContinue
	}
	if g.over() {
		return core.ActionContinue
	}

	if cmd == input.CmdPause {
		switch g.state {
		case statePlaying:
			g.state = statePaused
		case statePaused:
			g.state = statePlaying
		}
		return core.ActionContinue
	}
	if g.state == statePaused {
		return core.ActionContinue
	}

	switch cmd {
	case input.CmdLeft:
		g.movePaddle(-1)
	case input.CmdRight:
		g.movePaddle(1)
	case input.CmdSelect:
		if g.state == stateServe && g.serveDelay == 0 {
			g.launch()
		}
	}
	return core.ActionContinue
}

// Update advances the game by one tick.
func (g *Game) Update() core.Action {
	if g.state == statePaused || g.over() {
		return core.ActionContinue
	}

	g.tick++
	g.keepMusicPlaying()

	if g.serveDelay > 0 {
		g.serveDelay--
		return core.ActionContinue
	}

	for _, e := range g.powerups.Expire(g.tick) {
		g.onEffectExpired(e)
	}

	g.powerups.Update(FieldHeight)
	if p := g.powerups.Collect(g.paddle); p != PickupNone {
		g.activate(p)
		g.audio.Play(audio.EffectBreakoutPowerUp)
	}

	if g.state == stateServe {
		g.followPaddle()
		return core.ActionContinue
	}

	g.updateBalls()

	switch g.state {
	case stateOver:
		g.audio.StopMusic()
		g.audio.Play(audio.EffectBreakoutGameOver)
		return core.ActionGameOver
	case stateWon:
		g.audio.StopMusic()
		g.audio.StartMusic(audio.TrackVictory)
		return core.ActionGameOver
	}
	return core.ActionContinue
}

func (g *Game) updateBalls() {
	sticky := g.powerups.HasEffect(EffectSticky)

	for _, b := range g.balls {
		if !b.Active || b.Stuck {
			continue
		}
		b.Move()

		side, fellOff := CheckWallCollision(b, FieldWidth, FieldHeight)
		if fellOff {
			b.Active = false
			continue
		}
		b.Bounce(side)

		if CheckPaddleCollision(b, g.paddle, g.speed) {
			g.audio.Play(audio.EffectBreakoutPaddle)
			if sticky {
				b.Stuck = true
				b.VX, b.VY = 0, 0
				b.X = g.paddle.CenterX()
				b.Y = ToFixed(g.paddle.Y - 1)
			}
			continue
		}

		row, col, side := g.layout.CheckBrickCollision(b, g.level)
		if side == CollisionNone {
			continue
		}
		b.Bounce(side)
		g.hitBrick(row, col)
		if g.state != statePlaying {
			// The level was cleared.
			return
		}
	}

	active, stuck := 0, 0
	kept := g.balls[:0]
	for _, b := range g.balls {
		if b.Active {
			kept = append(kept, b)
			active++
			if b.Stuck {
				stuck++
			}
		}
	}
	g.balls = kept

	switch {
	case active == 0:
		g.miss()
	case stuck == active:
		g.state = stateServe
	}
}

func (g *Game) hitBrick(row, col int) {
	brick := &g.level.Bricks[row][col]
	g.audio.Play(audio.EffectBreakoutBrick)
	if brick.Type == BrickSolid {
		return
	}
	brick.HP--
	if brick.HP > 0 {
		return
	}
	brick.Alive = false
	g.score += brick.Points

	if g.cfg.PowerUps {
		g.powerups.TrySpawn(col*g.layout.brickWidth+g.layout.brickWidth/2, g.layout.top+row*g.layout.brickHeight)
	}
	if g.level.CountAlive() == 0 {
		g.levelCleared()
	}
}

func (g *Game) activate(p PickupType) {
	cfg := g.powerups.Config
	switch p {
	case PickupWiden:
		g.powerups.RemoveEffect(EffectShrink)
		g.powerups.AddEffect(EffectWiden, g.tick)
		g.applyPaddleWidth()
	case PickupShrink:
		g.powerups.RemoveEffect(EffectWiden)
		g.powerups.AddEffect(EffectShrink, g.tick)
		g.applyPaddleWidth()
	case PickupMultiball:
		g.spawnBalls(cfg.MultiballCount)
	case PickupSticky:
		g.powerups.AddEffect(EffectSticky, g.tick)
	case PickupSpeedUp:
		g.powerups.RemoveEffect(EffectSlowDown)
		g.powerups.AddEffect(EffectSpeedUp, g.tick)
		g.applyBallSpeed()
	case PickupSlowDown:
		g.powerups.RemoveEffect(EffectSpeedUp)
		g.powerups.AddEffect(EffectSlowDown, g.tick)
		g.applyBallSpeed()
	case PickupExtraLife:
		g.lives++
	}
}

func (g *Game) onEffectExpired(e EffectType) {
	switch e {
	case EffectWiden, EffectShrink:
		g.applyPaddleWidth()
	case EffectSpeedUp, EffectSlowDown:
		g.applyBallSpeed()
	}
}

func (g *Game) applyPaddleWidth() {
	cfg := g.powerups.Config
	w := g.cfg.PaddleWidth
	switch {
	case g.powerups.HasEffect(EffectWiden):
		w += cfg.WidenAmount
	case g.powerups.HasEffect(EffectShrink):
		w -= cfg.ShrinkAmount
	}
	g.paddle.Width = min(max(w, cfg.MinPaddleWidth), cfg.MaxPaddleWidth)
	g.clampPaddle()
	g.followPaddle()
}

func (g *Game) applyBallSpeed() {
	cfg := g.powerups.Config
	speed := g.baseSpeed()
	switch {
	case g.powerups.HasEffect(EffectSpeedUp):
		speed = speed.Mul(cfg.SpeedMultiplier).Div(100)
	case g.powerups.HasEffect(EffectSlowDown):
		speed = speed.Mul(100).Div(cfg.SpeedMultiplier)
	}
	g.speed = ClampFixed(speed, Fixed(cfg.MinBallSpeed), Fixed(cfg.MaxBallSpeed))
}

// spawnBalls splits the first moving ball into count more, fanned out
// sideways.
func (g *Game) spawnBalls(count int) {
	var src *Ball
	for _, b := range g.balls {
		if b.Active && !b.Stuck {
			src = b
			break
		}
	}
	if src == nil {
		return
	}
	for i := range count {
		spread := Fixed((i + 1) * 300)
		if i%2 == 1 {
			spread = -spread
		}
		b := &Ball{X: src.X, Y: src.Y, VX: src.VX.Add(spread), VY: src.VY, Active: true}
		if b.VX.Abs() > g.speed {
			b.VX = g.speed.Mul(b.VX.Sign())
		}
		if b.VY == 0 {
			b.VY = -g.speed
		}
		g.balls = append(g.balls, b)
	}
}

// miss costs a life once every ball is gone. Power-ups are lost with it.
func (g *Game) miss() {
	g.lives--
	g.audio.Play(audio.EffectBreakoutLifeLost)
	if g.lives <= 0 {
		g.state = stateOver
		return
	}
	g.powerups.Reset()
	g.paddle.Width = g.cfg.PaddleWidth
	g.clampPaddle()
	g.speed = g.baseSpeed()
	g.resetBalls()
	g.serveDelay = serveTicks
}

func (g *Game) levelCleared() {
	g.levelIndex++
	if g.levelIndex >= LevelCount() {
		if g.mode == Campaign {
			g.state = stateWon
			return
		}
		g.levelIndex = 0
		g.cycle++
		g.applyBallSpeed()
	}
	g.level = GetLevel(g.levelIndex)
	g.powerups.Pickups = g.powerups.Pickups[:0]
	g.resetBalls()
	g.serveDelay = serveTicks
}

// completion is the share of the level's breakable bricks destroyed.
func (g *Game) completion() float64 {
	total := g.level.Total()
	if total == 0 {
		return 1
	}
	return 1 - float64(g.level.CountAlive())/float64(total)
}

func (g *Game) track() audio.Track {
	if g.completion() > fastCompletion {
		return audio.TrackBreakoutFast
	}
	return audio.TrackBreakout
}

func (g *Game) keepMusicPlaying() {
	if g.audio.MusicEnabled() && g.audio.MusicIdle() {
		g.audio.StartMusic(g.track())
	}
}

// LevelNumber is the 1-based level count, running on across endless
// rounds.
func (g *Game) LevelNumber() int {
	return g.cycle*LevelCount() + g.levelIndex + 1
}

// State reports the brick score, lives and level.
func (g *Game) State() core.GameState {
	return core.GameState{
		Round:    g.round,
		Score:    g.score,
		GameOver: g.over(),
		Paused:   g.state == statePaused,
		Won:      g.state == stateWon,
		Details: map[string]int{
			"level": g.LevelNumber(),
			"lives": g.lives,
		},
	}
}
