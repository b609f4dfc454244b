// Package tetris implements the classic falling-block puzzle.
//
// The rules live in Board and Piece; Game orchestrates spawning, gravity,
// scoring and leveling on top of them and reports the outcome of each
// command or tick to the scheduler.
package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/termplay/internal/audio"
	"github.com/vovakirdan/termplay/internal/config"
	"github.com/vovakirdan/termplay/internal/core"
	"github.com/vovakirdan/termplay/internal/input"
	"github.com/vovakirdan/termplay/internal/registry"
)

// Name is the registry key.
const Name = "tetris"

// celebrationTicks is how long the "TETRIS!" banner stays up after a
// four-line clear.
const celebrationTicks = 120

// lineScores is the base award per number of lines cleared at once.
var lineScores = [5]int{0, 40, 100, 300, 1200}

// LineScore returns the points for clearing n lines at the given level.
func LineScore(n, level int) int {
	if n < 0 || n >= len(lineScores) {
		return 0
	}
	return lineScores[n] * level
}

// LevelFor returns the level reached after clearing the given lines.
func LevelFor(lines int) int {
	return lines/10 + 1
}

// DropInterval is the number of ticks between gravity steps at a level.
func DropInterval(level int) int {
	return max(1, 21-level)
}

// Game is the tetris simulation.
type Game struct {
	round int // bumped by Restart

	board   *Board
	current *Piece // nil once the game is over
	next    PieceType

	score int
	lines int
	level int
	over  bool

	dropTimer   int
	celebration int

	rng   *rand.Rand
	audio audio.Player
	cfg   config.TetrisConfig
}

// New creates a game with a spawned first piece. rng drives piece order.
func New(rng *rand.Rand, player audio.Player, cfg config.TetrisConfig) *Game {
	if player == nil {
		player = audio.NewSilent(audio.Settings{})
	}
	g := &Game{
		board: NewBoard(),
		rng:   rng,
		audio: player,
		cfg:   cfg,
	}
	g.Restart()
	return g
}

// Name returns the registry key.
func (g *Game) Name() string { return Name }

// Description returns the listing blurb.
func (g *Game) Description() string { return "Classic Tetris with line clearing" }

// TickRate returns the simulation tick. Gravity runs every DropInterval ticks.
func (g *Game) TickRate() time.Duration {
	return config.Tick(g.cfg.TickMS)
}

// Restart resets the board and score and spawns a fresh piece.
func (g *Game) Restart() {
	g.round++
	g.board.Reset()
	g.current = nil
	g.score = 0
	g.lines = 0
	g.level = 1
	g.over = false
	g.dropTimer = 0
	g.celebration = 0
	g.next = g.randomType()
	g.spawn()
}

func (g *Game) randomType() PieceType {
	return PieceType(g.rng.Intn(NumPieceTypes))
}

// HandleKey applies one command. While the game is over only restart and
// quit do anything.
func (g *Game) HandleKey(cmd input.Command) core.Action {
	if g.over {
		switch cmd {
		case input.CmdRestart:
			g.Restart()
		case input.CmdQuit:
			return core.ActionQuit
		}
		return core.ActionContinue
	}

	switch cmd {
	case input.CmdQuit:
		return core.ActionQuit
	case input.CmdLeft:
		g.shift(-1)
	case input.CmdRight:
		g.shift(1)
	case input.CmdRotate:
		g.rotate()
	case input.CmdSoftDrop:
		if g.tryMove(0, 1) {
			g.score++
		} else {
			g.place()
		}
	case input.CmdHardDrop:
		g.hardDrop()
	case input.CmdToggleMusic:
		if g.audio.ToggleMusic() {
			g.audio.StartMusic(g.track())
		}
	case input.CmdToggleEffects:
		g.audio.ToggleEffects()
	}
	return g.outcome()
}

// Update advances one tick: the banner timer, music and gravity.
func (g *Game) Update() core.Action {
	if g.over {
		return core.ActionContinue
	}

	if g.celebration > 0 {
		g.celebration--
	}
	g.keepMusicPlaying()

	g.dropTimer++
	if g.dropTimer >= DropInterval(g.level) {
		if !g.tryMove(0, 1) {
			g.place()
		}
		g.dropTimer = 0
	}
	return g.outcome()
}

// outcome reports GameOver for the call that ended the game. Later calls see
// over already set and return early.
func (g *Game) outcome() core.Action {
	if g.over {
		return core.ActionGameOver
	}
	return core.ActionContinue
}

func (g *Game) tryMove(dx, dy int) bool {
	if g.current == nil {
		return false
	}
	moved := g.current.Moved(dx, dy)
	if !g.board.Valid(moved) {
		return false
	}
	*g.current = moved
	return true
}

func (g *Game) shift(dx int) {
	if g.tryMove(dx, 0) {
		g.audio.Play(audio.EffectTetrisMove)
	}
}

func (g *Game) rotate() {
	if g.current == nil {
		return
	}
	rotated := g.current.Rotated()
	if g.board.Valid(rotated) {
		*g.current = rotated
		g.audio.Play(audio.EffectTetrisRotate)
	}
}

func (g *Game) hardDrop() {
	steps := 0
	for g.tryMove(0, 1) {
		steps++
	}
	if steps > 0 {
		g.score += 2 * steps
		g.audio.Play(audio.EffectTetrisHardDrop)
	}
	g.place()
}

// place locks the current piece, clears lines and spawns the next piece.
func (g *Game) place() {
	if g.current == nil {
		return
	}
	g.board.Place(*g.current)
	g.current = nil
	g.audio.Play(audio.EffectTetrisPieceDrop)

	g.scoreLines(g.board.ClearLines())
	g.spawn()
}

func (g *Game) scoreLines(n int) {
	if n == 0 {
		return
	}
	switch {
	case n >= 4:
		g.audio.Play(audio.EffectTetrisTetris)
		g.celebration = celebrationTicks
		// keepMusicPlaying brings the theme back once the chord ends.
		if g.audio.MusicEnabled() {
			g.audio.StopMusic()
			g.audio.StartMusic(audio.TrackTetrisHarmony)
		}
	default:
		g.audio.Play(audio.EffectTetrisLineClear)
	}

	before := g.level
	g.lines += n
	g.level = LevelFor(g.lines)
	g.score += LineScore(n, g.level)
	if g.level > before {
		g.audio.Play(audio.EffectTetrisLevelUp)
	}
}

// spawn brings in the next piece. A spawn that doesn't fit ends the game
// and leaves the board untouched.
func (g *Game) spawn() {
	p := NewPiece(g.next)
	g.next = g.randomType()

	if !g.board.Valid(p) {
		g.over = true
		g.current = nil
		g.audio.StopMusic()
		g.audio.Play(audio.EffectTetrisGameOver)
		return
	}
	g.current = &p
}

func (g *Game) track() audio.Track {
	if g.cfg.FastMusicLevel > 0 && g.level >= g.cfg.FastMusicLevel {
		return audio.TrackTetrisFast
	}
	return audio.TrackTetris
}

// keepMusicPlaying starts the theme and restarts it when it runs out.
func (g *Game) keepMusicPlaying() {
	if g.audio.MusicEnabled() && g.audio.MusicIdle() {
		g.audio.StartMusic(g.track())
	}
}

// State summarises the game for score keeping.
func (g *Game) State() core.GameState {
	return core.GameState{
		Round:    g.round,
		Score:    g.score,
		GameOver: g.over,
		Details: map[string]int{
			"level": g.level,
			"lines": g.lines,
		},
	}
}

// Snapshot is a copy of the simulation state, for tests and debugging.
type Snapshot struct {
	Score   int
	Lines   int
	Level   int
	Over    bool
	Current *Piece
	Next    PieceType
	Board   string
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Score: g.score,
		Lines: g.lines,
		Level: g.level,
		Over:  g.over,
		Next:  g.next,
		Board: g.board.String(),
	}
	if g.current != nil {
		p := *g.current
		s.Current = &p
	}
	return s
}

func init() {
	registry.Register(Name, "Classic Tetris with line clearing", func(env registry.Env) registry.Game {
		return New(env.Rand, env.Audio, env.Config.Tetris)
	})
}
