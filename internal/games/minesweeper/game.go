// Package minesweeper implements the mine detection puzzle.
package minesweeper

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
const Name = "minesweeper"

const tickRate = 100 * time.Millisecond

// Game implements minesweeper. The score is the number of safe cells
// revealed; clearing the field doubles it.
type Game struct {
	round int // bumped by Restart

	cfg   config.MinesweeperConfig
	rng   *rand.Rand
	audio audio.Player

	field            *Field
	cursorX, cursorY int
	gameOver         bool
	won              bool

	started time.Time // first reveal
	elapsed time.Duration
}

// New creates a game with an unlaid field.
func New(rng *rand.Rand, player audio.Player, cfg config.MinesweeperConfig) *Game {
	if player == nil {
		player = audio.NewSilent(audio.Settings{})
	}
	g := &Game{cfg: cfg, rng: rng, audio: player}
	g.Restart()
	return g
}

func init() {
	registry.Register(Name, "Classic mine detection game", func(env registry.Env) registry.Game {
		return New(env.Rand, env.Audio, env.Config.Minesweeper)
	})
}

func (g *Game) Name() string            { return Name }
func (g *Game) Description() string     { return "Classic mine detection game" }
func (g *Game) TickRate() time.Duration { return tickRate }

// Update does nothing; the field only changes on key presses.
func (g *Game) Update() core.Action { return core.ActionContinue }

// Field exposes the mine field for drawing and tests.
func (g *Game) Field() *Field { return g.field }

// Cursor returns the selected cell.
func (g *Game) Cursor() (x, y int) { return g.cursorX, g.cursorY }

func (g *Game) over() bool { return g.gameOver || g.won }

// moveCursor moves the selection, stopping at the edges.
func (g *Game) moveCursor(dx, dy int) {
	g.cursorX = min(max(g.cursorX+dx, 0), g.field.Width()-1)
	g.cursorY = min(max(g.cursorY+dy, 0), g.field.Height()-1)
}

// Restart covers a fresh field and centers the cursor.
func (g *Game) Restart() {
	g.round++
	g.field = NewField(g.cfg.Width, g.cfg.Height, g.cfg.Mines)
	g.cursorX = g.cfg.Width / 2
	g.cursorY = g.cfg.Height / 2
	g.gameOver = false
	g.won = false
	g.started = time.Time{}
	g.elapsed = 0
}

// HandleKey moves the cursor, reveals and flags.
func (g *Game) HandleKey(cmd input.Command) core.Action {
	switch cmd {
	case input.CmdQuit:
		return core.ActionQuit
	case input.CmdRestart:
		g.Restart()
		return core.ActionContinue
	case input.CmdToggleMusic:
		g.audio.ToggleMusic()
		return core.ActionContinue
	case input.CmdToggleEffects:
		g.audio.ToggleEffects()
		return core.ActionContinue
	}
	if g.over() {
		return core.ActionContinue
	}

	switch cmd {
	case input.CmdUp:
		g.moveCursor(0, -1)
	case input.CmdDown:
		g.moveCursor(0, 1)
	case input.CmdLeft:
		g.moveCursor(-1, 0)
	case input.CmdRight:
		g.moveCursor(1, 0)
	case input.CmdFlag:
		g.flag()
	case input.CmdSelect:
		return g.reveal()
	}
	return core.ActionContinue
}

func (g *Game) flag() {
	before := g.field.At(g.cursorX, g.cursorY).State
	switch after := g.field.ToggleFlag(g.cursorX, g.cursorY); {
	case before == Hidden && after == Flagged:
		g.audio.Play(audio.EffectMinesFlag)
	case before == Flagged && after == Hidden:
		g.audio.Play(audio.EffectMinesUnflag)
	}
}

func (g *Game) reveal() core.Action {
	if !g.field.Laid() {
		g.field.Lay(g.rng, g.cursorX, g.cursorY)
		g.started = time.Now()
	}

	opened, hit := g.field.Reveal(g.cursorX, g.cursorY)
	switch {
	case hit:
		g.gameOver = true
		g.elapsed = time.Since(g.started)
		g.field.ShowMines()
		g.audio.Play(audio.EffectMinesHit)
		return core.ActionGameOver
	case g.field.Cleared():
		g.won = true
		g.elapsed = time.Since(g.started)
		g.audio.Play(audio.EffectMinesVictory)
		return core.ActionGameOver
	case opened > 0:
		g.audio.Play(audio.EffectMinesReveal)
	}
	return core.ActionContinue
}

func (g *Game) score() int {
	if g.won {
		return 2 * g.field.Revealed()
	}
	return g.field.Revealed()
}

// Elapsed is the time since the first reveal, frozen when the game ends.
func (g *Game) Elapsed() time.Duration {
	switch {
	case g.started.IsZero():
		return 0
	case g.over():
		return g.elapsed
	}
	return time.Since(g.started)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Round:    g.round,
		Score:    g.score(),
		GameOver: g.over(),
		Won:      g.won,
		Details: map[string]int{
			"revealed": g.field.Revealed(),
			"mines":    g.field.Mines(),
			"seconds":  int(g.Elapsed().Seconds()),
		},
	}
}
