// Package t2048 implements the 2048 sliding puzzle: merge equal tiles until
// one reaches the target.
package t2048

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
const Name = "2048"

const (
	tickRate   = 100 * time.Millisecond
	spawn4Prob = 0.10
)

// Game implements 2048.
type Game struct {
	round int // bumped by Restart

	cfg   config.T2048Config
	rng   *rand.Rand
	audio audio.Player

	board    Board
	score    int
	moves    int
	gameOver bool
	won      bool
}

// New creates a game with two starting tiles.
func New(rng *rand.Rand, player audio.Player, cfg config.T2048Config) *Game {
	if player == nil {
		player = audio.NewSilent(audio.Settings{})
	}
	g := &Game{cfg: cfg, rng: rng, audio: player}
	g.Restart()
	return g
}

func init() {
	registry.Register(Name, "Slide numbered tiles to combine them and reach 2048!", func(env registry.Env) registry.Game {
		return New(env.Rand, env.Audio, env.Config.T2048)
	})
}

func (g *Game) Name() string { return Name }
func (g *Game) Description() string {
	return "Slide numbered tiles to combine them and reach 2048!"
}

// TickRate is fixed; nothing moves between key presses.
func (g *Game) TickRate() time.Duration { return tickRate }

// Restart clears the board and spawns two tiles.
func (g *Game) Restart() {
	g.round++
	g.board = Board{}
	g.score = 0
	g.moves = 0
	g.gameOver = false
	g.won = false
	g.spawnTile()
	g.spawnTile()
}

// spawnTile puts a 2 (90%) or a 4 (10%) on a random empty cell.
func (g *Game) spawnTile() {
	empty := g.board.Empty()
	if len(empty) == 0 {
		return
	}
	c := empty[g.rng.Intn(len(empty))]
	value := 2
	if g.rng.Float64() < spawn4Prob {
		value = 4
	}
	g.board[c.Y][c.X] = value
}

// HandleKey slides the board. After a win or a loss only restart and quit
// are accepted.
func (g *Game) HandleKey(cmd input.Command) core.Action {
	switch cmd {
	case input.CmdQuit:
		return core.ActionQuit
	case input.CmdToggleMusic:
		g.audio.ToggleMusic()
		return core.ActionContinue
	case input.CmdToggleEffects:
		g.audio.ToggleEffects()
		return core.ActionContinue
	case input.CmdRestart:
		g.Restart()
		return core.ActionContinue
	}
	if g.gameOver || g.won {
		return core.ActionContinue
	}

	switch cmd {
	case input.CmdUp:
		return g.move(DirUp)
	case input.CmdDown:
		return g.move(DirDown)
	case input.CmdLeft:
		return g.move(DirLeft)
	case input.CmdRight:
		return g.move(DirRight)
	}
	return core.ActionContinue
}

// move applies one slide. A slide that changes nothing spawns nothing.
func (g *Game) move(dir Direction) core.Action {
	next, gained, changed := g.board.Slide(dir)
	if !changed {
		return core.ActionContinue
	}
	g.board = next
	g.score += gained
	g.moves++

	if gained > 0 {
		g.audio.Play(audio.Effect2048Merge)
	} else {
		g.audio.Play(audio.Effect2048Move)
	}

	if g.board.MaxTile() >= g.cfg.Target {
		g.won = true
		g.audio.Play(audio.Effect2048Victory)
		return core.ActionGameOver
	}

	g.spawnTile()
	if !g.board.CanMove() {
		g.gameOver = true
		g.audio.Play(audio.Effect2048GameOver)
		return core.ActionGameOver
	}
	return core.ActionContinue
}

// Update does nothing; 2048 only changes on key presses.
func (g *Game) Update() core.Action {
	return core.ActionContinue
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Round:    g.round,
		Score:    g.score,
		GameOver: g.gameOver || g.won,
		Won:      g.won,
		Details: map[string]int{
			"max_tile": g.board.MaxTile(),
			"moves":    g.moves,
		},
	}
}
