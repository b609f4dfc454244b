// Package life implements Conway's Game of Life with a cell editor.
package life

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
const Name = "life"

// Mode is the simulation state.
type Mode int

const (
	Editing Mode = iota
	Running
	Paused
)

func (m Mode) String() string {
	switch m {
	case Running:
		return "RUNNING"
	case Paused:
		return "PAUSED"
	default:
		return "EDITING"
	}
}

// speedTicks maps speed 1..5 to the generation interval.
var speedTicks = [5]time.Duration{
	1000 * time.Millisecond,
	500 * time.Millisecond,
	250 * time.Millisecond,
	125 * time.Millisecond,
	60 * time.Millisecond,
}

// Game is the Life sandbox. It never ends on its own; q leaves.
type Game struct {
	round int // bumped by Restart

	cfg   config.LifeConfig
	rng   *rand.Rand
	audio audio.Player

	grid       *Grid
	preset     int
	mode       Mode
	generation int
	speed      int

	cursorX, cursorY int
	cameraX, cameraY int
}

// New creates a sandbox seeded with a glider, a blinker and a block.
func New(rng *rand.Rand, player audio.Player, cfg config.LifeConfig) *Game {
	if player == nil {
		player = audio.NewSilent(audio.Settings{})
	}
	g := &Game{cfg: cfg, rng: rng, audio: player}
	g.Restart()
	return g
}

func init() {
	registry.Register(Name, "Conway's Game of Life cellular automaton", func(env registry.Env) registry.Game {
		return New(env.Rand, env.Audio, env.Config.Life)
	})
}

func (g *Game) Name() string        { return Name }
func (g *Game) Description() string { return "Conway's Game of Life cellular automaton" }

// Grid exposes the universe for drawing and tests.
func (g *Game) Grid() *Grid { return g.grid }

// Mode returns the simulation state.
func (g *Game) Mode() Mode { return g.mode }

// Generation counts steps since the last clear, randomize or resize.
func (g *Game) Generation() int { return g.generation }

// Cursor returns the edit cursor.
func (g *Game) Cursor() (x, y int) { return g.cursorX, g.cursorY }

// Speed is the current speed setting, 1 to 5.
func (g *Game) Speed() int { return g.speed }

// Restart rebuilds the configured grid with the starting patterns.
func (g *Game) Restart() {
	g.round++
	g.preset = min(max(g.cfg.Grid, 0), len(Presets)-1)
	p := Presets[g.preset]
	g.grid = NewGrid(p.Width, p.Height, g.cfg.WrapAround)
	g.mode = Editing
	g.generation = 0
	g.speed = min(max(g.cfg.Speed, 1), len(speedTicks))

	cx, cy := p.Width/2, p.Height/2
	Patterns[0].Place(g.grid, cx, cy)
	Patterns[1].Place(g.grid, cx-10, cy-5)
	Patterns[2].Place(g.grid, cx+10, cy+5)

	g.cursorX, g.cursorY = cx, cy
	g.cameraX, g.cameraY = cx, cy
}

// TickRate follows the speed setting while running. The editor ticks at
// the configured edit rate.
func (g *Game) TickRate() time.Duration {
	if g.mode == Running {
		return speedTicks[g.speed-1]
	}
	return config.Tick(g.cfg.EditTickMS)
}

// Update advances a generation while running.
func (g *Game) Update() core.Action {
	if g.mode == Running {
		g.step()
	}
	return core.ActionContinue
}

func (g *Game) step() {
	g.grid.Step()
	g.generation++
}

// HandleKey implements the editor and the simulation controls.
func (g *Game) HandleKey(cmd input.Command) core.Action {
	if i, ok := cmd.Pattern(); ok {
		if g.mode == Editing {
			Patterns[i].Place(g.grid, g.cursorX, g.cursorY)
			g.audio.Play(audio.EffectLifePattern)
		}
		return core.ActionContinue
	}
	if i, ok := cmd.Grid(); ok {
		g.resize(i)
		return core.ActionContinue
	}

	switch cmd {
	case input.CmdQuit:
		return core.ActionQuit
	case input.CmdRestart:
		g.Restart()
	case input.CmdToggleMusic:
		g.audio.ToggleMusic()
	case input.CmdToggleEffects:
		g.audio.ToggleEffects()
	case input.CmdUp:
		g.move(0, -1)
	case input.CmdDown:
		g.move(0, 1)
	case input.CmdLeft:
		g.move(-1, 0)
	case input.CmdRight:
		g.move(1, 0)
	case input.CmdSelect:
		if g.mode == Editing {
			g.grid.Toggle(g.cursorX, g.cursorY)
			g.audio.Play(audio.EffectLifeToggle)
		}
	case input.CmdPause:
		if g.mode == Running {
			g.mode = Paused
		} else {
			g.mode = Running
		}
		g.audio.Play(audio.EffectLifeStateChange)
	case input.CmdEdit:
		if g.mode != Editing {
			g.mode = Editing
			g.audio.Play(audio.EffectLifeStateChange)
		}
	case input.CmdStep:
		if g.mode != Running {
			g.step()
			g.audio.Play(audio.EffectLifeStep)
		}
	case input.CmdFaster:
		g.speed = min(g.speed+1, len(speedTicks))
	case input.CmdSlower:
		g.speed = max(g.speed-1, 1)
	case input.CmdClear:
		g.grid.Clear()
		g.generation = 0
	case input.CmdRandomize:
		g.grid.Randomize(g.rng, g.cfg.RandomFill)
		g.generation = 0
	}
	return core.ActionContinue
}

// move drives the cursor while editing (the camera follows it) and pans
// the camera otherwise.
func (g *Game) move(dx, dy int) {
	clampX := func(v int) int { return min(max(v, 0), g.grid.Width()-1) }
	clampY := func(v int) int { return min(max(v, 0), g.grid.Height()-1) }

	if g.mode == Editing {
		g.cursorX, g.cursorY = clampX(g.cursorX+dx), clampY(g.cursorY+dy)
		g.cameraX, g.cameraY = g.cursorX, g.cursorY
		return
	}
	g.cameraX, g.cameraY = clampX(g.cameraX+dx), clampY(g.cameraY+dy)
}

func (g *Game) resize(preset int) {
	p := Presets[preset]
	g.preset = preset
	g.grid = g.grid.Resized(p.Width, p.Height)
	g.generation = 0
	g.cursorX = min(g.cursorX, p.Width-1)
	g.cursorY = min(g.cursorY, p.Height-1)
	g.cameraX = min(g.cameraX, p.Width-1)
	g.cameraY = min(g.cameraY, p.Height-1)
}

// State reports the generation as the score. Life has no game over.
func (g *Game) State() core.GameState {
	return core.GameState{
		Round:  g.round,
		Score:  g.generation,
		Paused: g.mode == Paused,
		Details: map[string]int{
			"generation": g.generation,
			"population": g.grid.Population(),
			"speed":      g.speed,
		},
	}
}
