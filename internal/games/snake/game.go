// Package snake implements the classic snake game: eat food, grow, avoid
// the walls and yourself. The snake speeds up as it grows.
package snake

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/termplay/internal/audio"
	"github.com/vovakirdan/termplay/internal/config"
	"github.com/vovakirdan/termplay/internal/core"
	"github.com/vovakirdan/termplay/internal/input"
	"github.com/vovakirdan/termplay/internal/registry"
)

// Name is the registry key.
const Name = "snake"

// fastMusicLength is the length from which the fast theme plays.
const fastMusicLength = 15

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// opposite checks if two directions are opposite.
func opposite(d1, d2 Direction) bool {
	return (d1 == DirUp && d2 == DirDown) ||
		(d1 == DirDown && d2 == DirUp) ||
		(d1 == DirLeft && d2 == DirRight) ||
		(d1 == DirRight && d2 == DirLeft)
}

// Point is a field coordinate.
type Point struct {
	X, Y int
}

func (p Point) step(d Direction) Point {
	switch d {
	case DirUp:
		p.Y--
	case DirDown:
		p.Y++
	case DirLeft:
		p.X--
	case DirRight:
		p.X++
	}
	return p
}

// Game implements Snake.
type Game struct {
	round int // bumped by Restart

	cfg   config.SnakeConfig
	rng   *rand.Rand
	audio audio.Player

	snake     []Point // head at index 0
	direction Direction
	nextDir   Direction // applied on the next move
	food      Point

	score    int
	gameOver bool
	won      bool
	paused   bool
	started  time.Time
}

// New creates a game on a cfg.Width x cfg.Height field.
func New(rng *rand.Rand, player audio.Player, cfg config.SnakeConfig) *Game {
	if player == nil {
		player = audio.NewSilent(audio.Settings{})
	}
	g := &Game{cfg: cfg, rng: rng, audio: player}
	g.Restart()
	return g
}

func init() {
	registry.Register(Name, "Classic Snake game", func(env registry.Env) registry.Game {
		return New(env.Rand, env.Audio, env.Config.Snake)
	})
}

func (g *Game) Name() string        { return Name }
func (g *Game) Description() string { return "Classic Snake game" }

// Restart puts a one-segment snake in the middle of the field, heading right.
func (g *Game) Restart() {
	g.round++
	g.snake = []Point{{X: g.cfg.Width / 2, Y: g.cfg.Height / 2}}
	g.direction = DirRight
	g.nextDir = DirRight
	g.score = 0
	g.gameOver = false
	g.won = false
	g.paused = false
	g.started = time.Now()
	g.spawnFood()
}

// TickRate shortens with every segment down to the configured minimum.
func (g *Game) TickRate() time.Duration {
	ms := g.cfg.StartTickMS - g.cfg.SpeedupMS*(len(g.snake)-1)
	return config.Tick(max(g.cfg.MinTickMS, ms))
}

// spawnFood places food on a random free cell. A full field wins the game.
func (g *Game) spawnFood() {
	var free []Point
	for y := 0; y < g.cfg.Height; y++ {
		for x := 0; x < g.cfg.Width; x++ {
			p := Point{X: x, Y: y}
			if !g.snakeAt(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		g.food = Point{X: -1, Y: -1}
		g.won = true
		return
	}
	g.food = free[g.rng.Intn(len(free))]
}

func (g *Game) snakeAt(p Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

func (g *Game) inside(p Point) bool {
	return p.X >= 0 && p.X < g.cfg.Width && p.Y >= 0 && p.Y < g.cfg.Height
}

// HandleKey buffers a turn for the next move. Turning back onto the neck
// is ignored.
func (g *Game) HandleKey(cmd input.Command) core.Action {
	switch cmd {
	case input.CmdQuit:
		return core.ActionQuit
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
		if cmd == input.CmdRestart {
			g.Restart()
		}
		return core.ActionContinue
	}

	switch cmd {
	case input.CmdPause:
		g.paused = !g.paused
	case input.CmdUp:
		g.turn(DirUp)
	case input.CmdDown:
		g.turn(DirDown)
	case input.CmdLeft:
		g.turn(DirLeft)
	case input.CmdRight:
		g.turn(DirRight)
	}
	return core.ActionContinue
}

func (g *Game) turn(d Direction) {
	if g.paused {
		return
	}
	if !opposite(d, g.direction) || len(g.snake) == 1 {
		g.nextDir = d
	}
}

func (g *Game) over() bool {
	return g.gameOver || g.won
}

// Update moves the snake one cell.
func (g *Game) Update() core.Action {
	if g.over() || g.paused {
		return core.ActionContinue
	}
	g.keepMusicPlaying()

	g.direction = g.nextDir
	head := g.snake[0].step(g.direction)

	// The tail moves away this tick unless the snake eats.
	body := g.snake
	if head != g.food {
		body = g.snake[:len(g.snake)-1]
	}
	if !g.inside(head) || contains(body, head) {
		g.gameOver = true
		g.audio.StopMusic()
		g.audio.Play(audio.EffectSnakeGameOver)
		return core.ActionGameOver
	}

	g.snake = append([]Point{head}, body...)
	if head == g.food {
		g.score += g.cfg.FoodPoints
		g.audio.Play(audio.EffectSnakeEat)
		g.spawnFood()
		if g.won {
			g.audio.StopMusic()
			return core.ActionGameOver
		}
	}
	return core.ActionContinue
}

func contains(points []Point, p Point) bool {
	for _, q := range points {
		if q == p {
			return true
		}
	}
	return false
}

func (g *Game) track() audio.Track {
	if len(g.snake) >= fastMusicLength {
		return audio.TrackSnakeFast
	}
	return audio.TrackSnake
}

func (g *Game) keepMusicPlaying() {
	if g.audio.MusicEnabled() && g.audio.MusicIdle() {
		g.audio.StartMusic(g.track())
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Round:    g.round,
		Score:    g.score,
		GameOver: g.over(),
		Won:      g.won,
		Paused:   g.paused,
		Details: map[string]int{
			"length":  len(g.snake),
			"seconds": int(time.Since(g.started).Seconds()),
		},
	}
}

// Draw renders the HUD and the field. Each cell is one character.
func (g *Game) Draw(dst *core.Screen) {
	w, h := g.cfg.Width+2, g.cfg.Height+2
	if dst.Width() < w || dst.Height() < h+2 {
		dst.DrawTextCenteredColored(dst.Height()/2, "Window too small", core.ColorRed)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", w, h+2))
		return
	}

	hud := fmt.Sprintf("Snake  Score: %d  Length: %d  Speed: %dms", g.score, len(g.snake), g.TickRate().Milliseconds())
	dst.DrawTextCenteredColored(0, hud, core.ColorYellow)

	ox := (dst.Width() - w) / 2
	oy := 2
	dst.DrawBoxColored(core.NewRect(ox, oy, w, h), core.ColorGreen)

	if g.food.X >= 0 {
		dst.SetColored(ox+1+g.food.X, oy+1+g.food.Y, '●', core.ColorBrightRed)
	}
	for i, seg := range g.snake {
		r, c := 'o', core.ColorGreen
		if i == 0 {
			r, c = 'O', core.ColorBrightGreen
		}
		dst.SetColored(ox+1+seg.X, oy+1+seg.Y, r, c)
	}

	switch {
	case g.won:
		dst.DrawMessageBox(core.ColorBrightGreen, "You Win!", fmt.Sprintf("Final Score: %d", g.score), "r: restart   q: quit")
	case g.gameOver:
		dst.DrawMessageBox(core.ColorRed, "GAME OVER", fmt.Sprintf("Final Score: %d", g.score), "r: restart   q: quit")
	case g.paused:
		dst.DrawMessageBox(core.ColorYellow, "Paused", "p: continue")
	}
}

// Snapshot captures the game state for tests.
type Snapshot struct {
	Score    int
	Length   int
	Head     Point
	Dir      Direction
	Food     Point
	GameOver bool
	Won      bool
	Paused   bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Score:    g.score,
		Length:   len(g.snake),
		Head:     g.snake[0],
		Dir:      g.direction,
		Food:     g.food,
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused,
	}
}
