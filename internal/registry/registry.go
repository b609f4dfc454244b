// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/termplay/internal/audio"
	"github.com/vovakirdan/termplay/internal/config"
	"github.com/vovakirdan/termplay/internal/core"
	"github.com/vovakirdan/termplay/internal/input"
)

// Game is the capability set every game provides to the scheduler.
// Games contain pure logic: the platform owns timing, terminal I/O and
// persistence.
type Game interface {
	// Name is the unique lookup key (e.g. "tetris"), also used for scores.
	Name() string

	// Description is a one-line summary for listings and the menu.
	Description() string

	// Keymap returns the game's key bindings.
	Keymap() input.Keymap

	// HandleKey reacts to one mapped key press. CmdNone must yield
	// ActionContinue.
	HandleKey(cmd input.Command) core.Action

	// Update advances the simulation by one tick.
	Update() core.Action

	// Draw renders the current state into dst. dst is cleared first.
	Draw(dst *core.Screen)

	// TickRate is the interval between Update calls. It is re-read every
	// loop iteration, so games may change it as they speed up.
	TickRate() time.Duration

	// State summarises score and status for the platform.
	State() core.GameState

	// Restart resets the game to a fresh start.
	Restart()
}

// Env is what a factory gets to build a game.
type Env struct {
	Runtime core.RuntimeConfig
	Config  config.Config
	Audio   audio.Player
	Rand    *rand.Rand
}

// NewEnv fills in defaults for a zero Env: a clock seeded RNG, silent audio
// and the built-in config.
func NewEnv(rt core.RuntimeConfig, cfg config.Config, player audio.Player) Env {
	seed := rt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if player == nil {
		player = audio.NewSilent(cfg.Audio.Settings())
	}
	return Env{
		Runtime: rt,
		Config:  cfg,
		Audio:   player,
		Rand:    rand.New(rand.NewSource(seed)),
	}
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	Name        string
	Description string
}

// Factory creates a new instance of a game.
type Factory func(env Env) Game

// ErrUnknownGame is returned by Create for names nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[name]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", name))
	}
	entries[name] = entry{
		info:    GameInfo{Name: name, Description: description},
		factory: f,
	}
}

// List returns information about all registered games, sorted by name.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a new game by its name.
func Create(name string, env Env) (Game, error) {
	mu.RLock()
	e, ok := entries[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, name)
	}
	if env.Rand == nil || env.Audio == nil {
		env = NewEnv(env.Runtime, env.Config, env.Audio)
	}
	return e.factory(env), nil
}

// Exists checks if a game with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[name]
	return ok
}

// unregister removes a game. Only tests use it.
func unregister(name string) {
	mu.Lock()
	defer mu.Unlock()
	delete(entries, name)
}
