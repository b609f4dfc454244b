// Package scheduler runs one game: it interleaves key handling with
// fixed-interval ticks and decides when the game session ends.
//
// One iteration renders, waits for input for at most the time left until
// the next tick, dispatches a key press if one arrived and then ticks if
// the interval has elapsed. Input is always handled before the tick of the
// same iteration.
package scheduler

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termplay/internal/core"
	"github.com/vovakirdan/termplay/internal/input"
	"github.com/vovakirdan/termplay/internal/registry"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// EventSource yields key events. Poll waits at most timeout and reports
// whether an event arrived. A zero timeout checks without blocking.
type EventSource interface {
	Poll(timeout time.Duration) (core.KeyEvent, bool, error)
}

// Renderer puts a drawn frame on the display.
type Renderer interface {
	Render(s *core.Screen) error
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Loop drives a single game.
type Loop struct {
	game     registry.Game
	source   EventSource
	renderer Renderer
	clock    Clock
	screen   *core.Screen
	mapper   *input.Mapper
	log      *log.Logger
	lastTick time.Time
	started  time.Time // start of the current game
}

// Option configures a Loop.
type Option func(*Loop)

// WithClock replaces the wall clock, for tests.
func WithClock(c Clock) Option {
	return func(l *Loop) { l.clock = c }
}

// WithScreen sets the buffer games draw into.
func WithScreen(s *core.Screen) Option {
	return func(l *Loop) { l.screen = s }
}

// WithLogger enables debug tracing of dispatch.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) { l.log = logger }
}

// New creates a loop for game. The tick timer starts now.
func New(game registry.Game, src EventSource, r Renderer, opts ...Option) *Loop {
	l := &Loop{
		game:     game,
		source:   src,
		renderer: r,
		clock:    systemClock{},
		log:      log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.screen == nil {
		cfg := core.DefaultConfig()
		l.screen = core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	}
	l.mapper = input.NewMapper(game.Keymap())
	l.lastTick = l.clock.Now()
	l.started = l.lastTick
	return l
}

// Run iterates until the game returns ActionQuit or ActionGameOver, and
// returns that action. Display and input errors end the loop immediately.
func (l *Loop) Run() (core.Action, error) {
	for {
		action, err := l.Iterate()
		if err != nil {
			return action, err
		}
		if action.Terminal() {
			return action, nil
		}
	}
}

// Iterate runs one render, poll, dispatch, tick cycle.
func (l *Loop) Iterate() (core.Action, error) {
	if err := l.render(); err != nil {
		return core.ActionQuit, err
	}

	ev, ok, err := l.source.Poll(l.Timeout())
	if err != nil {
		return core.ActionQuit, fmt.Errorf("scheduler: poll: %w", err)
	}
	if ok && ev.IsPress() {
		cmd := l.mapper.Map(ev)
		round := l.game.State().Round
		action := l.game.HandleKey(cmd)
		if l.game.State().Round != round {
			// A new game gets a full first interval and its own clock.
			l.started = l.clock.Now()
			l.lastTick = l.started
		}
		l.log.Debug("key", "game", l.game.Name(), "key", ev.Name, "cmd", cmd, "action", action)
		if action.Terminal() {
			return action, nil
		}
	}

	if l.clock.Now().Sub(l.lastTick) >= l.game.TickRate() {
		action := l.game.Update()
		l.lastTick = l.clock.Now()
		if action.Terminal() {
			l.log.Debug("tick", "game", l.game.Name(), "action", action)
			return action, nil
		}
	}
	return core.ActionContinue, nil
}

// Timeout is how long the next poll may block: the time left until the
// next tick, never negative. The tick rate is read from the game each call.
func (l *Loop) Timeout() time.Duration {
	elapsed := l.clock.Now().Sub(l.lastTick)
	return max(0, l.game.TickRate()-elapsed)
}

func (l *Loop) render() error {
	l.screen.Clear()
	l.game.Draw(l.screen)
	if err := l.renderer.Render(l.screen); err != nil {
		return fmt.Errorf("scheduler: render: %w", err)
	}
	return nil
}

// Elapsed is the time since the current game started, i.e. since the loop
// was created or the game last restarted.
func (l *Loop) Elapsed() time.Duration {
	return l.clock.Now().Sub(l.started)
}
