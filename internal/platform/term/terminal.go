// Package term runs games directly on the terminal through tcell. It
// provides the scheduler's event source and renderer.
package term

import (
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/termplay/internal/core"
)

// ErrClosed is returned by Poll after the terminal has been closed.
var ErrClosed = errors.New("term: terminal closed")

// Terminal owns a tcell screen. Events are read on a background goroutine
// and handed to Poll through a channel.
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event
}

// Open initializes the real terminal.
func Open() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: create screen: %w", err)
	}
	return New(screen)
}

// New wraps an existing screen, e.g. a simulation screen in tests.
func New(screen tcell.Screen) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("term: init screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	t := &Terminal{
		screen: screen,
		events: make(chan tcell.Event, 64),
	}
	go t.pump()
	return t, nil
}

// pump forwards screen events until the screen is finalized.
func (t *Terminal) pump() {
	defer close(t.events)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		t.events <- ev
	}
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.screen.Fini()
}

// Size returns the terminal size in cells.
func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

// Poll waits up to timeout for a key. A resize wakes it early without an
// event so the next frame is drawn at the new size.
func (t *Terminal) Poll(timeout time.Duration) (core.KeyEvent, bool, error) {
	var ev tcell.Event
	var open bool

	if timeout <= 0 {
		select {
		case ev, open = <-t.events:
		default:
			return core.KeyEvent{}, false, nil
		}
	} else {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		select {
		case ev, open = <-t.events:
		case <-timer.C:
			return core.KeyEvent{}, false, nil
		}
	}
	if !open {
		return core.KeyEvent{}, false, ErrClosed
	}

	switch ev := ev.(type) {
	case *tcell.EventKey:
		name := KeyName(ev)
		if name == "" {
			return core.KeyEvent{}, false, nil
		}
		return core.Press(name), true, nil
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return core.KeyEvent{}, false, nil
}

// Render copies the frame to the terminal. If the terminal size changed,
// the frame buffer is resized for the next frame.
func (t *Terminal) Render(s *core.Screen) error {
	t.screen.Clear()
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			c := s.GetCell(x, y)
			t.screen.SetContent(x, y, c.Rune, nil, Style(c.Color))
		}
	}
	t.screen.Show()

	if w, h := t.screen.Size(); w != s.Width() || h != s.Height() {
		s.Resize(w, h)
	}
	return nil
}
