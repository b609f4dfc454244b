package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/termplay/internal/core"
	"github.com/vovakirdan/termplay/internal/input"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// scriptSource returns queued events immediately. With an empty queue it
// lets the full timeout pass on the fake clock.
type scriptSource struct {
	clock    *fakeClock
	events   []core.KeyEvent
	timeouts []time.Duration
	err      error
}

func (s *scriptSource) Poll(timeout time.Duration) (core.KeyEvent, bool, error) {
	s.timeouts = append(s.timeouts, timeout)
	if s.err != nil {
		return core.KeyEvent{}, false, s.err
	}
	if len(s.events) > 0 {
		ev := s.events[0]
		s.events = s.events[1:]
		return ev, true, nil
	}
	s.clock.Advance(timeout)
	return core.KeyEvent{}, false, nil
}

type countRenderer struct {
	frames int
	err    error
}

func (r *countRenderer) Render(*core.Screen) error {
	r.frames++
	return r.err
}

// scriptGame records the order of calls.
type scriptGame struct {
	tick     time.Duration
	calls    []string
	onKey    map[input.Command]core.Action
	onUpdate []core.Action
	updates  int
	state    core.GameState
	// restarts makes CmdRestart start a new round. Without it the key is
	// ignored, as tetris does mid-game.
	restarts bool
}

func (g *scriptGame) Name() string        { return "script" }
func (g *scriptGame) Description() string { return "records calls" }
func (g *scriptGame) Keymap() input.Keymap {
	return input.Merge(input.Common, input.Keymap{"left": input.CmdLeft})
}

func (g *scriptGame) HandleKey(cmd input.Command) core.Action {
	g.calls = append(g.calls, "key:"+cmd.String())
	if cmd == input.CmdRestart && g.restarts {
		g.Restart()
	}
	return g.onKey[cmd]
}

func (g *scriptGame) Update() core.Action {
	g.calls = append(g.calls, "update")
	g.updates++
	if g.updates <= len(g.onUpdate) {
		return g.onUpdate[g.updates-1]
	}
	return core.ActionContinue
}

func (g *scriptGame) Draw(dst *core.Screen)   { dst.DrawText(0, 0, "script") }
func (g *scriptGame) TickRate() time.Duration { return g.tick }
func (g *scriptGame) State() core.GameState   { return g.state }
func (g *scriptGame) Restart()                { g.state.Round++ }

func newTestLoop(g *scriptGame, events ...core.KeyEvent) (*Loop, *scriptSource, *fakeClock, *countRenderer) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	src := &scriptSource{clock: clock, events: events}
	r := &countRenderer{}
	return New(g, src, r, WithClock(clock)), src, clock, r
}

func TestTimeoutCountsDownToTick(t *testing.T) {
	g := &scriptGame{tick: 100 * time.Millisecond}
	l, _, clock, _ := newTestLoop(g)

	assert.Equal(t, 100*time.Millisecond, l.Timeout())
	clock.Advance(30 * time.Millisecond)
	assert.Equal(t, 70*time.Millisecond, l.Timeout())
	clock.Advance(500 * time.Millisecond)
	assert.Equal(t, time.Duration(0), l.Timeout(), "overdue tick must not give a negative timeout")
}

func TestTimeoutRereadsTickRate(t *testing.T) {
	g := &scriptGame{tick: 300 * time.Millisecond}
	l, _, clock, _ := newTestLoop(g)

	clock.Advance(100 * time.Millisecond)
	assert.Equal(t, 200*time.Millisecond, l.Timeout())

	g.tick = 150 * time.Millisecond
	assert.Equal(t, 50*time.Millisecond, l.Timeout())
}

func TestIdleIterationTicks(t *testing.T) {
	g := &scriptGame{tick: 50 * time.Millisecond}
	l, src, _, r := newTestLoop(g)

	action, err := l.Iterate()
	require.NoError(t, err)
	assert.Equal(t, core.ActionContinue, action)
	assert.Equal(t, []string{"update"}, g.calls)
	assert.Equal(t, []time.Duration{50 * time.Millisecond}, src.timeouts)
	assert.Equal(t, 1, r.frames)
}

func TestKeyBeforeTick(t *testing.T) {
	g := &scriptGame{tick: 50 * time.Millisecond}
	l, _, clock, _ := newTestLoop(g, core.Press("left"))
	clock.Advance(60 * time.Millisecond)

	_, err := l.Iterate()
	require.NoError(t, err)
	assert.Equal(t, []string{"key:left", "update"}, g.calls)
}

func TestKeyWithoutTick(t *testing.T) {
	g := &scriptGame{tick: time.Second}
	l, _, _, _ := newTestLoop(g, core.Press("left"))

	_, err := l.Iterate()
	require.NoError(t, err)
	assert.Equal(t, []string{"key:left"}, g.calls, "no update before the interval elapses")
}

func TestUnmappedKeyDispatchesNone(t *testing.T) {
	g := &scriptGame{tick: time.Second}
	l, _, _, _ := newTestLoop(g, core.Press("z"))

	action, err := l.Iterate()
	require.NoError(t, err)
	assert.Equal(t, core.ActionContinue, action)
	assert.Equal(t, []string{"key:none"}, g.calls)
}

func TestRepeatsAndReleasesIgnored(t *testing.T) {
	g := &scriptGame{tick: time.Second}
	l, _, _, _ := newTestLoop(g,
		core.KeyEvent{Name: "left", Kind: core.KeyRepeat},
		core.KeyEvent{Name: "left", Kind: core.KeyRelease},
	)

	for range 2 {
		_, err := l.Iterate()
		require.NoError(t, err)
	}
	assert.Empty(t, g.calls)
}

func TestQuitKeyStopsBeforeTick(t *testing.T) {
	g := &scriptGame{
		tick:  10 * time.Millisecond,
		onKey: map[input.Command]core.Action{input.CmdQuit: core.ActionQuit},
	}
	l, _, clock, _ := newTestLoop(g, core.Press("q"))
	clock.Advance(time.Second)

	action, err := l.Run()
	require.NoError(t, err)
	assert.Equal(t, core.ActionQuit, action)
	assert.Equal(t, []string{"key:quit"}, g.calls, "quit must end the loop before the pending tick")
}

func TestGameOverFromUpdate(t *testing.T) {
	g := &scriptGame{
		tick:     20 * time.Millisecond,
		onUpdate: []core.Action{core.ActionContinue, core.ActionContinue, core.ActionGameOver},
	}
	l, _, _, r := newTestLoop(g)

	action, err := l.Run()
	require.NoError(t, err)
	assert.Equal(t, core.ActionGameOver, action)
	assert.Equal(t, 3, g.updates)
	assert.Equal(t, 3, r.frames)
}

func TestTickCadence(t *testing.T) {
	g := &scriptGame{tick: 40 * time.Millisecond}
	l, _, clock, _ := newTestLoop(g)
	start := clock.Now()

	for range 5 {
		_, err := l.Iterate()
		require.NoError(t, err)
	}
	assert.Equal(t, 5, g.updates)
	assert.Equal(t, 200*time.Millisecond, clock.Now().Sub(start))
}

func TestPollErrorIsFatal(t *testing.T) {
	g := &scriptGame{tick: time.Second}
	l, src, _, _ := newTestLoop(g)
	src.err = errors.New("tty gone")

	_, err := l.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tty gone")
	assert.Empty(t, g.calls)
}

func TestRenderErrorIsFatal(t *testing.T) {
	g := &scriptGame{tick: time.Second}
	l, src, _, r := newTestLoop(g)
	r.err = errors.New("write failed")

	_, err := l.Run()
	require.Error(t, err)
	assert.Empty(t, src.timeouts, "no poll after a failed render")
}

func TestPlayReportsEachGameOver(t *testing.T) {
	g := &scriptGame{
		tick:     10 * time.Millisecond,
		onUpdate: []core.Action{core.ActionGameOver, core.ActionContinue, core.ActionGameOver},
		onKey:    map[input.Command]core.Action{input.CmdQuit: core.ActionQuit},
		state:    core.GameState{Score: 7, GameOver: true},
	}
	clock := &fakeClock{now: time.Unix(0, 0)}
	src := &quitAfter{scriptSource: scriptSource{clock: clock}, game: g, after: 3}
	l := New(g, src, &countRenderer{}, WithClock(clock))

	var scores []int
	err := l.Play(func(st core.GameState) { scores = append(scores, st.Score) })
	require.NoError(t, err)
	assert.Equal(t, []int{7, 7}, scores)
}

// quitAfter presses q once the game has ticked the given number of times.
type quitAfter struct {
	scriptSource
	game  *scriptGame
	after int
}

func (s *quitAfter) Poll(timeout time.Duration) (core.KeyEvent, bool, error) {
	if s.game.updates >= s.after {
		return core.Press("q"), true, nil
	}
	return s.scriptSource.Poll(timeout)
}

func TestElapsedRestartsWithGame(t *testing.T) {
	g := &scriptGame{tick: time.Hour, restarts: true}
	l, src, clock, _ := newTestLoop(g)

	clock.Advance(5 * time.Second)
	assert.Equal(t, 5*time.Second, l.Elapsed())

	src.events = []core.KeyEvent{core.Press("r")}
	_, err := l.Iterate()
	require.NoError(t, err)
	assert.Zero(t, l.Elapsed())

	clock.Advance(2 * time.Second)
	assert.Equal(t, 2*time.Second, l.Elapsed())
}

func TestIgnoredRestartKeepsElapsed(t *testing.T) {
	g := &scriptGame{tick: time.Hour}
	l, src, clock, _ := newTestLoop(g)

	clock.Advance(90 * time.Second)
	src.events = []core.KeyEvent{core.Press("r")}
	_, err := l.Iterate()
	require.NoError(t, err)

	assert.Equal(t, []string{"key:restart"}, g.calls)
	assert.Equal(t, 90*time.Second, l.Elapsed(), "the game kept going, so its clock does too")
}

func TestRestartResetsTickInterval(t *testing.T) {
	g := &scriptGame{tick: 100 * time.Millisecond, restarts: true}
	l, src, clock, _ := newTestLoop(g)

	clock.Advance(80 * time.Millisecond)
	src.events = []core.KeyEvent{core.Press("r")}
	_, err := l.Iterate()
	require.NoError(t, err)

	assert.Equal(t, 100*time.Millisecond, l.Timeout())
	assert.Equal(t, 1, g.state.Round)
}
