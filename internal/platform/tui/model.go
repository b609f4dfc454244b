package tui

import (
	"io"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termplay/internal/core"
	"github.com/vovakirdan/termplay/internal/input"
	"github.com/vovakirdan/termplay/internal/registry"
	"github.com/vovakirdan/termplay/internal/storage"
)

// ScoreSaver persists finished games. *storage.Store implements it.
type ScoreSaver interface {
	SaveScore(r storage.Record) (int64, error)
}

// GameModel runs one game inside a bubbletea program with the scheduler's
// rules: key presses are dispatched as they arrive, and Update runs on a
// tick chain re-armed with the game's current TickRate.
type GameModel struct {
	game    registry.Game
	mapper  *input.Mapper
	screen  *core.Screen
	scores  ScoreSaver
	log     *log.Logger
	started time.Time
	seq     int

	// embedded models return to the menu on quit instead of ending the
	// program.
	embedded bool
	done     bool
}

// chains numbers tick chains across models so a tick left over from one
// game never drives the next one in the same program.
var chains atomic.Int64

// NewGameModel wraps game. scores may be nil to play without saving.
func NewGameModel(game registry.Game, scores ScoreSaver, logger *log.Logger, width, height int) GameModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return GameModel{
		game:    game,
		mapper:  input.NewMapper(game.Keymap()),
		screen:  core.NewScreen(width, height),
		scores:  scores,
		log:     logger,
		started: time.Now(),
		seq:     int(chains.Add(1)),
	}
}

func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.seq, m.game.TickRate())
}

func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
	case TickMsg:
		if msg.Seq == m.seq && !m.done {
			return m.handleTick()
		}
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}
	cmd := m.mapper.Map(keyEvent(msg))
	round := m.game.State().Round
	action := m.game.HandleKey(cmd)
	if m.game.State().Round != round {
		m.started = time.Now()
	}
	m.log.Debug("key", "game", m.game.Name(), "key", msg.String(), "cmd", cmd, "action", action)
	return m.apply(action)
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	model, cmd := m.apply(m.game.Update())
	m = model.(GameModel)
	if m.done {
		return m, cmd
	}
	return m, tickCmd(m.seq, m.game.TickRate())
}

func (m GameModel) apply(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionQuit:
		m.done = true
		m.seq = int(chains.Add(1))
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit
	case core.ActionGameOver:
		m.record()
	}
	return m, nil
}

// record saves the finished game. Storage errors are logged and play goes
// on.
func (m GameModel) record() {
	st := m.game.State()
	if m.scores == nil || st.Score <= 0 {
		return
	}
	rec := storage.Record{
		GameID:   m.game.Name(),
		Score:    st.Score,
		Details:  st.Details,
		Duration: time.Since(m.started),
	}
	if _, err := m.scores.SaveScore(rec); err != nil {
		m.log.Warn("could not save score", "game", rec.GameID, "err", err)
		return
	}
	m.log.Info("score saved", "game", rec.GameID, "score", rec.Score)
}

func (m GameModel) View() string {
	if m.done {
		return ""
	}
	m.screen.Clear()
	m.game.Draw(m.screen)
	return RenderScreen(m.screen)
}

// Done reports whether the player quit the game.
func (m GameModel) Done() bool { return m.done }

// Run plays game full screen until the player quits.
func Run(game registry.Game, scores ScoreSaver, logger *log.Logger, width, height int) error {
	p := tea.NewProgram(NewGameModel(game, scores, logger, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
