package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/termplay/internal/registry"
	"github.com/vovakirdan/termplay/internal/storage"
)

const (
	sidebarMinWidth = 96 // narrower screens get a tab row instead
	sidebarWidth    = 22
	maxScores       = 100
)

// ScoreReader loads ranked scores. *storage.Store implements it.
type ScoreReader interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
}

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	activeStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	noteStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type scoreboardKeys struct {
	Scroll key.Binding
	Game   key.Binding
	Back   key.Binding
	Quit   key.Binding

	next, prev key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Game, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newScoreboardKeys() scoreboardKeys {
	return scoreboardKeys{
		Scroll: key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "scroll")),
		Game:   key.NewBinding(key.WithKeys("tab", "shift+tab", "left", "right", "h", "l"), key.WithHelp("←/→/tab", "game")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		next:   key.NewBinding(key.WithKeys("tab", "right", "l")),
		prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h")),
	}
}

// ScoreboardModel browses the high score tables one game at a time.
type ScoreboardModel struct {
	games  []registry.GameInfo
	cursor int
	store  ScoreReader

	scores  []storage.ScoreEntry
	loadErr error

	table  table.Model
	help   help.Model
	keys   scoreboardKeys
	width  int
	height int

	quitting  bool
	goingBack bool
	embedded  bool
}

// NewScoreboardModel opens on the first registered game. store may be nil.
func NewScoreboardModel(store ScoreReader, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games: registry.List(),
		store: store,
		help:  help.New(),
		keys:  newScoreboardKeys(),
	}
	m.resize(width, height)
	m.load()
	return m
}

func (m *ScoreboardModel) wide() bool { return m.width >= sidebarMinWidth }

func (m *ScoreboardModel) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width

	avail := width - 6
	if m.wide() {
		avail -= sidebarWidth + 4
	}
	// Rank, Score, Time and Date are fixed; Details takes the rest.
	details := max(10, min(30, avail-5-8-7-12-10))
	m.table = table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 5},
			{Title: "Score", Width: 8},
			{Title: "Details", Width: details},
			{Title: "Time", Width: 7},
			{Title: "Date", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(max(3, height-9)),
	)
	st := table.DefaultStyles()
	st.Header = st.Header.BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	m.table.SetStyles(st)
	m.fillRows()
}

func (m *ScoreboardModel) current() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.cursor].Name
}

func (m *ScoreboardModel) load() {
	m.scores, m.loadErr = nil, nil
	if m.store != nil && len(m.games) > 0 {
		m.scores, m.loadErr = m.store.TopScores(m.current(), maxScores)
	}
	m.fillRows()
}

func (m *ScoreboardModel) fillRows() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprint(s.Score),
			s.DetailString(),
			formatDuration(s.Duration),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func formatDuration(d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	secs := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func (m ScoreboardModel) Init() tea.Cmd { return nil }

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, m.exit()
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, m.exit()
		case key.Matches(msg, m.keys.next) && len(m.games) > 0:
			m.cursor = (m.cursor + 1) % len(m.games)
			m.load()
			return m, nil
		case key.Matches(msg, m.keys.prev) && len(m.games) > 0:
			m.cursor = (m.cursor + len(m.games) - 1) % len(m.games)
			m.load()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) exit() tea.Cmd {
	if m.embedded {
		return nil
	}
	return tea.Quit
}

func (m ScoreboardModel) View() string {
	if m.Finished() && !m.embedded {
		return ""
	}

	title := "HIGH SCORES"
	if name := m.current(); name != "" {
		title += " - " + name
	}

	var body string
	if m.wide() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar(), "  ", panelStyle.Render(m.content()))
	} else {
		body = centerText(m.tabs(), m.width) + "\n\n" + centerText(panelStyle.Render(m.content()), m.width)
	}

	return "\n" + centerText(headingStyle.Render(title), m.width) + "\n\n" +
		body + "\n" + helpStyle.Render(m.help.View(m.keys))
}

func (m ScoreboardModel) sidebar() string {
	var b strings.Builder
	b.WriteString("Games\n")
	b.WriteString(strings.Repeat("─", sidebarWidth-4))
	for i, g := range m.games {
		name := truncate(g.Name, sidebarWidth-6)
		if i == m.cursor {
			b.WriteString("\n" + headingStyle.Render("> "+name))
		} else {
			b.WriteString("\n  " + name)
		}
	}
	return panelStyle.Width(sidebarWidth).Render(b.String())
}

// tabs lists the games on one row, or just the current one with arrows
// when they don't fit.
func (m ScoreboardModel) tabs() string {
	parts := make([]string, len(m.games))
	for i, g := range m.games {
		name := " " + truncate(g.Name, 10) + " "
		if i == m.cursor {
			parts[i] = activeStyle.Render(name)
		} else {
			parts[i] = helpStyle.Render(name)
		}
	}
	row := strings.Join(parts, " ")
	if lipgloss.Width(row) > m.width-4 && len(m.games) > 0 {
		return fmt.Sprintf("< %s >", m.current())
	}
	return row
}

func (m ScoreboardModel) content() string {
	switch {
	case m.store == nil:
		return noteStyle.Render("Score storage is unavailable.")
	case m.loadErr != nil:
		return noteStyle.Render("Could not load scores:\n" + m.loadErr.Error())
	case len(m.scores) == 0:
		return noteStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

// IsGoingBack reports whether the player asked for the menu.
func (m ScoreboardModel) IsGoingBack() bool { return m.goingBack }

func (m ScoreboardModel) IsQuitting() bool { return m.quitting }

// Finished reports whether the player left the scoreboard.
func (m ScoreboardModel) Finished() bool { return m.quitting || m.goingBack }

// RunScoreboard shows the scoreboard full screen. goBack is false when the
// player quit outright.
func RunScoreboard(store ScoreReader, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
