package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/termplay/internal/config"
	"github.com/vovakirdan/termplay/internal/registry"
)

var presets = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// MenuModel is the game picker.
type MenuModel struct {
	items      []registry.GameInfo
	cursor     int
	difficulty int
	width      int
	height     int

	quitting       bool
	selected       *registry.GameInfo
	openScoreboard bool

	// embedded menus hand control back to a session instead of quitting
	// the program.
	embedded bool
}

// NewMenuModel lists every registered game. The cursor starts on the
// given difficulty.
func NewMenuModel(difficulty config.DifficultyPreset, width, height int) MenuModel {
	m := MenuModel{
		items:      registry.List(),
		width:      width,
		height:     height,
		difficulty: 1,
	}
	for i, p := range presets {
		if p == difficulty {
			m.difficulty = i
		}
	}
	return m
}

func (m MenuModel) Init() tea.Cmd { return nil }

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, m.exit()
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case MenuActionLeft:
		m.difficulty = (m.difficulty + len(presets) - 1) % len(presets)
	case MenuActionRight:
		m.difficulty = (m.difficulty + 1) % len(presets)
	case MenuActionSelect:
		if len(m.items) > 0 {
			item := m.items[m.cursor]
			m.selected = &item
			return m, m.exit()
		}
	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, m.exit()
	}
	return m, nil
}

func (m MenuModel) exit() tea.Cmd {
	if m.embedded {
		return nil
	}
	return tea.Quit
}

func (m MenuModel) View() string {
	if m.quitting && !m.embedded {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("T E R M P L A Y"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a game", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("  %-18s %s", item.Name, dimStyle.Render(item.Description))
		if i == m.cursor {
			line = selectedStyle.Render(fmt.Sprintf("> %-18s", item.Name)) + " " + item.Description
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Difficulty: < %s >", m.Difficulty()), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(dimStyle.Render("↑/↓: navigate  ←/→: difficulty  enter: play  tab: scores  q: quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen game, or nil.
func (m MenuModel) Selected() *registry.GameInfo { return m.selected }

func (m MenuModel) IsQuitting() bool { return m.quitting }

func (m MenuModel) WantsScoreboard() bool { return m.openScoreboard }

// Difficulty returns the preset under the selector.
func (m MenuModel) Difficulty() config.DifficultyPreset { return presets[m.difficulty] }

// Finished reports whether the menu has a result.
func (m MenuModel) Finished() bool {
	return m.quitting || m.openScoreboard || m.selected != nil
}

func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult is what the player picked.
type MenuResult struct {
	GameName        string
	Difficulty      config.DifficultyPreset
	Width, Height   int
	WantsScoreboard bool
	Quit            bool
}

func (m MenuModel) result() MenuResult {
	r := MenuResult{
		Difficulty:      m.Difficulty(),
		Width:           m.width,
		Height:          m.height,
		WantsScoreboard: m.openScoreboard,
	}
	switch {
	case m.openScoreboard:
	case m.selected != nil:
		r.GameName = m.selected.Name
	default:
		r.Quit = true
	}
	return r
}

// RunMenu shows the picker full screen and returns the selection.
func RunMenu(difficulty config.DifficultyPreset, width, height int) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(difficulty, width, height), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return MenuResult{Width: width, Height: height, Difficulty: difficulty}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Quit: true}, nil
	}
	return m.result(), nil
}
