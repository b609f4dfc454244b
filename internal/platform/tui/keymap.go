package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termplay/internal/core"
)

// keyEvent converts a bubbletea key message. Bubbletea reports presses
// only, and its key names are the ones the game keymaps use.
func keyEvent(msg tea.KeyMsg) core.KeyEvent {
	return core.Press(msg.String())
}

// MenuAction is a navigation command on the menu screens.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key on the menu screens.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
