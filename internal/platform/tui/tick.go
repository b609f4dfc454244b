// Package tui is the bubbletea front end: the game picker menu, the
// scoreboard, an in-program game model and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the running game for one Update. Seq ties it to the tick
// chain that scheduled it so a restart can drop stale ticks.
type TickMsg struct {
	Seq  int
	Time time.Time
}

// tickCmd schedules the next tick after interval.
func tickCmd(seq int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Seq: seq, Time: t}
	})
}
