// Package input translates platform key events into game commands.
// Key bindings are data: each game owns a Keymap table and the Mapper
// looks events up in it. Nothing here knows about terminals.
package input

// Command is a semantic game command, decoupled from physical keys.
type Command uint8

const (
	CmdNone Command = iota
	CmdQuit
	CmdRestart
	CmdLeft
	CmdRight
	CmdUp
	CmdDown
	CmdUp2
	CmdDown2
	CmdRotate
	CmdSoftDrop
	CmdHardDrop
	CmdSelect
	CmdFlag
	CmdPause
	CmdEdit
	CmdStep
	CmdFaster
	CmdSlower
	CmdClear
	CmdRandomize
	CmdToggleMusic
	CmdToggleEffects
	CmdPattern1
	CmdPattern2
	CmdPattern3
	CmdPattern4
	CmdPattern5
	CmdPattern6
	CmdGrid1
	CmdGrid2
	CmdGrid3
	CmdGrid4
)

var commandNames = [...]string{
	CmdNone:          "none",
	CmdQuit:          "quit",
	CmdRestart:       "restart",
	CmdLeft:          "left",
	CmdRight:         "right",
	CmdUp:            "up",
	CmdDown:          "down",
	CmdUp2:           "player 2 up",
	CmdDown2:         "player 2 down",
	CmdRotate:        "rotate",
	CmdSoftDrop:      "soft drop",
	CmdHardDrop:      "hard drop",
	CmdSelect:        "select",
	CmdFlag:          "flag",
	CmdPause:         "pause",
	CmdEdit:          "edit",
	CmdStep:          "step",
	CmdFaster:        "faster",
	CmdSlower:        "slower",
	CmdClear:         "clear",
	CmdRandomize:     "randomize",
	CmdToggleMusic:   "toggle music",
	CmdToggleEffects: "toggle effects",
	CmdPattern1:      "pattern 1",
	CmdPattern2:      "pattern 2",
	CmdPattern3:      "pattern 3",
	CmdPattern4:      "pattern 4",
	CmdPattern5:      "pattern 5",
	CmdPattern6:      "pattern 6",
	CmdGrid1:         "grid 1",
	CmdGrid2:         "grid 2",
	CmdGrid3:         "grid 3",
	CmdGrid4:         "grid 4",
}

// String returns a human-readable name for the command.
func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "unknown"
}

// Pattern returns the zero-based pattern index for CmdPattern1..6.
func (c Command) Pattern() (int, bool) {
	if c >= CmdPattern1 && c <= CmdPattern6 {
		return int(c - CmdPattern1), true
	}
	return 0, false
}

// Grid returns the zero-based grid preset index for CmdGrid1..4.
func (c Command) Grid() (int, bool) {
	if c >= CmdGrid1 && c <= CmdGrid4 {
		return int(c - CmdGrid1), true
	}
	return 0, false
}
