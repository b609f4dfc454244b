package minesweeper

import "github.com/vovakirdan/termplay/internal/input"

var keymap = input.Merge(input.Common, input.Keymap{
	"up":    input.CmdUp,
	"down":  input.CmdDown,
	"left":  input.CmdLeft,
	"right": input.CmdRight,
	"w":     input.CmdUp,
	"s":     input.CmdDown,
	"a":     input.CmdLeft,
	"d":     input.CmdRight,
	"enter": input.CmdSelect,
	" ":     input.CmdSelect,
	"f":     input.CmdFlag,
})

// Keymap returns the minesweeper bindings.
func (g *Game) Keymap() input.Keymap { return keymap }
