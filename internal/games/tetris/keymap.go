package tetris

import "github.com/vovakirdan/termplay/internal/input"

// moves are the tetris-specific bindings, listed in the side panel.
var moves = input.Keymap{
	"left":  input.CmdLeft,
	"a":     input.CmdLeft,
	"right": input.CmdRight,
	"d":     input.CmdRight,
	"down":  input.CmdSoftDrop,
	"s":     input.CmdSoftDrop,
	"up":    input.CmdRotate,
	"w":     input.CmdRotate,
	" ":     input.CmdHardDrop,
}

var keymap = input.Merge(input.Common, moves)

// panelHelp leaves out restart and ctrl+c, which the game over box covers.
var panelHelp = input.Merge(moves, input.Keymap{
	"q": input.CmdQuit,
	"m": input.CmdToggleMusic,
	"n": input.CmdToggleEffects,
}).Help()

// Keymap returns the tetris bindings.
func (g *Game) Keymap() input.Keymap { return keymap }
