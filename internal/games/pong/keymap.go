package pong

import "github.com/vovakirdan/termplay/internal/input"

var keymap = input.Merge(input.Common, input.Keymap{
	"w":    input.CmdUp,
	"s":    input.CmdDown,
	"up":   input.CmdUp,
	"down": input.CmdDown,
	"p":    input.CmdPause,
	"esc":  input.CmdPause,
	" ":    input.CmdPause,
})

// In two player mode the arrows belong to the right paddle.
var twoPlayerKeymap = input.Merge(keymap, input.Keymap{
	"up":   input.CmdUp2,
	"down": input.CmdDown2,
})

// Keymap returns the pong bindings.
func (g *Game) Keymap() input.Keymap {
	if g.cfg.TwoPlayer {
		return twoPlayerKeymap
	}
	return keymap
}
