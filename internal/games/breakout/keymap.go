package breakout

import "github.com/vovakirdan/termplay/internal/input"

var keymap = input.Merge(input.Common, input.Keymap{
	"left":  input.CmdLeft,
	"right": input.CmdRight,
	"a":     input.CmdLeft,
	"d":     input.CmdRight,
	" ":     input.CmdSelect,
	"enter": input.CmdSelect,
	"up":    input.CmdSelect,
	"p":     input.CmdPause,
	"esc":   input.CmdPause,
})

// Keymap returns the breakout bindings.
func (g *Game) Keymap() input.Keymap { return keymap }
