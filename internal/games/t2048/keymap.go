package t2048

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
})

// Keymap returns the 2048 bindings.
func (g *Game) Keymap() input.Keymap { return keymap }
