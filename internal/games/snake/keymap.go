package snake

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
	"p":     input.CmdPause,
	" ":     input.CmdPause,
})

// Keymap returns the snake bindings.
func (g *Game) Keymap() input.Keymap { return keymap }
