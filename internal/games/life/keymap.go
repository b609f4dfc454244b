package life

import "github.com/vovakirdan/termplay/internal/input"

// r, n and c drive the sandbox here, so restart and the effects toggle
// move to shift+r and v.
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
	"p":     input.CmdPause,
	"e":     input.CmdEdit,
	"n":     input.CmdStep,
	"+":     input.CmdFaster,
	"=":     input.CmdFaster,
	"-":     input.CmdSlower,
	"c":     input.CmdClear,
	"r":     input.CmdRandomize,
	"R":     input.CmdRestart,
	"v":     input.CmdToggleEffects,
	"1":     input.CmdPattern1,
	"2":     input.CmdPattern2,
	"3":     input.CmdPattern3,
	"4":     input.CmdPattern4,
	"5":     input.CmdPattern5,
	"6":     input.CmdPattern6,
	"f1":    input.CmdGrid1,
	"f2":    input.CmdGrid2,
	"f3":    input.CmdGrid3,
	"f4":    input.CmdGrid4,
})

// Keymap returns the Life bindings.
func (g *Game) Keymap() input.Keymap { return keymap }
