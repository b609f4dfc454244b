package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/termplay/internal/core"
)

// KeyName converts a tcell key event to the key naming the keymaps use.
// It returns "" for keys no game binds.
func KeyName(ev *tcell.EventKey) string {
	k := ev.Key()
	switch k {
	case tcell.KeyRune:
		name := string(ev.Rune())
		if ev.Modifiers()&tcell.ModAlt != 0 {
			return "alt+" + name
		}
		return name
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyBacktab:
		return "shift+tab"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "backspace"
	case tcell.KeyDelete:
		return "delete"
	case tcell.KeyInsert:
		return "insert"
	case tcell.KeyHome:
		return "home"
	case tcell.KeyEnd:
		return "end"
	case tcell.KeyPgUp:
		return "pgup"
	case tcell.KeyPgDn:
		return "pgdown"
	}

	switch {
	case k >= tcell.KeyF1 && k <= tcell.KeyF12:
		return fmt.Sprintf("f%d", k-tcell.KeyF1+1)
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return "ctrl+" + string(rune('a'+k-tcell.KeyCtrlA))
	}
	return ""
}

var styles = map[core.Color]tcell.Color{
	core.ColorRed:           tcell.ColorMaroon,
	core.ColorGreen:         tcell.ColorGreen,
	core.ColorYellow:        tcell.ColorOlive,
	core.ColorBlue:          tcell.ColorNavy,
	core.ColorMagenta:       tcell.ColorPurple,
	core.ColorCyan:          tcell.ColorTeal,
	core.ColorWhite:         tcell.ColorSilver,
	core.ColorBrightRed:     tcell.ColorRed,
	core.ColorBrightGreen:   tcell.ColorLime,
	core.ColorBrightYellow:  tcell.ColorYellow,
	core.ColorBrightBlue:    tcell.ColorBlue,
	core.ColorBrightMagenta: tcell.ColorFuchsia,
	core.ColorBrightCyan:    tcell.ColorAqua,
	core.ColorBrightWhite:   tcell.ColorWhite,
	core.ColorOrange:        tcell.ColorOrange,
	core.ColorGray:          tcell.ColorGray,
}

// Style maps a screen color to a tcell style.
func Style(c core.Color) tcell.Style {
	if fg, ok := styles[c]; ok {
		return tcell.StyleDefault.Foreground(fg)
	}
	return tcell.StyleDefault
}
