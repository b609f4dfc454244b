package minesweeper

import (
	"fmt"

	"github.com/vovakirdan/termplay/internal/core"
)

const cellW = 3

var digitColors = [9]core.Color{
	core.ColorDefault,
	core.ColorBrightBlue,
	core.ColorGreen,
	core.ColorBrightRed,
	core.ColorMagenta,
	core.ColorRed,
	core.ColorCyan,
	core.ColorWhite,
	core.ColorGray,
}

// Draw renders the HUD and the field. The cursor cell is bracketed.
func (g *Game) Draw(dst *core.Screen) {
	f := g.field
	w, h := f.Width()*cellW+2, f.Height()+2
	if dst.Width() < w || dst.Height() < h+3 {
		dst.DrawTextCenteredColored(dst.Height()/2, "Window too small", core.ColorRed)
		return
	}

	hud := fmt.Sprintf("Mines left: %d  Flags: %d  Time: %ds", f.Mines()-f.Flags(), f.Flags(), int(g.Elapsed().Seconds()))
	dst.DrawTextCenteredColored(0, "MINESWEEPER", core.ColorBrightCyan)
	dst.DrawTextCenteredColored(1, hud, core.ColorYellow)

	ox := (dst.Width() - w) / 2
	oy := 2
	dst.DrawBoxColored(core.NewRect(ox, oy, w, h), core.ColorGreen)

	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			r, c := glyph(f.At(x, y))
			px := ox + 1 + x*cellW
			dst.SetColored(px+1, oy+1+y, r, c)
			if x == g.cursorX && y == g.cursorY && !g.over() {
				dst.SetColored(px, oy+1+y, '[', core.ColorBrightYellow)
				dst.SetColored(px+2, oy+1+y, ']', core.ColorBrightYellow)
			}
		}
	}

	switch {
	case g.won:
		dst.DrawMessageBox(core.ColorBrightGreen, "FIELD CLEARED!", fmt.Sprintf("Time: %ds", int(g.elapsed.Seconds())), "r: restart   q: quit")
	case g.gameOver:
		dst.DrawMessageBox(core.ColorRed, "BOOM!", "You hit a mine", "r: restart   q: quit")
	default:
		dst.DrawTextCenteredColored(oy+h, "arrows: move  space: reveal  f: flag  q: quit", core.ColorGray)
	}
}

func glyph(c Cell) (rune, core.Color) {
	switch c.State {
	case Flagged:
		return 'F', core.ColorBrightRed
	case Hidden:
		return '■', core.ColorGray
	}
	if c.Mine {
		return '*', core.ColorBrightRed
	}
	if c.Adjacent == 0 {
		return '·', core.ColorGray
	}
	return rune('0' + c.Adjacent), digitColors[c.Adjacent]
}
