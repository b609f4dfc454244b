package tetris

import (
	"fmt"

	"github.com/vovakirdan/termplay/internal/core"
)

const (
	cellW  = 2 // terminal columns per board cell
	wellW  = Width*cellW + 2
	wellH  = Height + 2
	panelW = 22
)

// Draw renders the well, the side panel and any overlay.
func (g *Game) Draw(dst *core.Screen) {
	if dst.Width() < wellW+panelW || dst.Height() < wellH {
		dst.DrawTextCenteredColored(dst.Height()/2-1, "Terminal too small!", core.ColorRed)
		dst.DrawTextCenteredColored(dst.Height()/2, fmt.Sprintf("Minimum size: %dx%d", wellW+panelW, wellH), core.ColorYellow)
		return
	}

	ox := (dst.Width() - wellW - panelW) / 2
	oy := (dst.Height() - wellH) / 2

	g.drawWell(dst, ox, oy)
	g.drawPanel(dst, ox+wellW+2, oy)

	if g.over {
		dst.DrawMessageBox(core.ColorRed,
			"GAME OVER",
			fmt.Sprintf("Score: %d  Lines: %d  Level: %d", g.score, g.lines, g.level),
			"r: restart   q: quit",
		)
	}
}

func (g *Game) drawWell(dst *core.Screen, ox, oy int) {
	dst.DrawBoxColored(core.NewRect(ox, oy, wellW, wellH), core.ColorGreen)

	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if t, ok := g.board.At(x, y); ok {
				drawBlock(dst, ox, oy, x, y, t.Color())
			} else {
				dst.SetColored(ox+1+x*cellW, oy+1+y, '·', core.ColorGray)
			}
		}
	}

	if g.current != nil {
		for _, c := range g.current.Cells() {
			if c.Y >= 0 {
				drawBlock(dst, ox, oy, c.X, c.Y, g.current.Type.Color())
			}
		}
	}
}

func drawBlock(dst *core.Screen, ox, oy, x, y int, c core.Color) {
	sx := ox + 1 + x*cellW
	dst.SetColored(sx, oy+1+y, '█', c)
	dst.SetColored(sx+1, oy+1+y, '█', c)
}

func (g *Game) drawPanel(dst *core.Screen, px, py int) {
	dst.DrawTextColored(px, py, "T E T R I S", core.ColorBrightCyan)

	speed := "normal"
	if g.level >= 7 {
		speed = "fast"
	}
	dst.DrawTextColored(px, py+2, fmt.Sprintf("Score: %d", g.score), core.ColorYellow)
	dst.DrawTextColored(px, py+3, fmt.Sprintf("Lines: %d", g.lines), core.ColorGreen)
	dst.DrawTextColored(px, py+4, fmt.Sprintf("Level: %d (%s)", g.level, speed), core.ColorBrightRed)

	dst.DrawText(px, py+6, "Next:")
	for _, c := range rotationTable[g.next][0] {
		sx := px + 2 + c.X*cellW
		dst.SetColored(sx, py+7+c.Y, '█', g.next.Color())
		dst.SetColored(sx+1, py+7+c.Y, '█', g.next.Color())
	}

	dst.DrawTextColored(px, py+12, "Effects: "+onOff(g.audio.EffectsEnabled()), core.ColorGray)
	dst.DrawTextColored(px, py+13, "Music:   "+onOff(g.audio.MusicEnabled()), core.ColorGray)

	for i, line := range panelHelp {
		dst.DrawTextColored(px, py+14+i, line, core.ColorGray)
	}

	if g.celebration > 0 && g.celebration/10%2 == 0 {
		dst.DrawTextColored(px, py+10, "*** TETRIS! ***", core.ColorBrightYellow)
	}
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
