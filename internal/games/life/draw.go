package life

import (
	"fmt"

	"github.com/vovakirdan/termplay/internal/core"
)

const cellW = 2

var modeColors = map[Mode]core.Color{
	Editing: core.ColorBrightCyan,
	Running: core.ColorBrightGreen,
	Paused:  core.ColorBrightYellow,
}

// viewport picks the first visible cell on one axis so that the camera
// stays centered where the grid allows.
func viewport(camera, visible, total int) int {
	if total <= visible {
		return 0
	}
	return min(max(camera-visible/2, 0), total-visible)
}

// Draw renders the header, the visible part of the grid and the help line.
func (g *Game) Draw(dst *core.Screen) {
	const header, footer = 2, 1
	innerW := dst.Width() - 2
	innerH := dst.Height() - header - footer - 2
	if innerW < cellW*8 || innerH < 4 {
		dst.DrawTextCenteredColored(dst.Height()/2, "Window too small", core.ColorRed)
		return
	}

	status := fmt.Sprintf("Gen: %d  State: %s  Speed: %d/5  Size: %dx%d  Cells: %d",
		g.generation, g.mode, g.speed, g.grid.Width(), g.grid.Height(), g.grid.Population())
	dst.DrawTextCenteredColored(0, "GAME OF LIFE", core.ColorBrightGreen)
	dst.DrawTextCenteredColored(1, status, modeColors[g.mode])

	cols := min(innerW/cellW, g.grid.Width())
	rows := min(innerH, g.grid.Height())
	sx := viewport(g.cameraX, cols, g.grid.Width())
	sy := viewport(g.cameraY, rows, g.grid.Height())

	box := core.NewRect((dst.Width()-cols*cellW-2)/2, header, cols*cellW+2, rows+2)
	dst.DrawBoxColored(box, core.ColorGreen)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			gx, gy := sx+x, sy+y
			px, py := box.X+1+x*cellW, box.Y+1+y

			alive := g.grid.Alive(gx, gy)
			cursor := g.mode == Editing && gx == g.cursorX && gy == g.cursorY
			switch {
			case cursor && alive:
				dst.SetColored(px, py, '█', core.ColorBrightYellow)
				dst.SetColored(px+1, py, '█', core.ColorBrightYellow)
			case cursor:
				dst.SetColored(px, py, '[', core.ColorBrightYellow)
				dst.SetColored(px+1, py, ']', core.ColorBrightYellow)
			case alive:
				dst.SetColored(px, py, '█', core.ColorBrightGreen)
				dst.SetColored(px+1, py, '█', core.ColorBrightGreen)
			}
		}
	}

	help := "p: run/pause  n: step  +/-: speed  e: edit  q: quit"
	if g.mode == Editing {
		help = "arrows: move  space: toggle  1-6: patterns  c: clear  r: random  F1-F4: size  p: run"
	}
	dst.DrawTextCenteredColored(dst.Height()-1, help, core.ColorGray)
}
