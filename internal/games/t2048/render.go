package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/termplay/internal/core"
)

const (
	cellWidth  = 7 // including the left border
	cellHeight = 2 // including the top border
	boardW     = Size*cellWidth + 1
	boardH     = Size*cellHeight + 1
	hudHeight  = 3
)

var tileColors = map[int]core.Color{
	2:    core.ColorWhite,
	4:    core.ColorBrightWhite,
	8:    core.ColorOrange,
	16:   core.ColorBrightRed,
	32:   core.ColorRed,
	64:   core.ColorMagenta,
	128:  core.ColorBrightYellow,
	256:  core.ColorYellow,
	512:  core.ColorBrightGreen,
	1024: core.ColorBrightCyan,
	2048: core.ColorBrightMagenta,
}

func tileColor(v int) core.Color {
	if c, ok := tileColors[v]; ok {
		return c
	}
	return core.ColorBrightBlue
}

// Draw renders the HUD, the grid and any end-of-game message.
func (g *Game) Draw(dst *core.Screen) {
	if dst.Width() < boardW || dst.Height() < boardH+hudHeight+1 {
		dst.DrawTextCenteredColored(dst.Height()/2, "Window too small", core.ColorRed)
		dst.DrawTextCentered(dst.Height()/2+1, "Please resize terminal")
		return
	}

	boardX := (dst.Width() - boardW) / 2
	boardY := hudHeight + 1

	g.drawHUD(dst, boardX)
	g.drawBoard(dst, boardX, boardY)

	switch {
	case g.won:
		dst.DrawMessageBox(core.ColorBrightGreen,
			fmt.Sprintf("You reached %d!", g.cfg.Target),
			fmt.Sprintf("Score: %d", g.score),
			"r: restart   q: quit")
	case g.gameOver:
		dst.DrawMessageBox(core.ColorRed,
			"GAME OVER",
			fmt.Sprintf("Max tile: %d", g.board.MaxTile()),
			"r: restart   q: quit")
	default:
		dst.DrawTextCenteredColored(boardY+boardH+1, "←↑↓→/wasd: slide   r: restart   q: quit", core.ColorGray)
	}
}

func (g *Game) drawHUD(dst *core.Screen, boardX int) {
	dst.DrawTextCenteredColored(0, "2 0 4 8", core.ColorBrightCyan)
	dst.DrawTextColored(boardX, 1, fmt.Sprintf("Score: %d", g.score), core.ColorYellow)

	info := fmt.Sprintf("Target: %d", g.cfg.Target)
	dst.DrawTextColored(max(boardX, boardX+boardW-len(info)), 1, info, core.ColorGray)
	dst.DrawTextCenteredColored(2, fmt.Sprintf("Moves: %d", g.moves), core.ColorGray)
}

// drawBoard draws the grid lines, then the tiles centered in their cells.
func (g *Game) drawBoard(dst *core.Screen, boardX, boardY int) {
	for y := range Size + 1 {
		for x := range Size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight
			dst.Set(px, py, junction(x, y))

			if x < Size {
				dst.DrawHLine(px+1, py, cellWidth-1, '─', core.ColorDefault)
			}
			if y < Size {
				dst.DrawVLine(px, py+1, cellHeight-1, '│', core.ColorDefault)
			}
		}
	}

	for y := range Size {
		for x := range Size {
			v := g.board[y][x]
			if v == 0 {
				continue
			}
			s := strconv.Itoa(v)
			pad := max(0, (cellWidth-1-len(s))/2)
			dst.DrawTextColored(boardX+x*cellWidth+1+pad, boardY+y*cellHeight+1, s, tileColor(v))
		}
	}
}

func junction(x, y int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == Size:
		return '┐'
	case y == Size && x == 0:
		return '└'
	case y == Size && x == Size:
		return '┘'
	case y == 0:
		return '┬'
	case y == Size:
		return '┴'
	case x == 0:
		return '├'
	case x == Size:
		return '┤'
	default:
		return '┼'
	}
}
