package breakout

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/termplay/internal/core"
)

const (
	PaddleChar = '▀'
	BallChar   = '●'
	BrickChar  = '█'
	HardChar   = '▓'
)

var rowColors = []core.Color{
	core.ColorBrightRed,
	core.ColorOrange,
	core.ColorBrightYellow,
	core.ColorBrightGreen,
	core.ColorBrightCyan,
	core.ColorBrightBlue,
	core.ColorBrightMagenta,
}

// Draw renders the field centered on the screen.
func (g *Game) Draw(dst *core.Screen) {
	w, h := FieldWidth+2, FieldHeight+2
	if dst.Width() < w || dst.Height() < h+2 {
		dst.DrawTextCenteredColored(dst.Height()/2, "Window too small", core.ColorRed)
		return
	}
	box := core.NewRect((dst.Width()-w)/2, 1, w, h)
	dst.DrawBoxColored(box, core.ColorWhite)
	field := box.Inset(1)
	ox, fx, fy := box.X, field.X, field.Y

	g.drawBricks(dst, fx, fy)
	for _, p := range g.powerups.Pickups {
		if p.Active {
			dst.SetColored(fx+p.CellX(), fy+p.CellY(), p.Type.Glyph(), core.ColorBrightGreen)
		}
	}
	for i := range g.paddle.Width {
		dst.SetColored(fx+g.paddle.CellX()+i, fy+g.paddle.Y, PaddleChar, core.ColorBrightWhite)
	}
	for _, b := range g.balls {
		if b.Active {
			dst.SetColored(fx+b.CellX(), fy+b.CellY(), BallChar, core.ColorBrightYellow)
		}
	}

	level := fmt.Sprintf("Level: %d/%d", g.LevelNumber(), LevelCount())
	if g.mode == Endless {
		level = fmt.Sprintf("Level: %d", g.LevelNumber())
	}
	dst.DrawTextColored(ox, 0, fmt.Sprintf("Score: %d", g.score), core.ColorBrightWhite)
	dst.DrawTextCenteredColored(0, fmt.Sprintf("Lives: %d", g.lives), core.ColorBrightRed)
	dst.DrawTextColored(ox+w-len(level), 0, level, core.ColorBrightWhite)

	status := box.Bottom()
	switch g.state {
	case stateServe:
		msg := "space: launch  ←/→: move  q: quit"
		if g.serveDelay > 0 {
			msg = "Get ready..."
		}
		dst.DrawTextCenteredColored(status, msg, core.ColorGray)
	case statePlaying:
		if line := g.effectsLine(); line != "" {
			dst.DrawTextCenteredColored(status, line, core.ColorBrightGreen)
		} else {
			dst.DrawTextCenteredColored(status, "←/→: move  p: pause  q: quit", core.ColorGray)
		}
	case statePaused:
		dst.DrawMessageBox(core.ColorYellow, "PAUSED", "p: resume")
	case stateOver:
		dst.DrawMessageBox(core.ColorBrightRed, "GAME OVER", fmt.Sprintf("Score: %d", g.score), "r: restart   q: quit")
	case stateWon:
		dst.DrawMessageBox(core.ColorBrightYellow, "YOU WIN!", fmt.Sprintf("Final score: %d", g.score), "r: restart   q: quit")
	}
}

func (g *Game) drawBricks(dst *core.Screen, fx, fy int) {
	l := g.layout
	for row, bricks := range g.level.Bricks {
		for col, b := range bricks {
			if !b.Alive || b.Type == BrickEmpty {
				continue
			}
			glyph, color := BrickChar, rowColors[row%len(rowColors)]
			switch {
			case b.Type == BrickSolid:
				color = core.ColorGray
			case b.Type == BrickHard && b.HP > 1:
				glyph, color = HardChar, core.ColorWhite
			}
			x, y := fx+col*l.brickWidth, fy+l.top+row*l.brickHeight
			for dx := range l.brickWidth {
				dst.SetColored(x+dx, y, glyph, color)
			}
		}
	}
}

// effectsLine lists running effects with their remaining seconds.
func (g *Game) effectsLine() string {
	parts := make([]string, 0, len(g.powerups.Effects))
	for _, e := range g.powerups.Effects {
		ms := g.powerups.Remaining(e.Type, g.tick) * int(g.TickRate().Milliseconds())
		parts = append(parts, fmt.Sprintf("%s(%d)", e.Type, ms/1000))
	}
	return strings.Join(parts, " ")
}
