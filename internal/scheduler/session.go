package scheduler

import "github.com/vovakirdan/termplay/internal/core"

// GameOverFunc is called once each time the game ends, with the final state.
type GameOverFunc func(st core.GameState)

// Play runs the game until the player quits. Each game over is reported to
// onOver, then the loop keeps running: the game shows its end screen and
// handles restart itself.
func (l *Loop) Play(onOver GameOverFunc) error {
	for {
		action, err := l.Run()
		if err != nil {
			return err
		}
		if action == core.ActionQuit {
			return nil
		}
		if onOver != nil {
			onOver(l.game.State())
		}
	}
}
