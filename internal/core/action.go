package core

// Action is what a game tells the scheduler after handling a key or a tick.
type Action uint8

const (
	// ActionContinue keeps the loop running.
	ActionContinue Action = iota
	// ActionQuit ends the session immediately.
	ActionQuit
	// ActionGameOver ends the current game; the caller decides what follows.
	ActionGameOver
)

func (a Action) String() string {
	switch a {
	case ActionContinue:
		return "Continue"
	case ActionQuit:
		return "Quit"
	case ActionGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the action stops the per-game loop.
func (a Action) Terminal() bool {
	return a == ActionQuit || a == ActionGameOver
}
