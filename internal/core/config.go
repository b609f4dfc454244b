package core

import "time"

// DefaultTickRate is the tick interval used by games that don't pick their own.
const DefaultTickRate = 250 * time.Millisecond

// RuntimeConfig contains configuration passed to games at creation.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed; 0 means seed from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// GameState is a summary of a game for the platform: HUD, score saving.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
	Won      bool
	// Round changes each time the game restarts, so callers can tell a
	// restart from a command the game ignored.
	Round int
	// Details carries game-specific stats stored alongside a high score,
	// for example level and lines for tetris.
	Details map[string]int
}
