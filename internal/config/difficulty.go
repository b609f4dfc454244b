package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, true
	case "":
		return DifficultyNormal, true
	}
	return "", false
}

// ApplyPreset adjusts the games that have a difficulty knob.
// Tetris has none: its speed is driven by the level alone.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	cfg.Difficulty = preset
	area := cfg.Minesweeper.Width * cfg.Minesweeper.Height

	switch preset {
	case DifficultyEasy:
		cfg.Minesweeper.Mines = max(1, area*10/100)
		cfg.Pong.CPUSkill = 0.45
		cfg.Snake.StartTickMS = 400
		cfg.Breakout.Lives = 5
	case DifficultyHard:
		cfg.Minesweeper.Mines = min(area-9, area*21/100)
		cfg.Pong.CPUSkill = 0.85
		cfg.Snake.StartTickMS = 200
		cfg.Breakout.Lives = 2
		cfg.Breakout.BallSpeed = 400
	}
}
