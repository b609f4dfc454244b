// Package config loads and saves termplay's YAML configuration: audio
// preferences and per-game tuning.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/termplay/internal/audio"
)

// Config is the complete termplay configuration.
type Config struct {
	Difficulty  DifficultyPreset  `yaml:"difficulty"`
	Audio       AudioConfig       `yaml:"audio"`
	Tetris      TetrisConfig      `yaml:"tetris"`
	Snake       SnakeConfig       `yaml:"snake"`
	T2048       T2048Config       `yaml:"t2048"`
	Minesweeper MinesweeperConfig `yaml:"minesweeper"`
	Life        LifeConfig        `yaml:"life"`
	Pong        PongConfig        `yaml:"pong"`
	Breakout    BreakoutConfig    `yaml:"breakout"`
}

// AudioConfig holds volumes (0 to 1) and the enable switches.
type AudioConfig struct {
	MasterVolume  float64 `yaml:"master_volume"`
	EffectsVolume float64 `yaml:"effects_volume"`
	MusicVolume   float64 `yaml:"music_volume"`
	Enabled       bool    `yaml:"enabled"`
	MusicEnabled  bool    `yaml:"music_enabled"`
}

// Settings converts the config section to player settings.
func (a AudioConfig) Settings() audio.Settings {
	return audio.Settings{
		MasterVolume:   a.MasterVolume,
		EffectsVolume:  a.EffectsVolume,
		MusicVolume:    a.MusicVolume,
		EffectsEnabled: a.Enabled,
		MusicEnabled:   a.MusicEnabled,
	}
}

// TetrisConfig tunes the falling-block game.
type TetrisConfig struct {
	TickMS int `yaml:"tick_ms"`
	// FastMusicLevel is the level from which the fast theme plays.
	FastMusicLevel int `yaml:"fast_music_level"`
}

// SnakeConfig tunes snake.
type SnakeConfig struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	StartTickMS int `yaml:"start_tick_ms"`
	MinTickMS   int `yaml:"min_tick_ms"`
	SpeedupMS   int `yaml:"speedup_ms"` // tick reduction per segment grown
	FoodPoints  int `yaml:"food_points"`
}

// T2048Config tunes 2048.
type T2048Config struct {
	Target int `yaml:"target"`
}

// MinesweeperConfig tunes minesweeper.
type MinesweeperConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Mines  int `yaml:"mines"`
}

// LifeConfig tunes the Game of Life.
type LifeConfig struct {
	Speed      int     `yaml:"speed"` // 1 to 5
	Grid       int     `yaml:"grid"`  // preset index 0 to 3
	RandomFill float64 `yaml:"random_fill"`
	EditTickMS int     `yaml:"edit_tick_ms"`
	WrapAround bool    `yaml:"wrap_around"`
}

// PongConfig tunes pong.
type PongConfig struct {
	WinScore    int     `yaml:"win_score"`
	TickMS      int     `yaml:"tick_ms"`
	BallSpeed   float64 `yaml:"ball_speed"`
	PaddleSpeed float64 `yaml:"paddle_speed"`
	CPUSkill    float64 `yaml:"cpu_skill"` // 0 to 1
	// TwoPlayer hands the right paddle to a second player (arrow keys).
	TwoPlayer bool `yaml:"two_player"`
}

// BreakoutConfig tunes breakout. Speeds are fixed-point, 1000 = one cell
// per tick.
type BreakoutConfig struct {
	TickMS      int  `yaml:"tick_ms"`
	Lives       int  `yaml:"lives"`
	PaddleWidth int  `yaml:"paddle_width"`
	PaddleStep  int  `yaml:"paddle_step"` // cells per key press
	BallSpeed   int  `yaml:"ball_speed"`
	PowerUps    bool `yaml:"power_ups"`
}

// Tick converts a millisecond setting to a duration.
func Tick(msec int) time.Duration {
	return time.Duration(msec) * time.Millisecond
}

// Validate clamps out-of-range values and rejects unusable ones.
func (c *Config) Validate() error {
	c.Audio.MasterVolume = clampF(c.Audio.MasterVolume, 0, 1)
	c.Audio.EffectsVolume = clampF(c.Audio.EffectsVolume, 0, 1)
	c.Audio.MusicVolume = clampF(c.Audio.MusicVolume, 0, 1)

	c.Tetris.TickMS = max(c.Tetris.TickMS, 1)
	c.Snake.StartTickMS = max(c.Snake.StartTickMS, 1)
	c.Snake.MinTickMS = max(c.Snake.MinTickMS, 1)
	c.Life.EditTickMS = max(c.Life.EditTickMS, 1)
	c.Life.Speed = min(max(c.Life.Speed, 1), 5)
	c.Life.Grid = min(max(c.Life.Grid, 0), 3)
	c.Life.RandomFill = clampF(c.Life.RandomFill, 0, 1)
	c.Pong.TickMS = max(c.Pong.TickMS, 1)
	c.Pong.CPUSkill = clampF(c.Pong.CPUSkill, 0, 1)
	c.Breakout.TickMS = max(c.Breakout.TickMS, 1)
	c.Breakout.PaddleStep = max(c.Breakout.PaddleStep, 1)
	c.Breakout.PaddleWidth = min(max(c.Breakout.PaddleWidth, 3), 20)
	c.Breakout.BallSpeed = min(max(c.Breakout.BallSpeed, 100), 800)

	if c.Snake.Width < 5 || c.Snake.Height < 5 {
		return fmt.Errorf("config: snake field %dx%d is too small", c.Snake.Width, c.Snake.Height)
	}
	if c.Minesweeper.Width < 2 || c.Minesweeper.Height < 2 {
		return fmt.Errorf("config: minesweeper field %dx%d is too small", c.Minesweeper.Width, c.Minesweeper.Height)
	}
	// The first reveal clears up to 9 cells.
	if limit := c.Minesweeper.Width*c.Minesweeper.Height - 9; c.Minesweeper.Mines < 1 || c.Minesweeper.Mines > limit {
		return fmt.Errorf("config: minesweeper mines must be in [1, %d], got %d", limit, c.Minesweeper.Mines)
	}
	if c.Pong.WinScore < 1 {
		return fmt.Errorf("config: pong win_score must be positive, got %d", c.Pong.WinScore)
	}
	if c.Breakout.Lives < 1 {
		return fmt.Errorf("config: breakout lives must be positive, got %d", c.Breakout.Lives)
	}
	if c.T2048.Target < 8 || c.T2048.Target&(c.T2048.Target-1) != 0 {
		return fmt.Errorf("config: 2048 target must be a power of two >= 8, got %d", c.T2048.Target)
	}
	return nil
}

func clampF(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
