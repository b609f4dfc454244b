package config

import (
	_ "embed"
)

//go:embed defaults/termplay.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches the embedded
// defaults/termplay.yaml.
func Default() Config {
	return Config{
		Difficulty: DifficultyNormal,
		Audio: AudioConfig{
			MasterVolume:  0.8,
			EffectsVolume: 0.7,
			MusicVolume:   0.3,
			Enabled:       true,
			MusicEnabled:  true,
		},
		Tetris: TetrisConfig{
			TickMS:         50,
			FastMusicLevel: 7,
		},
		Snake: SnakeConfig{
			Width:       40,
			Height:      20,
			StartTickMS: 300,
			MinTickMS:   80,
			SpeedupMS:   15,
			FoodPoints:  10,
		},
		T2048: T2048Config{
			Target: 2048,
		},
		Minesweeper: MinesweeperConfig{
			Width:  16,
			Height: 16,
			Mines:  40,
		},
		Life: LifeConfig{
			Speed:      3,
			Grid:       1,
			RandomFill: 0.3,
			EditTickMS: 100,
			WrapAround: false,
		},
		Pong: PongConfig{
			WinScore:    5,
			TickMS:      33,
			BallSpeed:   0.5,
			PaddleSpeed: 2.0,
			CPUSkill:    0.6,
			TwoPlayer:   false,
		},
		Breakout: BreakoutConfig{
			TickMS:      16,
			Lives:       3,
			PaddleWidth: 8,
			PaddleStep:  2,
			BallSpeed:   300,
			PowerUps:    true,
		},
	}
}
