package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultYAML []byte

// Default returns the default configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:  60,
			Height: 36,
		},
		Paddle: PaddleConfig{
			BaseLen:     20,
			MinLen:      10,
			ShrinkEvery: 3,
			StepPeriod:  4,
		},
		Ball: BallConfig{
			MinStartPeriod:  6,
			MaxStartPeriod:  16,
			MinBouncePeriod: 5,
			MaxBouncePeriod: 13,
		},
		Gameplay: GameplayConfig{
			StartingLives: 5,
			BlockPoints:   10,
		},
	}
}

// DefaultYAML returns the embedded default YAML, for writing out a starter
// config file.
func DefaultYAML() []byte {
	return defaultYAML
}
