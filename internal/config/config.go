// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

// Config contains all gameplay configuration.
type Config struct {
	Board    BoardConfig    `yaml:"board"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Ball     BallConfig     `yaml:"ball"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// BoardConfig defines the playfield dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PaddleConfig defines paddle sizing and motion.
type PaddleConfig struct {
	BaseLen     int `yaml:"base_len"`     // Length at level 1
	MinLen      int `yaml:"min_len"`      // Shrink floor
	ShrinkEvery int `yaml:"shrink_every"` // Levels per shrink step
	StepPeriod  int `yaml:"step_period"`  // Frames between one-column moves
}

// BallConfig defines the ball's frame-period ranges. Periods are frames per
// one-cell move, so smaller is faster.
type BallConfig struct {
	MinStartPeriod  int `yaml:"min_start_period"`  // Life-start draw range [min, max)
	MaxStartPeriod  int `yaml:"max_start_period"`
	MinBouncePeriod int `yaml:"min_bounce_period"` // Paddle-bounce redraw range [min, max)
	MaxBouncePeriod int `yaml:"max_bounce_period"`
}

// GameplayConfig defines scoring and lives.
type GameplayConfig struct {
	StartingLives int `yaml:"starting_lives"`
	BlockPoints   int `yaml:"block_points"` // Points per destroyed block pair
}

// Preset represents a named difficulty level.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// ApplyPreset modifies the config based on a difficulty preset. Easy gives
// more lives and a slower ball; hard does the opposite.
func ApplyPreset(cfg *Config, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Gameplay.StartingLives += 2
		cfg.Ball.MinStartPeriod += 2
		cfg.Ball.MaxStartPeriod += 2
		cfg.Ball.MinBouncePeriod += 2
		cfg.Ball.MaxBouncePeriod += 2
	case PresetHard:
		cfg.Gameplay.StartingLives -= 2
		if cfg.Gameplay.StartingLives < 1 {
			cfg.Gameplay.StartingLives = 1
		}
		cfg.Ball.MinStartPeriod -= 1
		cfg.Ball.MaxStartPeriod -= 2
		cfg.Ball.MinBouncePeriod -= 1
		cfg.Ball.MaxBouncePeriod -= 2
	}
}
