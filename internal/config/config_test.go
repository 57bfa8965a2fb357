package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Board.Width != 60 || cfg.Board.Height != 36 {
		t.Errorf("Default board should be 60x36, got %dx%d", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.Paddle.BaseLen != 20 || cfg.Paddle.MinLen != 10 {
		t.Errorf("Default paddle should be 20/10, got %d/%d", cfg.Paddle.BaseLen, cfg.Paddle.MinLen)
	}
	if cfg.Gameplay.StartingLives != 5 {
		t.Errorf("Default lives should be 5, got %d", cfg.Gameplay.StartingLives)
	}
	if cfg.Ball.MinStartPeriod >= cfg.Ball.MaxStartPeriod {
		t.Error("Start period range should be non-empty")
	}
	if cfg.Ball.MinBouncePeriod >= cfg.Ball.MaxBouncePeriod {
		t.Error("Bounce period range should be non-empty")
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	// The embedded YAML and the hardcoded fallback must agree.
	loaded, err := Load(writeTempConfig(t, DefaultYAML()))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded != Default() {
		t.Errorf("Embedded default %+v should match Default() %+v", loaded, Default())
	}
}

func TestApplyPresetEasy(t *testing.T) {
	cfg := Default()
	ApplyPreset(&cfg, PresetEasy)

	if cfg.Gameplay.StartingLives != 7 {
		t.Errorf("Easy should add two lives, got %d", cfg.Gameplay.StartingLives)
	}
	if cfg.Ball.MinStartPeriod != 8 || cfg.Ball.MaxStartPeriod != 18 {
		t.Errorf("Easy should slow the ball, got [%d, %d)", cfg.Ball.MinStartPeriod, cfg.Ball.MaxStartPeriod)
	}
}

func TestApplyPresetHard(t *testing.T) {
	cfg := Default()
	ApplyPreset(&cfg, PresetHard)

	if cfg.Gameplay.StartingLives != 3 {
		t.Errorf("Hard should remove two lives, got %d", cfg.Gameplay.StartingLives)
	}
	if cfg.Ball.MinStartPeriod != 5 || cfg.Ball.MaxStartPeriod != 14 {
		t.Errorf("Hard should speed up the ball, got [%d, %d)", cfg.Ball.MinStartPeriod, cfg.Ball.MaxStartPeriod)
	}

	// Lives never drop below one.
	cfg.Gameplay.StartingLives = 2
	ApplyPreset(&cfg, PresetHard)
	if cfg.Gameplay.StartingLives != 1 {
		t.Errorf("Lives should floor at 1, got %d", cfg.Gameplay.StartingLives)
	}
}

func TestApplyPresetNormalIsIdentity(t *testing.T) {
	cfg := Default()
	ApplyPreset(&cfg, PresetNormal)

	if cfg != Default() {
		t.Error("Normal preset should leave the config untouched")
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := writeTempConfig(t, []byte(`
board:
  width: 80
  height: 40
paddle:
  base_len: 24
  min_len: 12
  shrink_every: 2
  step_period: 3
ball:
  min_start_period: 4
  max_start_period: 10
  min_bounce_period: 3
  max_bounce_period: 8
gameplay:
  starting_lives: 9
  block_points: 25
`))

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Board.Width != 80 || cfg.Board.Height != 40 {
		t.Errorf("Board should be 80x40, got %dx%d", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.Paddle.BaseLen != 24 || cfg.Paddle.ShrinkEvery != 2 {
		t.Errorf("Paddle config not loaded: %+v", cfg.Paddle)
	}
	if cfg.Gameplay.StartingLives != 9 || cfg.Gameplay.BlockPoints != 25 {
		t.Errorf("Gameplay config not loaded: %+v", cfg.Gameplay)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Load should fail for a missing explicit path")
	}
}

func TestLoadMalformedCustomPath(t *testing.T) {
	path := writeTempConfig(t, []byte("board: [not, a, mapping"))

	_, err := Load(path)
	if err == nil {
		t.Error("Load should fail for malformed YAML")
	}
}

func writeTempConfig(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "breakout.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("Failed to write temp config: %v", err)
	}
	return path
}
