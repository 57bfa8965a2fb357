package game

import (
	"github.com/breakout-tui/breakout/internal/config"
	"github.com/breakout-tui/breakout/internal/core"
)

// Rendering glyphs and footer layout. The playfield is drawn inside a border
// one cell in from the screen edge; the footer shares the bottom border row.
const (
	BallChar    = 'O'
	BorderSide  = '{'
	BorderSideR = '}'
	BorderBar   = '_'

	footerTitle = "ASCII BREAKOUT"
	footerLives = "<3:"
	footerLevel = "Level:"
	footerScore = "Score:"
	footerX     = 3
	footerGap   = 5
)

// Director states. Every level starts at the intro modal and plays until
// the board is cleared or a life is lost. A lost life returns to the intro
// while lives remain, otherwise the game is over. Pause is a detour from
// playing.
const (
	StateLevelIntro = "levelintro" // Modal before each life, waiting for a key
	StatePlaying    = "playing"    // Ball in play
	StatePaused     = "paused"     // Gameplay frozen
	StateLevelClear = "levelclear" // All block pairs destroyed
	StateGameOver   = "gameover"   // No lives left
)

// configPath stores the custom config path set via CLI.
var configPath string

// difficultyPreset stores the difficulty preset set via CLI.
var difficultyPreset config.Preset

// startLevel is the level the first session begins at, settable via CLI.
var startLevel = 1

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.PresetEasy
	case "normal":
		difficultyPreset = config.PresetNormal
	case "hard":
		difficultyPreset = config.PresetHard
	default:
		difficultyPreset = ""
	}
}

// SetStartLevel sets the level the game starts at.
func SetStartLevel(level int) {
	if level < 1 {
		level = 1
	}
	startLevel = level
}

// Game implements the Breakout game logic: a fixed tile-grid board, a
// periodic-motion ball and paddle, and the level/life state machine.
type Game struct {
	// Game objects
	board  *Board
	paddle *Paddle
	ball   *Ball
	rng    *SimpleRNG

	// Game state
	state       string
	score       int
	lives       int
	level       int
	blocksLeft  int
	frame       uint64
	maxBlockRow int
	firstIntro  bool // Show the controls banner on the very first modal

	// Configuration
	runtime core.RuntimeConfig
	cfg     config.Config

	// Layout
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new Breakout game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "ASCII Breakout"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.Default()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	// Field plus border plus footer row must fit on screen.
	g.minScreenW = cfg.Board.Width + 2
	g.minScreenH = cfg.Board.Height + 2
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.rng = NewSimpleRNG(runtime.Seed)
	g.score = 0
	g.lives = cfg.Gameplay.StartingLives
	g.level = startLevel
	g.firstIntro = true

	g.beginLevel()
}

// bonusLives returns the extra lives handed out when a level starts. The
// handouts thin out as levels progress and end entirely at level 60.
func bonusLives(level int) int {
	switch {
	case level <= 1:
		// The player starts out with some already.
		return 0
	case level < 10:
		return 2
	case level < 20:
		return 1
	case level%2 == 0 && level < 40:
		return 1
	case level%4 == 0 && level < 60:
		return 1
	}
	return 0
}

// beginLevel sets up the board, paddle, and ball for the current level and
// enters the intro modal. Called at game start and after every level clear.
func (g *Game) beginLevel() {
	w, h := g.cfg.Board.Width, g.cfg.Board.Height
	g.maxBlockRow = MaxBlockRow(g.level, h)

	g.paddle = &Paddle{
		Y:          (11 * h) / 12,
		Len:        LenForLevel(g.level, g.cfg.Paddle.BaseLen, g.cfg.Paddle.MinLen, g.cfg.Paddle.ShrinkEvery),
		StepPeriod: g.cfg.Paddle.StepPeriod,
	}
	g.paddle.X = (w - g.paddle.Len) / 2

	g.ball = &Ball{
		X:        w / 2,
		Y:        (g.maxBlockRow + g.paddle.Y) / 2,
		BounceLo: g.cfg.Ball.MinBouncePeriod,
		BounceHi: g.cfg.Ball.MaxBouncePeriod,
	}

	g.lives += bonusLives(g.level)

	g.board = NewBoard(w, h)
	g.blocksLeft = g.board.Generate(g.maxBlockRow, g.paddle, g.ball, g.rng)

	g.state = StateLevelIntro
}

// startLife resets the ball and paddle for a fresh ball drop. The ball gets
// fresh random per-axis periods and a random horizontal direction; vertical
// direction always starts upward.
func (g *Game) startLife() {
	g.frame = 0

	// Clear the ball's previous cell before relocating it.
	g.board.Set(g.ball.X, g.ball.Y, Tile{})

	g.ball.X = g.board.W / 2
	g.ball.Y = (g.maxBlockRow + g.paddle.Y) / 2
	g.ball.XVel = g.rng.Between(g.cfg.Ball.MinStartPeriod, g.cfg.Ball.MaxStartPeriod)
	g.ball.YVel = g.rng.Between(g.cfg.Ball.MinStartPeriod, g.cfg.Ball.MaxStartPeriod)
	g.ball.XDir = 1
	if !g.rng.Coin() {
		g.ball.XDir = -1
	}
	g.ball.YDir = -1

	g.paddle.Recenter(g.board)
	g.board.Set(g.ball.X, g.ball.Y, Tile{Kind: TileBall})

	g.state = StatePlaying
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	switch g.state {
	case StateLevelIntro:
		if in.Has(core.ActionConfirm) {
			g.firstIntro = false
			g.startLife()
		}
		return core.StepResult{State: g.State()}

	case StateLevelClear:
		if in.Has(core.ActionConfirm) {
			g.level++
			g.beginLevel()
		}
		return core.StepResult{State: g.State()}

	case StateGameOver:
		if in.Has(core.ActionRestart) {
			g.Reset(g.runtime)
		}
		return core.StepResult{State: g.State()}

	case StatePaused:
		if in.Has(core.ActionPause) {
			g.state = StatePlaying
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.state = StatePaused
		return core.StepResult{State: g.State()}
	}

	g.frame++

	// Direction keys latch: the paddle keeps moving without fresh input.
	if in.Has(core.ActionLeft) {
		g.paddle.Dir = -1
		g.paddle.LastDir = 0
	}
	if in.Has(core.ActionRight) {
		g.paddle.Dir = 1
		g.paddle.LastDir = 0
	}
	if in.Has(core.ActionFreeze) {
		g.paddle.ToggleFreeze()
	}

	if g.paddle.Dir != 0 && g.frame%uint64(g.paddle.StepPeriod) == 0 {
		g.paddle.Move(g.board)
	}

	outcome := g.ball.Step(g.frame, g.board, g.rng)
	if outcome.Destroyed {
		g.score += g.cfg.Gameplay.BlockPoints
		g.blocksLeft--
	}

	if !outcome.InPlay {
		g.lives--
		if g.lives <= 0 {
			g.state = StateGameOver
		} else {
			g.state = StateLevelIntro
		}
		return core.StepResult{State: g.State()}
	}

	if g.blocksLeft == 0 {
		g.state = StateLevelClear
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:          g.score,
		Level:          g.level,
		Lives:          g.lives,
		GameOver:       g.state == StateGameOver,
		Paused:         g.state == StatePaused,
		ScreenTooSmall: g.screenTooSmall,
	}
}
