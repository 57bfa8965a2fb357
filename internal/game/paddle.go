package game

import "github.com/breakout-tui/breakout/internal/core"

// Paddle holds the paddle's position and motion state. X is the left-most
// occupied column; Y and Len are fixed for the duration of a level.
type Paddle struct {
	X, Y int
	Len  int

	// Dir is the direction the paddle is moving: negative for left,
	// positive for right, zero for stopped.
	Dir int

	// LastDir remembers the direction the paddle was moving before it was
	// frozen, so a second freeze press resumes it.
	LastDir int

	// StepPeriod is how many frames pass between single-column steps.
	StepPeriod int
}

// LenForLevel returns the paddle length for a level. The paddle gets
// shorter as the game goes on, floored at a minimum.
func LenForLevel(level, baseLen, minLen, shrinkEvery int) int {
	if shrinkEvery <= 0 {
		shrinkEvery = 1
	}
	return core.Max(baseLen-2*(level/shrinkEvery), minLen)
}

// Move shifts the paddle's span by exactly one column in its direction,
// updating the board's trailing and leading cells. Motion that would push
// either edge past a wall is rejected; the paddle stops there while Dir
// stays set.
func (p *Paddle) Move(b *Board) {
	switch {
	case p.Dir < 0 && p.X-1 >= 0:
		b.Set(p.X-1, p.Y, Tile{Kind: TilePaddle})
		b.Set(p.X+p.Len-1, p.Y, Tile{})
		p.X--
	case p.Dir > 0 && p.X+p.Len+1 <= b.W:
		b.Set(p.X+p.Len, p.Y, Tile{Kind: TilePaddle})
		b.Set(p.X, p.Y, Tile{})
		p.X++
	}
}

// Recenter moves the paddle to the horizontal center of the board and
// redraws its row, clearing any stale cells. Called at the start of every
// life.
func (p *Paddle) Recenter(b *Board) {
	p.X = (b.W - p.Len) / 2
	p.Dir = 0
	p.LastDir = 0
	for x := 0; x < b.W; x++ {
		b.Set(x, p.Y, Tile{})
	}
	for i := 0; i < p.Len; i++ {
		b.Set(p.X+i, p.Y, Tile{Kind: TilePaddle})
	}
}

// ToggleFreeze stops a moving paddle, remembering its direction, or resumes
// the remembered direction of a frozen one.
func (p *Paddle) ToggleFreeze() {
	if p.Dir != 0 {
		p.LastDir = p.Dir
		p.Dir = 0
	} else {
		p.Dir = p.LastDir
		p.LastDir = 0
	}
}
