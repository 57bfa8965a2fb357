package game

// Ball is the ball entity. XVel and YVel are frame-count periods, not
// distance rates: the ball advances one cell on an axis every XVel (or YVel)
// frames, so a larger period means a slower ball. XDir and YDir are ±1.
type Ball struct {
	X, Y       int
	XVel, YVel int
	XDir, YDir int

	// BounceLo and BounceHi bound the fresh period draw after a paddle
	// bounce: [BounceLo, BounceHi).
	BounceLo, BounceHi int
}

// StepOutcome reports what the ball resolver did this frame.
type StepOutcome struct {
	// InPlay is false when the ball exited the bottom of the field.
	InPlay bool

	// Destroyed is true when a block pair was removed this frame.
	// BlockX and BlockY are the struck cell's coordinates.
	Destroyed      bool
	BlockX, BlockY int
}

// Step advances the ball for one frame, resolving collision against the
// candidate destination cell in strict priority order. The ball only
// relocates on an open move; every bounce branch flips direction signs and
// leaves the position alone until a later frame finds an open cell.
func (ball *Ball) Step(frame uint64, b *Board, rng *SimpleRNG) StepOutcome {
	nextX, nextY := ball.X, ball.Y
	if frame%uint64(ball.XVel) == 0 {
		nextX += ball.XDir
	}
	if frame%uint64(ball.YVel) == 0 {
		nextY += ball.YDir
	}

	// Neither axis was due this frame.
	if nextX == ball.X && nextY == ball.Y {
		return StepOutcome{InPlay: true}
	}

	// Past the bottom row: the life is over, nothing else to resolve.
	if nextY >= b.H {
		return StepOutcome{InPlay: false}
	}

	switch {
	case nextX >= 0 && nextX < b.W && nextY >= 0 && b.At(nextX, nextY).Empty():
		b.Set(ball.X, ball.Y, Tile{})
		b.Set(nextX, nextY, Tile{Kind: TileBall})
		ball.X, ball.Y = nextX, nextY

	// Stuck in a corner: invert both directions to break out.
	case nextY == 0 && (nextX == 0 || nextX == b.W-1):
		ball.XDir = -ball.XDir
		ball.YDir = -ball.YDir

	case nextX <= 0 || nextX >= b.W:
		ball.XDir = -ball.XDir

	case nextY <= 0:
		ball.YDir = -ball.YDir

	case b.At(nextX, nextY).Kind == TilePaddle:
		// Without the y inversion the ball just rolls along the paddle.
		ball.YDir = -ball.YDir
		if rng.Coin() {
			ball.XDir = -ball.XDir
		}
		ball.XVel = rng.Between(ball.BounceLo, ball.BounceHi)
		ball.YVel = rng.Between(ball.BounceLo, ball.BounceHi)

	default:
		// Anything left is a block.
		b.DestroyPair(nextX, nextY)
		if rng.Coin() {
			ball.XDir = -ball.XDir
		}
		if rng.Coin() {
			ball.YDir = -ball.YDir
		}
		return StepOutcome{InPlay: true, Destroyed: true, BlockX: nextX, BlockY: nextY}
	}

	return StepOutcome{InPlay: true}
}
