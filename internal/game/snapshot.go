package game

// Snapshot contains the complete game state for replay and determinism
// checks. Uses primitive types only for stable serialization.
type Snapshot struct {
	Frame      uint64
	Score      int
	Lives      int
	Level      int
	BlocksLeft int
	State      string

	BallX, BallY       int
	BallXVel, BallYVel int
	BallXDir, BallYDir int

	PaddleX   int
	PaddleLen int
	PaddleDir int

	// Board tiles, flattened row-major (y*W + x). Each tile is 2 ints:
	// kind, color.
	BoardW, BoardH int
	BoardData      []int

	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	boardData := make([]int, g.board.W*g.board.H*2)
	for y := 0; y < g.board.H; y++ {
		for x := 0; x < g.board.W; x++ {
			idx := (y*g.board.W + x) * 2
			t := g.board.At(x, y)
			boardData[idx] = int(t.Kind)
			boardData[idx+1] = int(t.Color)
		}
	}

	return Snapshot{
		Frame:      g.frame,
		Score:      g.score,
		Lives:      g.lives,
		Level:      g.level,
		BlocksLeft: g.blocksLeft,
		State:      g.state,

		BallX:    g.ball.X,
		BallY:    g.ball.Y,
		BallXVel: g.ball.XVel,
		BallYVel: g.ball.YVel,
		BallXDir: g.ball.XDir,
		BallYDir: g.ball.YDir,

		PaddleX:   g.paddle.X,
		PaddleLen: g.paddle.Len,
		PaddleDir: g.paddle.Dir,

		BoardW:    g.board.W,
		BoardH:    g.board.H,
		BoardData: boardData,

		RNGState: g.rng.state,
	}
}

// ApplySnapshot restores game state from a snapshot.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.frame = snap.Frame
	g.score = snap.Score
	g.lives = snap.Lives
	g.level = snap.Level
	g.blocksLeft = snap.BlocksLeft
	g.state = snap.State

	g.ball.X = snap.BallX
	g.ball.Y = snap.BallY
	g.ball.XVel = snap.BallXVel
	g.ball.YVel = snap.BallYVel
	g.ball.XDir = snap.BallXDir
	g.ball.YDir = snap.BallYDir

	g.paddle.X = snap.PaddleX
	g.paddle.Len = snap.PaddleLen
	g.paddle.Dir = snap.PaddleDir

	if snap.BoardW == g.board.W && snap.BoardH == g.board.H &&
		len(snap.BoardData) == g.board.W*g.board.H*2 {
		for y := 0; y < g.board.H; y++ {
			for x := 0; x < g.board.W; x++ {
				idx := (y*g.board.W + x) * 2
				g.board.Set(x, y, Tile{
					Kind:  TileKind(snap.BoardData[idx]),
					Color: BlockColor(snap.BoardData[idx+1]),
				})
			}
		}
	}

	g.rng.state = snap.RNGState
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BlocksLeft) //#nosec G115 -- hash computation

	for _, c := range snap.State {
		h = h*31 + uint64(c)
	}

	h = h*31 + uint64(snap.BallX)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallY)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallXVel) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallYVel) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallXDir) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallYDir) //#nosec G115 -- hash computation

	h = h*31 + uint64(snap.PaddleX)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PaddleLen) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PaddleDir) //#nosec G115 -- hash computation

	for _, v := range snap.BoardData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState

	return h
}
