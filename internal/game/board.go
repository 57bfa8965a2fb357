package game

import "github.com/breakout-tui/breakout/internal/core"

// Board is a fixed-size 2D grid of tiles. It is created once per level and
// mutated in place by the ball and paddle resolvers; it is never resized
// during a level.
type Board struct {
	W, H  int
	tiles [][]Tile
}

// NewBoard creates an empty board with the given dimensions.
func NewBoard(w, h int) *Board {
	b := &Board{W: w, H: h}
	b.tiles = make([][]Tile, h)
	for y := range b.tiles {
		b.tiles[y] = make([]Tile, w)
	}
	return b
}

// InBounds reports whether (x, y) is a valid board coordinate.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// At returns the tile at (x, y). Out-of-bounds coordinates return an empty
// tile; resolvers validate coordinates before relying on the result.
func (b *Board) At(x, y int) Tile {
	if !b.InBounds(x, y) {
		return Tile{}
	}
	return b.tiles[y][x]
}

// Set places a tile at (x, y). Out-of-bounds coordinates are ignored.
func (b *Board) Set(x, y int, t Tile) {
	if !b.InBounds(x, y) {
		return
	}
	b.tiles[y][x] = t
}

// Clear resets every cell to empty.
func (b *Board) Clear() {
	for y := range b.tiles {
		for x := range b.tiles[y] {
			b.tiles[y][x] = Tile{}
		}
	}
}

// CountBlocks returns the number of cells currently holding a block tile.
func (b *Board) CountBlocks() int {
	count := 0
	for y := range b.tiles {
		for x := range b.tiles[y] {
			if b.tiles[y][x].Kind == TileBlock {
				count++
			}
		}
	}
	return count
}

// DestroyPair removes the block at (x, y) together with its horizontal
// partner. Blocks are generated in pairs whose first cell is always at an
// odd x, so the partner is at x+1 when the struck x is odd and at x-1 when
// it is even. Both cells become empty. Returns the partner's x coordinate.
func (b *Board) DestroyPair(x, y int) int {
	offset := -1
	if x%2 == 1 {
		offset = 1
	}
	b.Set(x, y, Tile{})
	b.Set(x+offset, y, Tile{})
	return x + offset
}

// MaxBlockRow returns the lowest row (exclusive) at which blocks generate
// for the given level. The block field deepens as levels progress, capped
// at five-sixths of the board height.
func MaxBlockRow(level, height int) int {
	return height/3 + core.Min(level/2, height/2)
}

// Generate populates a cleared board for a level: the paddle's span, the
// ball's cell, and a field of block pairs. For every odd x from 3 up to
// W-3, for every row from 3 up to maxBlockRow, one pair (x, x+1) is placed
// with a uniformly random color. Returns the number of pairs generated,
// which seeds the remaining-block counter.
func (b *Board) Generate(maxBlockRow int, paddle *Paddle, ball *Ball, rng *SimpleRNG) int {
	b.Clear()

	for i := 0; i < paddle.Len; i++ {
		b.Set(paddle.X+i, paddle.Y, Tile{Kind: TilePaddle})
	}
	b.Set(ball.X, ball.Y, Tile{Kind: TileBall})

	pairs := 0
	for x := 3; x < b.W-3; x += 2 {
		for y := 3; y < maxBlockRow; y++ {
			color := BlockColor(rng.Intn(int(blockColorCount)))
			b.Set(x, y, Tile{Kind: TileBlock, Color: color})
			b.Set(x+1, y, Tile{Kind: TileBlock, Color: color})
			pairs++
		}
	}
	return pairs
}
