// Package game implements the tile-grid Breakout core: board state, ball and
// paddle motion resolvers, and the level/life director. The package contains
// pure logic with no terminal dependencies; rendering targets a core.Screen
// buffer and the platform layer maps it to the display.
package game

// BlockColor is the color of a destroyable block.
type BlockColor int

const (
	BlockRed BlockColor = iota
	BlockBlue
	BlockGreen
	blockColorCount // Sentinel for random color draws
)

// String returns the color name.
func (c BlockColor) String() string {
	switch c {
	case BlockRed:
		return "Red"
	case BlockBlue:
		return "Blue"
	case BlockGreen:
		return "Green"
	default:
		return "Unknown"
	}
}

// TileKind identifies what occupies a board cell.
type TileKind int

const (
	TileEmpty TileKind = iota
	TileBall
	TilePaddle
	TileBlock
)

// Tile is the occupant state of one board cell. What occupies the cell is
// decoupled from the color drawn for it: Color is meaningful only for
// TileBlock tiles.
type Tile struct {
	Kind  TileKind
	Color BlockColor
}

// Empty returns true for an empty tile.
func (t Tile) Empty() bool {
	return t.Kind == TileEmpty
}
