package game

import "testing"

func TestBoardOutOfBounds(t *testing.T) {
	b := NewBoard(60, 36)

	if !b.At(-1, 0).Empty() || !b.At(0, -1).Empty() || !b.At(60, 0).Empty() || !b.At(0, 36).Empty() {
		t.Error("Out-of-bounds At should return an empty tile")
	}

	// Out-of-bounds Set should be a no-op, not a panic
	b.Set(-1, 0, Tile{Kind: TileBall})
	b.Set(60, 36, Tile{Kind: TileBall})

	if b.CountBlocks() != 0 {
		t.Error("Empty board should have no blocks")
	}
}

func TestDestroyPairPartner(t *testing.T) {
	tests := []struct {
		name     string
		struckX  int
		partnerX int
	}{
		{"odd x partners right", 9, 10},
		{"even x partners left", 10, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard(60, 36)
			b.Set(9, 5, Tile{Kind: TileBlock, Color: BlockBlue})
			b.Set(10, 5, Tile{Kind: TileBlock, Color: BlockBlue})

			partner := b.DestroyPair(tt.struckX, 5)

			if partner != tt.partnerX {
				t.Errorf("Partner x = %d, expected %d", partner, tt.partnerX)
			}
			if b.At(9, 5).Kind != TileEmpty || b.At(10, 5).Kind != TileEmpty {
				t.Error("Both pair cells should be empty after destroy")
			}
		})
	}
}

func TestMaxBlockRow(t *testing.T) {
	tests := []struct {
		level, height, want int
	}{
		{1, 36, 12},
		{2, 36, 13},
		{10, 36, 17},
		{36, 36, 30},  // Capped at height/3 + height/2
		{100, 36, 30}, // Still capped
	}

	for _, tt := range tests {
		if got := MaxBlockRow(tt.level, tt.height); got != tt.want {
			t.Errorf("MaxBlockRow(%d, %d) = %d, expected %d", tt.level, tt.height, got, tt.want)
		}
	}
}

func TestGenerate(t *testing.T) {
	b := NewBoard(60, 36)
	paddle := &Paddle{X: 20, Y: 33, Len: 20}
	ball := &Ball{X: 30, Y: 22}
	rng := NewSimpleRNG(42)

	pairs := b.Generate(MaxBlockRow(1, 36), paddle, ball, rng)

	if pairs <= 0 {
		t.Fatal("Generate should place at least one pair")
	}
	if b.CountBlocks() != pairs*2 {
		t.Errorf("Block cell count %d should be twice the pair count %d", b.CountBlocks(), pairs)
	}

	// Level 1, height 36: odd x in [3, 57), rows [3, 12) -> 27 columns, 9 rows
	if pairs != 27*9 {
		t.Errorf("Expected %d pairs at level 1, got %d", 27*9, pairs)
	}

	if b.At(ball.X, ball.Y).Kind != TileBall {
		t.Error("Ball cell should be placed")
	}
	for i := 0; i < paddle.Len; i++ {
		if b.At(paddle.X+i, paddle.Y).Kind != TilePaddle {
			t.Fatalf("Paddle cell (%d, %d) missing", paddle.X+i, paddle.Y)
		}
	}
}

func TestGeneratePairingInvariant(t *testing.T) {
	b := NewBoard(60, 36)
	paddle := &Paddle{X: 20, Y: 33, Len: 20}
	ball := &Ball{X: 30, Y: 22}
	rng := NewSimpleRNG(7)

	b.Generate(MaxBlockRow(5, 36), paddle, ball, rng)

	// Every block at odd x must have a same-color partner at x+1.
	for y := 0; y < b.H; y++ {
		for x := 1; x < b.W; x += 2 {
			tile := b.At(x, y)
			if tile.Kind != TileBlock {
				continue
			}
			partner := b.At(x+1, y)
			if partner.Kind != TileBlock {
				t.Fatalf("Block at (%d, %d) has no partner", x, y)
			}
			if partner.Color != tile.Color {
				t.Fatalf("Pair at (%d, %d) has mismatched colors %v and %v", x, y, tile.Color, partner.Color)
			}
		}
	}
}

func TestGenerateConservation(t *testing.T) {
	b := NewBoard(60, 36)
	paddle := &Paddle{X: 20, Y: 33, Len: 20}
	ball := &Ball{X: 30, Y: 22}
	rng := NewSimpleRNG(3)

	remaining := b.Generate(MaxBlockRow(1, 36), paddle, ball, rng)

	// Destroying pairs one at a time must drain the counter to zero
	// exactly when the board has no block tiles left.
	for y := 0; y < b.H && remaining > 0; y++ {
		for x := 1; x < b.W; x += 2 {
			if b.At(x, y).Kind != TileBlock {
				continue
			}
			b.DestroyPair(x, y)
			remaining--
		}
	}

	if remaining != 0 {
		t.Errorf("Counter should reach zero, got %d", remaining)
	}
	if b.CountBlocks() != 0 {
		t.Errorf("Board should have no blocks left, got %d", b.CountBlocks())
	}
}

func TestGenerateDeterminism(t *testing.T) {
	colorsAt := func(seed int64) []BlockColor {
		b := NewBoard(60, 36)
		paddle := &Paddle{X: 20, Y: 33, Len: 20}
		ball := &Ball{X: 30, Y: 22}
		b.Generate(MaxBlockRow(1, 36), paddle, ball, NewSimpleRNG(seed))

		var colors []BlockColor
		for y := 0; y < b.H; y++ {
			for x := 0; x < b.W; x++ {
				if t := b.At(x, y); t.Kind == TileBlock {
					colors = append(colors, t.Color)
				}
			}
		}
		return colors
	}

	a := colorsAt(1234)
	b := colorsAt(1234)
	if len(a) != len(b) {
		t.Fatal("Same seed should generate the same board")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Color mismatch at index %d: %v vs %v", i, a[i], b[i])
		}
	}
}
