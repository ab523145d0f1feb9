package game

// Board stores the playfield tiles in row-major order.
type Board struct {
	W, H  int
	tiles []Tile
}

// NewBoard allocates an empty board with the given dimensions.
func NewBoard(w, h int) *Board {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Board{W: w, H: h, tiles: make([]Tile, w*h)}
}

// InBounds reports whether (x, y) is a valid cell.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// Index returns the linear slice index for coordinates (x, y).
func (b *Board) Index(x, y int) int { return y*b.W + x }

// At returns the tile at (x, y). Out-of-bounds reads return a zero tile.
func (b *Board) At(x, y int) Tile {
	if !b.InBounds(x, y) {
		return Tile{}
	}
	return b.tiles[y*b.W+x]
}

// Set stores a tile at (x, y). Out-of-bounds writes are ignored.
func (b *Board) Set(x, y int, t Tile) {
	if !b.InBounds(x, y) {
		return
	}
	b.tiles[y*b.W+x] = t
}

// Clone returns a deep copy of the board for speculative simulation.
func (b *Board) Clone() *Board {
	c := &Board{W: b.W, H: b.H, tiles: make([]Tile, len(b.tiles))}
	copy(c.tiles, b.tiles)
	return c
}

// Pathogens counts pathogen tiles.
func (b *Board) Pathogens() int {
	n := 0
	for _, t := range b.tiles {
		if t.Kind == PathogenTile {
			n++
		}
	}
	return n
}

// Medicines counts medicine tiles.
func (b *Board) Medicines() int {
	n := 0
	for _, t := range b.tiles {
		if t.Kind == MedicineTile {
			n++
		}
	}
	return n
}

// Walls counts wall tiles.
func (b *Board) Walls() int {
	n := 0
	for _, t := range b.tiles {
		if t.Kind == Wall {
			n++
		}
	}
	return n
}

// PlayableCells returns the number of non-wall cells.
func (b *Board) PlayableCells() int {
	return len(b.tiles) - b.Walls()
}

// InfectionFraction returns pathogens divided by playable cells, or 0 when no
// cell is playable. The result is always in [0, 1].
func (b *Board) InfectionFraction() float64 {
	playable := b.PlayableCells()
	if playable == 0 {
		return 0
	}
	return float64(b.Pathogens()) / float64(playable)
}
