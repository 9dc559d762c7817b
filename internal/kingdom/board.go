package kingdom

import "fmt"

// Tile is a single placed square of a domino.
type Tile struct {
	Terrain Terrain `json:"terrain"`
	Crowns  int     `json:"crowns"`
}

// Validate checks that the tile is internally consistent.
func (t Tile) Validate() error {
	if !t.Terrain.Valid() {
		return fmt.Errorf("%w: unknown terrain %d", ErrInvalidTile, int(t.Terrain))
	}
	if t.Crowns < 0 {
		return fmt.Errorf("%w: negative crowns %d", ErrInvalidTile, t.Crowns)
	}
	if !t.Terrain.IsSet() && t.Crowns != 0 {
		return fmt.Errorf("%w: %d crowns on an unset cell", ErrInvalidTile, t.Crowns)
	}
	return nil
}

// Position is a cell coordinate on a board.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String returns the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Board is a rectangular grid of tiles. Boards are built with NewBoard and
// are not modified afterwards.
type Board struct {
	Rows  int
	Cols  int
	Tiles [][]Tile // Tiles[row][col]
}

// NewBoard validates the grid and returns a board holding its own copy.
func NewBoard(tiles [][]Tile) (*Board, error) {
	b := &Board{Rows: len(tiles)}
	if b.Rows > 0 {
		b.Cols = len(tiles[0])
	}

	b.Tiles = make([][]Tile, b.Rows)
	for r, row := range tiles {
		if len(row) != b.Cols {
			return nil, fmt.Errorf("%w: row %d width mismatch: expected %d, got %d", ErrInvalidBoard, r, b.Cols, len(row))
		}
		for c, tile := range row {
			if err := tile.Validate(); err != nil {
				return nil, fmt.Errorf("cell %s: %w", Position{Row: r, Col: c}, err)
			}
		}
		b.Tiles[r] = make([]Tile, b.Cols)
		copy(b.Tiles[r], row)
	}

	return b, nil
}

// EmptyBoard returns a board of the given size with no tiles placed.
func EmptyBoard(rows, cols int) *Board {
	b := &Board{Rows: rows, Cols: cols, Tiles: make([][]Tile, rows)}
	for r := range b.Tiles {
		b.Tiles[r] = make([]Tile, cols)
	}
	return b
}

// InBounds returns true if p lies on the board.
func (b *Board) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < b.Rows && p.Col >= 0 && p.Col < b.Cols
}

// At returns the tile at p.
// Returns the unset tile if p is out of bounds.
func (b *Board) At(p Position) Tile {
	if !b.InBounds(p) {
		return Tile{}
	}
	return b.Tiles[p.Row][p.Col]
}

// PlacedCount returns the number of cells holding a tile.
func (b *Board) PlacedCount() int {
	count := 0
	for _, row := range b.Tiles {
		for _, tile := range row {
			if tile.Terrain.IsSet() {
				count++
			}
		}
	}
	return count
}
