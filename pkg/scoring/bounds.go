package scoring

import "kingdomino/internal/kingdom"

// Box is an inclusive rectangle of board cells.
type Box struct {
	MinRow int `json:"minRow"`
	MaxRow int `json:"maxRow"`
	MinCol int `json:"minCol"`
	MaxCol int `json:"maxCol"`
}

// Empty returns true if the box covers no cells.
func (bx Box) Empty() bool {
	return bx.MinRow > bx.MaxRow || bx.MinCol > bx.MaxCol
}

// Height returns the number of rows covered.
func (bx Box) Height() int {
	if bx.Empty() {
		return 0
	}
	return bx.MaxRow - bx.MinRow + 1
}

// Width returns the number of columns covered.
func (bx Box) Width() int {
	if bx.Empty() {
		return 0
	}
	return bx.MaxCol - bx.MinCol + 1
}

// IsSquare returns true if the box is exactly size x size.
func (bx Box) IsSquare(size int) bool {
	return !bx.Empty() && bx.Height() == size && bx.Width() == size
}

// Center returns the middle cell, rounding down on even extents.
func (bx Box) Center() kingdom.Position {
	return kingdom.Position{
		Row: (bx.MinRow + bx.MaxRow) / 2,
		Col: (bx.MinCol + bx.MaxCol) / 2,
	}
}

// BoundingBox returns the smallest box holding every placed tile and the
// castle. An off-board castle is ignored, so the result may be empty.
func BoundingBox(b *kingdom.Board, castle kingdom.Position) Box {
	bx := Box{MinRow: b.Rows, MaxRow: -1, MinCol: b.Cols, MaxCol: -1}

	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			isCastle := r == castle.Row && c == castle.Col
			if !isCastle && !b.Tiles[r][c].Terrain.IsSet() {
				continue
			}
			bx.MinRow = min(bx.MinRow, r)
			bx.MaxRow = max(bx.MaxRow, r)
			bx.MinCol = min(bx.MinCol, c)
			bx.MaxCol = max(bx.MaxCol, c)
		}
	}

	return bx
}
