// Package boards handles kingdom board loading, rendering, and generation.
package boards

import (
	"kingdomino/internal/kingdom"
	"kingdomino/pkg/scoring"
)

// DefaultSize is the side length of a standard two-player kingdom.
const DefaultSize = 5

// RawBoard is the format stored in JSON files.
type RawBoard struct {
	ID     string           `json:"id"`
	Name   string           `json:"name"`
	Size   int              `json:"size,omitempty"` // Viewport side length, 5 if omitted
	Castle kingdom.Position `json:"castle"`
	Origin kingdom.Position `json:"origin"` // Top-left of the viewport
	Tiles  [][]*RawTile     `json:"tiles"`  // null = no tile placed
}

// RawTile is a placed tile in a board file.
type RawTile struct {
	Terrain string `json:"terrain"`
	Crowns  int    `json:"crowns,omitempty"`
}

// Kingdom is a validated board together with its scoring parameters.
type Kingdom struct {
	ID     string
	Name   string
	Board  *kingdom.Board
	Castle kingdom.Position
	Origin kingdom.Position
	Size   int
}

// Score scores the kingdom with its stored castle and viewport.
func (k *Kingdom) Score() (scoring.Result, error) {
	return scoring.Score(k.Board, k.Castle, k.Origin, k.Size)
}

// Raw converts the kingdom back to its file format.
func (k *Kingdom) Raw() *RawBoard {
	raw := &RawBoard{
		ID:     k.ID,
		Name:   k.Name,
		Size:   k.Size,
		Castle: k.Castle,
		Origin: k.Origin,
		Tiles:  make([][]*RawTile, k.Board.Rows),
	}
	for r, row := range k.Board.Tiles {
		raw.Tiles[r] = make([]*RawTile, k.Board.Cols)
		for c, tile := range row {
			if !tile.Terrain.IsSet() {
				continue
			}
			raw.Tiles[r][c] = &RawTile{Terrain: tile.Terrain.String(), Crowns: tile.Crowns}
		}
	}
	return raw
}

// BoardInfo contains basic board information for listing.
type BoardInfo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Rows   int    `json:"rows"`
	Cols   int    `json:"cols"`
	Size   int    `json:"size"`
	Placed int    `json:"placed"`
}
