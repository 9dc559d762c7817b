// Package kingdom defines the tiles and boards that make up a player's kingdom.
package kingdom

import (
	"fmt"
	"strings"
)

// Terrain represents the land type printed on a tile.
// The zero value means no tile has been placed in the cell.
type Terrain int

const (
	TerrainNone Terrain = iota
	TerrainGrass
	TerrainWater
	TerrainForest
	TerrainWheat
	TerrainSwamp
	TerrainMine
	TerrainEmpty // playable, distinct from TerrainNone
)

// Terrains lists every placeable terrain in display order.
var Terrains = []Terrain{
	TerrainGrass,
	TerrainWater,
	TerrainForest,
	TerrainWheat,
	TerrainSwamp,
	TerrainMine,
	TerrainEmpty,
}

// String returns the terrain name.
func (t Terrain) String() string {
	switch t {
	case TerrainGrass:
		return "grass"
	case TerrainWater:
		return "water"
	case TerrainForest:
		return "forest"
	case TerrainWheat:
		return "wheat"
	case TerrainSwamp:
		return "swamp"
	case TerrainMine:
		return "mine"
	case TerrainEmpty:
		return "empty"
	case TerrainNone:
		return "none"
	default:
		return fmt.Sprintf("terrain(%d)", int(t))
	}
}

// Symbol returns a single-letter code used when rendering boards.
func (t Terrain) Symbol() byte {
	switch t {
	case TerrainGrass:
		return 'G'
	case TerrainWater:
		return 'W'
	case TerrainForest:
		return 'F'
	case TerrainWheat:
		return 'H'
	case TerrainSwamp:
		return 'S'
	case TerrainMine:
		return 'M'
	case TerrainEmpty:
		return 'E'
	default:
		return '.'
	}
}

// IsSet returns true if the cell holds a placed tile.
func (t Terrain) IsSet() bool {
	return t != TerrainNone
}

// Valid returns true for TerrainNone and every placeable terrain.
func (t Terrain) Valid() bool {
	return t >= TerrainNone && t <= TerrainEmpty
}

// ParseTerrain converts a terrain name to a Terrain.
// An empty string and "none" both parse as TerrainNone.
func ParseTerrain(s string) (Terrain, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return TerrainNone, nil
	case "grass":
		return TerrainGrass, nil
	case "water":
		return TerrainWater, nil
	case "forest":
		return TerrainForest, nil
	case "wheat":
		return TerrainWheat, nil
	case "swamp":
		return TerrainSwamp, nil
	case "mine":
		return TerrainMine, nil
	case "empty":
		return TerrainEmpty, nil
	default:
		return TerrainNone, fmt.Errorf("%w: unknown terrain %q", ErrInvalidTile, s)
	}
}

// MarshalText encodes the terrain by name.
func (t Terrain) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: unknown terrain %d", ErrInvalidTile, int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText decodes a terrain name.
func (t *Terrain) UnmarshalText(text []byte) error {
	parsed, err := ParseTerrain(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
