package boards

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"kingdomino/internal/kingdom"
)

// GeneratorOptions contains settings for kingdom generation.
type GeneratorOptions struct {
	Size        int   // Kingdom side length: 1-7
	Tiles       int   // Tiles to place, 0 = fill the whole kingdom
	Seed        int64 // 0 = seed from the clock
	CrownChance int   // Percentage of tiles carrying crowns: 0-100
	Clumping    int   // Percentage chance a tile copies a neighbour's terrain: 0-100
}

// DefaultGeneratorOptions returns options for a standard 5x5 kingdom.
func DefaultGeneratorOptions() GeneratorOptions {
	return GeneratorOptions{
		Size:        DefaultSize,
		CrownChance: 30,
		Clumping:    60,
	}
}

// GeneratorStep records one tile being placed.
type GeneratorStep struct {
	Position kingdom.Position
	Tile     kingdom.Tile
}

// Generator handles random kingdom generation.
//
// The castle sits at the centre of a (2*Size-1) square board so that any
// Size x Size kingdom around it fits. Tiles grow outward from the castle and
// never stretch the kingdom beyond Size in either direction.
type Generator struct {
	options GeneratorOptions
	rng     *rand.Rand
	size    int
	dim     int
	castle  kingdom.Position
	grid    [][]kingdom.Tile
	placed  [][]bool
	box     [4]int // minRow, maxRow, minCol, maxCol
	steps   []GeneratorStep
}

// NewGenerator creates a new kingdom generator.
func NewGenerator(opts GeneratorOptions) *Generator {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Generator{
		options: opts,
		rng:     rand.New(rand.NewSource(seed)),
		size:    clamp(opts.Size, 1, 7),
	}
	g.dim = 2*g.size - 1
	g.castle = kingdom.Position{Row: g.size - 1, Col: g.size - 1}
	g.options.CrownChance = clamp(opts.CrownChance, 0, 100)
	g.options.Clumping = clamp(opts.Clumping, 0, 100)

	return g
}

// clamp restricts a value to a range
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Generate creates the kingdom.
func (g *Generator) Generate() (*Kingdom, []GeneratorStep) {
	g.grid = make([][]kingdom.Tile, g.dim)
	g.placed = make([][]bool, g.dim)
	for r := range g.grid {
		g.grid[r] = make([]kingdom.Tile, g.dim)
		g.placed[r] = make([]bool, g.dim)
	}
	g.steps = make([]GeneratorStep, 0)

	// The castle occupies its cell but carries no terrain.
	g.placed[g.castle.Row][g.castle.Col] = true
	g.box = [4]int{g.castle.Row, g.castle.Row, g.castle.Col, g.castle.Col}

	target := g.options.Tiles
	if target <= 0 || target > g.size*g.size-1 {
		target = g.size*g.size - 1
	}

	for len(g.steps) < target {
		frontier := g.frontier()
		if len(frontier) == 0 {
			break
		}
		p := frontier[g.rng.Intn(len(frontier))]
		g.place(p, g.randomTile(p))
	}

	return g.buildKingdom(), g.steps
}

// frontier returns free cells next to the kingdom that keep it within size.
func (g *Generator) frontier() []kingdom.Position {
	var cells []kingdom.Position
	dirs := [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

	for r := g.box[0] - 1; r <= g.box[1]+1; r++ {
		for c := g.box[2] - 1; c <= g.box[3]+1; c++ {
			if r < 0 || r >= g.dim || c < 0 || c >= g.dim || g.placed[r][c] {
				continue
			}
			if max(g.box[1], r)-min(g.box[0], r)+1 > g.size || max(g.box[3], c)-min(g.box[2], c)+1 > g.size {
				continue
			}
			for _, d := range dirs {
				nr, nc := r+d[0], c+d[1]
				if nr >= 0 && nr < g.dim && nc >= 0 && nc < g.dim && g.placed[nr][nc] {
					cells = append(cells, kingdom.Position{Row: r, Col: c})
					break
				}
			}
		}
	}
	return cells
}

// randomTile picks a terrain, often copying a placed neighbour so regions form.
func (g *Generator) randomTile(p kingdom.Position) kingdom.Tile {
	var tile kingdom.Tile

	if g.rng.Intn(100) < g.options.Clumping {
		var neighbours []kingdom.Terrain
		for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			nr, nc := p.Row+d[0], p.Col+d[1]
			if nr >= 0 && nr < g.dim && nc >= 0 && nc < g.dim && g.grid[nr][nc].Terrain.IsSet() {
				neighbours = append(neighbours, g.grid[nr][nc].Terrain)
			}
		}
		if len(neighbours) > 0 {
			tile.Terrain = neighbours[g.rng.Intn(len(neighbours))]
		}
	}
	if !tile.Terrain.IsSet() {
		// Empty tiles are rare in the base game.
		tile.Terrain = kingdom.Terrains[g.rng.Intn(len(kingdom.Terrains)-1)]
	}

	if g.rng.Intn(100) < g.options.CrownChance {
		switch n := g.rng.Intn(10); {
		case n < 7:
			tile.Crowns = 1
		case n < 9:
			tile.Crowns = 2
		default:
			tile.Crowns = 3
		}
	}

	return tile
}

func (g *Generator) place(p kingdom.Position, tile kingdom.Tile) {
	g.grid[p.Row][p.Col] = tile
	g.placed[p.Row][p.Col] = true
	g.box[0] = min(g.box[0], p.Row)
	g.box[1] = max(g.box[1], p.Row)
	g.box[2] = min(g.box[2], p.Col)
	g.box[3] = max(g.box[3], p.Col)
	g.steps = append(g.steps, GeneratorStep{Position: p, Tile: tile})
}

// buildKingdom wraps the grid with a viewport over the grown kingdom.
func (g *Generator) buildKingdom() *Kingdom {
	b, err := kingdom.NewBoard(g.grid)
	if err != nil {
		// Generated tiles are always valid.
		panic(fmt.Sprintf("generator produced invalid board: %v", err))
	}

	origin := kingdom.Position{
		Row: clamp(g.box[0], 0, g.dim-g.size),
		Col: clamp(g.box[2], 0, g.dim-g.size),
	}

	return &Kingdom{
		ID:     "gen-" + uuid.New().String()[:8],
		Name:   fmt.Sprintf("Generated %dx%d kingdom", g.size, g.size),
		Board:  b,
		Castle: g.castle,
		Origin: origin,
		Size:   g.size,
	}
}
