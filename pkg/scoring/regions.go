package scoring

import "kingdomino/internal/kingdom"

// Region is a maximal group of orthogonally connected tiles of one terrain.
type Region struct {
	Terrain kingdom.Terrain    `json:"terrain"`
	Cells   []kingdom.Position `json:"cells"`
	Crowns  int                `json:"crowns"`
	Score   int                `json:"score"` // len(Cells) * Crowns
}

// Size returns the number of cells in the region.
func (r Region) Size() int {
	return len(r.Cells)
}

var dirs = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Regions returns every region on the board, seeded in row-major order.
func Regions(b *kingdom.Board) []Region {
	visited := make([][]bool, b.Rows)
	for r := range visited {
		visited[r] = make([]bool, b.Cols)
	}

	var regions []Region
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			if visited[r][c] || !b.Tiles[r][c].Terrain.IsSet() {
				continue
			}
			regions = append(regions, floodFill(b, r, c, visited))
		}
	}
	return regions
}

// floodFill collects the region containing (startRow, startCol).
func floodFill(b *kingdom.Board, startRow, startCol int, visited [][]bool) Region {
	terrain := b.Tiles[startRow][startCol].Terrain
	region := Region{Terrain: terrain}

	queue := []kingdom.Position{{Row: startRow, Col: startCol}}
	visited[startRow][startCol] = true

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		region.Cells = append(region.Cells, current)
		region.Crowns += b.Tiles[current.Row][current.Col].Crowns

		for _, d := range dirs {
			nr, nc := current.Row+d[0], current.Col+d[1]
			if nr < 0 || nr >= b.Rows || nc < 0 || nc >= b.Cols {
				continue
			}
			if visited[nr][nc] || b.Tiles[nr][nc].Terrain != terrain {
				continue
			}
			visited[nr][nc] = true
			queue = append(queue, kingdom.Position{Row: nr, Col: nc})
		}
	}

	region.Score = len(region.Cells) * region.Crowns
	return region
}

// TerrainScore sums size times crowns over every region on the board.
func TerrainScore(b *kingdom.Board) int {
	total := 0
	for _, region := range Regions(b) {
		total += region.Score
	}
	return total
}
