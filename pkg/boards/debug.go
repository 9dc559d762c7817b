package boards

import (
	"fmt"
	"strings"

	"kingdomino/pkg/scoring"
)

// Grid returns the board as text, one cell per terrain letter and crown
// count. Unset cells print as "..", the castle as "##".
func (k *Kingdom) Grid() string {
	var sb strings.Builder

	for r, row := range k.Board.Tiles {
		for c, tile := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			switch {
			case r == k.Castle.Row && c == k.Castle.Col && !tile.Terrain.IsSet():
				sb.WriteString("##")
			case !tile.Terrain.IsSet():
				sb.WriteString("..")
			default:
				sb.WriteByte(tile.Terrain.Symbol())
				sb.WriteString(fmt.Sprintf("%d", tile.Crowns))
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// Debug returns a string visualization of the kingdom and its regions.
func (k *Kingdom) Debug() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Board: %s (%s)\n", k.Name, k.ID))
	sb.WriteString(fmt.Sprintf("Size: %dx%d\n", k.Board.Rows, k.Board.Cols))
	sb.WriteString(fmt.Sprintf("Castle: %s\n", k.Castle))
	sb.WriteString(fmt.Sprintf("Viewport: %dx%d at %s\n", k.Size, k.Size, k.Origin))
	sb.WriteString(fmt.Sprintf("Placed tiles: %d\n\n", k.Board.PlacedCount()))

	sb.WriteString(k.Grid())

	bx := scoring.BoundingBox(k.Board, k.Castle)
	if !bx.Empty() {
		sb.WriteString(fmt.Sprintf("\nBounding box: rows %d-%d, cols %d-%d (%dx%d)\n",
			bx.MinRow, bx.MaxRow, bx.MinCol, bx.MaxCol, bx.Height(), bx.Width()))
	}

	sb.WriteString("\nRegions:\n")
	for i, region := range scoring.Regions(k.Board) {
		sb.WriteString(fmt.Sprintf("  %d. %s: %d cells x %d crowns = %d\n",
			i+1, region.Terrain, region.Size(), region.Crowns, region.Score))
	}

	return sb.String()
}
