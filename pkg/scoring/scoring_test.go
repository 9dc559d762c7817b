package scoring

import (
	"errors"
	"math/rand"
	"testing"

	"kingdomino/internal/kingdom"
)

// parseBoard builds a board from rows of two-character cells: a terrain
// symbol followed by a crown digit, or ".." for an unset cell.
func parseBoard(t *testing.T, rows ...string) *kingdom.Board {
	t.Helper()

	symbols := make(map[byte]kingdom.Terrain)
	for _, terrain := range kingdom.Terrains {
		symbols[terrain.Symbol()] = terrain
	}

	tiles := make([][]kingdom.Tile, len(rows))
	for r, row := range rows {
		if len(row)%2 != 0 {
			t.Fatalf("row %d has odd length %d", r, len(row))
		}
		tiles[r] = make([]kingdom.Tile, len(row)/2)
		for c := range tiles[r] {
			cell := row[c*2 : c*2+2]
			if cell == ".." {
				continue
			}
			terrain, ok := symbols[cell[0]]
			if !ok {
				t.Fatalf("unknown terrain symbol %q at (%d,%d)", cell[0], r, c)
			}
			tiles[r][c] = kingdom.Tile{Terrain: terrain, Crowns: int(cell[1] - '0')}
		}
	}

	b, err := kingdom.NewBoard(tiles)
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}
	return b
}

func pos(row, col int) kingdom.Position {
	return kingdom.Position{Row: row, Col: col}
}

func TestScore_FullForestKingdom(t *testing.T) {
	b := parseBoard(t,
		"F1F1F1",
		"F1F2F1",
		"F1F1F1",
	)

	res, err := Score(b, pos(1, 1), pos(0, 0), 3)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if res.Terrain != 90 {
		t.Errorf("Expected terrain score 90, got %d", res.Terrain)
	}
	if !res.MiddleKingdom {
		t.Error("Expected middle kingdom bonus")
	}
	if !res.Harmony {
		t.Error("Expected harmony bonus")
	}
	if res.Total != 105 {
		t.Errorf("Expected total 105, got %d", res.Total)
	}
	if res.MiddleKingdomBonus != 10 || res.HarmonyBonus != 5 {
		t.Errorf("Expected bonus points 10 and 5, got %d and %d", res.MiddleKingdomBonus, res.HarmonyBonus)
	}
}

func TestScore_SingleMineCastle(t *testing.T) {
	b := parseBoard(t,
		"M3..",
		"....",
	)

	bx := BoundingBox(b, pos(0, 0))
	if bx.Height() != 1 || bx.Width() != 1 {
		t.Fatalf("Expected 1x1 bounding box, got %+v", bx)
	}

	res, err := Score(b, pos(0, 0), pos(0, 0), 1)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if res.Terrain != 3 {
		t.Errorf("Expected terrain score 3, got %d", res.Terrain)
	}
	if !res.MiddleKingdom || !res.Harmony {
		t.Errorf("Expected both bonuses, got middle=%v harmony=%v", res.MiddleKingdom, res.Harmony)
	}
	if res.Total != 18 {
		t.Errorf("Expected total 18, got %d", res.Total)
	}
}

func TestTerrainScore(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want int
	}{
		{"isolated tile", []string{"G0W3G0"}, 3},
		{"straight run", []string{"H1H1H1H1"}, 16},
		{"split by unset cell", []string{"S1S1..S2"}, 2*2 + 1*2},
		{"split by other terrain", []string{"G1W0G1"}, 1 + 1},
		{"no crowns", []string{"G0G0", "G0G0"}, 0},
		{"all unset", []string{"....", "...."}, 0},
		{"diagonal is not adjacent", []string{"F1..", "..F1"}, 2},
		{"empty terrain scores like any other", []string{"E1E1"}, 4},
		{
			"mixed kingdom",
			[]string{
				"G1G0W0W1",
				"G0F0W0W0",
				"F1F1M2..",
				"H0H1M1E0",
			},
			3*1 + 4*1 + 3*2 + 2*1 + 2*3 + 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := parseBoard(t, tc.rows...)
			if got := TerrainScore(b); got != tc.want {
				t.Errorf("Expected terrain score %d, got %d", tc.want, got)
			}
		})
	}
}

func TestTerrainScore_EmptyBoard(t *testing.T) {
	if got := TerrainScore(kingdom.EmptyBoard(0, 0)); got != 0 {
		t.Errorf("Expected 0 for 0x0 board, got %d", got)
	}
	if got := TerrainScore(kingdom.EmptyBoard(3, 0)); got != 0 {
		t.Errorf("Expected 0 for 3x0 board, got %d", got)
	}
}

func TestRegions_VisitEachCellOnce(t *testing.T) {
	b := parseBoard(t,
		"G1G1W0",
		"G0W1W0",
		"F0F0..",
	)

	regions := Regions(b)
	seen := make(map[kingdom.Position]bool)
	for _, region := range regions {
		for _, cell := range region.Cells {
			if seen[cell] {
				t.Errorf("cell %s appears in more than one region", cell)
			}
			seen[cell] = true
			if b.At(cell).Terrain != region.Terrain {
				t.Errorf("cell %s has terrain %v, region is %v", cell, b.At(cell).Terrain, region.Terrain)
			}
		}
	}
	if len(seen) != b.PlacedCount() {
		t.Errorf("Expected %d cells covered, got %d", b.PlacedCount(), len(seen))
	}
	if len(regions) != 3 {
		t.Errorf("Expected 3 regions, got %d", len(regions))
	}
}

func TestRegions_LargeRegionDoesNotRecurse(t *testing.T) {
	const n = 300
	b := kingdom.EmptyBoard(n, n)
	for r := range b.Tiles {
		for c := range b.Tiles[r] {
			b.Tiles[r][c] = kingdom.Tile{Terrain: kingdom.TerrainWheat}
		}
	}
	b.Tiles[0][0].Crowns = 1

	if got := TerrainScore(b); got != n*n {
		t.Errorf("Expected %d, got %d", n*n, got)
	}
}

// transpose and mirror are used to check that traversal order does not matter.
func transpose(b *kingdom.Board) *kingdom.Board {
	out := kingdom.EmptyBoard(b.Cols, b.Rows)
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			out.Tiles[c][r] = b.Tiles[r][c]
		}
	}
	return out
}

func mirror(b *kingdom.Board) *kingdom.Board {
	out := kingdom.EmptyBoard(b.Rows, b.Cols)
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			out.Tiles[b.Rows-1-r][b.Cols-1-c] = b.Tiles[r][c]
		}
	}
	return out
}

func randomBoard(rng *rand.Rand, rows, cols int) *kingdom.Board {
	b := kingdom.EmptyBoard(rows, cols)
	for r := range b.Tiles {
		for c := range b.Tiles[r] {
			if rng.Intn(5) == 0 {
				continue
			}
			// Few terrains so regions get large.
			terrain := kingdom.Terrains[rng.Intn(3)]
			b.Tiles[r][c] = kingdom.Tile{Terrain: terrain, Crowns: rng.Intn(4)}
		}
	}
	return b
}

func TestTerrainScore_OrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		b := randomBoard(rng, 1+rng.Intn(9), 1+rng.Intn(9))
		want := TerrainScore(b)

		if got := TerrainScore(transpose(b)); got != want {
			t.Fatalf("board %d: transposed score %d, want %d", i, got, want)
		}
		if got := TerrainScore(mirror(b)); got != want {
			t.Fatalf("board %d: mirrored score %d, want %d", i, got, want)
		}
	}
}

func TestBoundingBox(t *testing.T) {
	b := parseBoard(t,
		"..........",
		"....G1....",
		"..W0......",
		"..........",
	)

	got := BoundingBox(b, pos(3, 2))
	want := Box{MinRow: 1, MaxRow: 3, MinCol: 1, MaxCol: 2}
	if got != want {
		t.Errorf("BoundingBox = %+v, want %+v", got, want)
	}
}

func TestBoundingBox_CastleOnUnsetCell(t *testing.T) {
	b := kingdom.EmptyBoard(5, 5)

	got := BoundingBox(b, pos(2, 3))
	want := Box{MinRow: 2, MaxRow: 2, MinCol: 3, MaxCol: 3}
	if got != want {
		t.Errorf("BoundingBox = %+v, want %+v", got, want)
	}
}

func TestBoundingBox_Empty(t *testing.T) {
	b := kingdom.EmptyBoard(3, 3)

	bx := BoundingBox(b, pos(-1, -1))
	if !bx.Empty() {
		t.Fatalf("Expected empty box, got %+v", bx)
	}
	if bx.IsSquare(1) {
		t.Error("Expected empty box to never be square")
	}
	if bx.Height() != 0 || bx.Width() != 0 {
		t.Errorf("Expected zero extent, got %dx%d", bx.Height(), bx.Width())
	}
}

func TestQualifiesMiddleKingdom(t *testing.T) {
	full := parseBoard(t,
		"G0G0G0G0",
		"G0G0G0G0",
		"G0G0G0G0",
		"G0G0G0G0",
	)

	tests := []struct {
		name   string
		board  *kingdom.Board
		castle kingdom.Position
		size   int
		want   bool
	}{
		{"even extent rounds down", full, pos(1, 1), 4, true},
		{"even extent upper centre", full, pos(2, 2), 4, false},
		{"size mismatch", full, pos(1, 1), 5, false},
		{"size mismatch smaller", full, pos(1, 1), 3, false},
		{
			"odd square centred",
			parseBoard(t, "....G0..", "..G0G0G0", "....G0..", "........"),
			pos(1, 2), 3, true,
		},
		{
			"not square",
			parseBoard(t, "G0G0G0", "G0G0G0"),
			pos(0, 1), 3, false,
		},
		{
			"castle off centre",
			parseBoard(t, "G0G0G0", "G0G0G0", "G0G0G0"),
			pos(0, 0), 3, false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := QualifiesMiddleKingdom(tc.board, tc.castle, tc.size)
			if err != nil {
				t.Fatalf("QualifiesMiddleKingdom failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("Expected %v, got %v", tc.want, got)
			}
		})
	}
}

func fullKingdom(t *testing.T, rows, cols int, box Box) *kingdom.Board {
	t.Helper()
	b := kingdom.EmptyBoard(rows, cols)
	for r := box.MinRow; r <= box.MaxRow; r++ {
		for c := box.MinCol; c <= box.MaxCol; c++ {
			b.Tiles[r][c] = kingdom.Tile{Terrain: kingdom.Terrains[(r+c)%len(kingdom.Terrains)]}
		}
	}
	return b
}

func TestQualifiesHarmony_CastleCellExempt(t *testing.T) {
	b := fullKingdom(t, 7, 7, Box{MinRow: 1, MaxRow: 5, MinCol: 1, MaxCol: 5})

	for r := 1; r <= 5; r++ {
		for c := 1; c <= 5; c++ {
			castle := pos(r, c)
			withHole := kingdom.EmptyBoard(7, 7)
			for i := range b.Tiles {
				copy(withHole.Tiles[i], b.Tiles[i])
			}
			withHole.Tiles[r][c] = kingdom.Tile{}

			got, err := QualifiesHarmony(withHole, castle, pos(1, 1), 5)
			if err != nil {
				t.Fatalf("QualifiesHarmony failed: %v", err)
			}
			if !got {
				t.Errorf("Expected harmony with castle at %s", castle)
			}
		}
	}
}

func TestQualifiesHarmony(t *testing.T) {
	tests := []struct {
		name   string
		rows   []string
		castle kingdom.Position
		origin kingdom.Position
		size   int
		want   bool
	}{
		{
			"complete",
			[]string{"G0W0", "F0M0"},
			pos(0, 0), pos(0, 0), 2, true,
		},
		{
			"hole in viewport",
			[]string{"G0W0", "..M0"},
			pos(0, 0), pos(0, 0), 2, false,
		},
		{
			"tile outside viewport widens box",
			[]string{"G0W0E0", "F0M0.."},
			pos(0, 0), pos(0, 0), 2, false,
		},
		{
			"unset castle cell",
			[]string{"..W0", "F0M0"},
			pos(0, 0), pos(0, 0), 2, true,
		},
		{
			"viewport away from kingdom",
			[]string{"G0W0....", "F0M0....", "....S0S0", "....S0S0"},
			pos(0, 0), pos(2, 2), 2, false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := parseBoard(t, tc.rows...)
			got, err := QualifiesHarmony(b, tc.castle, tc.origin, tc.size)
			if err != nil {
				t.Fatalf("QualifiesHarmony failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("Expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestScore_InvalidInput(t *testing.T) {
	b := fullKingdom(t, 5, 5, Box{MinRow: 0, MaxRow: 4, MinCol: 0, MaxCol: 4})

	tests := []struct {
		name    string
		castle  kingdom.Position
		origin  kingdom.Position
		size    int
		wantErr error
	}{
		{"castle below board", pos(5, 2), pos(0, 0), 5, kingdom.ErrOutOfRange},
		{"castle negative", pos(-1, 2), pos(0, 0), 5, kingdom.ErrOutOfRange},
		{"viewport overhangs", pos(2, 2), pos(1, 1), 5, kingdom.ErrOutOfRange},
		{"viewport negative origin", pos(2, 2), pos(-1, 0), 3, kingdom.ErrOutOfRange},
		{"zero size", pos(2, 2), pos(0, 0), 0, kingdom.ErrInvalidViewport},
		{"negative size", pos(2, 2), pos(0, 0), -3, kingdom.ErrInvalidViewport},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Score(b, tc.castle, tc.origin, tc.size)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestScore_DoesNotModifyBoard(t *testing.T) {
	b := parseBoard(t,
		"G1G0W2",
		"..F1W0",
	)
	before := make([][]kingdom.Tile, b.Rows)
	for r := range b.Tiles {
		before[r] = append([]kingdom.Tile(nil), b.Tiles[r]...)
	}

	if _, err := Score(b, pos(0, 0), pos(0, 0), 2); err != nil {
		t.Fatalf("Score failed: %v", err)
	}

	for r := range before {
		for c := range before[r] {
			if b.Tiles[r][c] != before[r][c] {
				t.Errorf("cell (%d,%d) changed from %+v to %+v", r, c, before[r][c], b.Tiles[r][c])
			}
		}
	}
}

func TestResult_Breakdown(t *testing.T) {
	b := parseBoard(t,
		"G1G1W0",
		"F2..W0",
	)

	res, err := Score(b, pos(1, 1), pos(0, 0), 2)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}

	totals := res.TerrainTotals()
	if totals[kingdom.TerrainGrass] != 4 || totals[kingdom.TerrainForest] != 2 || totals[kingdom.TerrainWater] != 0 {
		t.Errorf("Unexpected terrain totals: %v", totals)
	}
	if got := len(res.ScoringRegions()); got != 2 {
		t.Errorf("Expected 2 scoring regions, got %d", got)
	}
	if res.Total != res.Terrain+res.MiddleKingdomBonus+res.HarmonyBonus {
		t.Errorf("Total %d does not add up", res.Total)
	}
}
