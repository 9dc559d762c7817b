// Package scoring computes the final score of a completed kingdom.
//
// All functions are pure: they read the board and never modify it, and each
// call allocates its own working state.
package scoring

import "kingdomino/internal/kingdom"

// Bonus points awarded by the game rules.
const (
	MiddleKingdomBonus = 10
	HarmonyBonus       = 5
)

// Result holds the scoring breakdown for one kingdom.
type Result struct {
	Terrain            int      `json:"terrain"`
	MiddleKingdom      bool     `json:"middleKingdom"`
	Harmony            bool     `json:"harmony"`
	MiddleKingdomBonus int      `json:"middleKingdomBonus"`
	HarmonyBonus       int      `json:"harmonyBonus"`
	Total              int      `json:"total"`
	Regions            []Region `json:"regions,omitempty"`
}

// Score computes the terrain score and both bonuses.
// The castle and the whole viewport must lie on the board.
func Score(b *kingdom.Board, castle, origin kingdom.Position, size int) (Result, error) {
	middle, err := QualifiesMiddleKingdom(b, castle, size)
	if err != nil {
		return Result{}, err
	}
	harmony, err := QualifiesHarmony(b, castle, origin, size)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		MiddleKingdom: middle,
		Harmony:       harmony,
		Regions:       Regions(b),
	}
	for _, region := range res.Regions {
		res.Terrain += region.Score
	}

	if res.MiddleKingdom {
		res.MiddleKingdomBonus = MiddleKingdomBonus
	}
	if res.Harmony {
		res.HarmonyBonus = HarmonyBonus
	}

	res.Total = res.Terrain + res.MiddleKingdomBonus + res.HarmonyBonus
	return res, nil
}

// ScoringRegions returns only the regions that contribute points.
func (r Result) ScoringRegions() []Region {
	var out []Region
	for _, region := range r.Regions {
		if region.Score > 0 {
			out = append(out, region)
		}
	}
	return out
}

// TerrainTotals sums region scores per terrain.
func (r Result) TerrainTotals() map[kingdom.Terrain]int {
	totals := make(map[kingdom.Terrain]int)
	for _, region := range r.Regions {
		totals[region.Terrain] += region.Score
	}
	return totals
}
