package cli

import (
	"fmt"
	"io"
	"strings"

	"kingdomino/internal/database"
	"kingdomino/internal/kingdom"
	"kingdomino/pkg/boards"
	"kingdomino/pkg/scoring"
)

// Report is the JSON output for one scored kingdom.
type Report struct {
	BoardID   string         `json:"boardId"`
	BoardName string         `json:"boardName"`
	Player    string         `json:"player,omitempty"`
	Result    scoring.Result `json:"result"`
	RecordID  string         `json:"recordId,omitempty"`
}

// WriteSummary prints a human-readable score breakdown.
func WriteSummary(w io.Writer, k *boards.Kingdom, res scoring.Result) {
	fmt.Fprintf(w, "%s (%s)\n", k.Name, k.ID)

	totals := res.TerrainTotals()
	for _, terrain := range kingdom.Terrains {
		if points, ok := totals[terrain]; ok {
			fmt.Fprintf(w, "  %-16s %4d\n", terrain.String()+":", points)
		}
	}

	fmt.Fprintf(w, "  %-16s %4d\n", "Terrain:", res.Terrain)
	fmt.Fprintf(w, "  %-16s %4s\n", "Middle Kingdom:", bonus(res.MiddleKingdomBonus))
	fmt.Fprintf(w, "  %-16s %4s\n", "Harmony:", bonus(res.HarmonyBonus))
	fmt.Fprintf(w, "  %-16s %4d\n", "Total:", res.Total)
}

func bonus(points int) string {
	if points == 0 {
		return "-"
	}
	return fmt.Sprintf("+%d", points)
}

// ShareText is a one-line summary for the clipboard and QR codes.
func ShareText(k *boards.Kingdom, res scoring.Result) string {
	var extras []string
	if res.MiddleKingdom {
		extras = append(extras, fmt.Sprintf("middle kingdom +%d", res.MiddleKingdomBonus))
	}
	if res.Harmony {
		extras = append(extras, fmt.Sprintf("harmony +%d", res.HarmonyBonus))
	}

	text := fmt.Sprintf("Kingdomino %s: %d points (terrain %d", k.Name, res.Total, res.Terrain)
	if len(extras) > 0 {
		text += ", " + strings.Join(extras, ", ")
	}
	return text + ")"
}

// WriteHistory prints recorded scores, newest first.
func WriteHistory(w io.Writer, records []*database.ScoreRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		return
	}

	for _, rec := range records {
		flags := ""
		if rec.MiddleKingdom {
			flags += " MK"
		}
		if rec.Harmony {
			flags += " H"
		}
		fmt.Fprintf(w, "%s  %-12s %-20s %4d%s\n",
			rec.CreatedAt.Format("2006-01-02 15:04"), rec.PlayerName, rec.BoardName, rec.Total, flags)
	}
}

// WriteBoardList prints the sample boards.
func WriteBoardList(w io.Writer, infos []boards.BoardInfo) {
	for _, info := range infos {
		fmt.Fprintf(w, "%-16s %-20s %dx%d board, %d tiles, size %d\n",
			info.ID, info.Name, info.Rows, info.Cols, info.Placed, info.Size)
	}
}
