// Package cli implements the kingdomino command: it loads or generates a
// kingdom, scores it, and prints, records, or shares the result.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"

	"kingdomino/internal/database"
	"kingdomino/pkg/boards"
)

// Command errors
var (
	ErrNoBoard       = errors.New("no board given: use -board, -sample, or -random")
	ErrBoardNotFound = errors.New("sample board not found")
)

// Options holds the command-line flags for one run.
type Options struct {
	BoardFile string // Path to a board JSON file
	Sample    string // ID of an embedded sample board
	Random    bool   // Generate a random kingdom
	Size      int    // Random kingdom size, 0 = from config
	Seed      int64

	List    bool // List sample boards and exit
	History bool // Print recorded scores and exit

	Player string
	DBPath string
	Record bool

	JSON   bool
	Show   bool // Print the board and its regions
	Copy   bool
	QRPath string
}

// Run executes one command with the given options and config.
func Run(opts Options, cfg *Config, w io.Writer) error {
	player := opts.Player
	if player == "" {
		player = cfg.PlayerName
	}
	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = cfg.DBPath
	}

	switch {
	case opts.List:
		if err := boards.LoadAll(); err != nil {
			return err
		}
		WriteBoardList(w, boards.List())
		return nil

	case opts.History:
		if dbPath == "" {
			dbPath = DefaultDBPath()
		}
		db, err := database.New(dbPath)
		if err != nil {
			return err
		}
		defer db.Close()

		records, err := historyFor(db, opts.Player, cfg.HistoryLimit)
		if err != nil {
			return fmt.Errorf("failed to read history: %w", err)
		}
		WriteHistory(w, records)
		return nil
	}

	k, err := resolveKingdom(opts, cfg)
	if err != nil {
		return err
	}

	res, err := k.Score()
	if err != nil {
		return fmt.Errorf("failed to score %s: %w", k.ID, err)
	}

	report := Report{BoardID: k.ID, BoardName: k.Name, Player: player, Result: res}

	if opts.Record || cfg.RecordScores {
		if dbPath == "" {
			dbPath = DefaultDBPath()
		}
		db, err := database.New(dbPath)
		if err != nil {
			return err
		}
		rec, err := db.RecordScore(database.NewScoreRecord(player, k.ID, k.Name, res))
		db.Close()
		if err != nil {
			return fmt.Errorf("failed to record score: %w", err)
		}
		report.RecordID = rec.ID
		log.Printf("Recorded score %s for %s in %s", rec.ID, player, dbPath)
	}

	if opts.JSON || cfg.JSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
	} else {
		if opts.Show || cfg.ShowBoard {
			fmt.Fprintln(w, k.Debug())
		}
		WriteSummary(w, k, res)
	}

	share := ShareText(k, res)
	if opts.Copy {
		if err := copyToClipboard(share); err != nil {
			log.Printf("Failed to copy score: %v", err)
		}
	}
	if opts.QRPath != "" {
		if err := writeQRCode(share, opts.QRPath); err != nil {
			return err
		}
		log.Printf("Wrote QR code to %s", opts.QRPath)
	}

	return nil
}

// resolveKingdom loads or generates the kingdom named by the options.
func resolveKingdom(opts Options, cfg *Config) (*boards.Kingdom, error) {
	switch {
	case opts.BoardFile != "":
		return boards.LoadFile(opts.BoardFile)

	case opts.Sample != "":
		if err := boards.LoadAll(); err != nil {
			return nil, err
		}
		k := boards.Get(opts.Sample)
		if k == nil {
			return nil, fmt.Errorf("%w: %q", ErrBoardNotFound, opts.Sample)
		}
		return k, nil

	case opts.Random:
		size := opts.Size
		if size == 0 {
			size = cfg.GeneratorSize
		}
		gen := boards.NewGenerator(boards.GeneratorOptions{
			Size:        size,
			Seed:        opts.Seed,
			CrownChance: cfg.CrownChance,
			Clumping:    boards.DefaultGeneratorOptions().Clumping,
		})
		k, _ := gen.Generate()
		return k, nil
	}

	return nil, ErrNoBoard
}

func historyFor(db *database.DB, player string, limit int) ([]*database.ScoreRecord, error) {
	if player != "" {
		return db.ListScoresForPlayer(player)
	}
	return db.ListScores(limit)
}
