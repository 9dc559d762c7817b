package database

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"kingdomino/pkg/scoring"
)

// ScoreRecord is one scored kingdom in the ledger.
type ScoreRecord struct {
	ID            string    `json:"id"`
	PlayerName    string    `json:"playerName"`
	BoardID       string    `json:"boardId"`
	BoardName     string    `json:"boardName"`
	Terrain       int       `json:"terrain"`
	MiddleKingdom bool      `json:"middleKingdom"`
	Harmony       bool      `json:"harmony"`
	Total         int       `json:"total"`
	RegionCount   int       `json:"regionCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ErrScoreNotFound is returned when a score is not found.
var ErrScoreNotFound = errors.New("score not found")

// NewScoreRecord builds a record from a scoring result.
func NewScoreRecord(playerName, boardID, boardName string, res scoring.Result) ScoreRecord {
	return ScoreRecord{
		PlayerName:    playerName,
		BoardID:       boardID,
		BoardName:     boardName,
		Terrain:       res.Terrain,
		MiddleKingdom: res.MiddleKingdom,
		Harmony:       res.Harmony,
		Total:         res.Total,
		RegionCount:   len(res.ScoringRegions()),
	}
}

const scoreColumns = `id, player_name, board_id, board_name, terrain, middle_kingdom, harmony, total, region_count, created_at`

// RecordScore stores a score, assigning its ID and, if unset, its timestamp.
func (db *DB) RecordScore(rec ScoreRecord) (*ScoreRecord, error) {
	rec.ID = uuid.New().String()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	_, err := db.conn.Exec(`
		INSERT INTO scores (`+scoreColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.PlayerName, rec.BoardID, rec.BoardName, rec.Terrain,
		rec.MiddleKingdom, rec.Harmony, rec.Total, rec.RegionCount, rec.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &rec, nil
}

// GetScore retrieves a score by ID.
func (db *DB) GetScore(id string) (*ScoreRecord, error) {
	row := db.conn.QueryRow(`SELECT `+scoreColumns+` FROM scores WHERE id = ?`, id)

	rec, err := scanScore(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrScoreNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// ListScores returns the most recent scores, newest first.
// A limit of 0 or less returns every score.
func (db *DB) ListScores(limit int) ([]*ScoreRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := db.conn.Query(`
		SELECT `+scoreColumns+`
		FROM scores
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanScores(rows)
}

// ListScoresForPlayer returns every score recorded for a player, newest first.
func (db *DB) ListScoresForPlayer(playerName string) ([]*ScoreRecord, error) {
	rows, err := db.conn.Query(`
		SELECT `+scoreColumns+`
		FROM scores
		WHERE player_name = ?
		ORDER BY created_at DESC, rowid DESC
	`, playerName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanScores(rows)
}

// BestScore returns the player's highest total.
func (db *DB) BestScore(playerName string) (*ScoreRecord, error) {
	row := db.conn.QueryRow(`
		SELECT `+scoreColumns+`
		FROM scores
		WHERE player_name = ?
		ORDER BY total DESC, created_at ASC
		LIMIT 1
	`, playerName)

	rec, err := scanScore(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrScoreNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// DeleteScore removes a score from the ledger.
func (db *DB) DeleteScore(id string) error {
	result, err := db.conn.Exec(`DELETE FROM scores WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrScoreNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanScore(s scanner) (*ScoreRecord, error) {
	var rec ScoreRecord
	err := s.Scan(&rec.ID, &rec.PlayerName, &rec.BoardID, &rec.BoardName, &rec.Terrain,
		&rec.MiddleKingdom, &rec.Harmony, &rec.Total, &rec.RegionCount, &rec.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func scanScores(rows *sql.Rows) ([]*ScoreRecord, error) {
	var records []*ScoreRecord
	for rows.Next() {
		rec, err := scanScore(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
