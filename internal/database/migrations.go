package database

type migration struct {
	id   int
	name string
	sql  string
}

var migrations = []migration{
	{
		id:   1,
		name: "initial_schema",
		sql: `
			-- Scores table: one row per scored kingdom. Tiles are never stored.
			CREATE TABLE scores (
				id TEXT PRIMARY KEY,
				player_name TEXT NOT NULL,
				board_id TEXT NOT NULL,
				board_name TEXT NOT NULL,
				terrain INTEGER NOT NULL,
				middle_kingdom BOOLEAN NOT NULL DEFAULT FALSE,
				harmony BOOLEAN NOT NULL DEFAULT FALSE,
				total INTEGER NOT NULL,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX idx_scores_player ON scores(player_name);
			CREATE INDEX idx_scores_created ON scores(created_at);
		`,
	},
	{
		id:   2,
		name: "add_region_count_column",
		sql: `
			-- Number of scoring regions, for quick comparisons between kingdoms
			ALTER TABLE scores ADD COLUMN region_count INTEGER DEFAULT 0;
		`,
	},
}
