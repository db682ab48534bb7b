package store

import (
	"context"
	"database/sql"
	"fmt"
)

const (
	historyTable = "mindfool_history"
	kvTable      = "kv"
)

// schema is applied in order on every Open. Statements must be idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS mindfool_history (
		id               TEXT PRIMARY KEY,
		sequence         INTEGER NOT NULL UNIQUE,
		mode             TEXT NOT NULL,
		pre_score        INTEGER NOT NULL CHECK (pre_score BETWEEN 0 AND 10),
		post_score       INTEGER NOT NULL CHECK (post_score BETWEEN 0 AND 10),
		delta            INTEGER NOT NULL,
		duration_ms      INTEGER NOT NULL CHECK (duration_ms >= 0),
		cycles_completed INTEGER NOT NULL DEFAULT 0,
		notes            TEXT NOT NULL DEFAULT '',
		timestamp_ns     INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_history_timestamp ON mindfool_history (timestamp_ns)`,
	`CREATE TABLE IF NOT EXISTS kv (
		key        TEXT PRIMARY KEY,
		value      BLOB NOT NULL,
		updated_ns INTEGER NOT NULL
	)`,
}

func migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i, err)
		}
	}
	return nil
}
