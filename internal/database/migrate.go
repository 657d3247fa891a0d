package database

import (
	"context"
	"database/sql"
	"fmt"
)

// migrationStatements are idempotent and run on every startup.
var migrationStatements = []string{
	`CREATE TABLE IF NOT EXISTS refuelings (
		id UUID PRIMARY KEY,
		card_id TEXT NOT NULL,
		ts TIMESTAMPTZ NOT NULL,
		time_of_day TEXT NOT NULL DEFAULT '',
		nozzle TEXT NOT NULL DEFAULT '',
		amount DOUBLE PRECISION NOT NULL DEFAULT 0,
		volume DOUBLE PRECISION NOT NULL DEFAULT 0,
		owner_id TEXT NOT NULL DEFAULT '',
		date_defaulted BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_refuelings_card_id ON refuelings (card_id);`,
	`CREATE INDEX IF NOT EXISTS idx_refuelings_ts ON refuelings (ts);`,
	`CREATE TABLE IF NOT EXISTS employee_directory (
		card_id TEXT PRIMARY KEY,
		display_name TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
}

func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range migrationStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
	}

	return nil
}
