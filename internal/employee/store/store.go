package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dfcarvalho/posto/internal/employee"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// ListEntries returns the directory in import order: first-import position
// is kept across upserts because created_at never changes.
func (s *Store) ListEntries(ctx context.Context) ([]employee.Entry, error) {
	query := `
		SELECT card_id, display_name
		FROM employee_directory
		ORDER BY created_at, card_id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing directory: %w", err)
	}
	defer rows.Close()

	var entries []employee.Entry

	for rows.Next() {
		var e employee.Entry

		if err := rows.Scan(&e.CardID, &e.DisplayName); err != nil {
			return nil, fmt.Errorf("scanning directory entry: %w", err)
		}

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating directory: %w", err)
	}

	return entries, nil
}

// UpsertEntries applies last-write-wins per card id, in batch order.
func (s *Store) UpsertEntries(ctx context.Context, entries []employee.Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO employee_directory (card_id, display_name, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (card_id) DO UPDATE
		SET display_name = EXCLUDED.display_name, updated_at = NOW()
	`

	for _, e := range entries {
		if _, err := tx.ExecContext(ctx, query, e.CardID, e.DisplayName); err != nil {
			return fmt.Errorf("upserting card %s: %w", e.CardID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}
