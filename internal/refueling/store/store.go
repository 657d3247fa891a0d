package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dfcarvalho/posto/internal/refueling"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateRefuelings(ctx context.Context, items []refueling.Refueling) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO refuelings (id, card_id, ts, time_of_day, nozzle, amount, volume, owner_id, date_defaulted, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
	`

	for _, r := range items {
		if _, err := tx.ExecContext(ctx, query,
			r.ID,
			r.CardID,
			r.Timestamp,
			r.TimeOfDay,
			r.Nozzle,
			r.Amount,
			r.Volume,
			r.OwnerID,
			r.DateDefaulted,
		); err != nil {
			return fmt.Errorf("inserting refueling %s: %w", r.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

func (s *Store) ListRefuelings(ctx context.Context) ([]refueling.Refueling, error) {
	query := `
		SELECT id, card_id, ts, time_of_day, nozzle, amount, volume, owner_id, date_defaulted
		FROM refuelings
		ORDER BY created_at, id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing refuelings: %w", err)
	}
	defer rows.Close()

	var items []refueling.Refueling

	for rows.Next() {
		var r refueling.Refueling

		if err := rows.Scan(
			&r.ID, &r.CardID, &r.Timestamp, &r.TimeOfDay, &r.Nozzle,
			&r.Amount, &r.Volume, &r.OwnerID, &r.DateDefaulted,
		); err != nil {
			return nil, fmt.Errorf("scanning refueling: %w", err)
		}

		r.Timestamp = r.Timestamp.UTC()
		items = append(items, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating refuelings: %w", err)
	}

	return items, nil
}

func (s *Store) DeleteAllRefuelings(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM refuelings`); err != nil {
		return fmt.Errorf("deleting refuelings: %w", err)
	}

	return nil
}
