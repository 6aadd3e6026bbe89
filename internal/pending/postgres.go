package pending

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/example/baan-scheduler/internal/booking"
	"github.com/example/baan-scheduler/internal/db"
)

// PostgresStore keeps the pending list in one table. Save is a
// delete-everything-insert-everything transaction, which keeps the
// whole-list-replace contract without diffing.
type PostgresStore struct {
	db *db.DB
}

func NewPostgresStore(d *db.DB) *PostgresStore {
	return &PostgresStore{db: d}
}

// EnsureSchema creates the backing table when missing.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	return s.db.Exec(ctx, `
CREATE TABLE IF NOT EXISTS pending_bookings (
    id            BIGSERIAL PRIMARY KEY,
    date          TEXT NOT NULL,
    resource_id   TEXT NOT NULL,
    start_time    TEXT NOT NULL,
    available_from TIMESTAMPTZ NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
)`)
}

func (s *PostgresStore) Load(ctx context.Context) ([]booking.PendingBooking, error) {
	rows, err := s.db.Query(ctx, `
SELECT date, resource_id, start_time, available_from
FROM pending_bookings
ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("pending: load: %w", err)
	}
	defer rows.Close()

	var out []booking.PendingBooking
	for rows.Next() {
		var p booking.PendingBooking
		var availableFrom time.Time
		if err := rows.Scan(&p.Date, &p.Slot.ResourceID, &p.Slot.StartTime, &availableFrom); err != nil {
			return nil, err
		}
		p.Slot.AvailableFromUTC = availableFrom.UTC()
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *PostgresStore) Save(ctx context.Context, entries []booking.PendingBooking) error {
	return s.db.InTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM pending_bookings`); err != nil {
			return err
		}
		for _, p := range entries {
			if _, err := tx.Exec(ctx, `
INSERT INTO pending_bookings(date, resource_id, start_time, available_from)
VALUES ($1,$2,$3,$4)`,
				p.Date, p.Slot.ResourceID, p.Slot.StartTime, p.Slot.AvailableFromUTC,
			); err != nil {
				return err
			}
		}
		return nil
	})
}
