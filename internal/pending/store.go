// Package pending persists booking requests that fell outside the site's
// advance-booking window until a sweep can promote them.
package pending

import (
	"context"

	"github.com/example/baan-scheduler/internal/booking"
)

// Store is the durable pending list. The contract is whole-list replace:
// callers read the full list, mutate it in memory and Save the result.
// Implementations must make Save atomic — a crashed sweep leaves either the
// old list or the new one, never a partial write.
type Store interface {
	Load(ctx context.Context) ([]booking.PendingBooking, error)
	Save(ctx context.Context, entries []booking.PendingBooking) error
}

// Contains reports whether an entry for the same date, court and start time
// is already queued.
func Contains(entries []booking.PendingBooking, p booking.PendingBooking) bool {
	for _, e := range entries {
		if e.Date == p.Date && e.Slot.ResourceID == p.Slot.ResourceID && e.Slot.StartTime == p.Slot.StartTime {
			return true
		}
	}
	return false
}
