// Package scheduler sweeps the pending-booking list on a timer and promotes
// entries that have entered the advance-booking window.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/example/baan-scheduler/internal/booking"
	"github.com/example/baan-scheduler/internal/clock"
	"github.com/example/baan-scheduler/internal/notify"
	"github.com/example/baan-scheduler/internal/pending"
)

// Session is the slice of a logged-in site session a sweep needs.
type Session interface {
	Reserve(ctx context.Context, slot booking.Slot, date string) booking.Outcome
}

// LoginFunc authenticates once per sweep; each sweep pays for a fresh login
// because sessions are not reusable across scheduler runs.
type LoginFunc func(ctx context.Context) (Session, error)

type Scheduler struct {
	Store        pending.Store
	Login        LoginFunc
	Notifier     notify.Notifier
	Clock        clock.Clock
	Logger       *slog.Logger
	HorizonDays  int
	Interval     time.Duration
	InitialDelay time.Duration

	// guards against overlapping sweeps; a tick that lands while a sweep
	// is still running is skipped, not queued
	mu sync.Mutex
}

// Run blocks until ctx is done, executing one sweep after InitialDelay and
// then one per Interval.
func (s *Scheduler) Run(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.InitialDelay):
	}
	s.Sweep(ctx)

	t := time.NewTicker(s.Interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep runs one pass over the pending list: entries now within the horizon
// get a single booking attempt and leave the list whatever the outcome,
// entries still too far out are kept for the next sweep. The list is read
// once at the start and written back once at the end; a failed login aborts
// the sweep with the stored list untouched.
func (s *Scheduler) Sweep(ctx context.Context) {
	if !s.mu.TryLock() {
		s.logger().Warn("sweep still in flight, skipping tick")
		return
	}
	defer s.mu.Unlock()

	entries, err := s.Store.Load(ctx)
	if err != nil {
		s.logger().Error("sweep: loading pending bookings failed", "error", err)
		return
	}
	if len(entries) == 0 {
		return
	}

	sess, err := s.Login(ctx)
	if err != nil {
		s.logger().Error("sweep: login failed, retrying next interval", "error", err)
		return
	}

	now := s.Clock.Now()
	var retained []booking.PendingBooking
	for _, entry := range entries {
		date, err := time.ParseInLocation(booking.DateFormat, entry.Date, now.Location())
		if err != nil {
			s.logger().Error("sweep: dropping entry with unparseable date", "date", entry.Date, "error", err)
			continue
		}
		if booking.DaysUntil(now, date) > s.HorizonDays {
			retained = append(retained, entry)
			continue
		}

		outcome := sess.Reserve(ctx, entry.Slot, entry.Date)
		if !outcome.Success {
			// single attempt per entry: an eligible booking that fails is
			// reported and dropped, never requeued
			outcome.Message = "Gave up on deferred booking: " + outcome.Message
		}
		s.logger().Info("deferred booking attempted",
			"date", entry.Date, "start_time", entry.Slot.StartTime, "success", outcome.Success)
		if s.Notifier != nil {
			s.Notifier.DeferredResolved(ctx, entry.Date, entry.Slot, outcome)
		}
	}

	if err := s.Store.Save(ctx, retained); err != nil {
		s.logger().Error("sweep: saving pending bookings failed", "error", err)
	}
}

func (s *Scheduler) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
