// Package app exposes the booking engine to its consumers (CLI, chat
// layer): list slots, reserve, cancel, enumerate reservations. Every
// operation logs in fresh, runs its requests sequentially on that session
// and discards it — the site's anti-forgery tokens are per-page and
// short-lived, so sessions are never shared or cached.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/baan-scheduler/internal/baan"
	"github.com/example/baan-scheduler/internal/booking"
	"github.com/example/baan-scheduler/internal/clock"
	"github.com/example/baan-scheduler/internal/pending"
)

type Service struct {
	Client      *baan.Client
	Pending     pending.Store
	Clock       clock.Clock
	HorizonDays int
}

// GetSlots lists the bookable slots for a date. A failed login surfaces as
// an error wrapping baan.ErrLoginFailed; an empty day is an empty slice.
func (s *Service) GetSlots(ctx context.Context, date string) ([]booking.Slot, error) {
	sess, err := s.Client.Login(ctx)
	if err != nil {
		return nil, err
	}
	return sess.ListSlots(ctx, date)
}

// FilterByPeriod narrows slots to one time-of-day bucket, one option per
// start time.
func (s *Service) FilterByPeriod(slots []booking.Slot, p booking.Period) []booking.Slot {
	return booking.FilterByPeriod(slots, p)
}

// Reserve books the slot now when the date is within the advance-booking
// horizon, and otherwise parks it in the pending store for the sweep to pick
// up. Duplicate pending requests for the same date, court and start time are
// refused. The error covers login and storage problems; everything the
// remote site has to say arrives inside the Outcome.
func (s *Service) Reserve(ctx context.Context, slot booking.Slot, date string) (booking.Outcome, error) {
	sess, err := s.Client.Login(ctx)
	if err != nil {
		return booking.Outcome{}, err
	}

	parsed, err := time.ParseInLocation(booking.DateFormat, date, s.Clock.Now().Location())
	if err != nil {
		return booking.Outcome{}, fmt.Errorf("invalid date %q: %w", date, err)
	}

	if booking.DaysUntil(s.Clock.Now(), parsed) <= s.HorizonDays {
		return sess.Reserve(ctx, slot, date), nil
	}

	entry := booking.PendingBooking{Date: date, Slot: slot}
	entries, err := s.Pending.Load(ctx)
	if err != nil {
		return booking.Outcome{}, err
	}
	if pending.Contains(entries, entry) {
		return booking.Outcome{
			Deferred: true,
			Message:  fmt.Sprintf("Reservation for %s at %s is already noted.", date, slot.StartTime),
		}, nil
	}
	if err := s.Pending.Save(ctx, append(entries, entry)); err != nil {
		return booking.Outcome{}, err
	}
	return booking.Outcome{
		Deferred: true,
		Message:  fmt.Sprintf("Reservation for %s has been noted and will be booked when within the %d-day window.", date, s.HorizonDays),
	}, nil
}

// ListReservations returns the user's upcoming reservations as the site
// lists them.
func (s *Service) ListReservations(ctx context.Context) ([]booking.Reservation, error) {
	sess, err := s.Client.Login(ctx)
	if err != nil {
		return nil, err
	}
	return sess.ListReservations(ctx)
}

// CancelAll cancels every listed reservation one at a time, collecting an
// outcome per reservation. A failure never short-circuits the batch.
func (s *Service) CancelAll(ctx context.Context) ([]booking.Outcome, error) {
	sess, err := s.Client.Login(ctx)
	if err != nil {
		return nil, err
	}
	reservations, err := sess.ListReservations(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]booking.Outcome, 0, len(reservations))
	for _, r := range reservations {
		result := sess.Cancel(ctx, r.Path)
		result.Message = fmt.Sprintf("Reservation on %s at %s: %s", r.Date, r.StartTime, result.Message)
		out = append(out, result)
	}
	return out, nil
}

// PendingBookings lists what the sweep still has queued.
func (s *Service) PendingBookings(ctx context.Context) ([]booking.PendingBooking, error) {
	return s.Pending.Load(ctx)
}
