package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/example/baan-scheduler/internal/booking"
	"github.com/example/baan-scheduler/internal/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	entries []booking.PendingBooking
	saves   int
	loadErr error
}

func (m *memStore) Load(ctx context.Context) ([]booking.PendingBooking, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return append([]booking.PendingBooking(nil), m.entries...), nil
}

func (m *memStore) Save(ctx context.Context, entries []booking.PendingBooking) error {
	m.entries = entries
	m.saves++
	return nil
}

type fakeSession struct {
	outcome  booking.Outcome
	attempts []booking.PendingBooking
}

func (f *fakeSession) Reserve(ctx context.Context, slot booking.Slot, date string) booking.Outcome {
	f.attempts = append(f.attempts, booking.PendingBooking{Date: date, Slot: slot})
	return f.outcome
}

type recordingNotifier struct {
	outcomes []booking.Outcome
}

func (r *recordingNotifier) DeferredResolved(ctx context.Context, date string, slot booking.Slot, outcome booking.Outcome) {
	r.outcomes = append(r.outcomes, outcome)
}

func pendingOn(date string) booking.PendingBooking {
	return booking.PendingBooking{
		Date: date,
		Slot: booking.Slot{ResourceID: "43", StartTime: "18:30"},
	}
}

func newSweeper(store *memStore, sess *fakeSession, loginErr error, now time.Time) (*Scheduler, *recordingNotifier) {
	n := &recordingNotifier{}
	s := &Scheduler{
		Store: store,
		Login: func(ctx context.Context) (Session, error) {
			if loginErr != nil {
				return nil, loginErr
			}
			return sess, nil
		},
		Notifier:    n,
		Clock:       clock.NewFixed(now),
		HorizonDays: 7,
	}
	return s, n
}

func TestSweepRetainsEntryOutsideHorizon(t *testing.T) {
	// booked for today+8: one day too far out, must stay queued, untouched
	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	store := &memStore{entries: []booking.PendingBooking{pendingOn("2026-09-07")}}
	sess := &fakeSession{outcome: booking.Outcome{Success: true}}
	s, n := newSweeper(store, sess, nil, now)

	s.Sweep(context.Background())

	assert.Empty(t, sess.attempts)
	assert.Empty(t, n.outcomes)
	require.Len(t, store.entries, 1)
}

func TestSweepBooksEntryAtHorizonBoundary(t *testing.T) {
	// same entry, one day later: now exactly 7 days out, must be booked
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	store := &memStore{entries: []booking.PendingBooking{pendingOn("2026-09-07")}}
	sess := &fakeSession{outcome: booking.Outcome{Success: true, Message: "Reservation successful!"}}
	s, n := newSweeper(store, sess, nil, now)

	s.Sweep(context.Background())

	require.Len(t, sess.attempts, 1)
	assert.Equal(t, "2026-09-07", sess.attempts[0].Date)
	assert.Empty(t, store.entries)
	require.Len(t, n.outcomes, 1)
	assert.True(t, n.outcomes[0].Success)
}

func TestSweepDropsFailedEligibleEntry(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	store := &memStore{entries: []booking.PendingBooking{pendingOn("2026-09-07")}}
	sess := &fakeSession{outcome: booking.Outcome{Message: "Reservation failed: court taken"}}
	s, n := newSweeper(store, sess, nil, now)

	s.Sweep(context.Background())

	assert.Empty(t, store.entries, "a failed eligible attempt is terminal")
	require.Len(t, n.outcomes, 1)
	assert.False(t, n.outcomes[0].Success)
	assert.Contains(t, n.outcomes[0].Message, "Gave up")
}

func TestSweepMixedEntries(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	store := &memStore{entries: []booking.PendingBooking{
		pendingOn("2026-09-05"), // eligible
		pendingOn("2026-09-20"), // far out
		pendingOn("2026-09-07"), // eligible, boundary
	}}
	sess := &fakeSession{outcome: booking.Outcome{Success: true}}
	s, _ := newSweeper(store, sess, nil, now)

	s.Sweep(context.Background())

	require.Len(t, sess.attempts, 2)
	require.Len(t, store.entries, 1)
	assert.Equal(t, "2026-09-20", store.entries[0].Date)
}

func TestSweepLoginFailureLeavesStoreUntouched(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	store := &memStore{entries: []booking.PendingBooking{pendingOn("2026-09-05")}}
	sess := &fakeSession{}
	s, n := newSweeper(store, sess, errors.New("login failed"), now)

	s.Sweep(context.Background())

	assert.Zero(t, store.saves)
	require.Len(t, store.entries, 1)
	assert.Empty(t, sess.attempts)
	assert.Empty(t, n.outcomes)
}

func TestSweepEmptyListSkipsLogin(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	store := &memStore{}
	loginCalled := false
	s := &Scheduler{
		Store: store,
		Login: func(ctx context.Context) (Session, error) {
			loginCalled = true
			return nil, errors.New("unexpected")
		},
		Clock:       clock.NewFixed(now),
		HorizonDays: 7,
	}

	s.Sweep(context.Background())
	assert.False(t, loginCalled)
	assert.Zero(t, store.saves)
}
