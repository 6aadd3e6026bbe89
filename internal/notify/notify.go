// Package notify delivers booking outcomes to whoever is listening — the
// chat layer in production, a logger by default.
package notify

import (
	"context"
	"log/slog"

	"github.com/example/baan-scheduler/internal/booking"
)

// Notifier receives the resolution of a deferred booking. Implementations
// must not block a sweep on delivery problems; a lost notification is
// preferable to a stalled scheduler.
type Notifier interface {
	DeferredResolved(ctx context.Context, date string, slot booking.Slot, outcome booking.Outcome)
}

// LogNotifier reports outcomes through slog.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n LogNotifier) DeferredResolved(ctx context.Context, date string, slot booking.Slot, outcome booking.Outcome) {
	logger := n.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("deferred booking resolved",
		"date", date,
		"start_time", slot.StartTime,
		"resource_id", slot.ResourceID,
		"success", outcome.Success,
		"message", outcome.Message,
	)
}
