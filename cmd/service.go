package cmd

import (
	"context"
	"fmt"

	"github.com/example/baan-scheduler/internal/app"
	"github.com/example/baan-scheduler/internal/baan"
	"github.com/example/baan-scheduler/internal/clock"
	"github.com/example/baan-scheduler/internal/config"
	"github.com/example/baan-scheduler/internal/db"
	"github.com/example/baan-scheduler/internal/pending"
)

// newPendingStore picks the pending-booking backend: postgres when
// DATABASE_URL is set, the JSON file otherwise. The returned func releases
// whatever the store holds open.
func newPendingStore(ctx context.Context, cfg config.Config) (pending.Store, func(), error) {
	if cfg.DatabaseURL == "" {
		return pending.NewFileStore(cfg.PendingFile), func() {}, nil
	}

	d, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	if err := d.Ping(ctx); err != nil {
		d.Close()
		return nil, nil, fmt.Errorf("db ping: %w", err)
	}
	store := pending.NewPostgresStore(d)
	if err := store.EnsureSchema(ctx); err != nil {
		d.Close()
		return nil, nil, err
	}
	return store, d.Close, nil
}

func newClient(cfg config.Config) *baan.Client {
	return baan.New(cfg.BaseURL, cfg.Credentials, cfg.Players, cfg.SportID,
		baan.WithTimeout(cfg.HTTPTimeout))
}

func newService(ctx context.Context, cfg config.Config) (*app.Service, func(), error) {
	store, closeStore, err := newPendingStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	svc := &app.Service{
		Client:      newClient(cfg),
		Pending:     store,
		Clock:       clock.NewSystem(),
		HorizonDays: cfg.HorizonDays,
	}
	return svc, closeStore, nil
}
