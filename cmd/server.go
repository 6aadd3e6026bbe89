package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/example/baan-scheduler/internal/clock"
	"github.com/example/baan-scheduler/internal/config"
	"github.com/example/baan-scheduler/internal/logging"
	"github.com/example/baan-scheduler/internal/notify"
	"github.com/example/baan-scheduler/internal/scheduler"
	"github.com/spf13/cobra"
)

func newServerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "Run the deferred-booking scheduler until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			logger := logging.Setup(cfg.LogLevel)

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			store, closeStore, err := newPendingStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			client := newClient(cfg)

			var notifier notify.Notifier = notify.LogNotifier{Logger: logger}
			if tg := notify.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID); tg.Configured() {
				notifier = tg
			}

			s := &scheduler.Scheduler{
				Store: store,
				Login: func(ctx context.Context) (scheduler.Session, error) {
					return client.Login(ctx)
				},
				Notifier:     notifier,
				Clock:        clock.NewSystem(),
				Logger:       logger,
				HorizonDays:  cfg.HorizonDays,
				Interval:     cfg.SweepInterval,
				InitialDelay: cfg.SweepInitialDelay,
			}

			logger.Info("scheduler started",
				"interval", cfg.SweepInterval, "horizon_days", cfg.HorizonDays)
			if err := s.Run(ctx); err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		},
	}
}
