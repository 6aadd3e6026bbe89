package cmd

import (
	"fmt"

	"github.com/example/baan-scheduler/internal/config"
	"github.com/example/baan-scheduler/internal/logging"
	"github.com/spf13/cobra"
)

func newPendingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "List deferred booking requests waiting for their window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			logging.Setup(cfg.LogLevel)

			store, closeStore, err := newPendingStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			entries, err := store.Load(cmd.Context())
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("no pending bookings")
				return nil
			}
			for _, e := range entries {
				fmt.Printf("%s %s  court=%s\n", e.Date, e.Slot.StartTime, e.Slot.ResourceID)
			}
			return nil
		},
	}
}
