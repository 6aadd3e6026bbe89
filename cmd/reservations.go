package cmd

import (
	"fmt"

	"github.com/example/baan-scheduler/internal/config"
	"github.com/example/baan-scheduler/internal/logging"
	"github.com/spf13/cobra"
)

func newReservationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reservations",
		Short: "List upcoming reservations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			logging.Setup(cfg.LogLevel)

			svc, closeStore, err := newService(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			reservations, err := svc.ListReservations(cmd.Context())
			if err != nil {
				return err
			}
			if len(reservations) == 0 {
				fmt.Println("no upcoming reservations")
				return nil
			}
			for _, r := range reservations {
				fmt.Printf("%s %s %s  %s  (made on %s)\n", r.Date, r.Weekday, r.StartTime, r.Court, r.CreatedOn)
			}
			return nil
		},
	}
}
