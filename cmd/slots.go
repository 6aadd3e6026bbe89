package cmd

import (
	"fmt"

	"github.com/example/baan-scheduler/internal/booking"
	"github.com/example/baan-scheduler/internal/config"
	"github.com/example/baan-scheduler/internal/logging"
	"github.com/spf13/cobra"
)

func newSlotsCmd() *cobra.Command {
	var period string

	c := &cobra.Command{
		Use:   "slots <date>",
		Short: "List free slots for a date (YYYY-MM-DD)",
		Args:  cobra.ExactArgs(1),
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

			slots, err := svc.GetSlots(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if period != "" {
				p, err := booking.ParsePeriod(period)
				if err != nil {
					return err
				}
				slots = svc.FilterByPeriod(slots, p)
			}
			if len(slots) == 0 {
				fmt.Println("no available slots")
				return nil
			}
			for _, s := range slots {
				fmt.Printf("%s  court=%s  bookable-from=%s\n", s.StartTime, s.ResourceID, s.AvailableFromUTC.Format("2006-01-02 15:04 MST"))
			}
			return nil
		},
	}

	c.Flags().StringVar(&period, "period", "", "filter by period: morning, afternoon or evening")
	return c
}
