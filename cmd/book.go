package cmd

import (
	"fmt"
	"time"

	"github.com/example/baan-scheduler/internal/booking"
	"github.com/example/baan-scheduler/internal/config"
	"github.com/example/baan-scheduler/internal/ics"
	"github.com/example/baan-scheduler/internal/logging"
	"github.com/spf13/cobra"
)

func newBookCmd() *cobra.Command {
	var icsDir string

	c := &cobra.Command{
		Use:   "book <date> <start-time>",
		Short: "Book the slot starting at <start-time> (HH:MM) on <date>, deferring it when outside the booking window",
		Args:  cobra.ExactArgs(2),
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

			date, startTime := args[0], args[1]
			slots, err := svc.GetSlots(cmd.Context(), date)
			if err != nil {
				return err
			}
			var chosen booking.Slot
			var found bool
			for _, s := range slots {
				if s.StartTime == startTime {
					chosen, found = s, true
					break
				}
			}
			if !found {
				return fmt.Errorf("no free slot at %s on %s", startTime, date)
			}

			out, err := svc.Reserve(cmd.Context(), chosen, date)
			if err != nil {
				return err
			}
			fmt.Println(out.Message)

			if out.Success && icsDir != "" {
				path, err := ics.WriteFile(icsDir, ics.Event{
					Summary:     "Squash",
					Description: "Court reservation",
					Date:        date,
					StartTime:   out.StartTime,
					EndTime:     out.EndTime,
				}, time.Now())
				if err != nil {
					return err
				}
				fmt.Printf("calendar file: %s\n", path)
			}
			return nil
		},
	}

	c.Flags().StringVar(&icsDir, "ics-dir", "", "write an .ics calendar file for a successful booking into this directory")
	return c
}
