package cmd

import (
	"fmt"

	"github.com/example/baan-scheduler/internal/config"
	"github.com/example/baan-scheduler/internal/logging"
	"github.com/spf13/cobra"
)

func newCancelCmd() *cobra.Command {
	var yes bool

	c := &cobra.Command{
		Use:   "cancel",
		Short: "Cancel all upcoming reservations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("cancelling removes every upcoming reservation; re-run with --yes to confirm")
			}
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

			results, err := svc.CancelAll(cmd.Context())
			if err != nil {
				return err
			}
			if len(results) == 0 {
				fmt.Println("no upcoming reservations")
				return nil
			}
			for _, r := range results {
				fmt.Println(r.Message)
			}
			return nil
		},
	}

	c.Flags().BoolVar(&yes, "yes", false, "confirm cancelling every reservation")
	return c
}
