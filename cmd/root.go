package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	CommitSHA = "none"
	BuildDate = "unknown"
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "baansched",
		Short: "Court-booking automation for Baanreserveren: list, book and cancel slots, and defer bookings outside the 7-day window",
	}

	root.AddCommand(newVersionCmd())
	root.AddCommand(newSlotsCmd())
	root.AddCommand(newBookCmd())
	root.AddCommand(newCancelCmd())
	root.AddCommand(newReservationsCmd())
	root.AddCommand(newPendingCmd())
	root.AddCommand(newServerCmd())

	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
