package main

import (
	"fmt"

	"github.com/jgoulah/gridreport/internal/reservation"
	"github.com/spf13/cobra"
)

var reservationsDetail bool

var reservationsCmd = &cobra.Command{
	Use:   "reservations [file]",
	Short: "Print the reservation summary report",
	Long: `Reads a pipe-delimited reservation file and prints confirmed and long
reservations, per-reservation confirmation status, summary counts, and
total revenue from confirmed reservations. With no argument the
configured reservations file is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReservations,
}

func init() {
	reservationsCmd.Flags().BoolVar(&reservationsDetail, "detail", false, "Also print the full field block per reservation")
	rootCmd.AddCommand(reservationsCmd)
}

func runReservations(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	path := cfg.GetReservationsFile()
	if len(args) == 1 {
		path = args[0]
	}

	reservations, err := reservation.Load(path)
	if err != nil {
		return fmt.Errorf("loading reservations: %w", err)
	}

	for _, line := range reservation.SummaryLines(reservations) {
		fmt.Println(line)
	}

	if reservationsDetail {
		for _, r := range reservations {
			fmt.Println()
			for _, line := range reservation.DetailLines(r) {
				fmt.Println(line)
			}
		}
	}

	return nil
}
