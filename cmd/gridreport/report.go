package main

import (
	"fmt"
	"os"

	"github.com/jgoulah/gridreport/internal/menu"
	"github.com/jgoulah/gridreport/internal/store"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run the interactive report menu",
	Long: `Loads the hourly measurement CSV and starts an interactive session.
Pick a date range, a month, or the full year to get a summary of total
consumption, total production and average temperature. Reports can be
written to the report file (overwritten on each save).`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// A missing or unparseable data file is fatal before any menu is shown
	measurements, err := store.Load(getDataFile(cfg))
	if err != nil {
		return fmt.Errorf("loading measurements: %w", err)
	}

	m := menu.New(os.Stdin, os.Stdout, measurements, cfg.GetDatasetYear(), cfg.GetReportFile())
	return m.Run()
}
