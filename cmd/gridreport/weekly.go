package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jgoulah/gridreport/internal/report"
	"github.com/jgoulah/gridreport/internal/store"
	"github.com/spf13/cobra"
)

var weeklyOut string

var weeklyCmd = &cobra.Command{
	Use:   "weekly [csv-file...]",
	Short: "Build weekly per-phase consumption/production tables",
	Long: `Reads one or more weekly phase CSV files (timestamp plus three
consumption and three production phases in Wh), sums each day per phase
in kWh, and prints one table per file. With --out (or a summary_file in
the config) the tables are joined and written to that file instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWeekly,
}

func init() {
	weeklyCmd.Flags().StringVar(&weeklyOut, "out", "", "Write the combined report to this file instead of stdout")
	rootCmd.AddCommand(weeklyCmd)
}

func runWeekly(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var sections []string
	for _, path := range args {
		rows, err := store.LoadPhaseRows(path)
		if err != nil {
			return fmt.Errorf("loading %s: %w", path, err)
		}

		summaries := store.PhaseDailySummaries(rows)
		lines := report.WeekSection(0, summaries)
		sections = append(sections, strings.Join(lines, "\n"))
	}

	content := strings.Join(sections, "\n")

	// --out wins; otherwise a configured summary file is the target
	out := weeklyOut
	if out == "" && cfg.SummaryFile != "" {
		out = cfg.GetSummaryFile()
	}

	if out != "" {
		if err := os.WriteFile(out, []byte(content), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", out, err)
		}
		fmt.Printf("Wrote report to %s\n", out)
		return nil
	}

	fmt.Println(content)
	return nil
}
