package main

import (
	"fmt"
	"os"

	"github.com/jgoulah/gridreport/internal/report"
	"github.com/jgoulah/gridreport/internal/store"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export daily totals as XLSX or PDF",
	Long: `Loads the hourly measurement CSV and writes a year summary plus a
per-day totals table as an XLSX workbook or a PDF document.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "xlsx", "Output format (xlsx or pdf)")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file (default report.xlsx or report.pdf)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportFormat != "xlsx" && exportFormat != "pdf" {
		return fmt.Errorf("unknown format: %s (available: xlsx, pdf)", exportFormat)
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	measurements, err := store.Load(getDataFile(cfg))
	if err != nil {
		return fmt.Errorf("loading measurements: %w", err)
	}

	summaries := report.DailySummaries(store.BuildDailyIndex(measurements))
	year := cfg.GetDatasetYear()

	var content []byte
	switch exportFormat {
	case "xlsx":
		content, err = report.BuildXLSX(year, summaries)
	case "pdf":
		content, err = report.BuildPDF(year, summaries)
	}
	if err != nil {
		return fmt.Errorf("building %s export: %w", exportFormat, err)
	}

	out := exportOut
	if out == "" {
		out = "report." + exportFormat
	}

	if err := os.WriteFile(out, content, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}

	fmt.Printf("✓ Wrote %d days to %s\n", len(summaries), out)
	return nil
}
