package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jgoulah/gridreport/internal/store"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import [csv-file]",
	Short: "Import measurement CSV data into the database",
	Long: `Parses an hourly measurement CSV file and stores the rows in the local
SQLite database. Duplicate timestamps are skipped automatically. With no
argument the configured data file is imported.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	fmt.Printf("=== Import started at %s ===\n", time.Now().Format("2006-01-02 15:04:05 MST"))

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	path := getDataFile(cfg)
	if len(args) == 1 {
		path = args[0]
	}

	measurements, err := store.Load(path)
	if err != nil {
		return fmt.Errorf("loading measurements: %w", err)
	}

	db, err := openDB()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	before, err := db.Count()
	if err != nil {
		return fmt.Errorf("counting measurements: %w", err)
	}

	for i := range measurements {
		if err := db.InsertMeasurement(&measurements[i]); err != nil {
			return fmt.Errorf("inserting measurement: %w", err)
		}
	}

	after, err := db.Count()
	if err != nil {
		return fmt.Errorf("counting measurements: %w", err)
	}

	fmt.Printf("✓ Processed %s rows from %s\n", humanize.Comma(int64(len(measurements))), path)
	fmt.Printf("✓ Stored %s new measurements (%s total, duplicates skipped)\n",
		humanize.Comma(int64(after-before)), humanize.Comma(int64(after)))
	return nil
}
