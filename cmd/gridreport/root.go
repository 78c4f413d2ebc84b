package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jgoulah/gridreport/internal/config"
	"github.com/jgoulah/gridreport/internal/database"
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	dbPath   string
	dataFile string
)

var rootCmd = &cobra.Command{
	Use:   "gridreport",
	Short: "Build energy usage reports from hourly meter CSV data",
	Long: `GridReport is a CLI tool to summarize hourly electricity consumption,
production and temperature data from CSV exports. It builds interactive
period/month/year reports, weekly per-phase tables, and can store data
in a local SQLite database for listing, exporting and MQTT publishing.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database file (default is ./data.db)")
	rootCmd.PersistentFlags().StringVar(&dataFile, "data", "", "measurement CSV file (default from config, ./2025.csv)")
}

// getConfigPath returns the config file path
func getConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultConfigPath()
}

// getDBPath returns the database file path (local directory)
func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	return "data.db"
}

// getDataFile returns the measurement CSV path, flag overriding config
func getDataFile(cfg *config.Config) string {
	if dataFile != "" {
		return dataFile
	}
	return cfg.GetDataFile()
}

// loadConfig loads the configuration file
func loadConfig() (*config.Config, error) {
	return config.Load(getConfigPath())
}

// openDB opens the database connection
func openDB() (*database.DB, error) {
	path := getDBPath()

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	return database.New(path)
}
