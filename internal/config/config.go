package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	DataFile         string     `yaml:"data_file,omitempty"`         // Hourly measurement CSV (fallback: 2025.csv)
	ReportFile       string     `yaml:"report_file,omitempty"`       // Interactive report output (fallback: report.txt)
	SummaryFile      string     `yaml:"summary_file,omitempty"`      // Weekly summary output (fallback: summary.txt)
	ReservationsFile string     `yaml:"reservations_file,omitempty"` // Reservation data (fallback: reservations.txt)
	DatasetYear      int        `yaml:"dataset_year,omitempty"`      // Year the dataset covers (fallback: 2025)
	MQTT             MQTTConfig `yaml:"mqtt,omitempty"`
}

// MQTTConfig holds MQTT broker configuration for publishing
type MQTTConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Broker      string `yaml:"broker"` // e.g., "localhost:1883"
	Username    string `yaml:"username,omitempty"`
	Password    string `yaml:"password,omitempty"`
	TopicPrefix string `yaml:"topic_prefix,omitempty"` // default: "gridreport"
}

// Load reads the config file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Return empty config if file doesn't exist
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &cfg, nil
}

// DefaultConfigPath returns the default config file path (local directory)
func DefaultConfigPath() string {
	return "config.yaml"
}

// GetDataFile returns the measurement CSV path with a default of 2025.csv
func (c *Config) GetDataFile() string {
	if c.DataFile == "" {
		return "2025.csv"
	}
	return c.DataFile
}

// GetReportFile returns the report output path with a default of report.txt
func (c *Config) GetReportFile() string {
	if c.ReportFile == "" {
		return "report.txt"
	}
	return c.ReportFile
}

// GetSummaryFile returns the weekly summary output path with a default of summary.txt
func (c *Config) GetSummaryFile() string {
	if c.SummaryFile == "" {
		return "summary.txt"
	}
	return c.SummaryFile
}

// GetReservationsFile returns the reservation data path with a default of reservations.txt
func (c *Config) GetReservationsFile() string {
	if c.ReservationsFile == "" {
		return "reservations.txt"
	}
	return c.ReservationsFile
}

// GetDatasetYear returns the dataset year with a default of 2025
func (c *Config) GetDatasetYear() int {
	if c.DatasetYear <= 0 {
		return 2025
	}
	return c.DatasetYear
}

// GetTopicPrefix returns the MQTT topic prefix with a default of "gridreport"
func (c *MQTTConfig) GetTopicPrefix() string {
	if c.TopicPrefix == "" {
		return "gridreport"
	}
	return c.TopicPrefix
}
