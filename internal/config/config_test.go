package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsEmptyConfig(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestDefaults(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, "2025.csv", cfg.GetDataFile())
	assert.Equal(t, "report.txt", cfg.GetReportFile())
	assert.Equal(t, "summary.txt", cfg.GetSummaryFile())
	assert.Equal(t, "reservations.txt", cfg.GetReservationsFile())
	assert.Equal(t, 2025, cfg.GetDatasetYear())
	assert.Equal(t, "gridreport", cfg.MQTT.GetTopicPrefix())
}

func TestLoadParsesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `data_file: meter.csv
summary_file: weeks.txt
dataset_year: 2024
mqtt:
  enabled: true
  broker: localhost:1883
  topic_prefix: meters
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "meter.csv", loaded.GetDataFile())
	assert.Equal(t, "weeks.txt", loaded.GetSummaryFile())
	assert.Equal(t, 2024, loaded.GetDatasetYear())
	assert.True(t, loaded.MQTT.Enabled)
	assert.Equal(t, "localhost:1883", loaded.MQTT.Broker)
	assert.Equal(t, "meters", loaded.MQTT.GetTopicPrefix())
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_file: [unclosed"), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}
