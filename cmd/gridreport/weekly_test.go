package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWeeklyWritesConfiguredSummaryFile(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "week42.csv")
	csvContent := strings.Join([]string{
		"timestamp;c1;c2;c3;p1;p2;p3",
		"2025-10-13T00:00:00;1000;2000;3000;100;200;300",
	}, "\n")
	require.NoError(t, os.WriteFile(csvPath, []byte(csvContent), 0644))

	summaryPath := filepath.Join(dir, "summary.txt")
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("summary_file: "+summaryPath+"\n"), 0600))

	cfgFile = configPath
	weeklyOut = ""
	t.Cleanup(func() { cfgFile = "" })

	require.NoError(t, runWeekly(weeklyCmd, []string{csvPath}))

	content, err := os.ReadFile(summaryPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Week 42 electricity consumption and production (kWh, by phase)")
	assert.Contains(t, string(content), "Monday")
	assert.Contains(t, string(content), "13.10.2025")

	t.Run("--out overrides the configured file", func(t *testing.T) {
		outPath := filepath.Join(dir, "other.txt")
		weeklyOut = outPath
		t.Cleanup(func() { weeklyOut = "" })

		require.NoError(t, runWeekly(weeklyCmd, []string{csvPath}))

		_, err := os.Stat(outPath)
		assert.NoError(t, err)
	})
}
