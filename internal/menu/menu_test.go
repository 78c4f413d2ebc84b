package menu

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgoulah/gridreport/pkg/models"
)

func testMeasurements() []models.Measurement {
	return []models.Measurement{
		{Timestamp: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), ConsumptionKWh: 1000, ProductionKWh: 500, TemperatureC: 5},
		{Timestamp: time.Date(2025, 1, 1, 1, 0, 0, 0, time.UTC), ConsumptionKWh: 1000, ProductionKWh: 500, TemperatureC: 7},
		{Timestamp: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), ConsumptionKWh: 2000, ProductionKWh: 0, TemperatureC: 10},
	}
}

func runSession(t *testing.T, input string, reportPath string) string {
	t.Helper()
	var out bytes.Buffer
	m := New(strings.NewReader(input), &out, testMeasurements(), 2025, reportPath)
	require.NoError(t, m.Run())
	return out.String()
}

func TestYearReportAndExit(t *testing.T) {
	out := runSession(t, "3\n3\n", filepath.Join(t.TempDir(), "report.txt"))

	assert.Contains(t, out, "Choose a report type:")
	assert.Contains(t, out, "Report for the year: 2025")
	assert.Contains(t, out, "- Total consumption: 4000,00 kWh")
	assert.Contains(t, out, "- Total production: 1000,00 kWh")
	assert.Contains(t, out, "- Average temperature: 7,33 °C")
	assert.Contains(t, out, "What would you like to do next?")
	assert.Contains(t, out, "Goodbye!")
}

func TestWriteReportFile(t *testing.T) {
	reportPath := filepath.Join(t.TempDir(), "report.txt")
	out := runSession(t, "3\n1\n3\n", reportPath)

	assert.Contains(t, out, "Wrote report to report.txt")

	content, err := os.ReadFile(reportPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, strings.Repeat("-", 53), lines[0])
	assert.Equal(t, "Report for the year: 2025", lines[1])
	assert.True(t, strings.HasSuffix(string(content), "\n"), "report file must end with a newline")
}

func TestSavedReportIsOverwritten(t *testing.T) {
	reportPath := filepath.Join(t.TempDir(), "report.txt")
	// save the year report, go back, save a month report over it
	runSession(t, "3\n1\n2\n2\n2\n1\n3\n", reportPath)

	content, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Report for the month: February")
	assert.NotContains(t, string(content), "Report for the year")
}

func TestRangeReportPrompts(t *testing.T) {
	out := runSession(t, "1\n1.1.2025\n2.1.2025\n3\n", filepath.Join(t.TempDir(), "report.txt"))

	assert.Contains(t, out, "Enter start date (dd.mm.yyyy): ")
	assert.Contains(t, out, "Report for the period 1.1.2025–2.1.2025")
	assert.Contains(t, out, "- Total consumption: 4000,00 kWh")
}

func TestInvalidDateReprompts(t *testing.T) {
	out := runSession(t, "1\n31.2.2025\nnonsense\n1.1.2025\n1.1.2025\n3\n", filepath.Join(t.TempDir(), "report.txt"))

	assert.Equal(t, 2, strings.Count(out, "Invalid date. Use format dd.mm.yyyy"))
	assert.Contains(t, out, "Report for the period 1.1.2025–1.1.2025")
}

func TestInvalidMonthReprompts(t *testing.T) {
	out := runSession(t, "2\nabc\n13\n0\n1\n3\n", filepath.Join(t.TempDir(), "report.txt"))

	assert.Contains(t, out, "Invalid number. Try again.")
	assert.Equal(t, 2, strings.Count(out, "Please enter a number between 1 and 12."))
	assert.Contains(t, out, "Report for the month: January")
}

func TestUnknownMenuChoicesReprompt(t *testing.T) {
	out := runSession(t, "9\nx\n3\n7\n3\n", filepath.Join(t.TempDir(), "report.txt"))

	assert.Equal(t, 2, strings.Count(out, "Unknown choice. Please select 1-4."))
	assert.Contains(t, out, "Unknown choice. Please select 1-3.")
	assert.Contains(t, out, "Goodbye!")
}

func TestEOFEndsSessionCleanly(t *testing.T) {
	var out bytes.Buffer
	m := New(strings.NewReader(""), &out, testMeasurements(), 2025, filepath.Join(t.TempDir(), "report.txt"))
	require.NoError(t, m.Run())
}
