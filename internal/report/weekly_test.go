package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgoulah/gridreport/pkg/models"
)

func TestWeekSection(t *testing.T) {
	summaries := []models.PhaseDaySummary{
		{
			Day:            time.Date(2025, time.October, 13, 0, 0, 0, 0, time.UTC), // Monday, ISO week 42
			ConsumptionKWh: [3]float64{1.5, 2.25, 3.0},
			ProductionKWh:  [3]float64{0.5, 0.0, 0.75},
		},
		{
			Day:            time.Date(2025, time.October, 14, 0, 0, 0, 0, time.UTC),
			ConsumptionKWh: [3]float64{4.0, 5.0, 6.0},
			ProductionKWh:  [3]float64{1.0, 2.0, 3.0},
		},
	}

	lines := WeekSection(0, summaries)
	require.Len(t, lines, 8)

	// week number derived from the first day's ISO week
	assert.Equal(t, "Week 42 electricity consumption and production (kWh, by phase)", lines[0])
	assert.Contains(t, lines[5], "Monday")
	assert.Contains(t, lines[5], "13.10.2025")
	assert.Contains(t, lines[5], "1,50")
	assert.Contains(t, lines[5], "2,25")
	assert.Contains(t, lines[5], "0,75")
	assert.Contains(t, lines[6], "Tuesday")
	assert.Equal(t, "", lines[7])
}

func TestWeekSectionExplicitNumber(t *testing.T) {
	lines := WeekSection(41, nil)
	require.NotEmpty(t, lines)
	assert.Equal(t, "Week 41 electricity consumption and production (kWh, by phase)", lines[0])
}
