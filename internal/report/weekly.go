package report

import (
	"fmt"
	"strings"

	"github.com/jgoulah/gridreport/internal/locale"
	"github.com/jgoulah/gridreport/pkg/models"
)

const weeklyDividerWidth = 75

// WeekSection renders one week's per-phase daily totals as table lines.
// The week number is taken from the ISO week of the first day when the
// caller passes 0.
func WeekSection(weekNumber int, summaries []models.PhaseDaySummary) []string {
	if weekNumber == 0 && len(summaries) > 0 {
		_, weekNumber = summaries[0].Day.ISOWeek()
	}

	lines := []string{
		fmt.Sprintf("Week %d electricity consumption and production (kWh, by phase)", weekNumber),
		"",
		"Day          Date        Consumption [kWh]               Production [kWh]",
		"            (dd.mm.yyyy)  v1      v2      v3             v1     v2     v3",
		strings.Repeat("-", weeklyDividerWidth),
	}

	for _, s := range summaries {
		lines = append(lines, fmt.Sprintf(
			"%-12s  %-10s  %6s  %6s  %6s           %6s  %6s  %6s",
			locale.WeekdayName(s.Day.Weekday()),
			locale.PaddedDate(s.Day),
			locale.Decimal(s.ConsumptionKWh[0]),
			locale.Decimal(s.ConsumptionKWh[1]),
			locale.Decimal(s.ConsumptionKWh[2]),
			locale.Decimal(s.ProductionKWh[0]),
			locale.Decimal(s.ProductionKWh[1]),
			locale.Decimal(s.ProductionKWh[2]),
		))
	}

	lines = append(lines, "")
	return lines
}
