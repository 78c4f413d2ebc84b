// Package report builds the formatted summary reports: period, month
// and year summaries over hourly measurements, weekly per-phase tables,
// and the XLSX/PDF export variants.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jgoulah/gridreport/internal/locale"
	"github.com/jgoulah/gridreport/internal/store"
	"github.com/jgoulah/gridreport/pkg/models"
)

const dividerWidth = 53

// Range builds a report for an inclusive date range. A reversed range
// is swapped, never rejected. Temperature is the flat mean over every
// reading in the range.
func Range(index store.DailyIndex, start, end time.Time) []string {
	start = store.DayKey(start)
	end = store.DayKey(end)
	if end.Before(start) {
		start, end = end, start
	}

	var totalCons, totalProd, tempSum float64
	tempCount := 0

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		for _, m := range index[day] {
			totalCons += m.ConsumptionKWh
			totalProd += m.ProductionKWh
			tempSum += m.TemperatureC
			tempCount++
		}
	}

	avgTemp := 0.0
	if tempCount > 0 {
		avgTemp = tempSum / float64(tempCount)
	}

	title := fmt.Sprintf("Report for the period %s–%s", locale.Date(start), locale.Date(end))
	return buildLines(title, totalCons, totalProd, avgTemp)
}

// Month builds a report for one month of the given year. Temperature is
// the mean of per-day means, which differs from the flat mean used by
// Range and Year when days have unequal reading counts. Both behaviors
// are kept as-is.
func Month(index store.DailyIndex, year, month int) []string {
	var totalCons, totalProd float64
	var dayAvgSum float64
	dayCount := 0

	for day, measurements := range index {
		if day.Year() != year || int(day.Month()) != month {
			continue
		}

		var dayTempSum float64
		for _, m := range measurements {
			totalCons += m.ConsumptionKWh
			totalProd += m.ProductionKWh
			dayTempSum += m.TemperatureC
		}
		if len(measurements) > 0 {
			dayAvgSum += dayTempSum / float64(len(measurements))
			dayCount++
		}
	}

	avgTemp := 0.0
	if dayCount > 0 {
		avgTemp = dayAvgSum / float64(dayCount)
	}

	title := fmt.Sprintf("Report for the month: %s", locale.MonthName(month))
	return buildLines(title, totalCons, totalProd, avgTemp)
}

// Year builds a full-year report: flat sums and a flat temperature mean
// over every measurement of the given year.
func Year(measurements []models.Measurement, year int) []string {
	var totalCons, totalProd, tempSum float64
	count := 0

	for _, m := range measurements {
		if m.Timestamp.Year() != year {
			continue
		}
		totalCons += m.ConsumptionKWh
		totalProd += m.ProductionKWh
		tempSum += m.TemperatureC
		count++
	}

	avgTemp := 0.0
	if count > 0 {
		avgTemp = tempSum / float64(count)
	}

	title := fmt.Sprintf("Report for the year: %d", year)
	return buildLines(title, totalCons, totalProd, avgTemp)
}

func buildLines(title string, consumption, production, avgTemp float64) []string {
	return []string{
		strings.Repeat("-", dividerWidth),
		title,
		fmt.Sprintf("- Total consumption: %s kWh", locale.Decimal(consumption)),
		fmt.Sprintf("- Total production: %s kWh", locale.Decimal(production)),
		fmt.Sprintf("- Average temperature: %s °C", locale.Decimal(avgTemp)),
	}
}

// DailySummaries aggregates measurements into per-day totals with the
// day's average temperature, in chronological order.
func DailySummaries(index store.DailyIndex) []models.DailySummary {
	days := make([]time.Time, 0, len(index))
	for day := range index {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	summaries := make([]models.DailySummary, 0, len(days))
	for _, day := range days {
		measurements := index[day]
		var cons, prod, tempSum float64
		for _, m := range measurements {
			cons += m.ConsumptionKWh
			prod += m.ProductionKWh
			tempSum += m.TemperatureC
		}
		avg := 0.0
		if len(measurements) > 0 {
			avg = tempSum / float64(len(measurements))
		}
		summaries = append(summaries, models.DailySummary{
			Day:            day,
			ConsumptionKWh: cons,
			ProductionKWh:  prod,
			AvgTemperature: avg,
		})
	}
	return summaries
}
