package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/jgoulah/gridreport/pkg/models"
)

// LoadPhaseRows reads a weekly phase CSV file. The format is fixed:
// semicolon-delimited, a header row, then
// timestamp;c1;c2;c3;p1;p2;p3 with consumption/production values in Wh.
// Short or empty rows are skipped.
func LoadPhaseRows(path string) ([]models.PhaseRow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading phase file: %w", err)
	}

	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	// header row
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("%w: reading header of %s: %v", ErrParse, path, err)
	}

	var rows []models.PhaseRow
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrParse, line+1, err)
		}
		line++

		if len(record) < 7 {
			continue
		}

		ts, err := parseTimestamp(strings.TrimSpace(record[0]))
		if err != nil {
			return nil, fmt.Errorf("line %d: parsing timestamp: %w", line, err)
		}

		var row models.PhaseRow
		row.Timestamp = ts
		for i := 0; i < 3; i++ {
			if row.ConsumptionWh[i], err = parseNumeric(record[1+i]); err != nil {
				return nil, fmt.Errorf("line %d: parsing consumption phase %d: %w", line, i+1, err)
			}
			if row.ProductionWh[i], err = parseNumeric(record[4+i]); err != nil {
				return nil, fmt.Errorf("line %d: parsing production phase %d: %w", line, i+1, err)
			}
		}

		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no phase rows in %s", ErrParse, path)
	}

	return rows, nil
}

// PhaseDailySummaries groups hourly phase rows by day, sums each phase,
// and converts Wh to kWh. Days come back in chronological order.
func PhaseDailySummaries(rows []models.PhaseRow) []models.PhaseDaySummary {
	totals := make(map[time.Time]*models.PhaseDaySummary)
	var order []time.Time

	for _, row := range rows {
		key := DayKey(row.Timestamp)
		summary, ok := totals[key]
		if !ok {
			summary = &models.PhaseDaySummary{Day: key}
			totals[key] = summary
			order = append(order, key)
		}
		for i := 0; i < 3; i++ {
			summary.ConsumptionKWh[i] += row.ConsumptionWh[i] / 1000.0
			summary.ProductionKWh[i] += row.ProductionWh[i] / 1000.0
		}
	}

	// chronological, regardless of file order
	sort.Slice(order, func(i, j int) bool { return order[i].Before(order[j]) })

	summaries := make([]models.PhaseDaySummary, 0, len(order))
	for _, key := range order {
		summaries = append(summaries, *totals[key])
	}
	return summaries
}
