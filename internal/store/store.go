// Package store loads hourly energy measurements from delimited text
// files and groups them by calendar day.
package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jgoulah/gridreport/internal/locale"
	"github.com/jgoulah/gridreport/pkg/models"
)

var (
	// ErrNotFound is returned when the data file does not exist.
	ErrNotFound = errors.New("data file not found")
	// ErrParse is returned when no rows could be parsed or a required
	// column cannot be located in the header.
	ErrParse = errors.New("unable to parse data file")
)

// detectSampleSize is how many leading bytes are inspected when
// choosing between ';' and ',' as the field delimiter.
const detectSampleSize = 2000

// timestampLayouts are tried in order when parsing the timestamp column.
var timestampLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Column name candidates per logical field, tried as exact
// case-insensitive matches first, then as substring matches. English
// and Finnish header variants are both accepted.
var (
	timestampCandidates   = []string{"timestamp", "aika", "time"}
	consumptionCandidates = []string{"consumption", "kulutus", "consumption (net) in kwh", "consumption_kwh"}
	productionCandidates  = []string{"production", "tuotanto", "production (net) in kwh", "production_kwh"}
	temperatureCandidates = []string{"temperature", "avg temperature", "daily average temperature", "lampotila", "lämpötila", "temp"}
)

// DailyIndex maps a calendar date (midnight UTC) to the measurements
// recorded on that date, in file order.
type DailyIndex map[time.Time][]models.Measurement

// DayKey normalizes a timestamp to the midnight-UTC key used by DailyIndex.
func DayKey(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DetectDelimiter counts ';' versus ',' in the leading sample of the
// file content and picks the more frequent one. Ties favor ';'.
func DetectDelimiter(sample []byte) rune {
	if len(sample) > detectSampleSize {
		sample = sample[:detectSampleSize]
	}
	text := string(sample)
	if strings.Count(text, ";") >= strings.Count(text, ",") {
		return ';'
	}
	return ','
}

// Load reads the hourly measurement CSV at path. The delimiter and the
// column positions are auto-detected from the file itself. Rows with an
// empty timestamp are skipped; empty numeric cells default to zero.
// File order is preserved.
func Load(path string) ([]models.Measurement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading data file: %w", err)
	}

	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.Comma = DetectDelimiter(data)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", ErrParse, err)
	}

	colTime, err := resolveColumn(header, timestampCandidates)
	if err != nil {
		return nil, err
	}
	colCons, err := resolveColumn(header, consumptionCandidates)
	if err != nil {
		return nil, err
	}
	colProd, err := resolveColumn(header, productionCandidates)
	if err != nil {
		return nil, err
	}
	colTemp, err := resolveColumn(header, temperatureCandidates)
	if err != nil {
		return nil, err
	}

	var measurements []models.Measurement
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// a malformed row aborts the load; a silently truncated
			// dataset would produce wrong report totals
			return nil, fmt.Errorf("%w: line %d: %v", ErrParse, line+1, err)
		}
		line++

		timeStr := strings.TrimSpace(field(record, colTime))
		if timeStr == "" {
			continue
		}

		ts, err := parseTimestamp(timeStr)
		if err != nil {
			return nil, fmt.Errorf("line %d: parsing timestamp %q: %w", line, timeStr, err)
		}

		cons, err := parseNumeric(field(record, colCons))
		if err != nil {
			return nil, fmt.Errorf("line %d: parsing consumption: %w", line, err)
		}
		prod, err := parseNumeric(field(record, colProd))
		if err != nil {
			return nil, fmt.Errorf("line %d: parsing production: %w", line, err)
		}
		temp, err := parseNumeric(field(record, colTemp))
		if err != nil {
			return nil, fmt.Errorf("line %d: parsing temperature: %w", line, err)
		}

		measurements = append(measurements, models.Measurement{
			Timestamp:      ts,
			ConsumptionKWh: cons,
			ProductionKWh:  prod,
			TemperatureC:   temp,
		})
	}

	if len(measurements) == 0 {
		return nil, fmt.Errorf("%w: no measurement rows in %s", ErrParse, path)
	}

	return measurements, nil
}

// BuildDailyIndex groups measurements by the date component of their
// timestamp. Bucket order matches input order.
func BuildDailyIndex(measurements []models.Measurement) DailyIndex {
	index := make(DailyIndex)
	for _, m := range measurements {
		key := m.Day()
		index[key] = append(index[key], m)
	}
	return index
}

// resolveColumn finds the index of the header matching one of the
// candidate names: exact case-insensitive match first, then substring.
func resolveColumn(header []string, candidates []string) (int, error) {
	normalized := make([]string, len(header))
	for i, name := range header {
		normalized[i] = strings.ToLower(strings.TrimSpace(name))
	}

	for _, cand := range candidates {
		for i, name := range normalized {
			if name == strings.ToLower(cand) {
				return i, nil
			}
		}
	}
	for _, cand := range candidates {
		for i, name := range normalized {
			if strings.Contains(name, strings.ToLower(cand)) {
				return i, nil
			}
		}
	}

	return 0, fmt.Errorf("%w: no column matching %v in header %v", ErrParse, candidates, header)
}

// field returns record[i] or "" when the row is short.
func field(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	return record[i]
}

func parseTimestamp(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		ts, err := time.ParseInLocation(layout, value, time.UTC)
		if err == nil {
			return ts, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// parseNumeric parses a cell that may use a decimal comma. Empty cells
// default to zero rather than failing the row.
func parseNumeric(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	return locale.ParseDecimal(value)
}
