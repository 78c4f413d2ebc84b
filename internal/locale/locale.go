// Package locale holds the Finnish display conventions used by every
// report: comma decimal separator, d.m.yyyy dates, and the fixed
// month/weekday name tables.
package locale

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// weekdayNames is indexed Monday-first, matching the report layout.
var weekdayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Decimal formats a float with two decimals and a comma separator.
// Decimal(12.345) == "12,35".
func Decimal(v float64) string {
	return strings.Replace(fmt.Sprintf("%.2f", v), ".", ",", 1)
}

// ParseDecimal parses a number that may use either a decimal comma or a
// decimal point.
func ParseDecimal(s string) (float64, error) {
	normalized := strings.Replace(strings.TrimSpace(s), ",", ".", 1)
	return strconv.ParseFloat(normalized, 64)
}

// Date formats a date as d.m.yyyy without leading zeros.
func Date(t time.Time) string {
	return fmt.Sprintf("%d.%d.%d", t.Day(), int(t.Month()), t.Year())
}

// PaddedDate formats a date as dd.mm.yyyy.
func PaddedDate(t time.Time) string {
	return t.Format("02.01.2006")
}

// ClockTime formats a time of day as hh.mm (Finnish style, dot separator).
func ClockTime(t time.Time) string {
	return t.Format("15.04")
}

// ParseDate parses a d.m.yyyy date with optional leading zeros and
// verifies it is a real calendar date (no day/month overflow).
func ParseDate(s string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("expected d.m.yyyy, got %q", s)
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing day: %w", err)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing month: %w", err)
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing year: %w", err)
	}

	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (e.g. 31.2 becomes 3.3), so reject
	// anything that did not round-trip.
	if d.Year() != year || int(d.Month()) != month || d.Day() != day {
		return time.Time{}, fmt.Errorf("not a valid calendar date: %q", s)
	}

	return d, nil
}

// MonthName returns the display name for a month number in [1,12].
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return fmt.Sprintf("month %d", month)
	}
	return monthNames[month-1]
}

// WeekdayName returns the Monday-first display name for a weekday.
func WeekdayName(d time.Weekday) string {
	// time.Weekday is Sunday-based.
	return weekdayNames[(int(d)+6)%7]
}
