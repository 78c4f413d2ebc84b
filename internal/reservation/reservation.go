// Package reservation parses pipe-delimited reservation files and
// builds the reservation summary report.
package reservation

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jgoulah/gridreport/internal/locale"
	"github.com/jgoulah/gridreport/pkg/models"
)

// fieldCount is the number of pipe-separated fields per reservation row.
const fieldCount = 11

// Load reads reservations from a pipe-delimited file. Blank lines are
// skipped; a malformed row fails the whole load.
func Load(path string) ([]models.Reservation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening reservations file: %w", err)
	}
	defer f.Close()

	var reservations []models.Reservation
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		r, err := parseRow(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		reservations = append(reservations, r)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading reservations file: %w", err)
	}

	return reservations, nil
}

// parseRow converts one pipe-delimited row into a typed Reservation.
// Field order: id|name|email|phone|date|time|hours|price|confirmed|resource|created.
func parseRow(text string) (models.Reservation, error) {
	fields := strings.Split(text, "|")
	if len(fields) != fieldCount {
		return models.Reservation{}, fmt.Errorf("expected %d fields, got %d", fieldCount, len(fields))
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return models.Reservation{}, fmt.Errorf("parsing reservation id: %w", err)
	}

	date, err := time.ParseInLocation("2006-01-02", fields[4], time.UTC)
	if err != nil {
		return models.Reservation{}, fmt.Errorf("parsing date: %w", err)
	}

	startTime, err := time.ParseInLocation("15:04", fields[5], time.UTC)
	if err != nil {
		return models.Reservation{}, fmt.Errorf("parsing start time: %w", err)
	}

	hours, err := strconv.Atoi(fields[6])
	if err != nil {
		return models.Reservation{}, fmt.Errorf("parsing hours: %w", err)
	}

	price, err := locale.ParseDecimal(fields[7])
	if err != nil {
		return models.Reservation{}, fmt.Errorf("parsing hourly price: %w", err)
	}

	createdAt, err := time.ParseInLocation("2006-01-02 15:04:05", fields[10], time.UTC)
	if err != nil {
		return models.Reservation{}, fmt.Errorf("parsing created timestamp: %w", err)
	}

	return models.Reservation{
		ID:          id,
		Name:        fields[1],
		Email:       fields[2],
		Phone:       fields[3],
		Date:        date,
		StartTime:   startTime,
		Hours:       hours,
		HourlyPrice: price,
		Confirmed:   fields[8] == "True",
		Resource:    fields[9],
		CreatedAt:   createdAt,
	}, nil
}

// SummaryLines builds the five numbered report sections.
func SummaryLines(reservations []models.Reservation) []string {
	var lines []string

	lines = append(lines, "1) Confirmed Reservations")
	for _, r := range reservations {
		if r.Confirmed {
			lines = append(lines, fmt.Sprintf("- %s, %s, %s at %s",
				r.Name, r.Resource, locale.PaddedDate(r.Date), locale.ClockTime(r.StartTime)))
		}
	}
	lines = append(lines, "")

	lines = append(lines, fmt.Sprintf("2) Long Reservations (>= %d h)", models.LongReservationHours))
	for _, r := range reservations {
		if r.IsLong() {
			lines = append(lines, fmt.Sprintf("- %s, %s at %s, duration %d h, %s",
				r.Name, locale.PaddedDate(r.Date), locale.ClockTime(r.StartTime), r.Hours, r.Resource))
		}
	}
	lines = append(lines, "")

	lines = append(lines, "3) Reservation Confirmation Status")
	for _, r := range reservations {
		status := "Confirmed"
		if !r.Confirmed {
			status = "NOT Confirmed"
		}
		lines = append(lines, fmt.Sprintf("%s -> %s", r.Name, status))
	}
	lines = append(lines, "")

	confirmed := 0
	for _, r := range reservations {
		if r.Confirmed {
			confirmed++
		}
	}
	lines = append(lines, "4) Confirmation Summary")
	lines = append(lines, fmt.Sprintf("- Confirmed reservations: %d pcs", confirmed))
	lines = append(lines, fmt.Sprintf("- Not confirmed reservations: %d pcs", len(reservations)-confirmed))
	lines = append(lines, "")

	var revenue float64
	for _, r := range reservations {
		if r.Confirmed {
			revenue += r.TotalPrice()
		}
	}
	lines = append(lines, "5) Total Revenue from Confirmed Reservations")
	lines = append(lines, fmt.Sprintf("Total revenue from confirmed reservations: %s EUR", locale.Decimal(revenue)))

	return lines
}

// DetailLines builds the full field-by-field block for one reservation.
func DetailLines(r models.Reservation) []string {
	paid := "No"
	if r.Confirmed {
		paid = "Yes"
	}
	return []string{
		fmt.Sprintf("Reservation number: %d", r.ID),
		fmt.Sprintf("Booker: %s", r.Name),
		fmt.Sprintf("Date: %s", locale.PaddedDate(r.Date)),
		fmt.Sprintf("Start time: %s", locale.ClockTime(r.StartTime)),
		fmt.Sprintf("Number of hours: %d", r.Hours),
		fmt.Sprintf("Hourly price: %s €", locale.Decimal(r.HourlyPrice)),
		fmt.Sprintf("Total price: %s €", locale.Decimal(r.TotalPrice())),
		fmt.Sprintf("Paid: %s", paid),
		fmt.Sprintf("Location: %s", r.Resource),
		fmt.Sprintf("Phone: %s", r.Phone),
		fmt.Sprintf("Email: %s", r.Email),
	}
}
