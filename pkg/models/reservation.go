package models

import "time"

// LongReservationHours is the duration threshold (in hours) above which
// a reservation counts as long. The comparison is inclusive.
const LongReservationHours = 3

// Reservation represents one row from the pipe-delimited reservation file.
type Reservation struct {
	ID          int
	Name        string
	Email       string
	Phone       string
	Date        time.Time
	StartTime   time.Time
	Hours       int
	HourlyPrice float64
	Confirmed   bool
	Resource    string
	CreatedAt   time.Time
}

// TotalPrice returns hours multiplied by the hourly price.
func (r Reservation) TotalPrice() float64 {
	return float64(r.Hours) * r.HourlyPrice
}

// IsLong reports whether the reservation lasts at least LongReservationHours.
func (r Reservation) IsLong() bool {
	return r.Hours >= LongReservationHours
}
