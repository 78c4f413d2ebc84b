package models

import "time"

// Measurement represents one hourly row from the energy CSV file.
// Values are never mutated after load.
type Measurement struct {
	ID             int       `json:"id,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
	ConsumptionKWh float64   `json:"consumption_kwh"`
	ProductionKWh  float64   `json:"production_kwh"`
	TemperatureC   float64   `json:"temperature_c"`
}

// Day returns the calendar date of the measurement, normalized to
// midnight UTC so it can be used as a map key.
func (m Measurement) Day() time.Time {
	return time.Date(m.Timestamp.Year(), m.Timestamp.Month(), m.Timestamp.Day(), 0, 0, 0, 0, time.UTC)
}

// DailySummary holds aggregated totals for one calendar day.
type DailySummary struct {
	Day            time.Time `json:"day"`
	ConsumptionKWh float64   `json:"consumption_kwh"`
	ProductionKWh  float64   `json:"production_kwh"`
	AvgTemperature float64   `json:"avg_temperature_c"`
}

// PhaseRow represents one hourly row from a weekly phase CSV file.
// Consumption and production values are per electrical phase, in Wh.
type PhaseRow struct {
	Timestamp     time.Time
	ConsumptionWh [3]float64
	ProductionWh  [3]float64
}

// PhaseDaySummary holds per-phase daily totals converted to kWh.
type PhaseDaySummary struct {
	Day            time.Time
	ConsumptionKWh [3]float64
	ProductionKWh  [3]float64
}
