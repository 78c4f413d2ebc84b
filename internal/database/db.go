package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jgoulah/gridreport/pkg/models"
	_ "modernc.org/sqlite"
)

const timestampLayout = "2006-01-02 15:04:05"

// DB wraps the database connection
type DB struct {
	conn *sql.DB
}

// New creates a new database connection and initializes the schema
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// initSchema creates the necessary tables
func (db *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS measurements (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT NOT NULL,
		date TEXT NOT NULL,
		consumption_kwh REAL NOT NULL,
		production_kwh REAL NOT NULL,
		temperature_c REAL NOT NULL,
		created_at TEXT NOT NULL,
		published INTEGER DEFAULT 0,
		UNIQUE(timestamp)
	);
	CREATE INDEX IF NOT EXISTS idx_measurements_date ON measurements(date);
	CREATE INDEX IF NOT EXISTS idx_measurements_published ON measurements(published);
	`

	_, err := db.conn.Exec(schema)
	return err
}

// InsertMeasurement inserts a measurement, ignoring duplicate timestamps
func (db *DB) InsertMeasurement(m *models.Measurement) error {
	query := `
	INSERT OR IGNORE INTO measurements (timestamp, date, consumption_kwh, production_kwh, temperature_c, created_at)
	VALUES (?, ?, ?, ?, ?, ?)
	`

	tsStr := m.Timestamp.Format(timestampLayout)
	dateStr := m.Timestamp.Format("2006-01-02")
	createdAt := time.Now().UTC().Format(time.RFC3339)

	_, err := db.conn.Exec(query, tsStr, dateStr, m.ConsumptionKWh, m.ProductionKWh, m.TemperatureC, createdAt)
	if err != nil {
		return fmt.Errorf("inserting measurement: %w", err)
	}

	return nil
}

// ListMeasurements retrieves all measurements ordered by date, keeping
// insertion order within a day
func (db *DB) ListMeasurements() ([]models.Measurement, error) {
	query := `
	SELECT id, timestamp, consumption_kwh, production_kwh, temperature_c
	FROM measurements
	ORDER BY date, id
	`

	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("querying measurements: %w", err)
	}
	defer rows.Close()

	return scanMeasurements(rows)
}

// ListUnpublished retrieves measurements not yet published, in the same
// date-then-insertion order as ListMeasurements
func (db *DB) ListUnpublished() ([]models.Measurement, error) {
	query := `
	SELECT id, timestamp, consumption_kwh, production_kwh, temperature_c
	FROM measurements
	WHERE published = 0
	ORDER BY date, id
	`

	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("querying unpublished measurements: %w", err)
	}
	defer rows.Close()

	return scanMeasurements(rows)
}

// MarkPublished marks a measurement as published
func (db *DB) MarkPublished(id int) error {
	query := `UPDATE measurements SET published = 1 WHERE id = ?`
	_, err := db.conn.Exec(query, id)
	if err != nil {
		return fmt.Errorf("marking measurement as published: %w", err)
	}
	return nil
}

// Count returns the number of stored measurements
func (db *DB) Count() (int, error) {
	var count int
	if err := db.conn.QueryRow(`SELECT COUNT(*) FROM measurements`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting measurements: %w", err)
	}
	return count, nil
}

// DailyTotals aggregates stored measurements per calendar day: summed
// consumption and production, average temperature, ordered by date
func (db *DB) DailyTotals() ([]models.DailySummary, error) {
	query := `
	SELECT date, SUM(consumption_kwh), SUM(production_kwh), AVG(temperature_c)
	FROM measurements
	GROUP BY date
	ORDER BY date
	`

	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("querying daily totals: %w", err)
	}
	defer rows.Close()

	var results []models.DailySummary
	for rows.Next() {
		var summary models.DailySummary
		var dateStr string

		if err := rows.Scan(&dateStr, &summary.ConsumptionKWh, &summary.ProductionKWh, &summary.AvgTemperature); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		summary.Day, err = time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, fmt.Errorf("parsing date: %w", err)
		}

		results = append(results, summary)
	}

	return results, rows.Err()
}

func scanMeasurements(rows *sql.Rows) ([]models.Measurement, error) {
	var results []models.Measurement
	for rows.Next() {
		var m models.Measurement
		var tsStr string

		if err := rows.Scan(&m.ID, &tsStr, &m.ConsumptionKWh, &m.ProductionKWh, &m.TemperatureC); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		ts, err := time.ParseInLocation(timestampLayout, tsStr, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("parsing timestamp: %w", err)
		}
		m.Timestamp = ts

		results = append(results, m)
	}

	return results, rows.Err()
}
