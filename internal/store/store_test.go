package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDetectDelimiter(t *testing.T) {
	t.Run("semicolon majority", func(t *testing.T) {
		assert.Equal(t, ';', DetectDelimiter([]byte("a;b;c,d")))
	})

	t.Run("comma majority", func(t *testing.T) {
		assert.Equal(t, ',', DetectDelimiter([]byte("a,b,c;d")))
	})

	t.Run("tie favors semicolon", func(t *testing.T) {
		assert.Equal(t, ';', DetectDelimiter([]byte("a;b,c")))
		assert.Equal(t, ';', DetectDelimiter([]byte("no delimiters at all")))
	})

	t.Run("only the leading sample counts", func(t *testing.T) {
		sample := strings.Repeat("x", detectSampleSize) + strings.Repeat(",", 100)
		assert.Equal(t, ';', DetectDelimiter([]byte(sample)))
	})
}

func TestLoad(t *testing.T) {
	t.Run("semicolon file", func(t *testing.T) {
		path := writeDataFile(t, strings.Join([]string{
			"timestamp;consumption;production;temperature",
			"2025-01-01T00:00:00;1000;500;5,0",
			"2025-01-01T01:00:00;1000;500;7,0",
			"2025-01-02T00:00:00;2000;0;10,0",
		}, "\n"))

		measurements, err := Load(path)
		require.NoError(t, err)
		require.Len(t, measurements, 3)

		assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), measurements[0].Timestamp)
		assert.Equal(t, 1000.0, measurements[0].ConsumptionKWh)
		assert.Equal(t, 500.0, measurements[0].ProductionKWh)
		assert.Equal(t, 5.0, measurements[0].TemperatureC)
		assert.Equal(t, 10.0, measurements[2].TemperatureC)
	})

	t.Run("comma file with reordered columns", func(t *testing.T) {
		path := writeDataFile(t, strings.Join([]string{
			"temperature,production,consumption,timestamp",
			"5.5,10,20,2025-03-01T12:00:00",
			"6.5,11,21,2025-03-01T13:00:00",
		}, "\n"))

		measurements, err := Load(path)
		require.NoError(t, err)
		require.Len(t, measurements, 2)
		assert.Equal(t, 20.0, measurements[0].ConsumptionKWh)
		assert.Equal(t, 10.0, measurements[0].ProductionKWh)
		assert.Equal(t, 5.5, measurements[0].TemperatureC)
	})

	t.Run("substring header match", func(t *testing.T) {
		path := writeDataFile(t, strings.Join([]string{
			"Timestamp;Consumption (net) in kWh;Production (net) in kWh;Daily average temperature",
			"2025-06-01T00:00:00;1;2;3",
		}, "\n"))

		measurements, err := Load(path)
		require.NoError(t, err)
		require.Len(t, measurements, 1)
		assert.Equal(t, 1.0, measurements[0].ConsumptionKWh)
		assert.Equal(t, 2.0, measurements[0].ProductionKWh)
		assert.Equal(t, 3.0, measurements[0].TemperatureC)
	})

	t.Run("empty timestamp rows are skipped", func(t *testing.T) {
		path := writeDataFile(t, strings.Join([]string{
			"timestamp;consumption;production;temperature",
			";1;1;1",
			"2025-01-01T00:00:00;2;2;2",
		}, "\n"))

		measurements, err := Load(path)
		require.NoError(t, err)
		require.Len(t, measurements, 1)
		assert.Equal(t, 2.0, measurements[0].ConsumptionKWh)
	})

	t.Run("missing numeric cells default to zero", func(t *testing.T) {
		path := writeDataFile(t, strings.Join([]string{
			"timestamp;consumption;production;temperature",
			"2025-01-01T00:00:00;;;",
		}, "\n"))

		measurements, err := Load(path)
		require.NoError(t, err)
		require.Len(t, measurements, 1)
		assert.Equal(t, 0.0, measurements[0].ConsumptionKWh)
		assert.Equal(t, 0.0, measurements[0].ProductionKWh)
		assert.Equal(t, 0.0, measurements[0].TemperatureC)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("header only", func(t *testing.T) {
		path := writeDataFile(t, "timestamp;consumption;production;temperature\n")
		_, err := Load(path)
		assert.True(t, errors.Is(err, ErrParse))
	})

	t.Run("malformed row mid-file fails the load", func(t *testing.T) {
		// a bare quote makes the csv reader error on row 2; the load
		// must fail instead of returning rows 1..1 with a nil error
		path := writeDataFile(t, strings.Join([]string{
			"timestamp;consumption;production;temperature",
			"2025-01-01T00:00:00;1;1;1",
			`2025-01-01T01:00:00;10"00;1;1`,
			"2025-01-01T02:00:00;1;1;1",
		}, "\n"))

		measurements, err := Load(path)
		assert.True(t, errors.Is(err, ErrParse))
		assert.Nil(t, measurements)
	})

	t.Run("unresolvable column", func(t *testing.T) {
		path := writeDataFile(t, strings.Join([]string{
			"when;usage;output;degrees",
			"2025-01-01T00:00:00;1;1;1",
		}, "\n"))

		_, err := Load(path)
		assert.True(t, errors.Is(err, ErrParse))
	})
}

func TestBuildDailyIndex(t *testing.T) {
	path := writeDataFile(t, strings.Join([]string{
		"timestamp;consumption;production;temperature",
		"2025-01-01T00:00:00;1;0;1",
		"2025-01-02T00:00:00;2;0;2",
		"2025-01-01T23:00:00;3;0;3",
	}, "\n"))

	measurements, err := Load(path)
	require.NoError(t, err)

	index := BuildDailyIndex(measurements)
	require.Len(t, index, 2)

	day1 := index[time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)]
	day2 := index[time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)]

	// exact partition: every measurement lands in exactly one bucket
	assert.Equal(t, len(measurements), len(day1)+len(day2))

	// bucket membership keeps file order
	require.Len(t, day1, 2)
	assert.Equal(t, 1.0, day1[0].ConsumptionKWh)
	assert.Equal(t, 3.0, day1[1].ConsumptionKWh)
}
