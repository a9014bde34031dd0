package dataset

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andhika-Putra/dashboard-app/internal/models"
)

func TestLoadSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "day.db")

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)

	_, err = db.Exec(`
		CREATE TABLE daily_rides (
			dteday TEXT PRIMARY KEY,
			season INTEGER,
			workingday INTEGER,
			weathersit INTEGER,
			temp REAL,
			hum REAL,
			windspeed REAL,
			casual INTEGER,
			registered INTEGER,
			cnt INTEGER
		)`)
	require.NoError(t, err)

	_, err = db.Exec(`
		INSERT INTO daily_rides VALUES
			('2012-06-01', 2, 1, 1, 0.68, 0.50, 0.12, 700, 4100, 4800),
			('2012-06-02', 2, 0, 2, 0.70, 0.62, 0.10, 1500, 3200, 4700)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	records, err := Load(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, models.SeasonSummer, records[0].Season)
	assert.Equal(t, models.DayTypeWorking, records[0].DayType)
	assert.Equal(t, 4800, records[0].TotalCount)
	assert.Equal(t, 2012, records[0].Year)
	assert.Equal(t, 6, records[0].Month)
	assert.Equal(t, models.WeatherMisty, records[1].Weather)
}
