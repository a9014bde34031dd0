package dataset

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Andhika-Putra/dashboard-app/internal/logger"
	"github.com/Andhika-Putra/dashboard-app/internal/models"
)

// readSQLite loads the daily records from a SQLite file holding the same
// columns as the CSV in a daily_rides table. The database is opened
// read-only for the duration of the load.
func readSQLite(path string) ([]models.DailyRecord, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to dataset database: %w", err)
	}

	rows, err := db.Query(`
		SELECT dteday, season, workingday, weathersit,
		       temp, hum, windspeed, casual, registered, cnt
		FROM daily_rides
		ORDER BY dteday`)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily_rides: %w", err)
	}
	defer rows.Close()

	var records []models.DailyRecord
	for rows.Next() {
		var (
			dateStr                 string
			seasonCode, workingFlag int
			weatherCode             int
			temp, hum, wind         float64
			casual, registered, cnt int
		)
		if err := rows.Scan(&dateStr, &seasonCode, &workingFlag, &weatherCode,
			&temp, &hum, &wind, &casual, &registered, &cnt); err != nil {
			return nil, fmt.Errorf("failed to scan daily_rides row: %w", err)
		}

		date, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			logger.Warnf("skipping daily_rides row with invalid date %q", dateStr)
			continue
		}

		records = append(records, models.DailyRecord{
			Date:            date,
			Season:          models.SeasonFromCode(seasonCode),
			Year:            date.Year(),
			Month:           int(date.Month()),
			Weather:         models.WeatherFromCode(weatherCode),
			DayType:         models.DayTypeFromFlag(workingFlag),
			Temperature:     temp,
			Humidity:        hum,
			Windspeed:       wind,
			CasualCount:     casual,
			RegisteredCount: registered,
			TotalCount:      cnt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read daily_rides: %w", err)
	}

	logger.Infow("dataset loaded", "path", path, "records", len(records))
	return records, nil
}
