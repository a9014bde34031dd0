// Package dataset loads the daily bike-sharing table and caches it per path.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Andhika-Putra/dashboard-app/internal/logger"
	"github.com/Andhika-Putra/dashboard-app/internal/models"
)

// ErrDataNotFound reports a missing input file.
var ErrDataNotFound = errors.New("dataset file not found")

const dateLayout = "2006-01-02"

// Columns the input file must provide. Order in the file does not matter;
// the header decides.
var requiredColumns = []string{
	"dteday", "season", "workingday", "weathersit",
	"temp", "hum", "windspeed", "casual", "registered", "cnt",
}

var (
	cacheMu sync.Mutex
	cache   = make(map[string][]models.DailyRecord)
)

// Load returns the daily records for path, reading the file at most once per
// process. The returned slice is shared across callers and must be treated as
// read-only.
func Load(path string) ([]models.DailyRecord, error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	if records, ok := cache[path]; ok {
		return records, nil
	}

	records, err := read(path)
	if err != nil {
		return nil, err
	}

	cache[path] = records
	return records, nil
}

func read(path string) ([]models.DailyRecord, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDataNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat dataset: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return readSQLite(path)
	default:
		return readCSV(path)
	}
}

func readCSV(path string) ([]models.DailyRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset header: %w", err)
	}

	cols, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	var records []models.DailyRecord
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read dataset row: %w", err)
		}

		rec, err := parseRow(row, cols)
		if err != nil {
			logger.Warnf("skipping dataset row %d: %v", line, err)
			continue
		}
		records = append(records, rec)
	}

	logger.Infow("dataset loaded", "path", path, "records", len(records))
	return records, nil
}

// indexColumns maps required column names to their positions in the header.
func indexColumns(header []string) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		positions[strings.TrimSpace(strings.ToLower(name))] = i
	}

	cols := make(map[string]int, len(requiredColumns))
	for _, name := range requiredColumns {
		pos, ok := positions[name]
		if !ok {
			return nil, fmt.Errorf("dataset is missing column %q", name)
		}
		cols[name] = pos
	}
	return cols, nil
}

func parseRow(row []string, cols map[string]int) (models.DailyRecord, error) {
	field := func(name string) string {
		pos := cols[name]
		if pos >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[pos])
	}

	date, err := time.Parse(dateLayout, field("dteday"))
	if err != nil {
		return models.DailyRecord{}, fmt.Errorf("invalid date %q", field("dteday"))
	}

	seasonCode, err := strconv.Atoi(field("season"))
	if err != nil {
		return models.DailyRecord{}, fmt.Errorf("invalid season code %q", field("season"))
	}
	weatherCode, err := strconv.Atoi(field("weathersit"))
	if err != nil {
		return models.DailyRecord{}, fmt.Errorf("invalid weather code %q", field("weathersit"))
	}
	workingFlag, err := strconv.Atoi(field("workingday"))
	if err != nil {
		return models.DailyRecord{}, fmt.Errorf("invalid working-day flag %q", field("workingday"))
	}

	temp, err := strconv.ParseFloat(field("temp"), 64)
	if err != nil {
		return models.DailyRecord{}, fmt.Errorf("invalid temperature %q", field("temp"))
	}
	hum, err := strconv.ParseFloat(field("hum"), 64)
	if err != nil {
		return models.DailyRecord{}, fmt.Errorf("invalid humidity %q", field("hum"))
	}
	wind, err := strconv.ParseFloat(field("windspeed"), 64)
	if err != nil {
		return models.DailyRecord{}, fmt.Errorf("invalid windspeed %q", field("windspeed"))
	}

	casual, err := strconv.Atoi(field("casual"))
	if err != nil {
		return models.DailyRecord{}, fmt.Errorf("invalid casual count %q", field("casual"))
	}
	registered, err := strconv.Atoi(field("registered"))
	if err != nil {
		return models.DailyRecord{}, fmt.Errorf("invalid registered count %q", field("registered"))
	}
	total, err := strconv.Atoi(field("cnt"))
	if err != nil {
		return models.DailyRecord{}, fmt.Errorf("invalid total count %q", field("cnt"))
	}

	return models.DailyRecord{
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
		TotalCount:      total,
	}, nil
}
