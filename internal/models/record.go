package models

import "time"

// Season is the calendar season a record falls in.
type Season string

const (
	SeasonSpring  Season = "Spring"
	SeasonSummer  Season = "Summer"
	SeasonFall    Season = "Fall"
	SeasonWinter  Season = "Winter"
	SeasonUnknown Season = "Unknown"
)

// SeasonFromCode maps the dataset's 1-4 season code to its label.
// Codes outside 1-4 map to SeasonUnknown.
func SeasonFromCode(code int) Season {
	switch code {
	case 1:
		return SeasonSpring
	case 2:
		return SeasonSummer
	case 3:
		return SeasonFall
	case 4:
		return SeasonWinter
	default:
		return SeasonUnknown
	}
}

// AllSeasons lists the four seasons in dataset code order.
func AllSeasons() []Season {
	return []Season{SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter}
}

// WeatherSituation is the dominant weather condition of a day.
type WeatherSituation string

const (
	WeatherClear       WeatherSituation = "Clear"
	WeatherMisty       WeatherSituation = "Mist/Cloudy"
	WeatherLightPrecip WeatherSituation = "Light Rain/Snow"
	WeatherHeavyPrecip WeatherSituation = "Heavy Rain/Snow"
	WeatherUnknown     WeatherSituation = "Unknown"
)

// WeatherFromCode maps the dataset's 1-4 weather code to its label.
// Codes outside 1-4 map to WeatherUnknown.
func WeatherFromCode(code int) WeatherSituation {
	switch code {
	case 1:
		return WeatherClear
	case 2:
		return WeatherMisty
	case 3:
		return WeatherLightPrecip
	case 4:
		return WeatherHeavyPrecip
	default:
		return WeatherUnknown
	}
}

// DayType labels whether a day is a working day or a weekend/holiday.
type DayType string

const (
	DayTypeWorking DayType = "Working Day"
	DayTypeWeekend DayType = "Weekend/Holiday"
)

// DayTypeFromFlag maps the dataset's 0/1 working-day flag to its label.
func DayTypeFromFlag(flag int) DayType {
	if flag != 0 {
		return DayTypeWorking
	}
	return DayTypeWeekend
}

// ClusterLabel is the ordinal rental-volume bucket assigned to a day,
// relative to the currently filtered view.
type ClusterLabel string

const (
	ClusterLow    ClusterLabel = "Low"
	ClusterMedium ClusterLabel = "Medium"
	ClusterHigh   ClusterLabel = "High"
)

// ClusterLabels lists the cluster labels in ascending value order.
func ClusterLabels() []ClusterLabel {
	return []ClusterLabel{ClusterLow, ClusterMedium, ClusterHigh}
}

// DailyRecord is one row of the bike-sharing dataset: rental counts plus
// weather and calendar attributes for a single day. Temperature, humidity and
// windspeed are normalized to [0,1]. TotalCount is casual + registered as
// recorded in the source file; it is not recomputed.
type DailyRecord struct {
	Date            time.Time        `json:"date"`
	Season          Season           `json:"season"`
	Year            int              `json:"year"`
	Month           int              `json:"month"`
	Weather         WeatherSituation `json:"weather_situation"`
	DayType         DayType          `json:"day_type"`
	Temperature     float64          `json:"temperature"`
	Humidity        float64          `json:"humidity"`
	Windspeed       float64          `json:"windspeed"`
	CasualCount     int              `json:"casual_count"`
	RegisteredCount int              `json:"registered_count"`
	TotalCount      int              `json:"total_count"`
}
