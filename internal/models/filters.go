package models

import (
	"fmt"
	"strconv"
)

// YearAll is the year selector value that disables year filtering.
const YearAll = "All"

// RideFilter represents the dashboard's filter controls, bound from query
// parameters. An empty year means YearAll; an empty season list means all
// four seasons (the shell's default).
type RideFilter struct {
	Year    string   `form:"year"`
	Seasons []string `form:"seasons"`
}

// Validate checks the year selector and season names.
func (f RideFilter) Validate() error {
	if f.Year != "" && f.Year != YearAll {
		if _, err := strconv.Atoi(f.Year); err != nil {
			return fmt.Errorf("invalid year selector %q", f.Year)
		}
	}
	for _, s := range f.Seasons {
		switch Season(s) {
		case SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter:
		default:
			return fmt.Errorf("unknown season %q", s)
		}
	}
	return nil
}

// YearValue returns the selected year and whether a specific year is active.
func (f RideFilter) YearValue() (int, bool) {
	if f.Year == "" || f.Year == YearAll {
		return 0, false
	}
	year, err := strconv.Atoi(f.Year)
	if err != nil {
		return 0, false
	}
	return year, true
}

// SeasonSet returns the selected seasons as a set, defaulting to all four.
func (f RideFilter) SeasonSet() map[Season]struct{} {
	set := make(map[Season]struct{}, 4)
	if len(f.Seasons) == 0 {
		for _, s := range AllSeasons() {
			set[s] = struct{}{}
		}
		return set
	}
	for _, s := range f.Seasons {
		set[Season(s)] = struct{}{}
	}
	return set
}
