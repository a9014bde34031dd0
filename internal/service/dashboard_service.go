// Package service implements the dashboard pipeline over the loaded table.
package service

import (
	"sort"

	"github.com/Andhika-Putra/dashboard-app/internal/logger"
	"github.com/Andhika-Putra/dashboard-app/internal/models"
	"github.com/Andhika-Putra/dashboard-app/internal/stats"
)

// DashboardService owns the filter, metrics, trend and clustering stages.
// Every request runs the full pipeline against the immutable master table;
// cluster boundaries are always relative to the active filter.
type DashboardService struct {
	records []models.DailyRecord
}

// NewDashboardService creates a dashboard service over the loaded table.
func NewDashboardService(records []models.DailyRecord) *DashboardService {
	return &DashboardService{records: records}
}

// Years returns the distinct years present in the table, ascending.
func (s *DashboardService) Years() []int {
	seen := make(map[int]struct{})
	var years []int
	for _, r := range s.records {
		if _, ok := seen[r.Year]; ok {
			continue
		}
		seen[r.Year] = struct{}{}
		years = append(years, r.Year)
	}
	sort.Ints(years)
	return years
}

// Filter applies the year selector and season set, preserving source order.
func (s *DashboardService) Filter(f models.RideFilter) []models.DailyRecord {
	year, exact := f.YearValue()
	seasons := f.SeasonSet()

	var view []models.DailyRecord
	for _, r := range s.records {
		if exact && r.Year != year {
			continue
		}
		if _, ok := seasons[r.Season]; !ok {
			continue
		}
		view = append(view, r)
	}
	return view
}

// Metrics computes the summary panel values over the filtered view.
func (s *DashboardService) Metrics(f models.RideFilter) models.Metrics {
	sum := stats.Summarize(totalCounts(s.Filter(f)))

	m := models.Metrics{Days: sum.Count}
	if sum.Count > 0 {
		mean := sum.Mean
		maxTotal := int(sum.Max)
		minTotal := int(sum.Min)
		m.MeanTotal = &mean
		m.MaxTotal = &maxTotal
		m.MinTotal = &minTotal
	}
	return m
}

// MonthlyTrend groups the filtered view by calendar month and averages
// total_count. Months excluded by the filter are absent from the result.
func (s *DashboardService) MonthlyTrend(f models.RideFilter) []models.MonthlyMean {
	byMonth := make(map[int][]float64)
	for _, r := range s.Filter(f) {
		byMonth[r.Month] = append(byMonth[r.Month], float64(r.TotalCount))
	}

	var trend []models.MonthlyMean
	for month := 1; month <= 12; month++ {
		values, ok := byMonth[month]
		if !ok {
			continue
		}
		trend = append(trend, models.MonthlyMean{
			Month:     month,
			MeanTotal: stats.Mean(values),
		})
	}
	return trend
}

// ClusteredView is the filtered view with a cluster label per row. Labels is
// parallel to Records.
type ClusteredView struct {
	Records []models.DailyRecord
	Labels  []models.ClusterLabel
	Method  string
}

// Cluster partitions the filtered view's total_count into Low/Medium/High by
// quantile binning. When the cut points are degenerate the stage falls back
// to equal-width binning over the view's value range; the failure never
// propagates.
func (s *DashboardService) Cluster(f models.RideFilter) ClusteredView {
	view := s.Filter(f)
	values := totalCounts(view)
	labels := models.ClusterLabels()

	binning, err := stats.QuantileBinning(values, len(labels))
	if err != nil {
		logger.Debugw("falling back to equal-width bins", "reason", err.Error(), "rows", len(view))
		binning = stats.EqualWidthBinning(values, len(labels))
	}

	cv := ClusteredView{
		Records: view,
		Labels:  make([]models.ClusterLabel, len(view)),
		Method:  binning.Method,
	}
	for i, v := range values {
		cv.Labels[i] = labels[binning.Assign(v)]
	}
	return cv
}

// ClusterBreakdown computes the aggregates behind the two cluster charts:
// days per cluster and mean total_count per season/cluster combination.
func (s *DashboardService) ClusterBreakdown(f models.RideFilter) models.ClusterBreakdown {
	cv := s.Cluster(f)

	counts := make(map[models.ClusterLabel]int)
	bySeasonCluster := make(map[models.Season]map[models.ClusterLabel][]float64)
	for i, r := range cv.Records {
		label := cv.Labels[i]
		counts[label]++

		clusters := bySeasonCluster[r.Season]
		if clusters == nil {
			clusters = make(map[models.ClusterLabel][]float64)
			bySeasonCluster[r.Season] = clusters
		}
		clusters[label] = append(clusters[label], float64(r.TotalCount))
	}

	breakdown := models.ClusterBreakdown{Method: cv.Method}
	for _, label := range models.ClusterLabels() {
		breakdown.Counts = append(breakdown.Counts, models.ClusterCount{
			Cluster: label,
			Days:    counts[label],
		})
	}
	for _, season := range models.AllSeasons() {
		for _, label := range models.ClusterLabels() {
			values := bySeasonCluster[season][label]
			if len(values) == 0 {
				continue
			}
			breakdown.SeasonMeans = append(breakdown.SeasonMeans, models.SeasonClusterMean{
				Season:    season,
				Cluster:   label,
				MeanTotal: stats.Mean(values),
			})
		}
	}
	return breakdown
}

func totalCounts(view []models.DailyRecord) []float64 {
	values := make([]float64, len(view))
	for i, r := range view {
		values[i] = float64(r.TotalCount)
	}
	return values
}
