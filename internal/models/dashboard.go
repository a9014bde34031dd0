package models

// Metrics is the dashboard's summary panel: count, mean, max and min of
// total_count over the filtered view. Mean, max and min are nil when the
// view is empty.
type Metrics struct {
	Days      int      `json:"days"`
	MeanTotal *float64 `json:"mean_total"`
	MaxTotal  *int     `json:"max_total"`
	MinTotal  *int     `json:"min_total"`
}

// MonthlyMean is one point of the monthly trend line: the mean total_count
// of all filtered days in a calendar month.
type MonthlyMean struct {
	Month     int     `json:"month"`
	MeanTotal float64 `json:"mean_total"`
}

// ClusterCount is the number of days assigned to one cluster.
type ClusterCount struct {
	Cluster ClusterLabel `json:"cluster"`
	Days    int          `json:"days"`
}

// SeasonClusterMean is the mean total_count of one season/cluster combination.
// Combinations with no days are omitted from breakdowns.
type SeasonClusterMean struct {
	Season    Season       `json:"season"`
	Cluster   ClusterLabel `json:"cluster"`
	MeanTotal float64      `json:"mean_total"`
}

// ClusterBreakdown carries the aggregates behind the two cluster charts and
// records which binning method produced the labels.
type ClusterBreakdown struct {
	Method      string              `json:"method"`
	Counts      []ClusterCount      `json:"counts"`
	SeasonMeans []SeasonClusterMean `json:"season_means"`
}
