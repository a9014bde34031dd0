// Package stats provides the numeric primitives behind the dashboard panels.
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Summary holds the descriptive aggregates for one numeric column.
// Mean, Max and Min are NaN when the column is empty.
type Summary struct {
	Count int
	Mean  float64
	Max   float64
	Min   float64
}

// Summarize computes count, mean, max and min of values.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		nan := math.NaN()
		return Summary{Count: 0, Mean: nan, Max: nan, Min: nan}
	}

	s := Summary{
		Count: len(values),
		Mean:  stat.Mean(values, nil),
		Max:   values[0],
		Min:   values[0],
	}
	for _, v := range values[1:] {
		if v > s.Max {
			s.Max = v
		}
		if v < s.Min {
			s.Min = v
		}
	}
	return s
}

// Mean returns the arithmetic mean of values, NaN when values is empty.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	return stat.Mean(values, nil)
}
