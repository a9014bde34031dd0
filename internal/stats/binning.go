package stats

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ErrBinningInfeasible reports that quantile binning cannot produce the
// requested number of non-degenerate bins.
var ErrBinningInfeasible = errors.New("quantile binning infeasible")

// Binning method names.
const (
	MethodQuantile   = "quantile"
	MethodEqualWidth = "equal-width"
)

// Binning is a partition of a numeric column into ordered bins. Edges has one
// more entry than there are bins; bin i spans (Edges[i], Edges[i+1]], with the
// lowest edge inclusive.
type Binning struct {
	Edges  []float64
	Method string
}

// Bins returns the number of bins.
func (b Binning) Bins() int {
	if len(b.Edges) < 2 {
		return 0
	}
	return len(b.Edges) - 1
}

// Assign returns the bin index for v. Values below the lowest edge fall into
// the first bin, values above the highest into the last.
func (b Binning) Assign(v float64) int {
	for i := 1; i < len(b.Edges)-1; i++ {
		if v <= b.Edges[i] {
			return i - 1
		}
	}
	return b.Bins() - 1
}

// QuantileBinning partitions values into n bins of approximately equal
// population using linearly interpolated quantile cut points. It returns
// ErrBinningInfeasible when there are fewer values than bins or when two
// cut points coincide, i.e. duplicate values straddle a quantile boundary.
func QuantileBinning(values []float64, n int) (Binning, error) {
	if len(values) < n {
		return Binning{}, fmt.Errorf("%w: %d values for %d bins", ErrBinningInfeasible, len(values), n)
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	edges := make([]float64, n+1)
	edges[0] = sorted[0]
	edges[n] = sorted[len(sorted)-1]
	for i := 1; i < n; i++ {
		edges[i] = stat.Quantile(float64(i)/float64(n), stat.LinInterp, sorted, nil)
	}

	for i := 1; i < len(edges); i++ {
		if edges[i] <= edges[i-1] {
			return Binning{}, fmt.Errorf("%w: duplicate cut point %g", ErrBinningInfeasible, edges[i])
		}
	}

	return Binning{Edges: edges, Method: MethodQuantile}, nil
}

// EqualWidthBinning splits the [min,max] range of values into n bins of equal
// span. A constant column gets a slightly padded range so every value lands in
// the middle bin. An empty input yields a binning with no bins.
func EqualWidthBinning(values []float64, n int) Binning {
	if len(values) == 0 || n < 1 {
		return Binning{Method: MethodEqualWidth}
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	if lo == hi {
		pad := 0.001 * lo
		if pad < 0 {
			pad = -pad
		}
		if pad == 0 {
			pad = 0.001
		}
		lo -= pad
		hi += pad
	}

	edges := make([]float64, n+1)
	width := (hi - lo) / float64(n)
	for i := 0; i < n; i++ {
		edges[i] = lo + width*float64(i)
	}
	edges[n] = hi

	return Binning{Edges: edges, Method: MethodEqualWidth}
}
