package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{100, 200, 50, 150})

	assert.Equal(t, 4, s.Count)
	assert.InDelta(t, 125, s.Mean, 1e-9)
	assert.Equal(t, 200.0, s.Max)
	assert.Equal(t, 50.0, s.Min)

	assert.GreaterOrEqual(t, s.Max, s.Mean)
	assert.GreaterOrEqual(t, s.Mean, s.Min)
}

func TestSummarizeSingleValue(t *testing.T) {
	s := Summarize([]float64{42})

	assert.Equal(t, 1, s.Count)
	assert.Equal(t, 42.0, s.Mean)
	assert.Equal(t, 42.0, s.Max)
	assert.Equal(t, 42.0, s.Min)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)

	assert.Equal(t, 0, s.Count)
	assert.True(t, math.IsNaN(s.Mean))
	assert.True(t, math.IsNaN(s.Max))
	assert.True(t, math.IsNaN(s.Min))
}

func TestMean(t *testing.T) {
	assert.InDelta(t, 2, Mean([]float64{1, 2, 3}), 1e-9)
	assert.True(t, math.IsNaN(Mean(nil)))
}
