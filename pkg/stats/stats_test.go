package stats_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexitkes/ai-kaggletools/pkg/stats"
)

func TestMeanVarianceStd(t *testing.T) {
	x := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.InDelta(t, 5.0, stats.Mean(x), 1e-12)
	assert.InDelta(t, 4.0, stats.Variance(x), 1e-12)
	assert.InDelta(t, 2.0, stats.Std(x), 1e-12)
	assert.Equal(t, 0.0, stats.Mean(nil))
}

func TestMedian(t *testing.T) {
	assert.InDelta(t, 2.0, stats.Median([]float64{3, 1, 2}), 1e-12)
	assert.InDelta(t, 2.5, stats.Median([]float64{4, 1, 2, 3}), 1e-12)
}

func TestCorrelation(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	up := []float64{2, 4, 6, 8}
	down := []float64{8, 6, 4, 2}
	assert.InDelta(t, 1.0, stats.Correlation(x, up), 1e-12)
	assert.InDelta(t, -1.0, stats.Correlation(x, down), 1e-12)
	assert.Equal(t, 0.0, stats.Correlation(x, []float64{5, 5, 5, 5}), "constant column has no correlation")
}

func TestNaNAware(t *testing.T) {
	nan := math.NaN()
	x := []float64{1, nan, 3, nan, 5}
	assert.Equal(t, 3, stats.NaNCount(x))
	assert.InDelta(t, 3.0, stats.NaNMean(x), 1e-12)
	assert.InDelta(t, 1.0, stats.NaNMin(x), 1e-12)
	assert.InDelta(t, 5.0, stats.NaNMax(x), 1e-12)

	empty := []float64{nan, nan}
	assert.True(t, math.IsNaN(stats.NaNMean(empty)), "all-NaN mean must stay NaN")
	assert.True(t, math.IsNaN(stats.NaNMin(empty)))
	assert.True(t, math.IsNaN(stats.NaNMax(empty)))
}
