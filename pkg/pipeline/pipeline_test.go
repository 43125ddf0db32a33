package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexitkes/ai-kaggletools/pkg/model"
	"github.com/alexitkes/ai-kaggletools/pkg/pipeline"
)

func TestStandardScaler(t *testing.T) {
	X := [][]float64{{1, 10}, {2, 20}, {3, 30}}
	s := pipeline.NewStandardScaler()
	require.NoError(t, s.Fit(X))

	Y := s.Transform(X)
	assert.InDelta(t, 2.0, s.Mean[0], 1e-12)
	assert.InDelta(t, 20.0, s.Mean[1], 1e-12)
	for j := 0; j < 2; j++ {
		sum := Y[0][j] + Y[1][j] + Y[2][j]
		assert.InDelta(t, 0.0, sum, 1e-12, "scaled column must have zero mean")
	}
	assert.InDelta(t, 0.0, Y[1][0], 1e-12)
}

func TestStandardScaler_ZeroVariance(t *testing.T) {
	X := [][]float64{{5}, {5}, {5}}
	s := pipeline.NewStandardScaler()
	require.NoError(t, s.Fit(X))
	Y := s.Transform(X)
	assert.InDelta(t, 0.0, Y[0][0], 1e-12, "constant column must not divide by zero")
}

// TestPipeline_Regressor checks that a scaler in front of the linear
// model leaves a noiseless linear fit exact.
func TestPipeline_Regressor(t *testing.T) {
	X := [][]float64{{1, 100}, {2, 200}, {3, 250}, {4, 310}, {5, 480}}
	y := make([]float64, len(X))
	for i, row := range X {
		y[i] = 2*row[0] + 0.01*row[1] - 1
	}

	p := pipeline.New(model.NewLinearRegression(), pipeline.NewStandardScaler())
	require.NoError(t, p.Fit(X, y))
	pred := p.Predict(X)
	for i := range y {
		assert.InDelta(t, y[i], pred[i], 1e-8)
	}
}
