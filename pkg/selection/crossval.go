package selection

import (
	"errors"

	"github.com/alexitkes/ai-kaggletools/pkg/model"
	"github.com/alexitkes/ai-kaggletools/pkg/stats"
)

// CVResult holds per-split scores from CrossValidate.
type CVResult struct {
	TrainScores []float64
	TestScores  []float64
}

// MeanTest returns the mean test R² across splits.
func (r CVResult) MeanTest() float64 { return stats.Mean(r.TestScores) }

// StdTest returns the standard deviation of the test R² across splits.
func (r CVResult) StdTest() float64 { return stats.Std(r.TestScores) }

// CrossValidate fits m on each train split and scores R² on both
// halves. The model is refitted in place for every split; its final
// state is whatever the last split left behind.
func CrossValidate(m model.Regressor, X [][]float64, y []float64, cv ShuffleSplit) (CVResult, error) {
	if len(X) == 0 {
		return CVResult{}, errors.New("selection: empty feature matrix")
	}
	if len(y) != len(X) {
		return CVResult{}, errors.New("selection: feature/target length mismatch")
	}
	res := CVResult{
		TrainScores: make([]float64, 0, cv.NSplits),
		TestScores:  make([]float64, 0, cv.NSplits),
	}
	for _, sp := range cv.Splits(len(X)) {
		XTrain, yTrain := take(X, y, sp.Train)
		XTest, yTest := take(X, y, sp.Test)
		if err := m.Fit(XTrain, yTrain); err != nil {
			return CVResult{}, err
		}
		res.TrainScores = append(res.TrainScores, model.R2(yTrain, m.Predict(XTrain)))
		res.TestScores = append(res.TestScores, model.R2(yTest, m.Predict(XTest)))
	}
	return res, nil
}

func take(X [][]float64, y []float64, idx []int) ([][]float64, []float64) {
	Xs := make([][]float64, len(idx))
	ys := make([]float64, len(idx))
	for i, j := range idx {
		Xs[i] = X[j]
		ys[i] = y[j]
	}
	return Xs, ys
}
