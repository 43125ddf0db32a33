package model

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrNotFitted is returned by Score when the model has no coefficients yet.
var ErrNotFitted = errors.New("model: not fitted")

// LinearRegression fits an ordinary least-squares model. The solve is
// exact (QR under the hood), so repeated fits on the same data give
// identical coefficients.
type LinearRegression struct {
	Coef      []float64
	Intercept float64
	fitted    bool
}

// NewLinearRegression creates an unfitted least-squares regressor.
func NewLinearRegression() *LinearRegression {
	return &LinearRegression{}
}

// Fit solves min ||Xw - y|| over w with an intercept column appended.
func (m *LinearRegression) Fit(X [][]float64, y []float64) error {
	n := len(X)
	if n == 0 {
		return errors.New("model: empty feature matrix")
	}
	if len(y) != n {
		return fmt.Errorf("model: %d rows but %d targets", n, len(y))
	}
	p := len(X[0])

	// Design matrix with a trailing ones column for the intercept.
	a := mat.NewDense(n, p+1, nil)
	for i, row := range X {
		if len(row) != p {
			return fmt.Errorf("model: ragged row %d", i)
		}
		for j, v := range row {
			a.Set(i, j, v)
		}
		a.Set(i, p, 1)
	}
	b := mat.NewVecDense(n, y)

	var w mat.VecDense
	if err := w.SolveVec(a, b); err != nil {
		return fmt.Errorf("model: least squares solve: %w", err)
	}
	m.Coef = make([]float64, p)
	for j := 0; j < p; j++ {
		m.Coef[j] = w.AtVec(j)
	}
	m.Intercept = w.AtVec(p)
	m.fitted = true
	return nil
}

// Predict returns the linear predictions for rows of X.
func (m *LinearRegression) Predict(X [][]float64) []float64 {
	if len(X) == 0 {
		return nil
	}
	pred := make([]float64, len(X))
	for i, row := range X {
		sum := m.Intercept
		for j, v := range row {
			sum += m.Coef[j] * v
		}
		pred[i] = sum
	}
	return pred
}

// Score returns the R² of the model's predictions against y.
func (m *LinearRegression) Score(X [][]float64, y []float64) (float64, error) {
	if !m.fitted {
		return 0, ErrNotFitted
	}
	return R2(y, m.Predict(X)), nil
}
