package model

// Regressor is a supervised regression model. The feature selectors
// accept anything satisfying this interface.
type Regressor interface {
	Fit(X [][]float64, y []float64) error
	Predict(X [][]float64) []float64
}
