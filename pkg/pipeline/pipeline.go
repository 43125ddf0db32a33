// Package pipeline chains preprocessing steps in front of a regressor
// so the combination can be handed to the feature selectors as a
// single model.
package pipeline

import "github.com/alexitkes/ai-kaggletools/pkg/model"

// Transformer is a preprocessing step (fit on train, transform both).
type Transformer interface {
	Fit(X [][]float64) error
	Transform(X [][]float64) [][]float64
}

// Pipeline applies transformers in order, then fits/predicts with the
// final estimator. It satisfies model.Regressor.
type Pipeline struct {
	steps []Transformer
	final model.Regressor
}

// New builds a pipeline ending in the given regressor.
func New(final model.Regressor, steps ...Transformer) *Pipeline {
	return &Pipeline{steps: steps, final: final}
}

func (p *Pipeline) Fit(X [][]float64, y []float64) error {
	for _, step := range p.steps {
		if err := step.Fit(X); err != nil {
			return err
		}
		X = step.Transform(X)
	}
	return p.final.Fit(X, y)
}

func (p *Pipeline) Predict(X [][]float64) []float64 {
	for _, step := range p.steps {
		X = step.Transform(X)
	}
	return p.final.Predict(X)
}
