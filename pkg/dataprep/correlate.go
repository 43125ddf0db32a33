package dataprep

import (
	"github.com/alexitkes/ai-kaggletools/pkg/frame"
	"github.com/alexitkes/ai-kaggletools/pkg/stats"
)

// MostCorrelated builds the linear combination of the given numeric
// columns weighted by each column's Pearson correlation with the
// target. A nil cols means all numeric columns of f.
func MostCorrelated(f *frame.Frame, target []float64, cols []string) ([]float64, error) {
	if cols == nil {
		cols = f.NumericColumns()
	}
	out := make([]float64, f.Len())
	for _, c := range cols {
		col, err := f.Numeric(c)
		if err != nil {
			return nil, err
		}
		w := stats.Correlation(target, col)
		for i, v := range col {
			out[i] += v * w
		}
	}
	return out, nil
}
