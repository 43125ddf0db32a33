package dataprep

import "github.com/alexitkes/ai-kaggletools/pkg/frame"

// ExpandPairwise appends, for every unordered pair of the given numeric
// columns, their sum and/or difference as new columns named "A+B" and
// "A-B". Returns the names of the added columns.
func ExpandPairwise(f *frame.Frame, cols []string, sums, diffs bool) ([]string, error) {
	series := make([][]float64, len(cols))
	for j, c := range cols {
		col, err := f.Numeric(c)
		if err != nil {
			return nil, err
		}
		series[j] = col
	}
	var added []string
	for i := 0; i < len(cols); i++ {
		for j := i + 1; j < len(cols); j++ {
			if sums {
				sum := make([]float64, f.Len())
				for k := range sum {
					sum[k] = series[i][k] + series[j][k]
				}
				name := cols[i] + "+" + cols[j]
				if err := f.SetNumeric(name, sum); err != nil {
					return nil, err
				}
				added = append(added, name)
			}
			if diffs {
				diff := make([]float64, f.Len())
				for k := range diff {
					diff[k] = series[i][k] - series[j][k]
				}
				name := cols[i] + "-" + cols[j]
				if err := f.SetNumeric(name, diff); err != nil {
					return nil, err
				}
				added = append(added, name)
			}
		}
	}
	return added, nil
}
