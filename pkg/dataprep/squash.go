// Package dataprep holds small column-level transforms: rare-category
// squashing, pairwise sum/difference expansion and correlation-weighted
// column combination.
package dataprep

import "github.com/alexitkes/ai-kaggletools/pkg/frame"

// SquashRareCategories replaces, in place, every value of a string
// column occurring fewer than minCount times with the sentinel value.
func SquashRareCategories(f *frame.Frame, col string, minCount int, sentinel string) error {
	vals, err := f.Strings(col)
	if err != nil {
		return err
	}
	counts := map[string]int{}
	for _, v := range vals {
		counts[v]++
	}
	for i, v := range vals {
		if counts[v] < minCount {
			vals[i] = sentinel
		}
	}
	return nil
}
