// Package selection implements wrapper-style feature selection: greedy
// forward and backward searches over column subsets, scored by mean
// cross-validated R² on repeated random train/test splits.
package selection

import "math/rand"

// Split holds train and test row indices for one evaluation round.
type Split struct {
	Train []int
	Test  []int
}

// ShuffleSplit generates repeated random train/test splits. The same
// seed always yields the same sequence of splits, which is what makes
// the greedy selectors deterministic.
type ShuffleSplit struct {
	NSplits   int
	TrainSize float64
	TestSize  float64
	Seed      int64
}

// DefaultShuffleSplit is the fixed splitter the selectors use: 10
// splits, 75/25 train/test, seed 0.
func DefaultShuffleSplit() ShuffleSplit {
	return ShuffleSplit{NSplits: 10, TrainSize: 0.75, TestSize: 0.25, Seed: 0}
}

// Splits returns the train/test index pairs for a dataset of n rows.
func (s ShuffleSplit) Splits(n int) []Split {
	rng := rand.New(rand.NewSource(s.Seed))
	nTest := int(float64(n) * s.TestSize)
	nTrain := int(float64(n) * s.TrainSize)
	if nTrain > n-nTest {
		nTrain = n - nTest
	}
	out := make([]Split, s.NSplits)
	for k := range out {
		perm := rng.Perm(n)
		test := make([]int, nTest)
		copy(test, perm[:nTest])
		train := make([]int, nTrain)
		copy(train, perm[nTest:nTest+nTrain])
		out[k] = Split{Train: train, Test: test}
	}
	return out
}

// KFoldSplit partitions n shuffled row indices into k folds.
func KFoldSplit(n, k int, seed int64) [][]int {
	rng := rand.New(rand.NewSource(seed))
	indices := rng.Perm(n)
	folds := make([][]int, k)
	for i := 0; i < n; i++ {
		folds[i%k] = append(folds[i%k], indices[i])
	}
	return folds
}
