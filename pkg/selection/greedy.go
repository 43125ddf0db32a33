package selection

import (
	"errors"
	"math"

	log "github.com/sirupsen/logrus"

	"github.com/alexitkes/ai-kaggletools/pkg/frame"
	"github.com/alexitkes/ai-kaggletools/pkg/model"
)

// Options configures the greedy selectors. A nil Options (or a zero
// CV) falls back to the fixed default splitter.
type Options struct {
	CV ShuffleSplit
}

func (o *Options) cv() ShuffleSplit {
	if o == nil || o.CV.NSplits == 0 {
		return DefaultShuffleSplit()
	}
	return o.CV
}

// SelectForward greedily grows a feature subset. Each round it tries
// every unselected column and keeps the one whose addition gives the
// best mean cross-validated R² seen so far; it stops when no addition
// improves that score. Candidates are scanned in column order, so the
// result is deterministic for a fixed splitter seed.
//
// A nil cols means all numeric columns of f.
func SelectForward(f *frame.Frame, cols []string, y []float64, m model.Regressor, opts *Options) ([]string, error) {
	cols, err := candidateColumns(f, cols)
	if err != nil {
		return nil, err
	}
	cv := opts.cv()

	selected := []string{}
	best := math.Inf(-1)
	bestStd := 0.0
	for range cols {
		var bestTry []string
		for _, c := range cols {
			if contains(selected, c) {
				continue
			}
			try := append(append([]string{}, selected...), c)
			score, std, err := scoreSubset(f, try, y, m, cv)
			if err != nil {
				return nil, err
			}
			log.WithFields(log.Fields{"features": try}).
				Debugf("testing score: %f +/- %f", score, 3*std)
			if score > best {
				bestTry = try
				best = score
				bestStd = std
			}
		}
		if bestTry == nil {
			break
		}
		selected = bestTry
		log.WithFields(log.Fields{"features": selected}).
			Infof("selected, score %f +/- %f", best, 3*bestStd)
	}
	return selected, nil
}

// SelectBackward greedily shrinks a feature subset, starting from all
// candidates. Each round it tries removing every remaining column and
// keeps the removal that improves on the best mean cross-validated R²
// seen so far (including the full-set baseline); it stops when no
// removal improves.
//
// A nil cols means all numeric columns of f.
func SelectBackward(f *frame.Frame, cols []string, y []float64, m model.Regressor, opts *Options) ([]string, error) {
	cols, err := candidateColumns(f, cols)
	if err != nil {
		return nil, err
	}
	cv := opts.cv()

	selected := append([]string{}, cols...)
	best, bestStd, err := scoreSubset(f, selected, y, m, cv)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"features": selected}).
		Infof("baseline score %f +/- %f", best, 3*bestStd)
	for range cols {
		var bestTry []string
		for _, c := range selected {
			try := without(selected, c)
			if len(try) == 0 {
				continue
			}
			score, std, err := scoreSubset(f, try, y, m, cv)
			if err != nil {
				return nil, err
			}
			log.WithFields(log.Fields{"features": try}).
				Debugf("testing score: %f +/- %f", score, 3*std)
			if score > best {
				bestTry = try
				best = score
				bestStd = std
			}
		}
		if bestTry == nil {
			break
		}
		selected = bestTry
		log.WithFields(log.Fields{"features": selected}).
			Infof("selected, score %f +/- %f", best, 3*bestStd)
	}
	return selected, nil
}

func scoreSubset(f *frame.Frame, cols []string, y []float64, m model.Regressor, cv ShuffleSplit) (mean, std float64, err error) {
	X, err := f.Matrix(cols...)
	if err != nil {
		return 0, 0, err
	}
	res, err := CrossValidate(m, X, y, cv)
	if err != nil {
		return 0, 0, err
	}
	return res.MeanTest(), res.StdTest(), nil
}

func candidateColumns(f *frame.Frame, cols []string) ([]string, error) {
	if cols == nil {
		cols = f.NumericColumns()
	}
	if len(cols) == 0 {
		return nil, errors.New("selection: no candidate columns")
	}
	for _, c := range cols {
		if _, err := f.Numeric(c); err != nil {
			return nil, err
		}
	}
	return cols, nil
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}

func without(ss []string, s string) []string {
	out := make([]string, 0, len(ss)-1)
	for _, v := range ss {
		if v != s {
			out = append(out, v)
		}
	}
	return out
}
