package titanic

import (
	"math"

	"github.com/alexitkes/ai-kaggletools/pkg/frame"
)

// CabinRateOptions configures FillCabinRates.
type CabinRateOptions struct {
	// Simplified fills CabinRate with 1 when all other passengers of
	// the cabin with known outcomes survived and 0 when they all died,
	// instead of a leave-one-out mean.
	Simplified bool
	// Filler supplies per-row CabinRate values for passengers with no
	// cabin number, a unique cabin, or a cabin without other known
	// outcomes. When nil, 0.5 is used in simplified mode and the mean
	// Survived of the row's Pclass otherwise.
	Filler []float64
}

// FillCabinRates adds the CabinCount and CabinRate columns. Passengers
// without a cabin number (empty Cabin cell) get CabinCount 0 and their
// rate from the filler. A passenger's own outcome never feeds its own
// rate.
func FillCabinRates(f *frame.Frame, opts CabinRateOptions) error {
	cabins, err := f.Strings("Cabin")
	if err != nil {
		return err
	}
	survived, err := f.Numeric("Survived")
	if err != nil {
		return err
	}
	pclass, err := f.Numeric("Pclass")
	if err != nil {
		return err
	}
	n := f.Len()

	counts := map[string]int{}
	surv := map[string]int{}
	died := map[string]int{}
	for i, c := range cabins {
		if c == "" {
			continue
		}
		counts[c]++
		if survived[i] == 1 {
			surv[c]++
		} else if survived[i] == 0 {
			died[c]++
		}
	}

	count := make([]float64, n)
	rate := make([]float64, n)
	for i, c := range cabins {
		rate[i] = math.NaN()
		if c == "" {
			continue
		}
		count[i] = float64(counts[c])
		if opts.Simplified {
			min, max := groupOthersMinMax(cabins, survived, i)
			if min == 1 {
				rate[i] = 1
			} else if max == 0 {
				rate[i] = 0
			}
		} else {
			s := surv[c]
			d := died[c]
			if survived[i] == 1 {
				s--
			}
			if survived[i] == 0 {
				d--
			}
			if s+d > 0 {
				rate[i] = float64(s) / float64(s+d)
			}
		}
	}

	filler := opts.Filler
	if filler == nil {
		if opts.Simplified {
			filler = constColumn(n, 0.5)
		} else {
			filler = classMeanColumn(pclass, survived)
		}
	}
	for i := range rate {
		if math.IsNaN(rate[i]) {
			rate[i] = filler[i]
		}
	}
	if err := f.SetNumeric("CabinCount", count); err != nil {
		return err
	}
	return f.SetNumeric("CabinRate", rate)
}

func constColumn(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// classMeanColumn builds a per-row column holding the mean known
// Survived of the row's Pclass.
func classMeanColumn(pclass, survived []float64) []float64 {
	out := make([]float64, len(pclass))
	for i := range out {
		out[i] = math.NaN()
	}
	fillByClassMean(out, pclass, survived)
	return out
}
