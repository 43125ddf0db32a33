package titanic

import (
	"math"

	"github.com/alexitkes/ai-kaggletools/pkg/frame"
)

// TicketRateOptions configures FillTicketRates.
type TicketRateOptions struct {
	// Simplified fills TicketRate with 1, 0 or 0.5 instead of a
	// leave-one-out mean.
	Simplified bool
	// FillIfNotAnySurvived only applies in simplified mode: rate 1 when
	// any other passenger on the ticket survived, 0 when none are known
	// to survive and at least one died. The default simplified rule is
	// stricter: 1 only when all known others survived, 0 only when all
	// known others died.
	FillIfNotAnySurvived bool
}

// FillTicketRates adds the TicketCount and TicketRate columns.
// TicketCount is the number of passengers sharing the row's ticket.
// TicketRate is the survival rate of the other passengers on the same
// ticket: a passenger's own outcome never feeds its own rate. In the
// standard mode, rows whose ticket group has no other known outcomes
// fall back to the mean Survived of their Pclass; in simplified mode
// they get 0.5.
func FillTicketRates(f *frame.Frame, opts TicketRateOptions) error {
	tickets, err := f.Strings("Ticket")
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
	for i, t := range tickets {
		counts[t]++
		if survived[i] == 1 {
			surv[t]++
		} else if survived[i] == 0 {
			died[t]++
		}
	}

	count := make([]float64, n)
	rate := make([]float64, n)
	for i, t := range tickets {
		count[i] = float64(counts[t])
		rate[i] = math.NaN()
		if opts.Simplified {
			min, max := groupOthersMinMax(tickets, survived, i)
			if opts.FillIfNotAnySurvived {
				if max == 1 {
					rate[i] = 1
				} else if min == 0 {
					rate[i] = 0
				}
			} else {
				if min == 1 {
					rate[i] = 1
				} else if max == 0 {
					rate[i] = 0
				}
			}
		} else {
			s := surv[t]
			d := died[t]
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

	if opts.Simplified {
		fillConst(rate, 0.5)
	} else {
		fillByClassMean(rate, pclass, survived)
	}
	if err := f.SetNumeric("TicketCount", count); err != nil {
		return err
	}
	return f.SetNumeric("TicketRate", rate)
}

// groupOthersMinMax returns the smallest and largest known Survived
// value among the other rows sharing row i's group key. Both are NaN
// when no other outcome in the group is known.
func groupOthersMinMax(keys []string, survived []float64, i int) (min, max float64) {
	min, max = math.NaN(), math.NaN()
	for j, k := range keys {
		if j == i || k != keys[i] || !known(survived[j]) {
			continue
		}
		if math.IsNaN(min) || survived[j] < min {
			min = survived[j]
		}
		if math.IsNaN(max) || survived[j] > max {
			max = survived[j]
		}
	}
	return min, max
}

// fillConst replaces NaN entries with the given constant.
func fillConst(rate []float64, v float64) {
	for i := range rate {
		if math.IsNaN(rate[i]) {
			rate[i] = v
		}
	}
}

// fillByClassMean replaces NaN rates with the mean known Survived of
// the row's Pclass.
func fillByClassMean(rate, pclass, survived []float64) {
	means := map[float64]float64{}
	for i := range rate {
		if !math.IsNaN(rate[i]) {
			continue
		}
		c := pclass[i]
		m, ok := means[c]
		if !ok {
			sum, cnt := 0.0, 0
			for j := range pclass {
				if pclass[j] == c && known(survived[j]) {
					sum += survived[j]
					cnt++
				}
			}
			m = math.NaN()
			if cnt > 0 {
				m = sum / float64(cnt)
			}
			means[c] = m
		}
		rate[i] = m
	}
}
