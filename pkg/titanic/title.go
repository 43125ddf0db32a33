// Package titanic derives features from the Kaggle "Titanic" passenger
// table: a title code extracted from the Name column and leave-one-out
// survival rates over ticket, cabin and family groups. Every filler
// mutates the caller's frame in place; the row index identifies the
// passenger.
package titanic

import (
	"errors"
	"fmt"
	"math"
	"regexp"

	log "github.com/sirupsen/logrus"

	"github.com/alexitkes/ai-kaggletools/pkg/frame"
)

// ErrBadTitles is returned when a custom title vocabulary is missing
// one of the mandatory Mr, Mrs, Miss or Master entries.
var ErrBadTitles = errors.New("titanic: title list must contain Mr, Mrs, Miss and Master")

var titleRe = regexp.MustCompile(`([A-Za-z]+)\.`)

// DefaultTitles is the vocabulary ExtractTitle uses when given none.
var DefaultTitles = []string{"Mr", "Mrs", "Miss", "Master", "Rare"}

// ExtractTitle reads the title token ("Mr.", "Mme.", ...) out of the
// Name column and returns each passenger's title encoded as its index
// in the vocabulary. Mme maps to Mrs; Ms and Mlle map to Miss. Dr,
// Military (Capt, Major, Col) and Royal (Sir, Count, Countess) get
// their own codes only when the vocabulary lists them, otherwise they
// land in Rare along with everything unrecognized.
func ExtractTitle(f *frame.Frame, titles []string) ([]float64, error) {
	if titles == nil {
		titles = DefaultTitles
	} else {
		log.Warn("titanic: custom title lists are experimental and may change without deprecation")
	}
	// Rare is the catch-all bucket, so it has to be mappable too.
	for _, required := range []string{"Mr", "Mrs", "Miss", "Master", "Rare"} {
		if indexOf(titles, required) < 0 {
			return nil, fmt.Errorf("%w: missing %s", ErrBadTitles, required)
		}
	}
	names, err := f.Strings("Name")
	if err != nil {
		return nil, err
	}
	out := make([]float64, f.Len())
	for i, name := range names {
		raw := ""
		if m := titleRe.FindStringSubmatch(name); m != nil {
			raw = m[1]
		}
		out[i] = float64(titleCode(raw, titles))
	}
	return out, nil
}

func titleCode(raw string, titles []string) int {
	switch raw {
	case "Mr":
		return indexOf(titles, "Mr")
	case "Mrs", "Mme":
		return indexOf(titles, "Mrs")
	case "Miss", "Ms", "Mlle":
		return indexOf(titles, "Miss")
	case "Master":
		return indexOf(titles, "Master")
	case "Dr":
		if i := indexOf(titles, "Dr"); i >= 0 {
			return i
		}
	case "Capt", "Major", "Col":
		if i := indexOf(titles, "Military"); i >= 0 {
			return i
		}
	case "Sir", "Count", "Countess":
		if i := indexOf(titles, "Royal"); i >= 0 {
			return i
		}
	}
	return indexOf(titles, "Rare")
}

func indexOf(ss []string, s string) int {
	for i, v := range ss {
		if v == s {
			return i
		}
	}
	return -1
}

// known reports whether a Survived value is an actual outcome rather
// than a missing label.
func known(v float64) bool { return !math.IsNaN(v) }
