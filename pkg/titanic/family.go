package titanic

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/alexitkes/ai-kaggletools/pkg/frame"
)

// FamilyRateOptions configures FillFamilyRates.
type FamilyRateOptions struct {
	// Filler supplies per-row FamilyRate values for passengers without
	// family survival information. When nil, 0.5 is used in simplified
	// mode and the mean Survived of the row's Pclass otherwise.
	Filler []float64
	// Simplified switches the rate columns to the 1 / 0 / 0.5 scheme
	// and, together with UseFare, to the simpler family inference that
	// groups all passengers sharing a lastname and fare.
	Simplified bool
	// UseFare only applies in simplified mode; see Simplified.
	UseFare bool
	// FillIfNotAnySurvived only applies in simplified mode: FamilyRate
	// is 1 when any other family member survived and 0 when none are
	// known to survive and at least one died. Rates below 0.75 then
	// revert to the filler.
	FillIfNotAnySurvived bool
}

var (
	maidenNameRe     = regexp.MustCompile(`([A-Za-z'-]+)\)$`)
	hyphenLastnameRe = regexp.MustCompile(`^[A-Za-z]+-([A-Za-z]+)$`)
)

// family is one inferred family group.
type family struct {
	pclass   float64
	embarked string
	lastname string
	size     int
}

// FillFamilyRates infers family groups and adds leave-one-out family
// survival columns:
//
//   - Lastname, SecondaryLastname (derived from Name when absent)
//   - FamilyRate, ChildRate, FemaleRate, MaleRate - survival rates of
//     the row's other family members, overall and by the child (age up
//     to 15), adult-female and adult-male buckets (Sex is 1 for women,
//     0 for men)
//   - OwnRate - the bucket rate matching the row itself
//   - NumOlder, NumYounger, NumParents, NumChildren, AgeRank -
//     family age-structure counters
//
// Passengers with SibSp = 0 and Parch = 0 belong to no family and take
// their FamilyRate from the filler.
func FillFamilyRates(f *frame.Frame, opts FamilyRateOptions) error {
	names, err := f.Strings("Name")
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
	parch, err := f.Numeric("Parch")
	if err != nil {
		return err
	}
	sibsp, err := f.Numeric("SibSp")
	if err != nil {
		return err
	}
	sex, err := f.Numeric("Sex")
	if err != nil {
		return err
	}
	age, err := f.Numeric("Age")
	if err != nil {
		return err
	}
	embarked, err := columnKeys(f, "Embarked")
	if err != nil {
		return err
	}
	n := f.Len()

	lastname, secondary, err := ensureLastnames(f, names)
	if err != nil {
		return err
	}

	var fam []float64
	if opts.Simplified && opts.UseFare {
		fare, ferr := f.Numeric("Fare")
		if ferr != nil {
			return ferr
		}
		fam = familiesByFare(fare, lastname)
	} else {
		fam = inferFamilies(pclass, embarked, lastname, secondary, sibsp, parch, sex, n)
	}
	if err := f.SetNumeric("Family", fam); err != nil {
		return err
	}

	famRate := nanColumn(n)
	childRate := nanColumn(n)
	femaleRate := nanColumn(n)
	maleRate := nanColumn(n)

	for i := range fam {
		if math.IsNaN(fam[i]) {
			continue
		}
		members := 0
		for j := range fam {
			if fam[j] == fam[i] {
				members++
			}
		}
		if members <= 1 {
			continue
		}
		all := func(j int) bool { return true }
		child := func(j int) bool { return age[j] <= 15 }
		female := func(j int) bool { return age[j] > 15 && sex[j] == 1 }
		male := func(j int) bool { return age[j] > 15 && sex[j] == 0 }
		if opts.Simplified {
			famRate[i] = simplifiedRate(fam, survived, i, all, !opts.FillIfNotAnySurvived)
			childRate[i] = simplifiedRate(fam, survived, i, child, true)
			femaleRate[i] = simplifiedRate(fam, survived, i, female, true)
			maleRate[i] = simplifiedRate(fam, survived, i, male, true)
		} else {
			famRate[i] = looMean(fam, survived, i, all)
			childRate[i] = looMean(fam, survived, i, child)
			femaleRate[i] = looMean(fam, survived, i, female)
			maleRate[i] = looMean(fam, survived, i, male)
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
	for i := range famRate {
		if math.IsNaN(famRate[i]) {
			famRate[i] = filler[i]
		}
	}
	if opts.Simplified && opts.FillIfNotAnySurvived {
		for i := range famRate {
			if famRate[i] < 0.75 {
				famRate[i] = filler[i]
			}
		}
	}
	if opts.Simplified {
		fillConst(childRate, 0.5)
		fillConst(femaleRate, 0.5)
		fillConst(maleRate, 0.5)
	} else {
		fillByBucketMean(childRate, pclass, survived, func(j int) bool { return age[j] <= 15 })
		fillByBucketMean(femaleRate, pclass, survived, func(j int) bool { return age[j] > 15 && sex[j] == 1 })
		fillByBucketMean(maleRate, pclass, survived, func(j int) bool { return age[j] > 15 && sex[j] == 0 })
	}

	ownRate := nanColumn(n)
	for i := range ownRate {
		switch {
		case age[i] <= 15:
			ownRate[i] = childRate[i]
		case age[i] > 15 && sex[i] == 1:
			ownRate[i] = femaleRate[i]
		case age[i] > 15 && sex[i] == 0:
			ownRate[i] = maleRate[i]
		}
	}

	numOlder := make([]float64, n)
	numYounger := make([]float64, n)
	numParents := make([]float64, n)
	ageRank := nanColumn(n)
	numChildren := make([]float64, n)
	for i := range fam {
		if !math.IsNaN(fam[i]) {
			older, younger, muchOlder := 0, 0, 0
			for j := range fam {
				if fam[j] != fam[i] {
					continue
				}
				if age[j] > age[i] {
					older++
				}
				if age[j] < age[i] {
					younger++
				}
				if age[j] > age[i]+20 {
					muchOlder++
				}
			}
			numOlder[i] = float64(older)
			numYounger[i] = float64(younger)
			numParents[i] = math.Min(parch[i], float64(muchOlder))
		}
		ageRank[i] = cutAgeRank(numYounger[i] - numOlder[i])
		numChildren[i] = parch[i] - numParents[i]
	}

	for _, col := range []struct {
		name string
		vals []float64
	}{
		{"FamilyRate", famRate},
		{"ChildRate", childRate},
		{"FemaleRate", femaleRate},
		{"MaleRate", maleRate},
		{"OwnRate", ownRate},
		{"NumOlder", numOlder},
		{"NumYounger", numYounger},
		{"NumParents", numParents},
		{"AgeRank", ageRank},
		{"NumChildren", numChildren},
	} {
		if err := f.SetNumeric(col.name, col.vals); err != nil {
			return err
		}
	}
	return nil
}

// ensureLastnames derives the Lastname and SecondaryLastname columns
// from Name unless the caller already provides them. The secondary
// lastname is a trailing parenthesized maiden name, or the second half
// of a hyphenated lastname.
func ensureLastnames(f *frame.Frame, names []string) (lastname, secondary []string, err error) {
	if f.Has("Lastname") {
		lastname, err = f.Strings("Lastname")
		if err != nil {
			return nil, nil, err
		}
	} else {
		lastname = make([]string, len(names))
		for i, name := range names {
			lastname[i] = strings.TrimSpace(strings.SplitN(name, ",", 2)[0])
		}
		if err = f.SetStrings("Lastname", lastname); err != nil {
			return nil, nil, err
		}
	}
	if f.Has("SecondaryLastname") {
		secondary, err = f.Strings("SecondaryLastname")
		if err != nil {
			return nil, nil, err
		}
	} else {
		secondary = make([]string, len(names))
		for i, name := range names {
			if m := maidenNameRe.FindStringSubmatch(name); m != nil {
				secondary[i] = m[1]
			} else if m := hyphenLastnameRe.FindStringSubmatch(lastname[i]); m != nil {
				secondary[i] = m[1]
			}
		}
		if err = f.SetStrings("SecondaryLastname", secondary); err != nil {
			return nil, nil, err
		}
	}
	return lastname, secondary, nil
}

// familiesByFare assigns one family id to every group of rows sharing
// both a lastname and a fare, lone passengers included.
func familiesByFare(fare []float64, lastname []string) []float64 {
	fam := nanColumn(len(fare))
	next := 0.0
	for i := range fam {
		if !math.IsNaN(fam[i]) {
			continue
		}
		for j := i; j < len(fam); j++ {
			if fare[j] == fare[i] && lastname[j] == lastname[i] {
				fam[j] = next
			}
		}
		next++
	}
	return fam
}

// inferFamilies groups non-lone passengers into families keyed by
// class, embarkation port and lastname, then merges single-member
// families into in-law families found through the secondary lastname.
func inferFamilies(pclass []float64, embarked, lastname, secondary []string, sibsp, parch, sex []float64, n int) []float64 {
	fam := nanColumn(n)
	var families []family
	for i := 0; i < n; i++ {
		if sibsp[i] == 0 && parch[i] == 0 {
			continue
		}
		id := -1
		for k, fm := range families {
			if fm.pclass == pclass[i] && fm.embarked == embarked[i] && fm.lastname == lastname[i] {
				id = k
				break
			}
		}
		if id < 0 && secondary[i] != "" {
			for k, fm := range families {
				if fm.pclass == pclass[i] && fm.embarked == embarked[i] && fm.lastname == secondary[i] {
					id = k
					break
				}
			}
		}
		if id < 0 {
			families = append(families, family{pclass: pclass[i], embarked: embarked[i], lastname: lastname[i]})
			id = len(families) - 1
		}
		fam[i] = float64(id)
		families[id].size++
	}

	// Merge pass: a family of one is usually a married woman listed
	// under her husband's name. Try to join her to the family carrying
	// her maiden name, or to a sister married into another family.
	for k := range families {
		if families[k].size != 1 {
			continue
		}
		member := -1
		for i := range fam {
			if fam[i] == float64(k) {
				member = i
				break
			}
		}
		if member < 0 || secondary[member] == "" {
			continue
		}
		merged := false
		for t := range families {
			if t == k || families[t].lastname != secondary[member] {
				continue
			}
			families[t].size += families[k].size
			families[k].size = 0
			fam[member] = float64(t)
			merged = true
			break
		}
		if merged {
			continue
		}
		if sibsp[member] == 0 || sex[member] != 1 {
			continue
		}
		for j := range fam {
			if j == member || secondary[j] != secondary[member] || sex[j] != 1 {
				continue
			}
			if pclass[j] != pclass[member] || embarked[j] != embarked[member] || math.IsNaN(fam[j]) {
				continue
			}
			t := int(fam[j])
			families[t].size += families[k].size
			families[k].size = 0
			fam[member] = fam[j]
			break
		}
	}
	return fam
}

// simplifiedRate returns 1 or 0 when the known outcomes of row i's
// other family members (restricted by ok) agree, NaN otherwise. With
// strict false, any survivor counts as agreement on survival.
func simplifiedRate(fam, survived []float64, i int, ok func(int) bool, strict bool) float64 {
	min, max := math.NaN(), math.NaN()
	for j := range fam {
		if j == i || fam[j] != fam[i] || !ok(j) || !known(survived[j]) {
			continue
		}
		if math.IsNaN(min) || survived[j] < min {
			min = survived[j]
		}
		if math.IsNaN(max) || survived[j] > max {
			max = survived[j]
		}
	}
	if strict {
		if min == 1 {
			return 1
		}
		if max == 0 {
			return 0
		}
	} else {
		if max == 1 {
			return 1
		}
		if min == 0 {
			return 0
		}
	}
	return math.NaN()
}

// looMean returns the mean known Survived of row i's other family
// members restricted by ok, NaN when there are none.
func looMean(fam, survived []float64, i int, ok func(int) bool) float64 {
	sum, cnt := 0.0, 0
	for j := range fam {
		if j == i || fam[j] != fam[i] || !ok(j) || !known(survived[j]) {
			continue
		}
		sum += survived[j]
		cnt++
	}
	if cnt == 0 {
		return math.NaN()
	}
	return sum / float64(cnt)
}

// fillByBucketMean replaces NaN rates with the mean known Survived of
// the rows in the same Pclass that fall in the given bucket.
func fillByBucketMean(rate, pclass, survived []float64, bucket func(int) bool) {
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
				if pclass[j] == c && bucket(j) && known(survived[j]) {
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

// cutAgeRank bins NumYounger-NumOlder at -2.5, 0 and 2.5, same as the
// four age-rank buckets the Titanic kernels use.
func cutAgeRank(v float64) float64 {
	switch {
	case v > -25 && v <= -2.5:
		return 0
	case v > -2.5 && v <= 0:
		return 1
	case v > 0 && v <= 2.5:
		return 2
	case v > 2.5 && v <= 25:
		return 3
	}
	return math.NaN()
}

// columnKeys renders a column as comparable string keys whether it is
// stored as strings or numbers (the Embarked column can be either,
// depending on how far encoding has gone).
func columnKeys(f *frame.Frame, name string) ([]string, error) {
	if vals, err := f.Strings(name); err == nil {
		return vals, nil
	}
	nums, err := f.Numeric(name)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(nums))
	for i, v := range nums {
		if math.IsNaN(v) {
			continue
		}
		out[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return out, nil
}

func nanColumn(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
