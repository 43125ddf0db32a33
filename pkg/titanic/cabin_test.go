package titanic_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexitkes/ai-kaggletools/pkg/frame"
	"github.com/alexitkes/ai-kaggletools/pkg/titanic"
)

// cabinFixture mirrors the ticket fixture but with the last passenger
// missing a cabin number.
func cabinFixture(t *testing.T) *frame.Frame {
	t.Helper()
	nan := math.NaN()
	f := frame.New(10)
	require.NoError(t, f.SetNumeric("PassengerId", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}))
	require.NoError(t, f.SetStrings("Cabin", []string{"A", "B", "C", "C", "B", "C", "D", "B", "A", ""}))
	require.NoError(t, f.SetNumeric("Pclass", []float64{1, 1, 2, 2, 1, 2, 3, 1, 1, 3}))
	require.NoError(t, f.SetNumeric("Survived", []float64{1, 1, 0, 0, nan, 1, 0, 0, nan, 1}))
	return f
}

// TestFillCabinRates_Count checks CabinCount, including 0 for the
// passenger without a cabin.
func TestFillCabinRates_Count(t *testing.T) {
	f := cabinFixture(t)
	require.NoError(t, titanic.FillCabinRates(f, titanic.CabinRateOptions{}))
	assert.Equal(t, []float64{2, 3, 3, 3, 3, 3, 1, 3, 2, 0}, numericColumn(t, f, "CabinCount"))
}

// TestFillCabinRates_Simplified checks the 1/0/0.5 scheme.
func TestFillCabinRates_Simplified(t *testing.T) {
	f := cabinFixture(t)
	require.NoError(t, titanic.FillCabinRates(f, titanic.CabinRateOptions{Simplified: true}))
	assert.Equal(t, []float64{0.5, 0, 0.5, 0.5, 0.5, 0, 0.5, 1, 1, 0.5}, numericColumn(t, f, "CabinRate"))
}

// TestFillCabinRates_Basic checks the leave-one-out mean rates with
// the default per-class fallback.
func TestFillCabinRates_Basic(t *testing.T) {
	f := cabinFixture(t)
	require.NoError(t, titanic.FillCabinRates(f, titanic.CabinRateOptions{}))
	rate := numericColumn(t, f, "CabinRate")
	want := []float64{2.0 / 3.0, 0, 0.5, 0.5, 0.5, 0, 0.5, 1, 1, 0.5}
	for i := range want {
		assert.InDelta(t, want[i], rate[i], 1e-12, "row %d", i)
	}
}

// TestFillCabinRates_Filler checks that a caller-supplied filler
// column is used for cabinless, unique-cabin and unknown-outcome rows.
func TestFillCabinRates_Filler(t *testing.T) {
	f := cabinFixture(t)
	filler := make([]float64, f.Len())
	for i := range filler {
		filler[i] = 0.12345
	}
	require.NoError(t, titanic.FillCabinRates(f, titanic.CabinRateOptions{Filler: filler}))
	rate := numericColumn(t, f, "CabinRate")
	want := []float64{0.12345, 0, 0.5, 0.5, 0.5, 0, 0.12345, 1, 1, 0.12345}
	for i := range want {
		assert.InDelta(t, want[i], rate[i], 1e-12, "row %d", i)
	}
}

func TestFillCabinRates_MissingColumns(t *testing.T) {
	f := frame.New(1)
	require.NoError(t, f.SetStrings("Cabin", []string{"A"}))
	assert.ErrorIs(t, titanic.FillCabinRates(f, titanic.CabinRateOptions{}), frame.ErrNoColumn)
}
