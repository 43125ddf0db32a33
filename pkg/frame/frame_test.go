package frame_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexitkes/ai-kaggletools/pkg/frame"
)

// TestFrame_SetAndGet verifies basic column round-trips and that the
// accessors return the backing slice, so writes are caller-visible.
func TestFrame_SetAndGet(t *testing.T) {
	f := frame.New(3)
	require.NoError(t, f.SetNumeric("A", []float64{1, 2, 3}))
	require.NoError(t, f.SetStrings("S", []string{"x", "y", "z"}))

	a, err := f.Numeric("A")
	require.NoError(t, err)
	a[1] = 42
	again, err := f.Numeric("A")
	require.NoError(t, err)
	assert.Equal(t, 42.0, again[1], "Numeric must return the backing slice")

	assert.Equal(t, []string{"A", "S"}, f.Columns())
	assert.Equal(t, []string{"A"}, f.NumericColumns())
	assert.True(t, f.Has("S"))
	assert.False(t, f.Has("missing"))

	f.Drop("A")
	assert.False(t, f.Has("A"))
	assert.Equal(t, []string{"S"}, f.Columns())
}

// TestFrame_Errors verifies the sentinel errors for missing columns,
// wrong column types and length mismatches.
func TestFrame_Errors(t *testing.T) {
	f := frame.New(2)
	require.NoError(t, f.SetStrings("S", []string{"a", "b"}))

	_, err := f.Numeric("S")
	assert.ErrorIs(t, err, frame.ErrColumnType)
	_, err = f.Strings("nope")
	assert.ErrorIs(t, err, frame.ErrNoColumn)
	assert.ErrorIs(t, f.SetNumeric("A", []float64{1}), frame.ErrLength)
}

// TestFrame_Overwrite verifies that setting an existing name replaces
// the column, switching type if needed, without duplicating the name.
func TestFrame_Overwrite(t *testing.T) {
	f := frame.New(2)
	require.NoError(t, f.SetStrings("C", []string{"a", "b"}))
	require.NoError(t, f.SetNumeric("C", []float64{1, 2}))

	assert.Equal(t, []string{"C"}, f.Columns())
	vals, err := f.Numeric("C")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, vals)
	_, err = f.Strings("C")
	assert.ErrorIs(t, err, frame.ErrColumnType)
}

// TestFrame_Matrix verifies row-major materialization in the requested
// column order.
func TestFrame_Matrix(t *testing.T) {
	f := frame.New(2)
	require.NoError(t, f.SetNumeric("A", []float64{1, 2}))
	require.NoError(t, f.SetNumeric("B", []float64{3, 4}))

	X, err := f.Matrix("B", "A")
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{3, 1}, {4, 2}}, X)

	_, err = f.Matrix("A", "nope")
	assert.ErrorIs(t, err, frame.ErrNoColumn)
}

// TestFrame_EnsureNumeric verifies lazy NaN-filled column creation.
func TestFrame_EnsureNumeric(t *testing.T) {
	f := frame.New(2)
	col, err := f.EnsureNumeric("R")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(col[0]))

	col[0] = 7
	again, err := f.EnsureNumeric("R")
	require.NoError(t, err)
	assert.Equal(t, 7.0, again[0], "existing values must be kept")
}

// TestReadCSV verifies numeric/string column detection and missing
// value handling.
func TestReadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mini.csv")
	csv := "PassengerId,Name,Age,Survived\n" +
		"1,\"Smith, Mr. John\",45,1\n" +
		"2,\"Smith, Mrs. Jane\",,0\n" +
		"3,\"Jones, Miss. Amy\",NA,\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	f, err := frame.ReadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, 3, f.Len())

	age, err := f.Numeric("Age")
	require.NoError(t, err)
	assert.Equal(t, 45.0, age[0])
	assert.True(t, math.IsNaN(age[1]))
	assert.True(t, math.IsNaN(age[2]))

	surv, err := f.Numeric("Survived")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(surv[2]))

	names, err := f.Strings("Name")
	require.NoError(t, err)
	assert.Equal(t, "Smith, Mrs. Jane", names[1])
}
