// Package frame provides a minimal named-column table with a shared
// row index. Numeric columns are []float64 with NaN marking missing
// values, string columns are []string with "" marking missing values.
// Accessors return the backing slice, so feature fillers mutate the
// caller's table in place.
//
// A Frame is not safe for concurrent mutation; callers own the table
// and must not modify it from two operations at once.
package frame

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNoColumn is returned when a required column does not exist.
	ErrNoColumn = errors.New("frame: no such column")
	// ErrColumnType is returned when a column exists but has the wrong type.
	ErrColumnType = errors.New("frame: column has wrong type")
	// ErrLength is returned when a column's length does not match the frame.
	ErrLength = errors.New("frame: column length mismatch")
)

// Frame is a collection of named columns over a shared row index.
type Frame struct {
	n     int
	order []string
	nums  map[string][]float64
	strs  map[string][]string
}

// New creates an empty frame with n rows.
func New(n int) *Frame {
	return &Frame{
		n:    n,
		nums: make(map[string][]float64),
		strs: make(map[string][]string),
	}
}

// Len returns the number of rows.
func (f *Frame) Len() int { return f.n }

// Columns returns column names in insertion order.
func (f *Frame) Columns() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

// NumericColumns returns the names of all numeric columns in
// insertion order.
func (f *Frame) NumericColumns() []string {
	var out []string
	for _, c := range f.order {
		if _, ok := f.nums[c]; ok {
			out = append(out, c)
		}
	}
	return out
}

// Has reports whether a column with the given name exists.
func (f *Frame) Has(name string) bool {
	_, ok := f.nums[name]
	if !ok {
		_, ok = f.strs[name]
	}
	return ok
}

// SetNumeric adds or overwrites a numeric column. The frame keeps the
// slice itself, not a copy.
func (f *Frame) SetNumeric(name string, vals []float64) error {
	if len(vals) != f.n {
		return fmt.Errorf("%w: %s has %d values, frame has %d rows", ErrLength, name, len(vals), f.n)
	}
	if !f.Has(name) {
		f.order = append(f.order, name)
	}
	delete(f.strs, name)
	f.nums[name] = vals
	return nil
}

// SetStrings adds or overwrites a string column. The frame keeps the
// slice itself, not a copy.
func (f *Frame) SetStrings(name string, vals []string) error {
	if len(vals) != f.n {
		return fmt.Errorf("%w: %s has %d values, frame has %d rows", ErrLength, name, len(vals), f.n)
	}
	if !f.Has(name) {
		f.order = append(f.order, name)
	}
	delete(f.nums, name)
	f.strs[name] = vals
	return nil
}

// Numeric returns the backing slice of a numeric column.
func (f *Frame) Numeric(name string) ([]float64, error) {
	if col, ok := f.nums[name]; ok {
		return col, nil
	}
	if _, ok := f.strs[name]; ok {
		return nil, fmt.Errorf("%w: %s is a string column", ErrColumnType, name)
	}
	return nil, fmt.Errorf("%w: %s", ErrNoColumn, name)
}

// Strings returns the backing slice of a string column.
func (f *Frame) Strings(name string) ([]string, error) {
	if col, ok := f.strs[name]; ok {
		return col, nil
	}
	if _, ok := f.nums[name]; ok {
		return nil, fmt.Errorf("%w: %s is a numeric column", ErrColumnType, name)
	}
	return nil, fmt.Errorf("%w: %s", ErrNoColumn, name)
}

// EnsureNumeric returns the named numeric column, creating it filled
// with NaN if it does not exist. Existing values are kept.
func (f *Frame) EnsureNumeric(name string) ([]float64, error) {
	if col, ok := f.nums[name]; ok {
		return col, nil
	}
	if _, ok := f.strs[name]; ok {
		return nil, fmt.Errorf("%w: %s is a string column", ErrColumnType, name)
	}
	col := make([]float64, f.n)
	for i := range col {
		col[i] = math.NaN()
	}
	f.order = append(f.order, name)
	f.nums[name] = col
	return col, nil
}

// Drop removes a column if present.
func (f *Frame) Drop(name string) {
	if !f.Has(name) {
		return
	}
	delete(f.nums, name)
	delete(f.strs, name)
	for i, c := range f.order {
		if c == name {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
}

// Matrix materializes the given numeric columns as a row-major matrix
// suitable for model fitting.
func (f *Frame) Matrix(cols ...string) ([][]float64, error) {
	series := make([][]float64, len(cols))
	for j, c := range cols {
		col, err := f.Numeric(c)
		if err != nil {
			return nil, err
		}
		series[j] = col
	}
	X := make([][]float64, f.n)
	for i := range X {
		row := make([]float64, len(cols))
		for j := range cols {
			row[j] = series[j][i]
		}
		X[i] = row
	}
	return X, nil
}
