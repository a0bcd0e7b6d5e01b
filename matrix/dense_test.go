// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blockmat/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // attempt to create with zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, 0)                       // attempt to create with zero columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(-1, 3)                      // attempt to create with negative rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	rows, cols := 3, 4                    // define expected row and column counts
	m, err := matrix.NewDense(rows, cols) // create a Dense matrix of size 3x4
	require.NoError(t, err)               // assert no error on valid dimensions

	require.Equal(t, rows, m.Rows()) // assert Rows() equals expected rows
	require.Equal(t, cols, m.Cols()) // assert Cols() equals expected cols

	r, c := m.Shape() // Shape packs both counts
	require.Equal(t, rows, r)
	require.Equal(t, cols, c)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2) // create a 2x2 Dense matrix
	require.NoError(t, err)         // assert matrix creation succeeded

	_, err = m.At(-1, 0)                          // attempt At() with negative row index
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	_, err = m.At(0, 2)                           // attempt At() with column index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(2, 0, 1.23)                       // attempt Set() with row index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(0, -1, 4.56)                      // attempt Set() with negative column index
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange
}

// TestSetGet validates correct behavior of Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3) // create a 2x3 Dense matrix
	require.NoError(t, err)         // ensure valid creation

	err = m.Set(1, 2, 7.89) // set element at row 1, column 2
	require.NoError(t, err) // assert Set() succeeded

	val, err := m.At(1, 2)      // retrieve the set element
	require.NoError(t, err)     // assert At() succeeded
	require.Equal(t, 7.89, val) // assert retrieved value matches set value
}

// TestSetRejectsNaNInf verifies the default finite-only numeric policy.
func TestSetRejectsNaNInf(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	err = m.Set(0, 0, math.NaN())             // NaN violates the policy
	require.ErrorIs(t, err, matrix.ErrNaNInf) // expect ErrNaNInf

	err = m.Set(0, 0, math.Inf(1)) // +Inf violates the policy
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	err = m.Set(0, 0, math.Inf(-1)) // -Inf violates the policy
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	v, err := m.At(0, 0)     // rejected writes must not land
	require.NoError(t, err)
	require.Equal(t, 0.0, v) // cell still holds the zero init
}

// TestNewDenseFromSlice covers the flat-slice constructor and its errors.
func TestNewDenseFromSlice(t *testing.T) {
	m, err := matrix.NewDenseFromSlice(2, 2, []float64{1, 2, 3, 4}) // row-major fill
	require.NoError(t, err)

	v, err := m.At(1, 0) // row 1, col 0 is the third flat element
	require.NoError(t, err)
	require.Equal(t, 3.0, v)

	_, err = matrix.NewDenseFromSlice(2, 2, []float64{1, 2, 3})  // short slice
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFromSlice(2, 2, []float64{1, 2, 3, math.NaN()}) // NaN input
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.NewDenseFromSlice(0, 2, nil) // bad shape dominates
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewDense(2, 2) // create a 2x2 Dense matrix
	require.NoError(t, err)         // validate creation

	// initialize matrix elements to distinct values
	_ = m.Set(0, 0, 1.0)
	_ = m.Set(1, 1, 2.0)

	clone := m.Clone() // clone the matrix

	// modify the clone, but not the original
	_ = clone.Set(0, 0, 3.0)

	origVal, err := m.At(0, 0)     // retrieve original matrix element
	require.NoError(t, err)        // assert At() succeeded on original
	require.Equal(t, 1.0, origVal) // expect original remains unchanged

	cloneVal, err := clone.At(0, 0) // retrieve clone's element
	require.NoError(t, err)         // assert At() succeeded on clone
	require.Equal(t, 3.0, cloneVal) // expect clone reflects new value
}

// TestFillAndZero covers bulk writes and the in-place reset.
func TestFillAndZero(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Fill(2.5)) // constant fill across the buffer
	m.Do(func(i, j int, v float64) bool {
		require.Equal(t, 2.5, v, "cell (%d,%d)", i, j)
		return true
	})

	err = m.Fill(math.Inf(1)) // non-finite fill rejected under policy
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	m.Zero() // reset in place
	zero, err := matrix.IsAllZero(m)
	require.NoError(t, err)
	require.True(t, zero) // everything back to the additive identity
}

// TestDoVisitsRowMajor checks the visitor order and early-exit contract.
func TestDoVisitsRowMajor(t *testing.T) {
	m, err := matrix.NewDenseFromSlice(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	var seen []float64
	m.Do(func(i, j int, v float64) bool {
		seen = append(seen, v)
		return true
	})
	require.Equal(t, []float64{1, 2, 3, 4}, seen) // row-major traversal

	seen = seen[:0]
	m.Do(func(i, j int, v float64) bool {
		seen = append(seen, v)
		return len(seen) < 2 // request stop after two visits
	})
	require.Equal(t, []float64{1, 2}, seen) // early exit honored
}

// TestApplyTransformsInPlace checks the in-place map and its numeric guard.
func TestApplyTransformsInPlace(t *testing.T) {
	m, err := matrix.NewDenseFromSlice(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	err = m.Apply(func(i, j int, v float64) float64 { return v * 10 }) // scale all
	require.NoError(t, err)

	v, err := m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 40.0, v) // transformed value landed

	err = m.Apply(func(i, j int, v float64) float64 { return math.NaN() })
	require.ErrorIs(t, err, matrix.ErrNaNInf) // non-finite transform rejected
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m, err := matrix.NewDense(2, 2) // create a 2x2 matrix for formatting test
	require.NoError(t, err)         // ensure valid creation

	// populate matrix with sample values
	_ = m.Set(0, 0, 1)
	_ = m.Set(0, 1, 2)
	_ = m.Set(1, 0, 3)
	_ = m.Set(1, 1, 4)

	expected := "[1, 2]\n[3, 4]\n"         // define expected string output
	require.Equal(t, expected, m.String()) // assert String() output matches expected format
}
