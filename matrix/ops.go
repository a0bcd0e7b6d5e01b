// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// transpose, all-zero testing, and tolerance-based equality. All functions
// perform strict fail-fast validation and return clear errors.
//
// Purpose:
//   - Declare the shared element-wise kernels used by the tiled layer and tests.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - All kernels use central sentinels and wrap via matrixErrorf at the facade.
//   - Each kernel offers a *Dense fast path over the flat buffer and a generic
//     At/Set fallback for foreign Matrix implementations.

package matrix

import (
	"fmt"
	"math"
)

// ZeroValue is the additive identity tested by IsAllZero and reported for
// absent entries by sparse implementations.
const ZeroValue = 0.0

// DefaultEpsilon defines the non-negative tolerance used by Equal when
// callers have no stricter requirement.
const DefaultEpsilon = 1e-9

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opTranspose = "Transpose"
	opIsAllZero = "IsAllZero"
	opEqual     = "Equal"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w so errors.Is/As keep matching. Use only when err != nil.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateNotNil guards interface arguments at kernel entry.
// Returns ErrNilMatrix bare; facades wrap with the op tag.
// Complexity: O(1).
func validateNotNil(m Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// Transpose returns a new Dense with rows and columns swapped (mᵀ).
// Input is validated non-nil; the original matrix is never mutated.
// Fast-path copies *Dense data via flat indexing; fallback uses At/Set.
//
// Implementation:
//   - Stage 1: validateNotNil(m). Allocate Dense(cols, rows).
//   - Stage 2: If m is *Dense, use contiguous slice mapping; else generic i→j loop.
//
// Behavior highlights:
//   - Deterministic copy order (dense: row blocks; generic: i→j).
//   - One allocation for the result; no temporaries proportional to size.
//   - The result inherits the source's numeric policy when the source is *Dense.
//
// Inputs:
//   - m: non-nil matrix (r×c).
//
// Returns:
//   - *Dense: newly allocated c×r matrix with mᵀ.
//
// Errors:
//   - ErrNilMatrix (validation), ErrInvalidDimensions (allocation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
//
// AI-Hints:
//   - Keep operands as *Dense to unlock the flat-copy fast-path.
//   - Avoid transposing repeatedly in tight loops; hoist and reuse the result.
func Transpose(m Matrix) (*Dense, error) {
	// Validate input non-nil.
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Allocate result Dense with flipped dimensions.
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Fast-path for Dense → Dense.
	var i, j int // loop iterators
	if dm, ok := m.(*Dense); ok {
		res.validateNaNInf = dm.validateNaNInf // inherit numeric policy
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	// Fallback: generic interface loop.
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	return res, nil
}

// IsAllZero reports whether every element of m equals ZeroValue exactly.
// Input is validated non-nil; the matrix is never mutated.
// Fast-path scans the *Dense flat buffer; fallback reads via At.
//
// Implementation:
//   - Stage 1: validateNotNil(m).
//   - Stage 2: *DOK short-circuits on NNZ()==0; *Dense flat scan with early
//     exit on the first non-zero; generic i→j At loop otherwise.
//
// Inputs:
//   - m: non-nil matrix.
//
// Returns:
//   - bool: true when no element differs from ZeroValue.
//
// Errors:
//   - ErrNilMatrix (validation); At failures from foreign implementations.
//
// Complexity:
//   - Time O(r*c) worst case, O(1) best (first element non-zero or empty DOK).
func IsAllZero(m Matrix) (bool, error) {
	// Validate input non-nil.
	if err := validateNotNil(m); err != nil {
		return false, matrixErrorf(opIsAllZero, err)
	}

	// Fast-path for DOK: the entry count answers directly.
	if sm, ok := m.(*DOK); ok {
		return sm.NNZ() == 0, nil
	}

	// Fast-path for Dense: flat scan with early exit.
	if dm, ok := m.(*Dense); ok {
		for _, v := range dm.data {
			if v != ZeroValue {
				return false, nil
			}
		}

		return true, nil
	}

	// Fallback: generic interface loop.
	rows, cols := m.Rows(), m.Cols()
	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return false, matrixErrorf(opIsAllZero, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if v != ZeroValue {
				return false, nil
			}
		}
	}

	return true, nil
}

// Equal reports whether a and b have the same shape and elementwise
// |a[i,j]-b[i,j]| ≤ eps. Shape mismatch is an ordinary "not equal" answer
// (false, nil), mirroring gonum's mat.Equal; only nil inputs and invalid
// eps are errors. NaN elements never satisfy the bound, so a matrix holding
// NaN is never equal to anything, itself included.
//
// Implementation:
//   - Stage 1: validate both operands non-nil and eps finite, ≥ 0.
//   - Stage 2: shape check (false on mismatch, no error).
//   - Stage 3: *Dense×*Dense flat scan; generic At loop otherwise.
//
// Inputs:
//   - a, b: non-nil matrices.
//   - eps : non-negative finite tolerance; 0 means exact equality;
//     DefaultEpsilon suits double-precision round-off.
//
// Returns:
//   - bool: equality verdict.
//
// Errors:
//   - ErrNilMatrix for nil operands, ErrNaNInf for invalid eps,
//     At failures from foreign implementations.
//
// Complexity:
//   - Time O(r*c) worst case with early exit on first mismatch.
func Equal(a, b Matrix, eps float64) (bool, error) {
	// Validate operands.
	if err := validateNotNil(a); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if err := validateNotNil(b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	// Validate tolerance: NaN/±Inf tolerances give meaningless verdicts.
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		return false, matrixErrorf(opEqual, ErrNaNInf)
	}

	// Shape mismatch is "not equal", not an error.
	rows, cols := a.Rows(), a.Cols()
	if rows != b.Rows() || cols != b.Cols() {
		return false, nil
	}

	// Fast-path for Dense × Dense: one flat scan.
	da, aOK := a.(*Dense)
	db, bOK := b.(*Dense)
	var d float64 // absolute difference per element
	if aOK && bOK {
		for k := range da.data {
			// A NaN difference compares false to every threshold; it is a mismatch.
			d = math.Abs(da.data[k] - db.data[k])
			if d > eps || math.IsNaN(d) {
				return false, nil
			}
		}

		return true, nil
	}

	// Fallback: generic interface loop.
	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return false, matrixErrorf(opEqual, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			bv, err = b.At(i, j)
			if err != nil {
				return false, matrixErrorf(opEqual, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			d = math.Abs(av - bv)
			if d > eps || math.IsNaN(d) {
				return false, nil
			}
		}
	}

	return true, nil
}
