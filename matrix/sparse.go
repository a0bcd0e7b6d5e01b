// SPDX-License-Identifier: MIT

// Package matrix - DOK (dictionary-of-keys) sparse storage.
//
// Purpose:
//   - Cheap cell-by-cell construction of mostly-zero matrices.
//   - Same error-returning surface as Dense; interchangeable via Matrix.
//
// AI-Hints:
//   - DOK stores only non-zero entries; Set(i,j,0) deletes the entry, so
//     NNZ() tracks true structural sparsity.
//   - Iteration order over entries is map order (nondeterministic). Use
//     DoNonZero only for order-independent accumulation; use ToDense first
//     when a fixed traversal order matters.

package matrix

import (
	"fmt"
	"math"
)

// dokKey addresses a stored entry. Using ints keeps the key compact and
// hash-friendly.
type dokKey struct {
	row int
	col int
}

// DOK is a map-backed sparse matrix holding only non-zero entries.
type DOK struct {
	r, c           int                // dimensions (>0)
	data           map[dokKey]float64 // non-zero entries only
	validateNaNInf bool               // numeric guard, same policy as Dense
}

// Compile-time assertion for interface conformance.
var _ Matrix = (*DOK)(nil)

// NewDOK creates an empty (all-zero) r×c sparse matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//
// Complexity: Time O(1), Space O(1) until entries are inserted.
func NewDOK(rows, cols int) (*DOK, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &DOK{
		r:              rows,
		c:              cols,
		data:           make(map[dokKey]float64),
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// Rows returns the row count.
// Complexity: O(1).
func (m *DOK) Rows() int { return m.r }

// Cols returns the column count.
// Complexity: O(1).
func (m *DOK) Cols() int { return m.c }

// NNZ returns the number of stored (non-zero) entries.
// Complexity: O(1).
func (m *DOK) NNZ() int { return len(m.data) }

// At returns the value at (row, col); absent entries read as 0.
//
// Errors:
//   - ErrOutOfRange when indices are invalid.
//
// Complexity: O(1) expected (map lookup).
func (m *DOK) At(row, col int) (float64, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("DOK.%s(%d,%d): %w", ctxAt, row, col, ErrOutOfRange)
	}

	return m.data[dokKey{row, col}], nil
}

// Set stores v at (row, col). Writing exactly 0 deletes the entry, keeping
// the map a faithful non-zero dictionary.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite v under the policy.
//
// Complexity: O(1) expected (map insert/delete).
func (m *DOK) Set(row, col int, v float64) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return fmt.Errorf("DOK.%s(%d,%d): %w", ctxSet, row, col, ErrOutOfRange)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return fmt.Errorf("DOK.%s(%d,%d): %w", ctxSet, row, col, ErrNaNInf)
	}
	k := dokKey{row, col}
	if v == 0 {
		delete(m.data, k) // keep only true non-zeros
		return nil
	}
	m.data[k] = v

	return nil
}

// Clone returns a deep copy with the same entries and numeric policy.
// Complexity: Time O(nnz), Space O(nnz).
func (m *DOK) Clone() Matrix {
	cp := make(map[dokKey]float64, len(m.data))
	for k, v := range m.data {
		cp[k] = v
	}

	return &DOK{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
	}
}

// DoNonZero calls f for every stored entry. Order is map order and thus
// nondeterministic; use only for order-independent work (sums, counts).
// Stops early when f returns false.
// Complexity: Time O(nnz), Space O(1).
func (m *DOK) DoNonZero(f func(i, j int, v float64) bool) {
	for k, v := range m.data {
		if !f(k.row, k.col, v) {
			return
		}
	}
}

// ToDense materializes the sparse matrix into an independent Dense.
// Complexity: Time O(r*c + nnz), Space O(r*c).
func (m *DOK) ToDense() (*Dense, error) {
	d, err := NewDenseWithPolicy(m.r, m.c, m.validateNaNInf)
	if err != nil {
		return nil, err
	}
	for k, v := range m.data {
		d.data[k.row*m.c+k.col] = v // direct flat write; values already validated
	}

	return d, nil
}
