// SPDX-License-Identifier: MIT

// Package tiled - gonum interop boundary.
//
// Purpose:
//   - Ingest any gonum mat.Matrix as a construction source without copying
//     it up front (the build pass reads it element by element).
//   - Export the container to a *mat.Dense for gonum pipelines.
//
// Notes:
//   - gonum indexers panic on out-of-range access; the adapter bounds-checks
//     first and returns the package's error surface instead.

package tiled

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/blockmat/matrix"
)

// gonumAdapter exposes a gonum mat.Matrix through the error-returning
// matrix.Matrix contract. Writes pass through only when the underlying
// value implements mat.Mutable.
type gonumAdapter struct {
	m mat.Matrix
}

// Compile-time assertion for interface conformance.
var _ matrix.Matrix = (*gonumAdapter)(nil)

// FromGonum wraps m as a matrix.Matrix suitable for the constructors in
// this package and for the matrix package's kernels. A nil m yields a nil
// Matrix (constructors report ErrNilSource).
// Complexity: O(1); no data is copied.
func FromGonum(m mat.Matrix) matrix.Matrix {
	if m == nil {
		return nil
	}

	return &gonumAdapter{m: m}
}

// Rows returns the row count of the wrapped matrix.
// Complexity: O(1).
func (g *gonumAdapter) Rows() int {
	r, _ := g.m.Dims()

	return r
}

// Cols returns the column count of the wrapped matrix.
// Complexity: O(1).
func (g *gonumAdapter) Cols() int {
	_, c := g.m.Dims()

	return c
}

// At reads element (i, j), converting gonum's panic contract into
// matrix.ErrOutOfRange.
// Complexity: O(1).
func (g *gonumAdapter) At(i, j int) (float64, error) {
	r, c := g.m.Dims()
	if i < 0 || i >= r || j < 0 || j >= c {
		return 0, fmt.Errorf("gonumAdapter.At(%d,%d): %w", i, j, matrix.ErrOutOfRange)
	}

	return g.m.At(i, j), nil
}

// Set writes element (i, j) when the wrapped value is mutable (mat.Mutable);
// otherwise ErrReadOnly.
// Complexity: O(1).
func (g *gonumAdapter) Set(i, j int, v float64) error {
	r, c := g.m.Dims()
	if i < 0 || i >= r || j < 0 || j >= c {
		return fmt.Errorf("gonumAdapter.Set(%d,%d): %w", i, j, matrix.ErrOutOfRange)
	}
	mu, ok := g.m.(mat.Mutable)
	if !ok {
		return fmt.Errorf("gonumAdapter.Set(%d,%d): %w", i, j, ErrReadOnly)
	}
	mu.Set(i, j, v)

	return nil
}

// Clone materializes an independent Dense copy of the wrapped matrix.
// Complexity: Time O(r*c), Space O(r*c).
func (g *gonumAdapter) Clone() matrix.Matrix {
	r, c := g.m.Dims()
	out, err := matrix.NewDenseWithPolicy(r, c, false) // copy verbatim, even non-finite
	if err != nil {
		return nil // unreachable: gonum matrices have positive dims
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			_ = out.Set(i, j, g.m.At(i, j)) // in-bounds, policy off
		}
	}

	return out
}

// NewFromGonum builds a tiled container straight from a gonum matrix,
// splitting each axis into `tiles` near-equal parts. See New for semantics.
// Complexity: Time O(rows*cols).
func NewFromGonum(src mat.Matrix, tiles int, opts ...Option) (*Matrix, error) {
	return New(FromGonum(src), tiles, opts...)
}

// ToGonum exports the container as a fresh *mat.Dense of the global shape,
// zeros where tiles are absent. The result shares no storage with the
// container.
// Complexity: Time O(rows*cols), Space O(rows*cols).
func (t *Matrix) ToGonum() *mat.Dense {
	out := mat.NewDense(t.rows, t.cols, nil) // nil backing: zero-initialized
	t.Do(func(i, j int, v float64) bool {
		if v != matrix.ZeroValue {
			out.Set(i, j, v)
		}

		return true
	})

	return out
}
