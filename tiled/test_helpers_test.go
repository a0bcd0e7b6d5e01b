// SPDX-License-Identifier: MIT
// Package tiled_test contains shared fixtures for the container tests.
//
// Purpose:
//   - Small, deterministic fixtures: explicit block-banded matrices whose
//     zero blocks are known in advance.
//   - Keep all data finite and well-formed to avoid numeric-policy
//     interference.

package tiled_test

import (
	"testing"

	"github.com/katalvlaran/blockmat/matrix"
	"github.com/katalvlaran/blockmat/tiled"
)

// newFilledDense builds an r×c *Dense from a row-major flat slice, failing
// the test on any error.
func newFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFromSlice(r, c, vals)
	if err != nil {
		t.Fatalf("NewDenseFromSlice(%d,%d): %v", r, c, err)
	}

	return d
}

// banded4x4 is the canonical fixture: a 4×4 matrix whose bottom-right 2×2
// block is entirely zero. Under a 2×2 tiling, exactly tile (1,1) is absent.
//
//	[1, 2, 5, 0]
//	[3, 4, 0, 6]
//	[7, 8, 0, 0]
//	[9, 1, 0, 0]
func banded4x4(t *testing.T) *matrix.Dense {
	t.Helper()

	return newFilledDense(t, 4, 4, []float64{
		1, 2, 5, 0,
		3, 4, 0, 6,
		7, 8, 0, 0,
		9, 1, 0, 0,
	})
}

// newBanded4x4Tiled tiles the canonical fixture 2×2, failing on error.
func newBanded4x4Tiled(t *testing.T, opts ...tiled.Option) *tiled.Matrix {
	t.Helper()
	tm, err := tiled.New(banded4x4(t), 2, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	return tm
}

// mustAt reads tm[i,j] or fails the test.
func mustAt(t *testing.T, tm *tiled.Matrix, i, j int) float64 {
	t.Helper()
	v, err := tm.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// mustTileEmpty reports emptiness of the tile owning element (i,j), failing
// the test on a resolution error.
func mustTileEmpty(t *testing.T, tm *tiled.Matrix, i, j int) bool {
	t.Helper()
	empty, err := tm.IsTileEmpty(i, j)
	if err != nil {
		t.Fatalf("IsTileEmpty(%d,%d): %v", i, j, err)
	}

	return empty
}

// requireMirrors asserts the container equals the plain dense mirror
// elementwise, exactly.
func requireMirrors(t *testing.T, tm *tiled.Matrix, mirror matrix.Matrix) {
	t.Helper()
	eq, err := tm.EqualMatrix(mirror, 0)
	if err != nil {
		t.Fatalf("EqualMatrix: %v", err)
	}
	if !eq {
		t.Fatalf("container diverged from the dense mirror:\n%s", tm)
	}
}
