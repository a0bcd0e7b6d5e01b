// SPDX-License-Identifier: MIT
package tiled_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/blockmat/matrix"
	"github.com/katalvlaran/blockmat/partition"
	"github.com/katalvlaran/blockmat/tiled"
)

// TestTransposeInPlace_MatchesDenseOracle checks the tiled transpose agrees
// elementwise with the plain dense transpose of the source.
func TestTransposeInPlace_MatchesDenseOracle(t *testing.T) {
	src := newFilledDense(t, 4, 6, []float64{ // rectangular, square 2×2 tile grid.
		1, 2, 3, 0, 0, 0,
		4, 5, 6, 0, 0, 0,
		0, 0, 0, 7, 8, 9,
		0, 0, 0, 1, 2, 3,
	})
	tm, err := tiled.New(src, 2)
	require.NoError(t, err)

	require.NoError(t, tm.TransposeInPlace())

	require.Equal(t, 6, tm.Rows()) // shape flipped.
	require.Equal(t, 4, tm.Cols())
	require.True(t, tm.Transposed()) // history flag records the flip.

	oracle, oErr := matrix.Transpose(src) // independent dense transpose.
	require.NoError(t, oErr)
	requireMirrors(t, tm, oracle)
}

// TestTransposeInPlace_SwapsEmptinessPattern checks absent tiles move to
// their mirrored grid slots without materializing.
func TestTransposeInPlace_SwapsEmptinessPattern(t *testing.T) {
	src := newFilledDense(t, 4, 4, []float64{
		0, 0, 5, 6, // top-left block zero, top-right present.
		0, 0, 7, 8,
		0, 0, 0, 0, // bottom row of blocks: both zero.
		0, 0, 0, 0,
	})
	tm, err := tiled.New(src, 2)
	require.NoError(t, err)
	require.True(t, mustTileEmpty(t, tm, 0, 0))
	require.False(t, mustTileEmpty(t, tm, 0, 2)) // data sits at block (0,1).

	require.NoError(t, tm.TransposeInPlace())

	require.False(t, mustTileEmpty(t, tm, 2, 0)) // data moved to block (1,0).
	require.True(t, mustTileEmpty(t, tm, 0, 2))  // mirrored slot is now empty.
	present, total := tm.Occupancy()
	require.Equal(t, 1, present) // storage count is preserved.
	require.Equal(t, 4, total)
}

// TestTransposeInPlace_Involution checks transposing twice restores the
// original contents, shape and emptiness.
func TestTransposeInPlace_Involution(t *testing.T) {
	tm := newBanded4x4Tiled(t)
	reference := newBanded4x4Tiled(t) // untouched twin.

	require.NoError(t, tm.TransposeInPlace())
	require.NoError(t, tm.TransposeInPlace())

	require.False(t, tm.Transposed())   // flag flipped back.
	require.True(t, tm.Equal(reference)) // contents and layout identical.
	requireMirrors(t, tm, banded4x4(t))
}

// TestTransposeInPlace_UnevenPartitions checks remainder-bearing layouts
// transpose correctly (tile shapes differ across the grid).
func TestTransposeInPlace_UnevenPartitions(t *testing.T) {
	src := newFilledDense(t, 5, 5, []float64{
		1, 2, 3, 4, 5,
		6, 7, 8, 9, 1,
		2, 3, 4, 5, 6,
		7, 8, 9, 1, 2,
		3, 4, 5, 6, 7,
	})
	tm, err := tiled.New(src, 2) // rows 3+2, cols 3+2.
	require.NoError(t, err)

	require.NoError(t, tm.TransposeInPlace())

	oracle, oErr := matrix.Transpose(src)
	require.NoError(t, oErr)
	requireMirrors(t, tm, oracle)

	require.NoError(t, tm.TransposeInPlace()) // and back.
	requireMirrors(t, tm, src)
}

// TestTransposeInPlace_AgainstGonum cross-checks the transpose against the
// gonum implementation through the interop surface.
func TestTransposeInPlace_AgainstGonum(t *testing.T) {
	g := mat.NewDense(4, 4, []float64{
		1, 2, 5, 0,
		3, 4, 0, 6,
		7, 8, 0, 0,
		9, 1, 0, 0,
	})
	tm, err := tiled.NewFromGonum(g, 2)
	require.NoError(t, err)

	require.NoError(t, tm.TransposeInPlace())

	want := mat.DenseCopyOf(g.T()) // gonum's own transpose as oracle.
	require.True(t, mat.Equal(tm.ToGonum(), want))
}

// TestTransposeInPlace_RejectsNonSquareGrid checks a rectangular tile grid
// is refused before anything is touched.
func TestTransposeInPlace_RejectsNonSquareGrid(t *testing.T) {
	src := banded4x4(t)
	rows := []partition.Range{{Start: 0, End: 2}, {Start: 2, End: 4}} // 2 row tiles.
	cols := []partition.Range{
		{Start: 0, End: 1}, {Start: 1, End: 2}, {Start: 2, End: 4}, // 3 col tiles.
	}
	tm, err := tiled.NewWithPartitions(src, rows, cols)
	require.NoError(t, err)

	err = tm.TransposeInPlace()
	require.ErrorIs(t, err, tiled.ErrNonSquareTiling)

	require.Equal(t, 4, tm.Rows()) // refused call mutated nothing.
	require.False(t, tm.Transposed())
	require.Equal(t, rows, tm.RowPartitions())
	requireMirrors(t, tm, src)
}

// TestTransposeInPlace_ThenMutate checks the container keeps normal write
// semantics after a transpose.
func TestTransposeInPlace_ThenMutate(t *testing.T) {
	tm := newBanded4x4Tiled(t)
	require.NoError(t, tm.TransposeInPlace())

	// The fixture's 6 sat at (1,3); after the flip it reads at (3,1).
	require.Equal(t, 6.0, mustAt(t, tm, 3, 1))
	require.Equal(t, 5.0, mustAt(t, tm, 2, 0)) // the 5 from (0,2) shares its block.

	require.NoError(t, tm.Set(3, 1, 0))          // clear the 6.
	require.False(t, mustTileEmpty(t, tm, 3, 1)) // 5 still pins the block.
	require.NoError(t, tm.Set(2, 0, 0))          // clear the 5 too.
	require.True(t, mustTileEmpty(t, tm, 3, 1))  // now the block is absent.

	require.NoError(t, tm.Set(2, 2, 1.25)) // materialize the other absent block.
	require.Equal(t, 1.25, mustAt(t, tm, 2, 2))
}
