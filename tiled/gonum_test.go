// SPDX-License-Identifier: MIT
package tiled_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/blockmat/matrix"
	"github.com/katalvlaran/blockmat/tiled"
)

// TestFromGonum_AdapterSemantics checks the adapter translates reads,
// writes and bounds failures between the two matrix vocabularies.
func TestFromGonum_AdapterSemantics(t *testing.T) {
	g := mat.NewDense(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	a := tiled.FromGonum(g)
	require.NotNil(t, a)
	require.Nil(t, tiled.FromGonum(nil)) // nil stays nil for constructors.

	require.Equal(t, 2, a.Rows())
	require.Equal(t, 3, a.Cols())

	v, err := a.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)

	_, err = a.At(2, 0) // the adapter reports bounds as errors, not panics.
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.NoError(t, a.Set(0, 0, -9)) // writes reach the gonum backing.
	require.Equal(t, -9.0, g.At(0, 0))
	require.ErrorIs(t, a.Set(0, 3, 1), matrix.ErrOutOfRange)
}

// TestFromGonum_ReadOnlyBacking checks writes through a view without a Set
// method are refused.
func TestFromGonum_ReadOnlyBacking(t *testing.T) {
	g := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	a := tiled.FromGonum(g.T()) // Transpose views are not mat.Mutable.

	v, err := a.At(0, 1) // reads flow through the view.
	require.NoError(t, err)
	require.Equal(t, 3.0, v)

	err = a.Set(0, 0, 7)
	require.ErrorIs(t, err, tiled.ErrReadOnly)
	require.Equal(t, 1.0, g.At(0, 0)) // backing untouched.
}

// TestFromGonum_CloneDetaches checks adapter clones copy the data out of
// the gonum backing.
func TestFromGonum_CloneDetaches(t *testing.T) {
	g := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	cp := tiled.FromGonum(g).Clone()

	g.Set(0, 0, 100) // mutate the original afterwards.

	v, err := cp.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v) // clone kept the old value.
}

// TestNewFromGonum_BuildsContainer checks the convenience constructor tiles
// a gonum matrix directly.
func TestNewFromGonum_BuildsContainer(t *testing.T) {
	g := mat.NewDense(4, 4, []float64{
		1, 2, 0, 0,
		3, 4, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	})
	tm, err := tiled.NewFromGonum(g, 2)
	require.NoError(t, err)

	present, total := tm.Occupancy()
	require.Equal(t, 1, present) // only the top-left block holds data.
	require.Equal(t, 4, total)
	require.Equal(t, 4.0, mustAt(t, tm, 1, 1))

	_, err = tiled.NewFromGonum(nil, 2) // nil passes through to ErrNilSource.
	require.ErrorIs(t, err, tiled.ErrNilSource)
}

// TestToGonum_RoundTrip checks exporting back to gonum preserves every
// element, absent regions included.
func TestToGonum_RoundTrip(t *testing.T) {
	g := mat.NewDense(4, 4, []float64{
		1, 2, 5, 0,
		3, 4, 0, 6,
		7, 8, 0, 0,
		9, 1, 0, 0,
	})
	tm, err := tiled.NewFromGonum(g, 2)
	require.NoError(t, err)

	out := tm.ToGonum()
	require.True(t, mat.Equal(g, out)) // lossless round trip.

	out.Set(0, 0, 42) // the export owns its storage.
	require.Equal(t, 1.0, mustAt(t, tm, 0, 0))

	require.NoError(t, tm.Set(3, 3, 8)) // mutations after export re-export cleanly.
	require.Equal(t, 8.0, tm.ToGonum().At(3, 3))
}
