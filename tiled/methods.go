// SPDX-License-Identifier: MIT

// Package tiled - query surface: shape, dimension and tile-level
// introspection, visitors, export, equality, cloning.

package tiled

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/katalvlaran/blockmat/matrix"
	"github.com/katalvlaran/blockmat/partition"
)

const (
	ctxDim         = "Dim"
	ctxIsTileEmpty = "IsTileEmpty"
)

// Shape returns the global (rows, cols) of the container.
// Complexity: O(1).
func (t *Matrix) Shape() (rows, cols int) { return t.rows, t.cols }

// Rows returns the global row count.
// Complexity: O(1).
func (t *Matrix) Rows() int { return t.rows }

// Cols returns the global column count.
// Complexity: O(1).
func (t *Matrix) Cols() int { return t.cols }

// Dim returns the extent along the requested axis: AxisRows (1) for rows,
// AxisCols (2) for cols. Any other axis yields ErrAxis.
// Complexity: O(1).
func (t *Matrix) Dim(axis int) (int, error) {
	switch axis {
	case AxisRows:
		return t.rows, nil
	case AxisCols:
		return t.cols, nil
	default:
		return 0, fmt.Errorf("%s(%d): %w", ctxDim, axis, ErrAxis)
	}
}

// ElementType reports the element type stored by the container.
// Complexity: O(1).
func (t *Matrix) ElementType() reflect.Type { return reflect.TypeOf(float64(0)) }

// IsTileEmpty reports whether the tile containing global element (i, j) is
// absent (all zero, no storage). Coordinates address an ELEMENT, not a tile:
// IsTileEmpty(3, 3) asks about the tile that owns element (3, 3).
//
// Errors:
//   - ErrOutOfRange when no partition range contains i or j.
//
// Complexity: O(R+C) resolution.
func (t *Matrix) IsTileEmpty(i, j int) (bool, error) {
	ti, _, err := t.locateRow(i)
	if err != nil {
		return false, tiledErrorf(ctxIsTileEmpty, i, j, err)
	}
	tj, _, err := t.locateCol(j)
	if err != nil {
		return false, tiledErrorf(ctxIsTileEmpty, i, j, err)
	}

	return t.tiles[ti][tj] == nil, nil
}

// TileDims returns the tile-grid shape (partition counts per axis).
// Complexity: O(1).
func (t *Matrix) TileDims() (tileRows, tileCols int) {
	return len(t.rowParts), len(t.colParts)
}

// RowPartitions returns a copy of the row partition list.
// Complexity: O(R).
func (t *Matrix) RowPartitions() []partition.Range {
	out := make([]partition.Range, len(t.rowParts))
	copy(out, t.rowParts)

	return out
}

// ColPartitions returns a copy of the column partition list.
// Complexity: O(C).
func (t *Matrix) ColPartitions() []partition.Range {
	out := make([]partition.Range, len(t.colParts))
	copy(out, t.colParts)

	return out
}

// Transposed reports whether an odd number of TransposeInPlace calls has
// been applied since construction. Informational; equality ignores it.
// Complexity: O(1).
func (t *Matrix) Transposed() bool { return t.transposed }

// Occupancy returns how many tile slots hold storage and how many exist.
// Complexity: O(R*C).
func (t *Matrix) Occupancy() (present, total int) {
	for ti := range t.tiles {
		for _, tile := range t.tiles[ti] {
			if tile != nil {
				present++
			}
		}
	}

	return present, len(t.rowParts) * len(t.colParts)
}

// DoTiles visits every tile slot in row-major tile order and calls
// f(ti, tj, rows, cols, tile); tile is nil for absent slots. Stops early
// when f returns false. The tile pointer is the container's live storage.
// Treat it as read-only; mutate through Set/SetRange so the flush invariant
// holds.
// Complexity: O(R*C) visits.
func (t *Matrix) DoTiles(f func(ti, tj int, rows, cols partition.Range, tile *matrix.Dense) bool) {
	for ti := range t.tiles {
		for tj, tile := range t.tiles[ti] {
			if !f(ti, tj, t.rowParts[ti], t.colParts[tj], tile) {
				return
			}
		}
	}
}

// Do visits each element (i, j) in row-major order and calls f(i, j, v),
// yielding zeros for absent tiles. Stops early when f returns false.
// Coordinate resolution happens once per row and tile column, not per
// element.
// Complexity: Time O(rows*cols), Space O(1).
func (t *Matrix) Do(f func(i, j int, v float64) bool) {
	var v float64
	for i := 0; i < t.rows; i++ {
		ti, ri, err := t.locateRow(i)
		if err != nil {
			return // unreachable on a valid container: rowParts covers [0, rows)
		}
		for tj := range t.colParts {
			cs := t.colParts[tj]
			tile := t.tiles[ti][tj]
			for j := cs.Start; j < cs.End; j++ {
				v = matrix.ZeroValue
				if tile != nil {
					v, _ = tile.At(ri, j-cs.Start) // in-bounds by construction
				}
				if !f(i, j, v) {
					return
				}
			}
		}
	}
}

// Dense materializes the container into a single independent Dense of the
// global shape, with zeros where tiles are absent.
// Complexity: Time O(rows*cols), Space O(rows*cols).
func (t *Matrix) Dense() (*matrix.Dense, error) {
	out, err := matrix.NewDenseWithPolicy(t.rows, t.cols, t.validateNaNInf)
	if err != nil {
		return nil, fmt.Errorf("Matrix.Dense: %w", err)
	}

	var setErr error
	t.Do(func(i, j int, v float64) bool {
		if v == matrix.ZeroValue {
			return true // buffer is already zero-initialized
		}
		if err := out.Set(i, j, v); err != nil {
			setErr = fmt.Errorf("Matrix.Dense: %w", err)
			return false
		}

		return true
	})
	if setErr != nil {
		return nil, setErr
	}

	return out, nil
}

// Equal reports structural equality with o: same shape, same partition
// lists, same absent/present pattern, and exactly equal stored tiles.
// Orientation history (Transposed) is not part of the comparison.
// Complexity: Time O(rows*cols) worst case, early exit on first difference.
func (t *Matrix) Equal(o *Matrix) bool {
	if o == nil {
		return false
	}
	if t.rows != o.rows || t.cols != o.cols {
		return false
	}
	if len(t.rowParts) != len(o.rowParts) || len(t.colParts) != len(o.colParts) {
		return false
	}
	for k := range t.rowParts {
		if t.rowParts[k] != o.rowParts[k] {
			return false
		}
	}
	for k := range t.colParts {
		if t.colParts[k] != o.colParts[k] {
			return false
		}
	}

	for ti := range t.tiles {
		for tj, tile := range t.tiles[ti] {
			other := o.tiles[ti][tj]
			if (tile == nil) != (other == nil) {
				return false // emptiness patterns differ
			}
			if tile == nil {
				continue
			}
			eq, err := matrix.Equal(tile, other, 0) // exact tile contents
			if err != nil || !eq {
				return false
			}
		}
	}

	return true
}

// EqualMatrix compares the container elementwise against any backing-store
// matrix within eps. Shape mismatch is an ordinary "not equal" answer.
//
// Errors:
//   - ErrNilMatrix for nil m; matrix.ErrNaNInf for invalid eps.
//
// Complexity: Time O(rows*cols) worst case, early exit on first difference.
func (t *Matrix) EqualMatrix(m matrix.Matrix, eps float64) (bool, error) {
	if m == nil {
		return false, fmt.Errorf("Matrix.EqualMatrix: %w", ErrNilMatrix)
	}
	d, err := t.Dense()
	if err != nil {
		return false, err
	}

	return matrix.Equal(d, m, eps)
}

// Clone returns a deep copy: fresh tile storage, copied partition lists,
// same options and logger. Mutations of either container never affect the
// other.
// Complexity: Time O(occupied cells), Space O(occupied cells).
func (t *Matrix) Clone() *Matrix {
	cp := &Matrix{
		tiles:          make([][]*matrix.Dense, len(t.rowParts)),
		rowParts:       make([]partition.Range, len(t.rowParts)),
		colParts:       make([]partition.Range, len(t.colParts)),
		rows:           t.rows,
		cols:           t.cols,
		transposed:     t.transposed,
		zeroTol:        t.zeroTol,
		validateNaNInf: t.validateNaNInf,
		log:            t.log,
	}
	copy(cp.rowParts, t.rowParts)
	copy(cp.colParts, t.colParts)

	for ti := range t.tiles {
		cp.tiles[ti] = make([]*matrix.Dense, len(t.colParts))
		for tj, tile := range t.tiles[ti] {
			if tile != nil {
				cp.tiles[ti][tj] = tile.CloneDense()
			}
		}
	}

	return cp
}

// String provides a readable row-wise dump of the whole container for
// diagnostics, absent tiles rendered as zeros. Not for hot paths.
// Complexity: Time O(rows*cols), Space O(rows*cols) for formatting.
func (t *Matrix) String() string {
	var b strings.Builder
	lastCol := t.cols - 1
	b.Grow(t.rows * (t.cols*4 + 3))
	t.Do(func(i, j int, v float64) bool {
		if j == 0 {
			b.WriteString("[")
		}
		fmt.Fprintf(&b, "%g", v)
		if j == lastCol {
			b.WriteString("]\n")
		} else {
			b.WriteString(", ")
		}

		return true
	})

	return b.String()
}
