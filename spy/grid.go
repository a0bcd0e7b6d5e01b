// SPDX-License-Identifier: MIT
package spy

import (
	"fmt"

	"gonum.org/v1/plot/plotter"

	"github.com/katalvlaran/blockmat/matrix"
	"github.com/katalvlaran/blockmat/partition"
	"github.com/katalvlaran/blockmat/tiled"
)

// Grid is a snapshot of a container's per-tile occupancy, shaped for
// plotter.NewHeatMap. Each grid cell corresponds to one tile; its value is
// the fraction of nonzero elements in that tile, zero for absent tiles.
//
// The snapshot is taken at construction. Later mutations of the container
// do not change an existing Grid.
type Grid struct {
	z      [][]float64 // z[tileRow][tileCol] = nonzero fraction in [0,1]
	xs, ys []float64   // cell centers in element coordinates, ascending
}

// Compile-time interface check.
var _ plotter.GridXYZ = (*Grid)(nil)

// NewGrid snapshots the occupancy of t.
//
// Returns:
//   - tiled.ErrNilMatrix when t is nil.
//
// Complexity: O(n) over stored elements; absent tiles cost O(1).
func NewGrid(t *tiled.Matrix) (*Grid, error) {
	if t == nil {
		return nil, fmt.Errorf("spy.NewGrid: %w", tiled.ErrNilMatrix)
	}

	tileRows, tileCols := t.TileDims()
	g := &Grid{
		z:  make([][]float64, tileRows),
		xs: centers(t.ColPartitions()),
		ys: centers(t.RowPartitions()),
	}
	for i := range g.z {
		g.z[i] = make([]float64, tileCols)
	}

	t.DoTiles(func(ti, tj int, rows, cols partition.Range, tile *matrix.Dense) bool {
		if tile == nil {
			return true // absent tile, fraction stays zero
		}
		nnz := 0
		tile.Do(func(_, _ int, v float64) bool {
			if v != matrix.ZeroValue {
				nnz++
			}

			return true
		})
		g.z[ti][tj] = float64(nnz) / float64(rows.Len()*cols.Len())

		return true
	})

	return g, nil
}

// centers maps each range to the midpoint of the elements it covers.
func centers(rs []partition.Range) []float64 {
	cs := make([]float64, len(rs))
	for i, r := range rs {
		cs[i] = float64(r.Start+r.End-1) / 2
	}

	return cs
}

// Dims returns the grid extent as (columns, rows), the order plotter
// expects.
func (g *Grid) Dims() (c, r int) { return len(g.xs), len(g.ys) }

// Z returns the nonzero fraction of the tile in grid column c, grid row r.
func (g *Grid) Z(c, r int) float64 { return g.z[r][c] }

// X returns the element-coordinate center of grid column c.
func (g *Grid) X(c int) float64 { return g.xs[c] }

// Y returns the element-coordinate center of grid row r.
func (g *Grid) Y(r int) float64 { return g.ys[r] }
