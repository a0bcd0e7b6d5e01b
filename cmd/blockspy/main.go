// SPDX-License-Identifier: MIT

// Command blockspy generates a random block-sparse matrix, tiles it, and
// reports (or renders) which tiles actually hold data.
//
// Usage:
//
//	blockspy --rows 256 --cols 256 --tiles 8 --density 0.3
//	blockspy --seed 7 --out occupancy.png         # render a spy plot
//	blockspy --transpose --verbose                # log tile traffic
//
// Tiles are selected with probability --density; selected tiles are filled
// with uniform values in (-1,1), unselected tiles stay exactly zero and are
// never stored. The summary on stdout shows how much storage the zero
// structure saved.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/blockmat/matrix"
	"github.com/katalvlaran/blockmat/partition"
	"github.com/katalvlaran/blockmat/spy"
	"github.com/katalvlaran/blockmat/tiled"
)

// config carries the parsed command-line flags.
type config struct {
	rows, cols int
	tiles      int
	density    float64
	fill       float64
	seed       int64
	out        string
	transpose  bool
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "blockspy: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg config

	cmd := &cobra.Command{
		Use:           "blockspy",
		Short:         "inspect tile occupancy of a random block-sparse matrix",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(cfg)
		},
	}

	cmd.Flags().IntVar(&cfg.rows, "rows", 64, "matrix rows")
	cmd.Flags().IntVar(&cfg.cols, "cols", 64, "matrix columns")
	cmd.Flags().IntVar(&cfg.tiles, "tiles", 8, "tiles per axis")
	cmd.Flags().Float64Var(&cfg.density, "density", 0.35, "probability a tile holds data")
	cmd.Flags().Float64Var(&cfg.fill, "fill", 0.6, "nonzero fraction inside a selected tile")
	cmd.Flags().Int64Var(&cfg.seed, "seed", 1, "random seed")
	cmd.Flags().StringVar(&cfg.out, "out", "", "write a spy plot image to this path")
	cmd.Flags().BoolVar(&cfg.transpose, "transpose", false, "transpose in place before reporting")
	cmd.Flags().BoolVar(&cfg.verbose, "verbose", false, "log tile materialization and release")

	return cmd
}

func run(cfg config) error {
	log := zap.NewNop()
	if cfg.verbose {
		dev, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("logger: %w", err)
		}
		defer dev.Sync() //nolint:errcheck // best-effort flush on exit
		log = dev
	}

	src, nnz, err := buildSparse(cfg)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	tm, err := tiled.New(src, cfg.tiles, tiled.WithLogger(log))
	if err != nil {
		return fmt.Errorf("tile: %w", err)
	}

	if cfg.transpose {
		if err = tm.TransposeInPlace(); err != nil {
			return fmt.Errorf("transpose: %w", err)
		}
	}

	report(os.Stdout, tm, nnz)

	if cfg.out != "" {
		if err = spy.Save(tm, 12*vg.Centimeter, 12*vg.Centimeter, cfg.out); err != nil {
			return err
		}
		fmt.Printf("spy plot written to %s\n", cfg.out)
	}

	return nil
}

// buildSparse generates a block-sparse matrix: each tile-aligned block is
// either left exactly zero or filled with uniform values in (-1,1). Returns
// the matrix and its nonzero count.
func buildSparse(cfg config) (*matrix.Dense, int, error) {
	rowParts, err := partition.Split(cfg.rows, cfg.tiles)
	if err != nil {
		return nil, 0, fmt.Errorf("rows: %w", err)
	}
	colParts, err := partition.Split(cfg.cols, cfg.tiles)
	if err != nil {
		return nil, 0, fmt.Errorf("cols: %w", err)
	}

	d, err := matrix.NewDense(cfg.rows, cfg.cols)
	if err != nil {
		return nil, 0, err
	}

	rng := rand.New(rand.NewSource(cfg.seed))
	nnz := 0
	for _, rs := range rowParts {
		for _, cs := range colParts {
			if rng.Float64() >= cfg.density {
				continue // this block stays zero and will never be stored
			}
			wrote := false
			for i := rs.Start; i < rs.End; i++ {
				for j := cs.Start; j < cs.End; j++ {
					if rng.Float64() >= cfg.fill {
						continue
					}
					if err = d.Set(i, j, rng.Float64()*2-1); err != nil {
						return nil, 0, err
					}
					nnz++
					wrote = true
				}
			}
			if !wrote { // a selected block must not degenerate to zero
				if err = d.Set(rs.Start, cs.Start, rng.Float64()*2-1); err != nil {
					return nil, 0, err
				}
				nnz++
			}
		}
	}

	return d, nnz, nil
}

// report prints the occupancy summary.
func report(w *os.File, tm *tiled.Matrix, nnz int) {
	rows, cols := tm.Shape()
	tr, tc := tm.TileDims()
	present, total := tm.Occupancy()

	fmt.Fprintf(w, "matrix:     %dx%d (%d nonzero of %d)\n", rows, cols, nnz, rows*cols)
	fmt.Fprintf(w, "tile grid:  %dx%d\n", tr, tc)
	fmt.Fprintf(w, "stored:     %d of %d tiles (%.1f%%)\n",
		present, total, 100*float64(present)/float64(total))
	if tm.Transposed() {
		fmt.Fprintln(w, "transposed: yes")
	}
}
