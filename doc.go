// Package blockmat is an in-memory blocked (tile-partitioned) matrix
// container: a dense-looking 2-D float64 array that internally tracks,
// per rectangular tile, whether the tile is entirely zero — so that
// downstream code can test and skip whole zero blocks instead of walking
// elements one by one.
//
// 🚀 What is blockmat?
//
//	A small, focused library that brings together:
//		• Tiled container: lazy tile materialization on write,
//		  automatic release of tiles that become all-zero
//		• Partitioner: split a dimension into contiguous index ranges
//		• Backing store: safe row-major Dense + map-backed DOK sparse
//		• In-place transpose: swaps tiles, contents and partitions
//		  consistently (an exact involution)
//		• Occupancy spy plots: render the tile grid as a heatmap PNG
//
// ✨ Why choose blockmat?
//
//   - Block-granular sparsity – cheap to test, cheap to skip
//   - Safe by construction – errors, not panics, on user input
//   - Deterministic – fixed loop orders, no hidden randomness
//   - Interoperable – adapters to and from gonum/mat
//
// Under the hood, everything is organized under four subpackages:
//
//	partition/ — index-range splitting and lookup along one dimension
//	matrix/    — Dense and DOK backing stores + transpose/zero-test kernels
//	tiled/     — the blocked container: construction, access, flush, transpose
//	spy/       — tile-occupancy heatmaps on top of gonum/plot
//
// Quick ASCII example — a 4×4 matrix tiled 2×2, with one all-zero block:
//
//	    ┌─────┬─────┐
//	    │ 1 2 │ 0 0 │      tiles (0,0), (1,0) and (1,1) hold storage;
//	    │ 3 4 │ 0 0 │      tile (0,1) is entirely zero, so it holds
//	    ├─────┼─────┤      none — reads from it return 0 directly.
//	    │ 6 0 │ 7 8 │
//	    │ 0 9 │ 1 2 │
//	    └─────┴─────┘
//
// Writing a value into a dropped tile allocates it again; zeroing out a
// tile's last non-zero element releases its storage on the next flush.
//
//	go get github.com/katalvlaran/blockmat/tiled
package blockmat
