// Package spy renders occupancy plots ("spy plots") of tiled matrices.
//
// What:
//   - Grid adapts a tiled.Matrix to the plotter.GridXYZ interface, mapping
//     each tile to one cell whose value is the tile's nonzero fraction.
//   - HeatMap builds a ready-to-save heat map from that grid.
//   - Save renders straight to an image file in one call.
//
// Why:
//   - A container that drops all-zero tiles is only worth its bookkeeping
//     when the zero structure is real. A spy plot makes that structure
//     visible at a glance: dark cells are dense tiles, blank cells cost no
//     storage at all.
//
// Coordinates:
//   - Cells are centered on the element ranges the tiles cover, so the axes
//     read in element indices, not tile indices.
//   - The vertical axis is inverted: row 0 renders at the top, the way
//     matrices are written.
//
// Errors:
//   - Constructors report tiled.ErrNilMatrix for a nil container; rendering
//     and file errors pass through from gonum/plot.
package spy
