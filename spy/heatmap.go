// SPDX-License-Identifier: MIT
package spy

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/blockmat/tiled"
)

// heatColors is the number of palette steps in a rendered heat map.
const heatColors = 12

// HeatMap builds an occupancy heat map for t. The color scale is pinned to
// [0,1] so renderings of different matrices stay comparable, and the
// vertical axis is inverted so row 0 sits at the top.
//
// Returns:
//   - tiled.ErrNilMatrix when t is nil.
func HeatMap(t *tiled.Matrix) (*plot.Plot, error) {
	g, err := NewGrid(t)
	if err != nil {
		return nil, fmt.Errorf("spy.HeatMap: %w", err)
	}

	hm := plotter.NewHeatMap(g, palette.Heat(heatColors, 1))
	hm.Min, hm.Max = 0, 1 // occupancy fractions, not data-driven bounds

	present, total := t.Occupancy()

	p := plot.New()
	p.Title.Text = fmt.Sprintf("tile occupancy: %d/%d stored", present, total)
	p.X.Label.Text = "column"
	p.Y.Label.Text = "row"
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
	p.Add(hm)

	return p, nil
}

// Save renders the occupancy heat map of t to path, with the image format
// inferred from the file extension (.png, .svg, .pdf, ...).
func Save(t *tiled.Matrix, w, h vg.Length, path string) error {
	p, err := HeatMap(t)
	if err != nil {
		return fmt.Errorf("spy.Save: %w", err)
	}
	if err = p.Save(w, h, path); err != nil {
		return fmt.Errorf("spy.Save(%q): %w", path, err)
	}

	return nil
}
