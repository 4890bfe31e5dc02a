// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prep

import (
	"errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotCounts renders a bar chart of the record counts in counts to the
// named image file. The image format is taken from the file extension.
func PlotCounts(path string, counts []StageCount) error {
	if len(counts) == 0 {
		return errors.New("prep: no counts to plot")
	}
	var (
		vals  = make(plotter.Values, len(counts))
		names = make([]string, len(counts))
	)
	for i, c := range counts {
		vals[i] = float64(c.Count)
		names[i] = c.Stage
	}

	p := plot.New()
	p.Title.Text = "Reads remaining after each stage"
	p.Y.Label.Text = "Reads"
	p.Y.Min = 0

	bars, err := plotter.NewBarChart(vals, vg.Points(24))
	if err != nil {
		return err
	}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(names...)

	return p.Save(vg.Length(2+len(counts))*vg.Inch, 4*vg.Inch, path)
}
