// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/polyarea/montecarlo"
)

// errNoTrials is returned when there is nothing to draw.
var errNoTrials = errors.New("polyarea: no trials to plot")

// writeConvergencePlot draws relative error against sample count (log x)
// with the acceptable error as a dashed reference. The image format
// follows the extension of path (png, svg, pdf, ...).
func writeConvergencePlot(path string, trials []montecarlo.Trial, acceptable float64) error {
	if len(trials) == 0 {
		return errNoTrials
	}

	pts := make(plotter.XYs, len(trials))
	for i, tr := range trials {
		pts[i].X = float64(tr.Samples)
		pts[i].Y = tr.RelativeError
	}

	p := plot.New()
	p.Title.Text = "Monte Carlo convergence"
	p.X.Label.Text = "samples"
	p.Y.Label.Text = "relative error"
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}

	line, marks, err := plotter.NewLinePoints(pts)
	if err != nil {
		return fmt.Errorf("plot points: %w", err)
	}
	line.Color = color.RGBA{B: 200, A: 255}

	target := plotter.NewFunction(func(float64) float64 { return acceptable })
	target.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	target.Color = color.RGBA{R: 200, A: 255}

	p.Add(plotter.NewGrid(), line, marks, target)
	p.Legend.Add("trial", line)
	p.Legend.Add("target", target)

	if err = p.Save(16*vg.Centimeter, 10*vg.Centimeter, path); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}

	return nil
}
