package main

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	keyframes "github.com/tphakala/go-keyframes"
)

// plotCurve draws the curve at keys as a line, with its control points as
// markers, and saves it to path. The format follows the file extension.
func plotCurve(path string, curve *keyframes.Curve, keys []float64) error {
	p := plot.New()
	p.Title.Text = "Curve (" + curve.Kind().String() + ")"
	p.X.Label.Text = "Key"
	p.Y.Label.Text = "Value"

	line := make(plotter.XYs, len(keys))
	for i, k := range keys {
		v, err := curve.Evaluate(k)
		if err != nil {
			return err
		}
		line[i].X = k
		line[i].Y = v
	}

	pts := curve.Points()
	controls := make(plotter.XYs, len(pts))
	for i, cp := range pts {
		controls[i].X = cp.Key
		controls[i].Y = cp.Value
	}

	l, err := plotter.NewLine(line)
	if err != nil {
		return err
	}
	s, err := plotter.NewScatter(controls)
	if err != nil {
		return err
	}

	p.Add(plotter.NewGrid(), l, s)
	p.Legend.Add("curve", l)
	p.Legend.Add("control points", s)

	return p.Save(plotWidth*vg.Inch, plotHeight*vg.Inch, path)
}
