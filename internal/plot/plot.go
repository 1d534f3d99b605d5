// Package plot renders evaluated line shapes with gonum/plot.
package plot

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// ErrNoCurves is returned when there is nothing to draw.
var ErrNoCurves = errors.New("plot: no curves")

// Curve is one named line over a shared domain.
type Curve struct {
	Name string
	Y    []float64
}

// Options describe the figure.
type Options struct {
	Title  string
	XLabel string
	YLabel string
	Width  float64 // inches
	Height float64 // inches
}

// New builds a plot of curves over x.
func New(x []float64, curves []Curve, opts Options) (*plot.Plot, error) {
	if len(curves) == 0 {
		return nil, ErrNoCurves
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel

	var lines []any
	for _, c := range curves {
		xy, err := XYs(x, c.Y)
		if err != nil {
			return nil, fmt.Errorf("plot: curve %q: %w", c.Name, err)
		}
		lines = append(lines, c.Name, xy)
	}
	if err := plotutil.AddLines(p, lines...); err != nil {
		return nil, fmt.Errorf("plot: %w", err)
	}
	return p, nil
}

// Save renders curves over x to path. The format follows the extension
// (.png, .svg, .pdf, .eps).
func Save(path string, x []float64, curves []Curve, opts Options) error {
	p, err := New(x, curves, opts)
	if err != nil {
		return err
	}
	return p.Save(vg.Length(opts.Width)*vg.Inch, vg.Length(opts.Height)*vg.Inch, path)
}

// XYs pairs x with y. When y is shorter than x, as for a valid convolution
// without a zero sample, the leading samples of x are used.
func XYs(x, y []float64) (plotter.XYs, error) {
	if len(y) > len(x) {
		return nil, fmt.Errorf("%d values for %d domain samples", len(y), len(x))
	}
	pts := make(plotter.XYs, len(y))
	for i := range pts {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts, nil
}
