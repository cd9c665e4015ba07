package viz

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/ropesim/internal/trajectory"
)

// SaveChart renders the curves into a single PNG with meters on both
// axes. The file format follows the extension gonum/plot recognizes, so
// .svg and .pdf work too.
func SaveChart(path, title string, curves ...trajectory.Curve) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Horizontal Distance x (m)"
	p.Y.Label.Text = "Vertical Height y (m)"
	p.Add(plotter.NewGrid())

	for i, c := range curves {
		if c.Len() == 0 {
			continue
		}
		xys := make(plotter.XYs, c.Len())
		for j := range c.X {
			xys[j].X = c.X[j]
			xys[j].Y = c.Y[j]
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("building line for %q: %w", c.Label, err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(c.Label, line)
	}

	p.Legend.Top = false
	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}
