package viz

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

func points(times, values []float64) plotter.XYs {
	n := len(values)
	if len(times) < n {
		n = len(times)
	}
	pts := make(plotter.XYs, n)
	for i := 0; i < n; i++ {
		pts[i] = plotter.XY{X: times[i], Y: values[i]}
	}
	return pts
}

// SaveSeries plots one series against its time axis and writes the
// image format named by the path extension.
func SaveSeries(path, title, xLabel, yLabel string, times, values []float64) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	if err := plotutil.AddLines(p, points(times, values)); err != nil {
		return err
	}
	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

// SaveSeriesPair plots two series sharing a time axis, with a legend.
func SaveSeriesPair(path, title, xLabel string, times []float64, name1 string, v1 []float64, name2 string, v2 []float64) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	if err := plotutil.AddLines(p, name1, points(times, v1), name2, points(times, v2)); err != nil {
		return err
	}
	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

// SaveScatter plots unconnected points, sized for dense sections and
// sweeps.
func SaveScatter(path, title, xLabel, yLabel string, xs, ys []float64) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	scatter, err := plotter.NewScatter(points(xs, ys))
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Radius = vg.Points(1)
	p.Add(scatter)
	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

// SaveHeatMap renders a value grid over its two parameter axes.
func SaveHeatMap(path, title, xLabel, yLabel string, grid plotter.GridXYZ) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewHeatMap(grid, palette.Heat(12, 1)))
	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}
