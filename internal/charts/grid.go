package charts

import (
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/KaramelBytes/reelstats/internal/analysis"
	"github.com/KaramelBytes/reelstats/internal/movies"
)

// pairPlot draws an n×n grid: histograms on the diagonal, scatter plots
// elsewhere.
func pairPlot(ds *movies.Dataset, cols []analysis.NumericColumn, path string) error {
	n := len(cols)
	plots := make([][]*plot.Plot, n)
	for i := range plots {
		plots[i] = make([]*plot.Plot, n)
		for j := range plots[i] {
			var p *plot.Plot
			var err error
			if i == j {
				p, err = histogram(analysis.Values(ds, cols[i]), 20, "", colorBlue)
			} else {
				p, err = scatter(ds, cols[j], cols[i], "", "", colorBlue)
			}
			if err != nil {
				return fmt.Errorf("pair %s/%s: %w", cols[i].Name, cols[j].Name, err)
			}
			if i == n-1 {
				p.X.Label.Text = cols[j].Name
			}
			if j == 0 {
				p.Y.Label.Text = cols[i].Name
			}
			plots[i][j] = p
		}
	}
	side := vg.Length(n) * 2 * vg.Inch
	return saveTiles(plots, draw.Tiles{Rows: n, Cols: n, PadX: vg.Millimeter, PadY: vg.Millimeter}, side, side, path)
}

// jointPlot stacks the distribution of x above the x/y scatter.
func jointPlot(ds *movies.Dataset, x, y analysis.NumericColumn, path string, opt Options) error {
	top, err := histogram(analysis.Values(ds, x), 30, "", colorCyan)
	if err != nil {
		return err
	}
	bottom, err := scatter(ds, x, y, x.Name, y.Name, colorCyan)
	if err != nil {
		return err
	}
	plots := [][]*plot.Plot{{top}, {bottom}}
	t := draw.Tiles{Rows: 2, Cols: 1, PadY: vg.Millimeter, PadTop: vg.Millimeter}
	return saveTiles(plots, t, opt.Width, opt.Height+opt.Height/2, path)
}

func saveTiles(plots [][]*plot.Plot, t draw.Tiles, w, h vg.Length, path string) error {
	img := vgimg.New(w, h)
	dc := draw.New(img)
	canvases := plot.Align(plots, t, dc)
	for i := range plots {
		for j := range plots[i] {
			if plots[i][j] != nil {
				plots[i][j].Draw(canvases[i][j])
			}
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return f.Close()
}
