package charts

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/KaramelBytes/reelstats/internal/analysis"
	"github.com/KaramelBytes/reelstats/internal/movies"
)

var (
	colorBlue    = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	colorGreen   = color.RGBA{R: 44, G: 160, B: 44, A: 255}
	colorOrange  = color.RGBA{R: 255, G: 127, B: 14, A: 255}
	colorRed     = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	colorPurple  = color.RGBA{R: 148, G: 103, B: 189, A: 255}
	colorPink    = color.RGBA{R: 247, G: 182, B: 210, A: 255}
	colorMagenta = color.RGBA{R: 200, G: 0, B: 200, A: 255}
	colorYellow  = color.RGBA{R: 230, G: 200, B: 20, A: 255}
	colorCyan    = color.RGBA{R: 23, G: 190, B: 207, A: 255}
)

func newPlot(xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	return p
}

func rotateX(p *plot.Plot) {
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
}

func bars(labels []string, vals plotter.Values, xLabel, yLabel string, c color.Color) (*plot.Plot, error) {
	p := newPlot(xLabel, yLabel)
	if len(vals) == 0 {
		return p, nil
	}
	b, err := plotter.NewBarChart(vals, vg.Points(14))
	if err != nil {
		return nil, err
	}
	b.Color = c
	b.LineStyle.Width = vg.Length(0)
	p.Add(b)
	p.NominalX(labels...)
	rotateX(p)
	return p, nil
}

func meanBars(groups []analysis.GroupMean, xLabel, yLabel string, c color.Color) (*plot.Plot, error) {
	labels := make([]string, len(groups))
	vals := make(plotter.Values, len(groups))
	for i, g := range groups {
		labels[i] = g.Key
		vals[i] = g.Mean
	}
	return bars(labels, vals, xLabel, yLabel, c)
}

func countBars(counts []analysis.CategoryCount, xLabel string, c color.Color) (*plot.Plot, error) {
	labels := make([]string, len(counts))
	vals := make(plotter.Values, len(counts))
	for i, kv := range counts {
		labels[i] = kv.Value
		vals[i] = float64(kv.Count)
	}
	return bars(labels, vals, xLabel, "Number of Movies", c)
}

// shareBars draws each category's percentage of the total.
func shareBars(counts []analysis.CategoryCount, xLabel string) (*plot.Plot, error) {
	var total int
	for _, kv := range counts {
		total += kv.Count
	}
	labels := make([]string, len(counts))
	vals := make(plotter.Values, len(counts))
	for i, kv := range counts {
		labels[i] = fmt.Sprintf("%s (%.1f%%)", kv.Value, 100*float64(kv.Count)/float64(total))
		vals[i] = 100 * float64(kv.Count) / float64(total)
	}
	return bars(labels, vals, xLabel, "Share of Movies (%)", colorCyan)
}

// decadeBars orders decades chronologically rather than by count.
func decadeBars(counts []analysis.CategoryCount) (*plot.Plot, error) {
	sorted := append([]analysis.CategoryCount(nil), counts...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Value < sorted[j].Value })
	p, err := countBars(sorted, "Decade", colorYellow)
	if err != nil {
		return nil, err
	}
	p.X.Tick.Label.Rotation = 0
	p.X.Tick.Label.XAlign = draw.XCenter
	return p, nil
}

func histogram(vals []float64, bins int, xLabel string, c color.Color) (*plot.Plot, error) {
	p := newPlot(xLabel, "Frequency")
	if len(vals) == 0 {
		return p, nil
	}
	h, err := plotter.NewHist(plotter.Values(vals), bins)
	if err != nil {
		return nil, err
	}
	h.FillColor = c
	p.Add(h)
	return p, nil
}

func boxes(groups []analysis.GroupValues, xLabel, yLabel string, c color.Color) (*plot.Plot, error) {
	p := newPlot(xLabel, yLabel)
	var names []string
	for _, g := range groups {
		if len(g.Values) == 0 {
			continue
		}
		b, err := plotter.NewBoxPlot(vg.Points(20), float64(len(names)), plotter.Values(g.Values))
		if err != nil {
			return nil, err
		}
		b.FillColor = c
		p.Add(b)
		names = append(names, g.Key)
	}
	if len(names) > 0 {
		p.NominalX(names...)
	}
	if len(names) > 1 {
		rotateX(p)
	}
	return p, nil
}

func scatter(ds *movies.Dataset, x, y analysis.NumericColumn, xLabel, yLabel string, c color.Color) (*plot.Plot, error) {
	p := newPlot(xLabel, yLabel)
	s, err := scatterOf(ds, x, y, c)
	if err != nil {
		return nil, err
	}
	if s != nil {
		p.Add(s)
	}
	p.Add(plotter.NewGrid())
	return p, nil
}

// scatterOf returns nil when no record has both values.
func scatterOf(ds *movies.Dataset, x, y analysis.NumericColumn, c color.Color) (*plotter.Scatter, error) {
	xs, ys := analysis.Paired(ds, x, y)
	if len(xs) == 0 {
		return nil, nil
	}
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	s.GlyphStyle.Color = c
	s.GlyphStyle.Radius = vg.Points(2)
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	return s, nil
}

func yearLine(years []analysis.YearCount) (*plot.Plot, error) {
	p := newPlot("Released Year", "Number of Movies")
	if len(years) == 0 {
		return p, nil
	}
	pts := make(plotter.XYs, len(years))
	for i, y := range years {
		pts[i].X = float64(y.Year)
		pts[i].Y = float64(y.Count)
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	l.LineStyle.Color = colorPurple
	l.LineStyle.Width = vg.Points(1.5)
	p.Add(l, plotter.NewGrid())
	return p, nil
}

// yearGenreLines draws one line per main genre. Rows arrive ordered by year.
func yearGenreLines(rows []analysis.YearGenreCount) (*plot.Plot, error) {
	p := newPlot("Released Year", "Number of Movies")
	series := map[string]plotter.XYs{}
	var genres []string
	for _, r := range rows {
		if _, ok := series[r.Genre]; !ok {
			genres = append(genres, r.Genre)
		}
		series[r.Genre] = append(series[r.Genre], plotter.XY{X: float64(r.Year), Y: float64(r.Count)})
	}
	sort.Strings(genres)
	for i, g := range genres {
		l, err := plotter.NewLine(series[g])
		if err != nil {
			return nil, err
		}
		l.LineStyle.Color = plotutil.Color(i)
		l.LineStyle.Width = vg.Points(1)
		p.Add(l)
		p.Legend.Add(g, l)
	}
	p.Legend.Top = true
	return p, nil
}

// corrGrid adapts a correlation matrix to plotter.GridXYZ; row 0 is drawn
// at the top.
type corrGrid struct{ m *analysis.CorrMatrix }

func (g corrGrid) Dims() (c, r int)   { n := len(g.m.Columns); return n, n }
func (g corrGrid) Z(c, r int) float64 { return g.m.Values[len(g.m.Columns)-1-r][c] }
func (g corrGrid) X(c int) float64    { return float64(c) }
func (g corrGrid) Y(r int) float64    { return float64(r) }
func (g corrGrid) Min() float64       { return -1 }
func (g corrGrid) Max() float64       { return 1 }

// heatmap draws an annotated correlation matrix on a blue-red scale.
func heatmap(m *analysis.CorrMatrix) (*plot.Plot, error) {
	p := newPlot("", "")
	if m == nil || len(m.Columns) == 0 {
		return p, nil
	}
	cm := moreland.SmoothBlueRed()
	cm.SetMin(-1)
	cm.SetMax(1)
	h := plotter.NewHeatMap(corrGrid{m}, cm.Palette(255))
	h.Min, h.Max = -1, 1
	h.NaN = color.Gray{Y: 200}
	p.Add(h)

	n := len(m.Columns)
	var xys plotter.XYs
	var texts []string
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			v := m.Values[r][c]
			txt := "n/a"
			if !math.IsNaN(v) {
				txt = fmt.Sprintf("%.2f", v)
			}
			xys = append(xys, plotter.XY{X: float64(c), Y: float64(n - 1 - r)})
			texts = append(texts, txt)
		}
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YCenter
	}
	p.Add(labels)

	yNames := make([]string, n)
	for i, c := range m.Columns {
		yNames[n-1-i] = c
	}
	p.NominalX(m.Columns...)
	p.NominalY(yNames...)
	rotateX(p)
	return p, nil
}

// bucketBubbles places each (gross, meta score) cell with a bubble sized by
// its count, one colored series per rating bucket.
func bucketBubbles(buckets []analysis.Bucket) (*plot.Plot, error) {
	p := newPlot("Gross Category (÷100,000)", "Meta Score Category (÷10)")
	byRating := map[int][]analysis.Bucket{}
	var ratings []int
	for _, b := range buckets {
		if _, ok := byRating[b.Rating]; !ok {
			ratings = append(ratings, b.Rating)
		}
		byRating[b.Rating] = append(byRating[b.Rating], b)
	}
	sort.Ints(ratings)
	for i, rating := range ratings {
		cells := byRating[rating]
		pts := make(plotter.XYs, len(cells))
		for j, b := range cells {
			pts[j].X = float64(b.Gross)
			pts[j].Y = float64(b.Meta)
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, err
		}
		c := plotutil.Color(i)
		s.GlyphStyle.Color = c
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		s.GlyphStyleFunc = func(k int) draw.GlyphStyle {
			return draw.GlyphStyle{
				Color:  c,
				Shape:  draw.CircleGlyph{},
				Radius: vg.Points(2 + 2*math.Sqrt(float64(cells[k].Count))),
			}
		}
		p.Add(s)
		p.Legend.Add(fmt.Sprintf("rating %d", rating), s)
	}
	p.Legend.Top = true
	p.Add(plotter.NewGrid())
	return p, nil
}
