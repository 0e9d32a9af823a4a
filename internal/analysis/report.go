package analysis

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/KaramelBytes/reelstats/internal/movies"
)

// Options controls how much of each aggregation the report prints.
type Options struct {
	// TopValues limits each value-count table.
	TopValues int
	// TopDirectors limits the mean-gross-by-director listing.
	TopDirectors int
	// TopPairs limits correlation pairs and (year, genre) rows.
	TopPairs int
	// OutlierThreshold is the robust |z| cutoff used by Describe.
	OutlierThreshold float64
}

// DefaultOptions returns reasonable defaults for the movie report.
func DefaultOptions() Options {
	return Options{
		TopValues:        8,
		TopDirectors:     10,
		TopPairs:         10,
		OutlierThreshold: 3.5,
	}
}

// ValueCountTable is the value_counts() view of one categorical column.
type ValueCountTable struct {
	Column string
	Unique int
	Counts []CategoryCount
}

// ChartNote records a rendered chart and its one-line insight.
type ChartNote struct {
	File    string
	Title   string
	Insight string
}

// Report bundles every aggregation computed over a dataset.
type Report struct {
	Name  string
	Rows  int
	Notes movies.CoercionNotes

	Columns     []ColumnSummary
	ValueCounts []ValueCountTable

	GenreMeanRating       []GroupMean
	GenreCounts           []CategoryCount
	DirectorMeanGross     []GroupMean
	YearGenreCounts       []YearGenreCount
	MoviesPerYear         []YearCount
	Corr                  *CorrMatrix
	RatingGrossCorr       *CorrMatrix
	Buckets               []Bucket
	CertificateMeanRating []GroupMean

	Charts   []ChartNote
	Warnings []string

	opt Options
}

// Analyze computes the report for ds. It only reads the dataset.
func Analyze(ds *movies.Dataset, opt Options) *Report {
	rep := &Report{
		Name:  ds.Name,
		Rows:  ds.Len(),
		Notes: ds.Notes,
		opt:   opt,
	}
	rep.Columns = Describe(ds, NumericColumns, opt.OutlierThreshold)
	for _, vc := range []struct {
		col string
		key func(movies.Record) (string, bool)
	}{
		{"Certificate", CertificateKey},
		{"Director", DirectorKey},
		{"Main_Genre", MainGenreKey},
		{"Decade", DecadeKey},
	} {
		counts := ValueCounts(ds, vc.key)
		rep.ValueCounts = append(rep.ValueCounts, ValueCountTable{Column: vc.col, Unique: len(counts), Counts: counts})
	}

	rep.GenreMeanRating = GenreMeanRating(ds)
	rep.GenreCounts = GenreCounts(ds)
	rep.DirectorMeanGross = DirectorMeanGross(ds)
	rep.YearGenreCounts = YearGenreCounts(ds)
	rep.MoviesPerYear = MoviesPerYear(ds)
	rep.Corr = Correlation(ds, NumericColumns)
	rep.RatingGrossCorr = Correlation(ds, []NumericColumn{ColIMDBRating, ColGross})
	rep.Buckets = BucketCounts(ds)
	rep.CertificateMeanRating = CertificateMeanRating(ds)

	for _, col := range []string{"Released_Year", "Gross"} {
		if n := rep.Notes[col]; n.Invalid > 0 || n.Missing > 0 {
			rep.Warnings = append(rep.Warnings, fmt.Sprintf("%s: %d missing, %d non-numeric values treated as absent", col, n.Missing, n.Invalid))
		}
	}
	return rep
}

// Markdown renders a compact report suitable for standalone docs.
func (r *Report) Markdown() string {
	var b strings.Builder
	b.WriteString("[DATASET SUMMARY]\n")
	if r.Name != "" {
		b.WriteString(fmt.Sprintf("File: %s\n", r.Name))
	}
	b.WriteString(fmt.Sprintf("Rows: %d\n", r.Rows))
	b.WriteString(fmt.Sprintf("Numeric columns: %d\n", len(r.Columns)))

	if len(r.Notes) > 0 {
		b.WriteString("\n[COERCION]\n")
		cols := make([]string, 0, len(r.Notes))
		for c := range r.Notes {
			cols = append(cols, c)
		}
		sort.Strings(cols)
		for _, c := range cols {
			n := r.Notes[c]
			b.WriteString(fmt.Sprintf("- %s: %d missing, %d non-numeric → absent\n", c, n.Missing, n.Invalid))
		}
	}

	b.WriteString("\n[DESCRIBE]\n")
	for _, c := range r.Columns {
		b.WriteString(fmt.Sprintf("- %s: count %d (missing %d)", c.Name, c.Count, c.Missing))
		if c.Count > 0 {
			b.WriteString(fmt.Sprintf(" — mean %s, std %s, min %s, 25%% %s, 50%% %s, 75%% %s, max %s",
				num(c.Mean), num(c.Std), num(c.Min), num(c.Q25), num(c.Median), num(c.Q75), num(c.Max)))
		}
		if c.OutlierThreshold > 0 {
			b.WriteString(fmt.Sprintf("; outliers: %d above |z|>%.1f", c.OutliersCount, c.OutlierThreshold))
		}
		b.WriteString("\n")
	}

	if len(r.ValueCounts) > 0 {
		b.WriteString("\n[VALUE COUNTS]\n")
		for _, vc := range r.ValueCounts {
			b.WriteString(fmt.Sprintf("- %s (unique=%d): ", vc.Column, vc.Unique))
			writeCounts(&b, head(vc.Counts, r.opt.TopValues))
			b.WriteString("\n")
		}
	}

	if len(r.GenreCounts) > 0 {
		b.WriteString("\n[GENRE COUNTS]\n")
		for _, c := range r.GenreCounts {
			b.WriteString(fmt.Sprintf("- %s: %d\n", quoteGenre(c.Value), c.Count))
		}
	}

	if len(r.GenreMeanRating) > 0 {
		b.WriteString("\n[MEAN RATING BY GENRE]\n")
		for _, g := range r.GenreMeanRating {
			b.WriteString(fmt.Sprintf("- %s: %.3f (n=%d)\n", quoteGenre(g.Key), g.Mean, g.Count))
		}
	}

	if len(r.DirectorMeanGross) > 0 {
		b.WriteString("\n[TOP DIRECTORS BY MEAN GROSS]\n")
		for _, g := range headMeans(r.DirectorMeanGross, r.opt.TopDirectors) {
			b.WriteString(fmt.Sprintf("- %s: %s (n=%d)\n", safeVal(g.Key), num(g.Mean), g.Count))
		}
	}

	if len(r.CertificateMeanRating) > 0 {
		b.WriteString("\n[MEAN RATING BY CERTIFICATE]\n")
		for _, g := range r.CertificateMeanRating {
			b.WriteString(fmt.Sprintf("- %s: %.3f (n=%d)\n", safeVal(g.Key), g.Mean, g.Count))
		}
	}

	if len(r.MoviesPerYear) > 0 {
		first, last := r.MoviesPerYear[0], r.MoviesPerYear[len(r.MoviesPerYear)-1]
		peak := r.MoviesPerYear[0]
		for _, y := range r.MoviesPerYear {
			if y.Count > peak.Count {
				peak = y
			}
		}
		b.WriteString("\n[MOVIES PER YEAR]\n")
		b.WriteString(fmt.Sprintf("- years: %d (%d–%d)\n", len(r.MoviesPerYear), first.Year, last.Year))
		b.WriteString(fmt.Sprintf("- peak: %d with %d movies\n", peak.Year, peak.Count))
	}

	if len(r.YearGenreCounts) > 0 {
		rows := append([]YearGenreCount(nil), r.YearGenreCounts...)
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Count > rows[j].Count })
		lim := r.opt.TopPairs
		if lim <= 0 || lim > len(rows) {
			lim = len(rows)
		}
		b.WriteString(fmt.Sprintf("\n[YEAR × MAIN GENRE] (%d pairs)\n", len(rows)))
		for _, y := range rows[:lim] {
			b.WriteString(fmt.Sprintf("- %d %s: %d\n", y.Year, safeVal(y.Genre), y.Count))
		}
	}

	if r.Corr != nil {
		pairs := r.Corr.Pairs()
		if len(pairs) > 0 {
			b.WriteString("\n[CORRELATIONS]\n")
			lim := r.opt.TopPairs
			if lim <= 0 || lim > len(pairs) {
				lim = len(pairs)
			}
			for _, p := range pairs[:lim] {
				b.WriteString(fmt.Sprintf("- %s ~ %s: r=%.3f\n", p.A, p.B, p.R))
			}
		}
	}
	if r.RatingGrossCorr != nil {
		if v, ok := r.RatingGrossCorr.At(ColIMDBRating.Name, ColGross.Name); ok {
			b.WriteString(fmt.Sprintf("- %s ~ %s (complete pairs): r=%s\n", ColIMDBRating.Name, ColGross.Name, num(v)))
		}
	}

	if len(r.Buckets) > 0 {
		top := append([]Bucket(nil), r.Buckets...)
		sort.SliceStable(top, func(i, j int) bool { return top[i].Count > top[j].Count })
		lim := r.opt.TopPairs
		if lim <= 0 || lim > len(top) {
			lim = len(top)
		}
		b.WriteString(fmt.Sprintf("\n[GROSS × RATING × META BUCKETS] (%d cells)\n", len(top)))
		for _, c := range top[:lim] {
			b.WriteString(fmt.Sprintf("- gross %d, rating %d, meta %d: %d\n", c.Gross, c.Rating, c.Meta, c.Count))
		}
	}

	if len(r.Charts) > 0 {
		b.WriteString("\n[CHARTS]\n")
		for _, c := range r.Charts {
			b.WriteString(fmt.Sprintf("- %s: %s\n", c.File, c.Title))
			if c.Insight != "" {
				b.WriteString(fmt.Sprintf("  Insight: %s\n", c.Insight))
			}
		}
	}

	if len(r.Warnings) > 0 {
		b.WriteString("\n[NOTES]\n")
		for _, w := range r.Warnings {
			b.WriteString("- ")
			b.WriteString(w)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Options returns the limits the report was built with.
func (r *Report) Options() Options { return r.opt }

func writeCounts(b *strings.Builder, counts []CategoryCount) {
	for i, kv := range counts {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fmt.Sprintf("%s(%d)", safeVal(kv.Value), kv.Count))
	}
}

func head(c []CategoryCount, n int) []CategoryCount {
	if n <= 0 || n >= len(c) {
		return c
	}
	return c[:n]
}

func headMeans(g []GroupMean, n int) []GroupMean {
	if n <= 0 || n >= len(g) {
		return g
	}
	return g[:n]
}

// quoteGenre shows leading or trailing spaces, which make distinct genres.
func quoteGenre(s string) string {
	if strings.TrimSpace(s) != s {
		return fmt.Sprintf("%q", s)
	}
	return safeVal(s)
}

func num(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.4g", v)
}

func safeVal(s string) string { return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/") }
