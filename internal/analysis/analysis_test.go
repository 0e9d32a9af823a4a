package analysis_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/reelstats/internal/analysis"
	"github.com/KaramelBytes/reelstats/internal/movies"
	"github.com/KaramelBytes/reelstats/internal/movies/moviestest"
	"github.com/KaramelBytes/reelstats/internal/source"
)

func fixture(t *testing.T) *movies.Dataset {
	t.Helper()
	ds, err := movies.Build(moviestest.WriteCSV(t), source.Options{})
	require.NoError(t, err)
	return ds
}

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }

func TestGenreCounts_FlattenedAndUntrimmed(t *testing.T) {
	ds := fixture(t)
	got := analysis.GenreCounts(ds)

	want := []analysis.CategoryCount{
		{" Drama", 5},
		{" Sci-Fi", 2},
		{"Action", 2},
		{"Adventure", 2},
		{"Crime", 2},
		{"Drama", 2},
		{" Action", 1},
		{" Adventure", 1},
		{" Crime", 1},
		{" History", 1},
		{" Thriller", 1},
	}
	assert.Equal(t, want, got)

	var total, pairs int
	for _, c := range got {
		total += c.Count
	}
	for _, r := range ds.Records {
		pairs += len(r.Genre)
	}
	assert.Equal(t, pairs, total)
}

func TestGenreMeanRating(t *testing.T) {
	ds := fixture(t)
	got := map[string]analysis.GroupMean{}
	for _, g := range analysis.GenreMeanRating(ds) {
		got[g.Key] = g
	}
	assert.InDelta(t, 8.9, got["Action"].Mean, 1e-9)
	assert.Equal(t, 2, got["Action"].Count)
	assert.InDelta(t, 8.54, got[" Drama"].Mean, 1e-9)
	assert.Equal(t, 5, got[" Drama"].Count)
	assert.InDelta(t, 8.1, got[" Action"].Mean, 1e-9)
}

func TestDirectorMeanGross_ExcludesAbsentGross(t *testing.T) {
	ds := fixture(t)
	got := analysis.DirectorMeanGross(ds)

	keys := make([]string, len(got))
	for i, g := range got {
		keys[i] = g.Key
	}
	assert.Equal(t, []string{"Christopher Nolan", "Ron Howard", "Francis Ford Coppola", "Frank Darabont", "Gavin O'Connor"}, keys)
	assert.InDelta(t, (534858444.0+292576195.0+188020017.0)/3, got[0].Mean, 1e-3)
	assert.Equal(t, 3, got[0].Count)
}

func TestDirectorMeanGross_MixedPresence(t *testing.T) {
	ds := &movies.Dataset{Records: []movies.Record{
		{Director: "A", Gross: fp(10)},
		{Director: "A"},
		{Director: "A", Gross: fp(30)},
		{Director: "B", Gross: fp(5)},
	}}
	got := analysis.DirectorMeanGross(ds)
	require.Len(t, got, 2)
	assert.Equal(t, analysis.GroupMean{Key: "A", Mean: 20, Count: 2}, got[0])
	assert.Equal(t, analysis.GroupMean{Key: "B", Mean: 5, Count: 1}, got[1])
}

func TestYearGenreCountsAndMoviesPerYear(t *testing.T) {
	ds := &movies.Dataset{Records: []movies.Record{
		{ReleasedYear: ip(2001), Genre: []string{"Drama"}, MainGenre: strp("Drama")},
		{ReleasedYear: ip(2001), Genre: []string{"Drama", " Action"}, MainGenre: strp("Drama")},
		{ReleasedYear: ip(1999), Genre: []string{"Action"}, MainGenre: strp("Action")},
		{Genre: []string{"Drama"}, MainGenre: strp("Drama")},
		{ReleasedYear: ip(2001)},
	}}
	assert.Equal(t, []analysis.YearGenreCount{
		{Year: 1999, Genre: "Action", Count: 1},
		{Year: 2001, Genre: "Drama", Count: 2},
	}, analysis.YearGenreCounts(ds))
	assert.Equal(t, []analysis.YearCount{{1999, 1}, {2001, 3}}, analysis.MoviesPerYear(ds))
}

func TestBucketCounts(t *testing.T) {
	ds := &movies.Dataset{Records: []movies.Record{
		{Gross: fp(28341469), IMDBRating: fp(9.3), MetaScore: fp(80)},
		{Gross: fp(28399999), IMDBRating: fp(9.0), MetaScore: fp(89)},
		{Gross: fp(99999), IMDBRating: fp(7.9), MetaScore: fp(9)},
		{Gross: fp(1), IMDBRating: fp(7.9)},
	}}
	assert.Equal(t, []analysis.Bucket{
		{Gross: 0, Rating: 7, Meta: 0, Count: 1},
		{Gross: 283, Rating: 9, Meta: 8, Count: 2},
	}, analysis.BucketCounts(ds))
}

func TestCorrelation_PairwiseComplete(t *testing.T) {
	ds := &movies.Dataset{Records: []movies.Record{
		{IMDBRating: fp(1), Gross: fp(2)},
		{IMDBRating: fp(2), Gross: fp(4)},
		{IMDBRating: fp(3), Gross: fp(6)},
		{IMDBRating: fp(4)},
		{Gross: fp(100)},
	}}
	m := analysis.Correlation(ds, []analysis.NumericColumn{analysis.ColIMDBRating, analysis.ColGross})
	assert.Equal(t, []string{"IMDB_Rating", "Gross"}, m.Columns)
	r, ok := m.At("IMDB_Rating", "Gross")
	require.True(t, ok)
	assert.InDelta(t, 1.0, r, 1e-12)
	assert.InDelta(t, 1.0, m.Values[0][0], 1e-12)

	_, ok = m.At("IMDB_Rating", "Votes")
	assert.False(t, ok)
}

func TestCorrelation_TooFewPairsIsNaN(t *testing.T) {
	ds := &movies.Dataset{Records: []movies.Record{
		{IMDBRating: fp(1), Gross: fp(2)},
		{IMDBRating: fp(2)},
	}}
	m := analysis.Correlation(ds, []analysis.NumericColumn{analysis.ColIMDBRating, analysis.ColGross})
	assert.True(t, math.IsNaN(m.Values[0][1]))
	assert.Empty(t, m.Pairs())
}

func TestCorrelation_AllNumericColumns(t *testing.T) {
	ds := fixture(t)
	m := analysis.Correlation(ds, analysis.NumericColumns)
	require.Len(t, m.Columns, len(analysis.NumericColumns))
	for i := range m.Values {
		for j := range m.Values {
			if !math.IsNaN(m.Values[i][j]) {
				assert.Equal(t, m.Values[i][j], m.Values[j][i])
			}
		}
	}
	r, ok := m.At("Released_Year", "Decade")
	require.True(t, ok)
	assert.Greater(t, r, 0.9)

	pairs := m.Pairs()
	require.NotEmpty(t, pairs)
	for i := 1; i < len(pairs); i++ {
		assert.GreaterOrEqual(t, math.Abs(pairs[i-1].R), math.Abs(pairs[i].R))
	}
}

func TestDescribe(t *testing.T) {
	ds := &movies.Dataset{Records: []movies.Record{
		{RuntimeMinutes: 100, IMDBRating: fp(7)},
		{RuntimeMinutes: 120, IMDBRating: fp(8)},
		{RuntimeMinutes: 140},
		{RuntimeMinutes: 160, IMDBRating: fp(9)},
	}}
	got := analysis.Describe(ds, []analysis.NumericColumn{analysis.ColRuntime, analysis.ColIMDBRating, analysis.ColGross}, 0)
	require.Len(t, got, 3)

	rt := got[0]
	assert.Equal(t, 4, rt.Count)
	assert.Equal(t, 130.0, rt.Mean)
	assert.Equal(t, 100.0, rt.Min)
	assert.Equal(t, 115.0, rt.Q25)
	assert.Equal(t, 130.0, rt.Median)
	assert.Equal(t, 145.0, rt.Q75)
	assert.Equal(t, 160.0, rt.Max)
	assert.InDelta(t, math.Sqrt(2000.0/3), rt.Std, 1e-9)

	rating := got[1]
	assert.Equal(t, 3, rating.Count)
	assert.Equal(t, 1, rating.Missing)
	assert.Equal(t, 8.0, rating.Mean)

	gross := got[2]
	assert.Zero(t, gross.Count)
	assert.True(t, math.IsNaN(gross.Mean))
}

func TestDescribe_FlagsOutliers(t *testing.T) {
	var recs []movies.Record
	for _, v := range []int{100, 101, 102, 103, 104, 105, 106, 107, 400} {
		recs = append(recs, movies.Record{RuntimeMinutes: v})
	}
	got := analysis.Describe(&movies.Dataset{Records: recs}, []analysis.NumericColumn{analysis.ColRuntime}, 3.5)
	assert.Equal(t, 1, got[0].OutliersCount)
	assert.Equal(t, 3.5, got[0].OutlierThreshold)
}

func TestValueCounts(t *testing.T) {
	ds := fixture(t)
	got := analysis.ValueCounts(ds, analysis.CertificateKey)
	assert.Equal(t, []analysis.CategoryCount{{"UA", 4}, {"A", 2}, {"U", 2}}, got)

	dec := analysis.ValueCounts(ds, analysis.DecadeKey)
	assert.Equal(t, analysis.CategoryCount{Value: "2010", Count: 4}, dec[0])
	var total int
	for _, c := range dec {
		total += c.Count
	}
	assert.Equal(t, 7, total)
}

func TestValuesByMainGenre(t *testing.T) {
	ds := fixture(t)
	got := analysis.ValuesByMainGenre(ds, analysis.ColRuntime)
	keys := make([]string, len(got))
	for i, g := range got {
		keys[i] = g.Key
	}
	assert.Equal(t, []string{"Action", "Adventure", "Crime", "Drama"}, keys)
	assert.ElementsMatch(t, []float64{152, 148}, got[0].Values)
}

func TestAnalyzeAndMarkdown(t *testing.T) {
	ds := fixture(t)
	rep := analysis.Analyze(ds, analysis.DefaultOptions())
	rep.Charts = append(rep.Charts, analysis.ChartNote{File: "genre_counts.png", Title: "Genre counts", Insight: "Drama leads."})

	assert.Equal(t, 8, rep.Rows)
	assert.Len(t, rep.ValueCounts, 4)
	assert.Len(t, rep.Columns, len(analysis.NumericColumns))
	require.NotNil(t, rep.RatingGrossCorr)

	md := rep.Markdown()
	for _, want := range []string{
		"[DATASET SUMMARY]",
		"File: imdb_top_1000.csv",
		"Rows: 8",
		"[DESCRIBE]",
		"- Released_Year: count 7 (missing 1)",
		"[GENRE COUNTS]",
		`- " Drama": 5`,
		"- Drama: 2",
		"[TOP DIRECTORS BY MEAN GROSS]",
		"- Christopher Nolan:",
		"[CORRELATIONS]",
		"IMDB_Rating ~ Gross (complete pairs)",
		"[CHARTS]",
		"Insight: Drama leads.",
		"Released_Year: 0 missing, 1 non-numeric values treated as absent",
	} {
		assert.Contains(t, md, want)
	}
}

func strp(s string) *string { return &s }
