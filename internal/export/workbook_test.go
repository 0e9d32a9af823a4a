package export_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/KaramelBytes/reelstats/internal/analysis"
	"github.com/KaramelBytes/reelstats/internal/export"
	"github.com/KaramelBytes/reelstats/internal/movies"
	"github.com/KaramelBytes/reelstats/internal/movies/moviestest"
	"github.com/KaramelBytes/reelstats/internal/source"
)

func TestWriteWorkbook(t *testing.T) {
	ds, err := movies.Build(moviestest.WriteCSV(t), source.Options{})
	require.NoError(t, err)
	rep := analysis.Analyze(ds, analysis.DefaultOptions())

	path := filepath.Join(t.TempDir(), "aggregations.xlsx")
	require.NoError(t, export.WriteWorkbook(path, rep))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Subset(t, f.GetSheetList(), []string{
		"describe", "genre_mean_rating", "genre_counts", "director_mean_gross",
		"year_genre_counts", "movies_per_year", "correlation", "rating_gross_corr",
		"bucket_counts", "certificate_mean_rating", "counts_Certificate",
	})

	rows, err := f.GetRows("genre_counts")
	require.NoError(t, err)
	require.Len(t, rows, len(rep.GenreCounts)+1)
	assert.Equal(t, []string{"genre", "count"}, rows[0])
	assert.Equal(t, []string{" Drama", "5"}, rows[1])

	rows, err = f.GetRows("director_mean_gross")
	require.NoError(t, err)
	assert.Equal(t, "Christopher Nolan", rows[1][0])

	rows, err = f.GetRows("correlation")
	require.NoError(t, err)
	assert.Len(t, rows, len(analysis.NumericColumns)+1)
}
