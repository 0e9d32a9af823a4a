package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/KaramelBytes/reelstats/internal/manifest"
	"github.com/KaramelBytes/reelstats/internal/movies/moviestest"
)

// execute runs the root command with args and returns what it printed via
// cmd.OutOrStdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// Flag values and Changed state persist across Execute calls
	for _, c := range []*cobra.Command{runCmd, describeCmd} {
		c.Flags().VisitAll(func(fl *pflag.Flag) {
			_ = fl.Value.Set(fl.DefValue)
			fl.Changed = false
		})
	}
	cfgFile = ""
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestCLI_RunWritesAllArtifacts(t *testing.T) {
	home := isolateHome(t)
	input := moviestest.WriteCSV(t)
	out := filepath.Join(home, "out")

	_, err := execute(t, "run", input, "--out", out, "--top-directors", "3")
	require.NoError(t, err)

	for _, name := range []string{
		"summary.md",
		"aggregations.xlsx",
		"manifest.json",
		"Average_IMDB_Ratings_by_Genre.png",
		"Top_3_Directors_by_Average_Gross_Earnings.png",
		"Heatmap_of_Correlation_Matrix.png",
	} {
		assert.FileExists(t, filepath.Join(out, name))
	}

	m, err := manifest.Load(out)
	require.NoError(t, err)
	assert.Equal(t, input, m.Input)
	assert.Equal(t, 8, m.Rows)
	assert.Len(t, m.Artifacts, 22)
	charts := 0
	for _, a := range m.Artifacts {
		if a.Kind == manifest.KindChart {
			charts++
			assert.NotEmpty(t, a.Insight, a.File)
		}
	}
	assert.Equal(t, 20, charts)

	md, err := os.ReadFile(filepath.Join(out, "summary.md"))
	require.NoError(t, err)
	assert.Contains(t, string(md), "[CHARTS]")
	assert.Contains(t, string(md), "Top_3_Directors_by_Average_Gross_Earnings.png")

	f, err := excelize.OpenFile(filepath.Join(out, "aggregations.xlsx"))
	require.NoError(t, err)
	defer f.Close()
	assert.Contains(t, f.GetSheetList(), "genre_counts")
}

func TestCLI_RunSkipsChartsAndWorkbook(t *testing.T) {
	home := isolateHome(t)
	input := moviestest.WriteCSV(t)
	out := filepath.Join(home, "plain")

	_, err := execute(t, "run", input, "-o", out, "--no-charts", "--no-workbook")
	require.NoError(t, err)

	m, err := manifest.Load(out)
	require.NoError(t, err)
	require.Len(t, m.Artifacts, 1)
	assert.Equal(t, manifest.KindSummary, m.Artifacts[0].Kind)
	assert.NoFileExists(t, filepath.Join(out, "aggregations.xlsx"))
	assert.NoFileExists(t, filepath.Join(out, "Bar_Chart_of_Genre_Counts.png"))
}

func TestCLI_RunUsesConfiguredOutputDir(t *testing.T) {
	home := isolateHome(t)
	input := moviestest.WriteCSV(t)
	out := filepath.Join(home, "configured")

	_, err := execute(t, "config", "set", "output_dir", out)
	require.NoError(t, err)
	_, err = execute(t, "config", "set", "charts", "false")
	require.NoError(t, err)

	shown, err := execute(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, shown, "output_dir: "+out)
	assert.Contains(t, shown, "charts: false")

	_, err = execute(t, "run", input)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(out, "summary.md"))
	assert.NoFileExists(t, filepath.Join(out, "Histogram_of_IMDB_Ratings.png"))
}

func TestCLI_DescribeToStdoutAndFile(t *testing.T) {
	home := isolateHome(t)
	input := moviestest.WriteCSV(t)

	stdout, err := execute(t, "describe", input)
	require.NoError(t, err)
	assert.Contains(t, stdout, "[GENRE COUNTS]")
	assert.Contains(t, stdout, "[TOP DIRECTORS BY MEAN GROSS]")

	path := filepath.Join(home, "summary.md")
	_, err = execute(t, "describe", input, "-o", path)
	require.NoError(t, err)
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "[DATASET SUMMARY]")
}

func TestCLI_Errors(t *testing.T) {
	home := isolateHome(t)

	_, err := execute(t, "run", filepath.Join(home, "missing.csv"), "-o", filepath.Join(home, "o"))
	assert.Error(t, err)

	bad := moviestest.WriteRows(t, strings.Replace(moviestest.Rows[0], "142 min", "two hours", 1))
	_, err = execute(t, "describe", bad)
	assert.ErrorContains(t, err, "Runtime")

	_, err = execute(t, "describe", moviestest.WriteCSV(t), "--delimiter", "|")
	assert.ErrorContains(t, err, "unsupported --delimiter")

	_, err = execute(t, "config", "set", "top_directors", "zero")
	assert.Error(t, err)
	_, err = execute(t, "config", "set", "nope", "1")
	assert.ErrorContains(t, err, "unknown key")
}
