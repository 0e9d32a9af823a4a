package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/KaramelBytes/reelstats/internal/source"
)

func TestReadFile_CSVKeepsQuotedCommas(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "films.csv")
	content := "Series_Title,Genre,Gross\n" +
		"Heat,\"Crime, Drama\",\"67,436,818\"\n" +
		"Ran,Drama,\n"
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))

	rows, err := source.ReadFile(p, source.Options{})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Heat", "Crime, Drama", "67,436,818"}, rows[1])
	assert.Equal(t, []string{"Ran", "Drama", ""}, rows[2])
}

func TestReadFile_TSV(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "films.tsv")
	require.NoError(t, os.WriteFile(p, []byte("a\tb\n1\t2\n"), 0o644))

	rows, err := source.ReadFile(p, source.Options{})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}, {"1", "2"}}, rows)
}

func TestReadFile_XLSX(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "films.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Series_Title", "Runtime"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"Heat", "170 min"}))
	require.NoError(t, f.SaveAs(p))
	require.NoError(t, f.Close())

	rows, err := source.ReadFile(p, source.Options{})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Series_Title", "Runtime"}, {"Heat", "170 min"}}, rows)

	_, err = source.ReadFile(p, source.Options{Sheet: "Missing"})
	assert.Error(t, err)
}

func TestReadFile_Errors(t *testing.T) {
	_, err := source.ReadFile(filepath.Join(t.TempDir(), "films.json"), source.Options{})
	assert.ErrorIs(t, err, source.ErrUnsupported)

	_, err = source.ReadFile(filepath.Join(t.TempDir(), "absent.csv"), source.Options{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
