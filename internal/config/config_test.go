package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/reelstats/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	c, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "reelstats-out", c.OutputDir)
	assert.Equal(t, 10.0, c.ChartWidthIn)
	assert.Equal(t, 6.0, c.ChartHeightIn)
	assert.Equal(t, 10, c.TopDirectors)
	assert.True(t, c.Workbook)
	assert.True(t, c.Charts)
	assert.Empty(t, c.XLSXSheet)
}

func TestSaveThenLoad(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.yaml")
	in := &config.Global{
		OutputDir:     "out",
		ChartWidthIn:  8,
		ChartHeightIn: 5,
		TopDirectors:  3,
		Workbook:      false,
		Charts:        true,
		XLSXSheet:     "movies",
	}
	require.NoError(t, config.Save(in, path))

	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, config.Save(&config.Global{OutputDir: "from-file", TopDirectors: 4}, path))
	t.Setenv("REELSTATS_TOP_DIRECTORS", "7")

	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", got.OutputDir)
	assert.Equal(t, 7, got.TopDirectors)
}

func TestSaveDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, config.Save(&config.Global{OutputDir: "x"}, ""))
	got, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "x", got.OutputDir)
	dir, err := config.Dir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".reelstats"), dir)
}
