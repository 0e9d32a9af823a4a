package cmd

import (
	"fmt"
	"os"

	cfgpkg "github.com/KaramelBytes/reelstats/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "reelstats",
	Short: "reelstats: exploratory analysis of the IMDB top-1000 movie table",
	Long: `reelstats loads an IMDB top-1000 style movie table (CSV, TSV or XLSX), cleans and
derives columns, computes genre/director/year aggregations and correlations, and
writes annotated charts, a markdown summary and an aggregation workbook.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.reelstats/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: commands fall back to built-in defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
	debugf("config: output_dir=%s charts=%v workbook=%v top_directors=%d", cfg.OutputDir, cfg.Charts, cfg.Workbook, cfg.TopDirectors)
}

// settings returns the loaded config or the defaults when loading failed.
func settings() cfgpkg.Global {
	if cfg != nil {
		return *cfg
	}
	return cfgpkg.Global{
		OutputDir:     "reelstats-out",
		ChartWidthIn:  10,
		ChartHeightIn: 6,
		TopDirectors:  10,
		Workbook:      true,
		Charts:        true,
	}
}

func debugf(format string, a ...any) {
	if debug {
		fmt.Fprintf(os.Stderr, "[debug] "+format+"\n", a...)
	}
}
