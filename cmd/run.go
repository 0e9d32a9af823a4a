package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/KaramelBytes/reelstats/internal/analysis"
	"github.com/KaramelBytes/reelstats/internal/charts"
	"github.com/KaramelBytes/reelstats/internal/export"
	"github.com/KaramelBytes/reelstats/internal/manifest"
	"github.com/KaramelBytes/reelstats/internal/movies"
	"github.com/KaramelBytes/reelstats/internal/source"
	"github.com/KaramelBytes/reelstats/internal/utils"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"
)

const (
	summaryFile  = "summary.md"
	workbookFile = "aggregations.xlsx"
)

var (
	runOut          string
	runNoCharts     bool
	runNoWorkbook   bool
	runTopDirectors int
	runSheetName    string
	runDelimiter    string
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run the full pipeline and write charts, summary, workbook and manifest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := settings()
		if cmd.Flags().Changed("out") {
			s.OutputDir = runOut
		}
		if runNoCharts {
			s.Charts = false
		}
		if runNoWorkbook {
			s.Workbook = false
		}
		if runTopDirectors > 0 {
			s.TopDirectors = runTopDirectors
		}
		if runSheetName != "" {
			s.XLSXSheet = runSheetName
		}
		delim, err := parseDelimiter(runDelimiter)
		if err != nil {
			return err
		}

		ds, rep, err := buildReport(args[0], source.Options{Sheet: s.XLSXSheet, Delimiter: delim}, s.TopDirectors)
		if err != nil {
			return err
		}
		if err := utils.EnsureDir(s.OutputDir); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
		man := manifest.New(args[0], s.OutputDir)
		man.Rows = ds.Len()

		if s.Charts {
			notes, err := charts.RenderAll(s.OutputDir, ds, rep, charts.Options{
				Width:        vg.Length(s.ChartWidthIn) * vg.Inch,
				Height:       vg.Length(s.ChartHeightIn) * vg.Inch,
				TopDirectors: s.TopDirectors,
			})
			if err != nil {
				return err
			}
			rep.Charts = notes
			for _, n := range notes {
				if err := man.Add(manifest.KindChart, n.File, n.Title, n.Insight); err != nil {
					return err
				}
				debugf("chart %s: %s", n.File, n.Insight)
			}
			fmt.Printf("✓ Wrote %d charts to %s\n", len(notes), s.OutputDir)
		}

		if err := utils.SafeWriteFile(filepath.Join(s.OutputDir, summaryFile), []byte(rep.Markdown())); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
		if err := man.Add(manifest.KindSummary, summaryFile, "Summary report", ""); err != nil {
			return err
		}
		fmt.Printf("✓ Wrote %s\n", filepath.Join(s.OutputDir, summaryFile))

		if s.Workbook {
			if err := export.WriteWorkbook(filepath.Join(s.OutputDir, workbookFile), rep); err != nil {
				return err
			}
			if err := man.Add(manifest.KindWorkbook, workbookFile, "Aggregations", ""); err != nil {
				return err
			}
			fmt.Printf("✓ Wrote %s\n", filepath.Join(s.OutputDir, workbookFile))
		}

		if err := man.Save(); err != nil {
			return err
		}
		fmt.Printf("✓ Run %s complete (%d records, %d artifacts)\n", man.ID, man.Rows, len(man.Artifacts))
		return nil
	},
}

// buildReport loads, coerces and derives the table, then computes every
// aggregation. Lenient-column losses are reported as warnings.
func buildReport(path string, opt source.Options, topDirectors int) (*movies.Dataset, *analysis.Report, error) {
	ds, err := movies.Build(path, opt)
	if err != nil {
		return nil, nil, err
	}
	debugf("loaded %d records from %s", ds.Len(), path)
	cols := make([]string, 0, len(ds.Notes))
	for c := range ds.Notes {
		cols = append(cols, c)
	}
	sort.Strings(cols)
	for _, c := range cols {
		if n := ds.Notes[c]; n.Invalid > 0 {
			fmt.Fprintf(os.Stderr, "⚠ Warning: %s: %d non-numeric values treated as missing\n", c, n.Invalid)
		}
	}
	aopt := analysis.DefaultOptions()
	if topDirectors > 0 {
		aopt.TopDirectors = topDirectors
	}
	return ds, analysis.Analyze(ds, aopt), nil
}

func parseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case ",":
		return ',', nil
	case "\t", "tab":
		return '\t', nil
	case ";":
		return ';', nil
	default:
		return 0, fmt.Errorf("unsupported --delimiter: %s", s)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runOut, "out", "o", "", "output directory (overrides output_dir)")
	runCmd.Flags().BoolVar(&runNoCharts, "no-charts", false, "skip chart rendering")
	runCmd.Flags().BoolVar(&runNoWorkbook, "no-workbook", false, "skip the aggregation workbook")
	runCmd.Flags().IntVar(&runTopDirectors, "top-directors", 0, "directors shown in the mean-gross chart (overrides top_directors)")
	runCmd.Flags().StringVar(&runSheetName, "sheet-name", "", "XLSX: sheet name to read")
	runCmd.Flags().StringVar(&runDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab'")
}
