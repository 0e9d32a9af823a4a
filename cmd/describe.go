package cmd

import (
	"fmt"
	"os"

	"github.com/KaramelBytes/reelstats/internal/source"
	"github.com/spf13/cobra"
)

var (
	descOutputPath string
	descSheetName  string
	descDelimiter  string
)

var describeCmd = &cobra.Command{
	Use:   "describe <file>",
	Short: "Print the summary report without rendering charts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := settings()
		if descSheetName != "" {
			s.XLSXSheet = descSheetName
		}
		delim, err := parseDelimiter(descDelimiter)
		if err != nil {
			return err
		}
		_, rep, err := buildReport(args[0], source.Options{Sheet: s.XLSXSheet, Delimiter: delim}, s.TopDirectors)
		if err != nil {
			return err
		}
		md := rep.Markdown()
		if descOutputPath == "" {
			fmt.Fprintln(cmd.OutOrStdout(), md)
			return nil
		}
		if err := os.WriteFile(descOutputPath, []byte(md), 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		fmt.Printf("✓ Wrote summary to %s\n", descOutputPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
	describeCmd.Flags().StringVarP(&descOutputPath, "output", "o", "", "optional path to write the summary (Markdown)")
	describeCmd.Flags().StringVar(&descSheetName, "sheet-name", "", "XLSX: sheet name to read")
	describeCmd.Flags().StringVar(&descDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab'")
}
