package cmd

import (
	"fmt"
	"strconv"

	cfgpkg "github.com/KaramelBytes/reelstats/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set reelstats configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := settings()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "output_dir: %s\n", s.OutputDir)
		fmt.Fprintf(out, "chart_width_in: %.2f\n", s.ChartWidthIn)
		fmt.Fprintf(out, "chart_height_in: %.2f\n", s.ChartHeightIn)
		fmt.Fprintf(out, "top_directors: %d\n", s.TopDirectors)
		fmt.Fprintf(out, "charts: %v\n", s.Charts)
		fmt.Fprintf(out, "workbook: %v\n", s.Workbook)
		if s.XLSXSheet != "" {
			fmt.Fprintf(out, "xlsx_sheet: %s\n", s.XLSXSheet)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "output_dir":
			cfg.OutputDir = val
		case "chart_width_in", "chart_height_in":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f <= 0 {
				return fmt.Errorf("invalid positive float for %s: %v", key, val)
			}
			if key == "chart_width_in" {
				cfg.ChartWidthIn = f
			} else {
				cfg.ChartHeightIn = f
			}
		case "top_directors":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid positive int for top_directors: %v", val)
			}
			cfg.TopDirectors = i
		case "charts", "workbook":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid bool for %s: %w", key, err)
			}
			if key == "charts" {
				cfg.Charts = b
			} else {
				cfg.Workbook = b
			}
		case "xlsx_sheet":
			cfg.XLSXSheet = val
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
