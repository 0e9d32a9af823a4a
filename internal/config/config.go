package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	OutputDir     string  `mapstructure:"output_dir" yaml:"output_dir"`
	ChartWidthIn  float64 `mapstructure:"chart_width_in" yaml:"chart_width_in"`
	ChartHeightIn float64 `mapstructure:"chart_height_in" yaml:"chart_height_in"`
	TopDirectors  int     `mapstructure:"top_directors" yaml:"top_directors"`
	// Artifact toggles
	Workbook bool `mapstructure:"workbook" yaml:"workbook"`
	Charts   bool `mapstructure:"charts" yaml:"charts"`
	// XLSX input sheet; empty selects the first sheet
	XLSXSheet string `mapstructure:"xlsx_sheet" yaml:"xlsx_sheet"`
}

// Dir returns ~/.reelstats.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".reelstats"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.reelstats/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		dir, err := Dir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("REELSTATS")
	v.AutomaticEnv()

	v.SetDefault("output_dir", "reelstats-out")
	v.SetDefault("chart_width_in", 10.0)
	v.SetDefault("chart_height_in", 6.0)
	v.SetDefault("top_directors", 10)
	v.SetDefault("workbook", true)
	v.SetDefault("charts", true)
	v.SetDefault("xlsx_sheet", "")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.ChartWidthIn <= 0 {
		c.ChartWidthIn = 10
	}
	if c.ChartHeightIn <= 0 {
		c.ChartHeightIn = 6
	}
	if c.TopDirectors <= 0 {
		c.TopDirectors = 10
	}
	return &c, nil
}
