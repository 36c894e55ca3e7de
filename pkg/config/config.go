// Package config loads the optional YAML configuration for the benchview
// CLI: chart option overrides and logging settings. Every field is
// optional; missing fields keep their defaults.
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"benchview/pkg/bench"
	"benchview/pkg/logging"
)

// ChartConfig overrides the chart options attached to every plot.
type ChartConfig struct {
	TitlePrefix      string `yaml:"title_prefix"`
	LegendPosition   string `yaml:"legend_position"`
	CurveType        string `yaml:"curve_type"`
	HAxisFormat      string `yaml:"haxis_format"`
	SlantedTextAngle *int   `yaml:"slanted_text_angle"`
}

// LogConfig controls the global logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Path   string `yaml:"path"`
}

// Config is the full tool configuration.
type Config struct {
	Chart ChartConfig `yaml:"chart"`
	Log   LogConfig   `yaml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Log: LogConfig{Level: string(logging.LevelInfo), Format: "text"},
	}
}

// Load reads a YAML configuration file. An empty path yields Default().
// Unknown fields are rejected so typos fail loudly instead of silently
// keeping defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ChartOptions folds the chart overrides into the default option set.
func (c Config) ChartOptions() bench.Options {
	opts := bench.DefaultOptions()
	if c.Chart.TitlePrefix != "" {
		opts.TitlePrefix = c.Chart.TitlePrefix
	}
	if c.Chart.LegendPosition != "" {
		opts.LegendPosition = c.Chart.LegendPosition
	}
	if c.Chart.CurveType != "" {
		opts.CurveType = c.Chart.CurveType
	}
	if c.Chart.HAxisFormat != "" {
		opts.HAxisFormat = c.Chart.HAxisFormat
	}
	if c.Chart.SlantedTextAngle != nil {
		opts.SlantedTextAngle = *c.Chart.SlantedTextAngle
	}
	return opts
}

// LoggingConfig maps the log section onto the logging package's config.
func (c Config) LoggingConfig() logging.Config {
	return logging.Config{
		Level:      logging.LogLevel(c.Log.Level),
		Format:     c.Log.Format,
		OutputPath: c.Log.Path,
	}
}
