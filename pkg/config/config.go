package config

import (
	"fmt"

	"github.com/spf13/viper"

	"cnvplot/pkg/track"
)

// Config holds the render parameters for plotCNV.
type Config struct {
	Smooth SmoothConfig `mapstructure:"smooth"`
	Window WindowConfig `mapstructure:"window"`
	Render RenderConfig `mapstructure:"render"`
}

// SmoothConfig holds the LRR smoothing parameters.
type SmoothConfig struct {
	BinSize int `mapstructure:"bin_size"`
}

// WindowConfig holds the region padding and edge highlight parameters.
type WindowConfig struct {
	PaddingFloor int `mapstructure:"padding_floor"`
	EdgeSpan     int `mapstructure:"edge_span"`
}

// RenderConfig holds the chart and grid dimensions.
type RenderConfig struct {
	ChartWidth  int `mapstructure:"chart_width"`
	ChartHeight int `mapstructure:"chart_height"`
	GridColumns int `mapstructure:"grid_columns"`
	ChunkSize   int `mapstructure:"chunk_size"`
}

// Load reads a config file when path is non-empty, otherwise returns the
// defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("smooth.bin_size", track.DefaultBinSize)

	v.SetDefault("window.padding_floor", track.DefaultPaddingFloor)
	v.SetDefault("window.edge_span", 100000)

	v.SetDefault("render.chart_width", 600)
	v.SetDefault("render.chart_height", 240)
	v.SetDefault("render.grid_columns", 4)
	v.SetDefault("render.chunk_size", 12)
}

// Validate checks that all configuration values are usable.
func (c *Config) Validate() error {
	if c.Smooth.BinSize < 1 {
		return fmt.Errorf("smooth.bin_size must be at least 1")
	}
	if c.Window.PaddingFloor < 0 {
		return fmt.Errorf("window.padding_floor must not be negative")
	}
	if c.Window.EdgeSpan < 0 {
		return fmt.Errorf("window.edge_span must not be negative")
	}
	if c.Render.ChartWidth < 100 || c.Render.ChartHeight < 50 {
		return fmt.Errorf("render.chart_width/chart_height too small")
	}
	if c.Render.GridColumns < 1 {
		return fmt.Errorf("render.grid_columns must be at least 1")
	}
	if c.Render.ChunkSize < 1 {
		return fmt.Errorf("render.chunk_size must be at least 1")
	}
	return nil
}
