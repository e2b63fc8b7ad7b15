package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"StockUniverse/internal/interval"
)

// Config holds all application configuration.
type Config struct {
	DataRoot   string `yaml:"data_root"`
	TickerFile string `yaml:"ticker_file"`
	DataSource struct {
		BaseURL         string `yaml:"base_url"`
		MinRequestGapMS int    `yaml:"min_request_gap_ms"`
	} `yaml:"data_source"`
	Charts struct {
		MAPeriods []int `yaml:"ma_periods"`
	} `yaml:"charts"`
	DefaultInterval string `yaml:"default_interval"`
	Proxy           string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("STOCKUNIVERSE_DATA_ROOT"); v != "" {
		cfg.DataRoot = v
	}
	if v := os.Getenv("STOCKUNIVERSE_TICKER_FILE"); v != "" {
		cfg.TickerFile = v
	}
	if v := os.Getenv("STOCKUNIVERSE_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("STOCKUNIVERSE_MIN_REQUEST_GAP_MS"); v != "" {
		if gap, err := strconv.Atoi(v); err == nil {
			cfg.DataSource.MinRequestGapMS = gap
		}
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.DataRoot == "" {
		cfg.DataRoot = "data"
	}
	if cfg.TickerFile == "" {
		cfg.TickerFile = "input_tickers/input_tickers.txt"
	}
	if cfg.DataSource.MinRequestGapMS == 0 {
		cfg.DataSource.MinRequestGapMS = 500
	}
	if len(cfg.Charts.MAPeriods) == 0 {
		cfg.Charts.MAPeriods = []int{20, 50, 200}
	}
	if cfg.DefaultInterval == "" {
		cfg.DefaultInterval = "1d"
	}

	return cfg, nil
}

// Validate checks that all fields carry usable values.
func (c *Config) Validate() error {
	if c.DataRoot == "" {
		return fmt.Errorf("data_root is required")
	}
	if c.DataSource.MinRequestGapMS < 0 {
		return fmt.Errorf("data_source.min_request_gap_ms must not be negative")
	}
	if !interval.Supported(c.DefaultInterval) {
		return fmt.Errorf("default_interval %q is not a supported interval", c.DefaultInterval)
	}
	for _, p := range c.Charts.MAPeriods {
		if p <= 0 {
			return fmt.Errorf("charts.ma_periods must be positive, got %d", p)
		}
	}
	return nil
}

// MinRequestGap returns the configured provider request spacing.
func (c *Config) MinRequestGap() time.Duration {
	return time.Duration(c.DataSource.MinRequestGapMS) * time.Millisecond
}
