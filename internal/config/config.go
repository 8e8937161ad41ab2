package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ExtractionRules names the CSS selectors used to locate product data on a
// listing page. The selectors are configuration, not code, so a site layout
// change is a rules bump rather than a release; Version labels the layout
// the selectors were written against.
type ExtractionRules struct {
	Version   string `yaml:"version"`
	Container string `yaml:"container"`
	Name      string `yaml:"name"`
	Price     string `yaml:"price"`
	Brand     string `yaml:"brand"`
}

// Config holds all application configuration.
type Config struct {
	URLs    []string        `yaml:"urls"`
	Filters []string        `yaml:"filters"`
	Rules   ExtractionRules `yaml:"rules"`
	Output  struct {
		Dir           string `yaml:"dir"`
		LedgerFile    string `yaml:"ledger_file"`
		AggregateFile string `yaml:"aggregate_file"`
		GalleryFile   string `yaml:"gallery_file"`
		LogFile       string `yaml:"log_file"`
	} `yaml:"output"`
	HTTP struct {
		TimeoutSeconds int    `yaml:"timeout_seconds"`
		UserAgent      string `yaml:"user_agent"`
	} `yaml:"http"`
	Schedule struct {
		Cron string `yaml:"cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
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
	if v := os.Getenv("OUTPUT_DIR"); v != "" {
		cfg.Output.Dir = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("CRON_SCHEDULE"); v != "" {
		cfg.Schedule.Cron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HTTP.TimeoutSeconds = n
		}
	}

	// Defaults
	if cfg.Rules.Version == "" {
		cfg.Rules.Version = "makro-2024-02"
	}
	if cfg.Rules.Container == "" {
		cfg.Rules.Container = "div.MuiBox-root.css-1p9qlrd"
	}
	if cfg.Rules.Name == "" {
		cfg.Rules.Name = "div.MuiBox-root.css-r0hfyj"
	}
	if cfg.Rules.Price == "" {
		cfg.Rules.Price = "p.MuiTypography-root.MuiTypography-body1.css-ez05by"
	}
	if cfg.Rules.Brand == "" {
		cfg.Rules.Brand = "div.MuiBox-root.css-1rtv77d"
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "results"
	}
	if cfg.Output.LedgerFile == "" {
		cfg.Output.LedgerFile = "product_price.csv"
	}
	if cfg.Output.AggregateFile == "" {
		cfg.Output.AggregateFile = "grouped_product_prices.csv"
	}
	if cfg.Output.GalleryFile == "" {
		cfg.Output.GalleryFile = "plot_gallery.html"
	}
	if cfg.Output.LogFile == "" {
		cfg.Output.LogFile = "scraper.log"
	}
	if cfg.HTTP.TimeoutSeconds == 0 {
		cfg.HTTP.TimeoutSeconds = 30
	}
	if cfg.HTTP.UserAgent == "" {
		cfg.HTTP.UserAgent = "Mozilla/5.0"
	}
	if cfg.Schedule.Cron == "" {
		cfg.Schedule.Cron = "0 0 7 * * *"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if len(c.URLs) == 0 {
		return fmt.Errorf("at least one url is required")
	}
	if c.Rules.Container == "" || c.Rules.Name == "" || c.Rules.Price == "" || c.Rules.Brand == "" {
		return fmt.Errorf("extraction rules must name container, name, price and brand selectors")
	}
	return nil
}

// LedgerPath is the full path of the all-time price ledger CSV.
func (c *Config) LedgerPath() string {
	return filepath.Join(c.Output.Dir, c.Output.LedgerFile)
}

// AggregatePath is the full path of the per-product aggregate CSV.
func (c *Config) AggregatePath() string {
	return filepath.Join(c.Output.Dir, c.Output.AggregateFile)
}
