// Package config loads scraper settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Sternrassler/catalog-scraper/pkg/fetch"
	"github.com/Sternrassler/catalog-scraper/pkg/logging"
	"github.com/Sternrassler/catalog-scraper/pkg/output"
	"github.com/Sternrassler/catalog-scraper/pkg/pagination"
	"github.com/Sternrassler/catalog-scraper/pkg/scraper"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable name.
const Prefix = "SCRAPER"

// Fetcher backends.
const (
	FetcherHTTP  = "http"
	FetcherColly = "colly"
)

// Config holds every scraper setting. Field tags name the variables without
// the SCRAPER_ prefix.
type Config struct {
	// URL maps to SCRAPER_URL, the catalog base URL (with trailing slash).
	URL string `envconfig:"URL" default:"https://madshop.ru/category/novinki/"`

	// Name maps to SCRAPER_NAME, the output file base name.
	Name string `envconfig:"NAME" default:"MAD_SHOP"`

	// Format maps to SCRAPER_FORMAT: empty for both files, "json" or "csv".
	Format string `envconfig:"FORMAT"`

	// OutputDir maps to SCRAPER_OUTPUT_DIR.
	OutputDir string `envconfig:"OUTPUT_DIR" default:"."`

	// Fetcher maps to SCRAPER_FETCHER: "http" or "colly".
	Fetcher string `envconfig:"FETCHER" default:"http"`

	// UserAgent maps to SCRAPER_USER_AGENT. Empty uses a browser User-Agent.
	UserAgent string `envconfig:"USER_AGENT"`

	// HTTPTimeout maps to SCRAPER_HTTP_TIMEOUT. Zero disables the timeout.
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"0s"`

	// MaxConcurrency maps to SCRAPER_MAX_CONCURRENCY. Zero means no cap.
	MaxConcurrency int `envconfig:"MAX_CONCURRENCY" default:"0"`

	// LogLevel maps to SCRAPER_LOG_LEVEL: debug, info, warn or error.
	LogLevel string `envconfig:"LOG_LEVEL" default:"debug"`

	// LogPretty maps to SCRAPER_LOG_PRETTY. False writes JSON log lines.
	LogPretty bool `envconfig:"LOG_PRETTY" default:"true"`

	// MetricsAddr maps to SCRAPER_METRICS_ADDR. When set, /metrics is served
	// there for the duration of the run.
	MetricsAddr string `envconfig:"METRICS_ADDR"`
}

// Load reads an optional .env file from the working directory, then
// processes SCRAPER_* environment variables.
func Load() (*Config, error) {
	// A missing .env is normal; variables may be injected directly.
	if err := godotenv.Load(); err != nil {
		if _, statErr := os.Stat(".env"); statErr == nil {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values envconfig cannot check by type alone.
func (c *Config) Validate() error {
	if c.URL == "" {
		return errors.New("config: URL must not be empty")
	}
	if c.Name == "" {
		return errors.New("config: Name must not be empty")
	}
	if _, err := output.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch c.Fetcher {
	case FetcherHTTP, FetcherColly:
	default:
		return fmt.Errorf("config: unknown fetcher %q (want %q or %q)", c.Fetcher, FetcherHTTP, FetcherColly)
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("config: negative HTTP timeout %s", c.HTTPTimeout)
	}
	if c.MaxConcurrency < 0 {
		return fmt.Errorf("config: negative max concurrency %d", c.MaxConcurrency)
	}
	return nil
}

// FetchConfig returns the page fetcher settings.
func (c *Config) FetchConfig() fetch.Config {
	cfg := fetch.DefaultConfig()
	if c.UserAgent != "" {
		cfg.UserAgent = c.UserAgent
	}
	cfg.Timeout = c.HTTPTimeout
	return cfg
}

// ScraperConfig returns the pipeline settings. Format must have passed Validate.
func (c *Config) ScraperConfig() scraper.Config {
	format, _ := output.ParseFormat(c.Format)
	return scraper.Config{
		Pagination: pagination.Config{MaxConcurrency: c.MaxConcurrency},
		OutputDir:  c.OutputDir,
		Format:     format,
	}
}

// LoggingConfig returns the logger settings.
func (c *Config) LoggingConfig() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = logging.LogLevel(c.LogLevel)
	cfg.Pretty = c.LogPretty
	return cfg
}
