// Command catalog-scraper scrapes a paginated product catalog and writes the
// products to {name}.json and/or {name}.csv.
//
// Settings come from SCRAPER_* environment variables (optionally via .env);
// the -url, -name and -format flags override them.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Sternrassler/catalog-scraper/internal/config"
	"github.com/Sternrassler/catalog-scraper/pkg/fetch"
	"github.com/Sternrassler/catalog-scraper/pkg/logging"
	"github.com/Sternrassler/catalog-scraper/pkg/metrics"
	"github.com/Sternrassler/catalog-scraper/pkg/scraper"
	"github.com/rs/zerolog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		stop()
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
		logger.Fatal().Err(err).Msg("Scrape failed")
	}
}

func run(ctx context.Context, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := applyFlags(cfg, args); err != nil {
		return err
	}

	root := logging.Setup(cfg.LoggingConfig())
	logger := logging.NewLogger(root, "main")

	if cfg.MetricsAddr != "" {
		srv := startMetricsServer(cfg.MetricsAddr, logger)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Warn().Err(err).Msg("Metrics server shutdown failed")
			}
		}()
	}

	fetcher := newFetcher(cfg, logging.NewLogger(root, "fetch"))
	s := scraper.New(fetcher, cfg.ScraperConfig(), root)

	logger.Info().
		Str("url", cfg.URL).
		Str("name", cfg.Name).
		Str("fetcher", cfg.Fetcher).
		Msg("Starting catalog scraper")

	result, err := s.Run(ctx, cfg.URL, cfg.Name)
	if err != nil {
		return err
	}

	logger.Info().
		Int("products", result.Products).
		Strs("files", result.Files).
		Msg("Done")
	return nil
}

// applyFlags overrides configuration values with command-line flags.
func applyFlags(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("catalog-scraper", flag.ContinueOnError)
	url := fs.String("url", cfg.URL, "catalog base URL, with trailing slash")
	name := fs.String("name", cfg.Name, "output file base name")
	format := fs.String("format", cfg.Format, "output format: json, csv, or empty for both")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg.URL = *url
	cfg.Name = *name
	cfg.Format = *format
	return cfg.Validate()
}

func newFetcher(cfg *config.Config, logger zerolog.Logger) fetch.Fetcher {
	if cfg.Fetcher == config.FetcherColly {
		return fetch.NewCollyFetcher(cfg.FetchConfig(), logger)
	}
	return fetch.NewHTTPFetcher(cfg.FetchConfig(), logger)
}

func newMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthHandler)
	mux.Handle("/metrics", metrics.Handler())
	return mux
}

func startMetricsServer(addr string, logger zerolog.Logger) *http.Server {
	srv := &http.Server{
		Addr:              addr,
		Handler:           newMux(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", addr).Msg("Serving metrics")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("Metrics server failed")
		}
	}()
	return srv
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "OK")
}
