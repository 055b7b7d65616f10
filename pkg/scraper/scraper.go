// Package scraper runs the catalog pipeline: fetch every listing page,
// extract products, then write the output files.
//
// Fetch and pagination failures abort the run before anything is written.
// Product blocks that cannot be parsed are skipped and never abort a run.
//
// Example:
//
//	logger := logging.Setup(logging.DefaultConfig())
//	s := scraper.New(fetch.NewHTTPFetcher(fetch.DefaultConfig(), logger), scraper.DefaultConfig(), logger)
//	result, err := s.Run(ctx, "https://madshop.ru/category/novinki/", "MAD_SHOP")
package scraper

import (
	"context"
	"fmt"
	"time"

	"github.com/Sternrassler/catalog-scraper/pkg/catalog"
	"github.com/Sternrassler/catalog-scraper/pkg/fetch"
	"github.com/Sternrassler/catalog-scraper/pkg/logging"
	"github.com/Sternrassler/catalog-scraper/pkg/output"
	"github.com/Sternrassler/catalog-scraper/pkg/pagination"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

var (
	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_runs_total",
		Help: "Total scrape runs by result",
	}, []string{"result"})

	runDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "catalog_run_duration_seconds",
		Help:    "Duration of complete scrape runs",
		Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
	})
)

// Config holds pipeline configuration.
type Config struct {
	// Pagination configures the page fan-out.
	Pagination pagination.Config

	// OutputDir is where output files are written.
	OutputDir string

	// Format selects the output files.
	Format output.Format
}

// DefaultConfig returns the default pipeline configuration: unbounded
// fan-out, both output files in the working directory.
func DefaultConfig() Config {
	return Config{
		Pagination: pagination.DefaultConfig(),
		OutputDir:  ".",
		Format:     output.FormatAll,
	}
}

// Result summarizes a completed run.
type Result struct {
	Pages    int
	Products int
	Files    []string
	Duration time.Duration
}

// Scraper wires the pipeline stages together.
type Scraper struct {
	batch     *pagination.BatchFetcher
	extractor *catalog.Extractor
	writer    *output.Writer
	format    output.Format
	logger    zerolog.Logger
}

// New creates a scraper that fetches pages through fetcher.
func New(fetcher fetch.Fetcher, cfg Config, logger zerolog.Logger) *Scraper {
	return &Scraper{
		batch:     pagination.NewBatchFetcher(fetcher, cfg.Pagination, logging.NewLogger(logger, "pagination")),
		extractor: catalog.NewExtractor(logging.NewLogger(logger, "catalog")),
		writer:    output.NewWriter(cfg.OutputDir, logging.NewLogger(logger, "output")),
		format:    cfg.Format,
		logger:    logging.NewLogger(logger, "scraper"),
	}
}

// Scrape fetches every page of the catalog at baseURL and returns the
// extracted products in page order, then document order.
func (s *Scraper) Scrape(ctx context.Context, baseURL string) ([]catalog.Product, error) {
	products, _, err := s.scrape(ctx, baseURL)
	return products, err
}

func (s *Scraper) scrape(ctx context.Context, baseURL string) ([]catalog.Product, int, error) {
	pages, err := s.batch.FetchCatalog(ctx, baseURL)
	if err != nil {
		return nil, 0, err
	}
	return s.extractor.Extract(pages), len(pages), nil
}

// Run scrapes the catalog at baseURL and writes the products to files named
// after name. Nothing is written if fetching or pagination fails.
func (s *Scraper) Run(ctx context.Context, baseURL, name string) (*Result, error) {
	start := time.Now()

	s.logger.Info().
		Str("url", baseURL).
		Str("name", name).
		Str("format", s.format.String()).
		Msg("Scrape started")

	products, pageCount, err := s.scrape(ctx, baseURL)
	if err != nil {
		runsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("scrape %s: %w", baseURL, err)
	}

	files, err := s.writer.Save(ctx, products, name, s.format)
	if err != nil {
		runsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("save output: %w", err)
	}

	result := &Result{
		Pages:    pageCount,
		Products: len(products),
		Files:    files,
		Duration: time.Since(start),
	}

	runsTotal.WithLabelValues("success").Inc()
	runDuration.Observe(result.Duration.Seconds())

	s.logger.Info().
		Int("pages", result.Pages).
		Int("products", result.Products).
		Strs("files", result.Files).
		Dur("duration", result.Duration).
		Msg("Scrape complete")

	return result, nil
}
