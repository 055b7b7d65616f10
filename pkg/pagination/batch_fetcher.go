package pagination

import (
	"context"
	"fmt"
	"time"

	"github.com/Sternrassler/catalog-scraper/pkg/fetch"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Prometheus metrics for batch fetches.
var (
	pagesFetchedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_pages_fetched_total",
		Help: "Total catalog pages fetched successfully in batches",
	})

	batchFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_batch_failures_total",
		Help: "Total batch fetches abandoned because a page failed",
	})

	catalogPages = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_total_pages",
		Help: "Page count reported by the most recently counted catalog",
	})
)

// Config holds batch fetcher configuration.
type Config struct {
	// MaxConcurrency caps in-flight page fetches. Zero or less means one
	// goroutine per page with no cap.
	MaxConcurrency int
}

// DefaultConfig returns the default configuration: unbounded fan-out.
func DefaultConfig() Config {
	return Config{
		MaxConcurrency: 0,
	}
}

// BatchFetcher fetches many catalog pages concurrently.
type BatchFetcher struct {
	fetcher fetch.Fetcher
	config  Config
	logger  zerolog.Logger
}

// NewBatchFetcher creates a new batch fetcher.
func NewBatchFetcher(fetcher fetch.Fetcher, config Config, logger zerolog.Logger) *BatchFetcher {
	if config.MaxConcurrency < 0 {
		config.MaxConcurrency = 0
	}

	return &BatchFetcher{
		fetcher: fetcher,
		config:  config,
		logger:  logger,
	}
}

// FetchAll fetches every URL concurrently. pages[i] is the content of urls[i].
//
// If any fetch fails, the remaining fetches are cancelled and the first error
// is returned with no pages.
func (bf *BatchFetcher) FetchAll(ctx context.Context, urls []string) ([]string, error) {
	start := time.Now()

	bf.logger.Info().
		Int("pages", len(urls)).
		Int("max_concurrency", bf.config.MaxConcurrency).
		Msg("Starting parallel page fetch")

	pages := make([]string, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	if bf.config.MaxConcurrency > 0 {
		g.SetLimit(bf.config.MaxConcurrency)
	}

	for i, url := range urls {
		g.Go(func() error {
			body, err := bf.fetcher.Fetch(gctx, url)
			if err != nil {
				return err
			}
			pages[i] = body
			pagesFetchedTotal.Inc()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		batchFailuresTotal.Inc()
		bf.logger.Error().
			Err(err).
			Int("pages", len(urls)).
			Dur("duration", time.Since(start)).
			Msg("Batch fetch failed")
		return nil, err
	}

	bf.logger.Info().
		Int("pages", len(urls)).
		Dur("duration", time.Since(start)).
		Msg("Fetch complete")

	return pages, nil
}

// FetchCatalog fetches baseURL to read the page count, then fetches every
// listing page. Page 1 is requested again as {baseURL}page/1/.
func (bf *BatchFetcher) FetchCatalog(ctx context.Context, baseURL string) ([]string, error) {
	first, err := bf.fetcher.Fetch(ctx, baseURL)
	if err != nil {
		return nil, fmt.Errorf("fetch first page: %w", err)
	}

	totalPages, err := CountPages(first)
	if err != nil {
		bf.logger.Error().Err(err).Str("url", baseURL).Msg("Cannot determine page count")
		return nil, err
	}
	catalogPages.Set(float64(totalPages))

	bf.logger.Info().
		Str("url", baseURL).
		Int("total_pages", totalPages).
		Msg("Page count discovered")

	return bf.FetchAll(ctx, PageURLs(baseURL, totalPages))
}
