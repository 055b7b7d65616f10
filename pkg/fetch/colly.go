package fetch

import (
	"context"
	"strconv"
	"time"

	"github.com/gocolly/colly/v2"
	"github.com/rs/zerolog"
)

// CollyFetcher fetches pages through a colly collector.
type CollyFetcher struct {
	base   *colly.Collector
	logger zerolog.Logger
}

// NewCollyFetcher creates a fetcher backed by colly.
func NewCollyFetcher(cfg Config, logger zerolog.Logger) *CollyFetcher {
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}

	c := colly.NewCollector(
		colly.UserAgent(cfg.UserAgent),
		// page 1 is fetched twice: once for the page count, once in the batch
		colly.AllowURLRevisit(),
		colly.MaxBodySize(maxBodySize),
		// statuses are checked with isSuccess, the same as HTTPFetcher
		colly.ParseHTTPErrorResponse(),
	)
	c.SetRequestTimeout(cfg.Timeout)

	return &CollyFetcher{
		base:   c,
		logger: logger,
	}
}

// Fetch visits url and returns the response body as text. The request is
// bound to ctx and aborts when ctx is cancelled.
func (f *CollyFetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", networkError(url, err)
	}

	start := time.Now()
	defer func() {
		fetchDuration.WithLabelValues("colly").Observe(time.Since(start).Seconds())
	}()

	c := f.base.Clone()
	c.Context = ctx

	var body []byte
	var status int
	c.OnResponse(func(r *colly.Response) {
		status = r.StatusCode
		body = r.Body
	})

	if err := c.Visit(url); err != nil {
		fetchRequestsTotal.WithLabelValues("colly", "network_error").Inc()
		f.logger.Error().Err(err).Str("url", url).Msg("Colly visit failed")
		return "", networkError(url, err)
	}

	fetchRequestsTotal.WithLabelValues("colly", strconv.Itoa(status)).Inc()

	if !isSuccess(status) {
		f.logger.Error().
			Str("url", url).
			Int("status_code", status).
			Msg("Page fetch returned non-success status")
		return "", statusError(url, status)
	}

	f.logger.Debug().
		Str("url", url).
		Int("status_code", status).
		Int("bytes", len(body)).
		Dur("duration", time.Since(start)).
		Msg("Page fetched")

	return string(body), nil
}
