// Package fetch provides the page fetchers used by the scraper.
//
// A Fetcher turns an absolute URL into the page's markup. Failures come back
// as *FetchError and are not retried.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"golang.org/x/net/html/charset"
)

// Prometheus metrics for page fetches.
var (
	fetchRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_fetch_requests_total",
		Help: "Total catalog page fetches by fetcher and status",
	}, []string{"fetcher", "status"})

	fetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "catalog_fetch_duration_seconds",
		Help:    "Catalog page fetch duration in seconds by fetcher",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
	}, []string{"fetcher"})
)

// DefaultUserAgent is sent when no User-Agent is configured.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"

// maxBodySize caps a single page body.
const maxBodySize = 10 * 1024 * 1024

// Fetcher fetches a single page and returns its raw markup.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Config holds fetcher configuration.
type Config struct {
	// User-Agent header sent with every request
	UserAgent string

	// Timeout per request. Zero means no timeout: a hung server stalls the fetch.
	Timeout time.Duration
}

// DefaultConfig returns the default fetcher configuration.
func DefaultConfig() Config {
	return Config{
		UserAgent: DefaultUserAgent,
		Timeout:   0,
	}
}

// HTTPFetcher fetches pages with a plain HTTP GET.
type HTTPFetcher struct {
	httpClient *http.Client
	config     Config
	logger     zerolog.Logger
}

// NewHTTPFetcher creates a new HTTP fetcher.
func NewHTTPFetcher(cfg Config, logger zerolog.Logger) *HTTPFetcher {
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}

	// One connection per fetch, closed when the response body is closed.
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DisableKeepAlives = true

	return &HTTPFetcher{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		config: cfg,
		logger: logger,
	}
}

// Fetch performs a GET request and returns the response body as text.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	start := time.Now()
	defer func() {
		fetchDuration.WithLabelValues("http").Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		fetchRequestsTotal.WithLabelValues("http", "invalid_request").Inc()
		return "", networkError(url, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("User-Agent", f.config.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		fetchRequestsTotal.WithLabelValues("http", "network_error").Inc()
		f.logger.Error().Err(err).Str("url", url).Msg("HTTP request failed")
		return "", networkError(url, err)
	}
	defer resp.Body.Close()

	fetchRequestsTotal.WithLabelValues("http", strconv.Itoa(resp.StatusCode)).Inc()

	if !isSuccess(resp.StatusCode) {
		f.logger.Error().
			Str("url", url).
			Int("status_code", resp.StatusCode).
			Msg("Page fetch returned non-success status")
		return "", statusError(url, resp.StatusCode)
	}

	// Bodies are decoded to UTF-8 using the Content-Type charset or a sniff
	// of the first bytes.
	reader, err := charset.NewReader(io.LimitReader(resp.Body, maxBodySize), resp.Header.Get("Content-Type"))
	if err != nil {
		return "", networkError(url, fmt.Errorf("decode body: %w", err))
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return "", networkError(url, fmt.Errorf("read body: %w", err))
	}

	f.logger.Debug().
		Str("url", url).
		Int("status_code", resp.StatusCode).
		Int("bytes", len(body)).
		Dur("duration", time.Since(start)).
		Msg("Page fetched")

	return string(body), nil
}

// SetHTTPClient sets a custom HTTP client (for testing).
func (f *HTTPFetcher) SetHTTPClient(client *http.Client) {
	f.httpClient = client
}
