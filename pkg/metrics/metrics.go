// Package metrics exposes the Prometheus registry used by the scraper.
// All metrics are defined in their respective packages (fetch, pagination,
// catalog, output, scraper) and registered there through promauto.
//
// This package provides the /metrics handler and a reference for all
// available metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry is the registerer every scraper metric is registered with.
var Registry = prometheus.DefaultRegisterer

// Gatherer collects the metrics served by Handler.
var Gatherer = prometheus.DefaultGatherer

// Handler returns an HTTP handler serving the scraper metrics in the
// Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Gatherer, promhttp.HandlerOpts{})
}

// Metrics Documentation
//
// Fetch Metrics (pkg/fetch):
//   - catalog_fetch_requests_total{fetcher, status} (Counter): Page fetches by fetcher (http, colly) and HTTP status or failure kind
//   - catalog_fetch_duration_seconds{fetcher} (Histogram): Page fetch duration
//
// Pagination Metrics (pkg/pagination):
//   - catalog_total_pages (Gauge): Page count of the most recently counted catalog
//   - catalog_pages_fetched_total (Counter): Pages fetched successfully in batches
//   - catalog_batch_failures_total (Counter): Batches abandoned because a page failed
//
// Extraction Metrics (pkg/catalog):
//   - catalog_items_extracted_total (Counter): Product blocks turned into records
//   - catalog_items_skipped_total (Counter): Product blocks skipped for a missing element
//   - catalog_pages_unparsable_total (Counter): Pages that did not parse as HTML
//
// Output Metrics (pkg/output):
//   - catalog_output_records_written_total{format} (Counter): Records written per format
//
// Run Metrics (pkg/scraper):
//   - catalog_runs_total{result} (Counter): Scrape runs by result (success, error)
//   - catalog_run_duration_seconds (Histogram): Duration of successful runs
//
// Example Prometheus Queries:
//
//   # Skipped Block Ratio
//   catalog_items_skipped_total /
//   (catalog_items_extracted_total + catalog_items_skipped_total)
//
//   # Failed Fetches
//   sum by (status) (catalog_fetch_requests_total{status!~"2.."})
//
//   # P95 Fetch Latency
//   histogram_quantile(0.95, rate(catalog_fetch_duration_seconds_bucket[5m]))
