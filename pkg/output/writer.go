package output

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Sternrassler/catalog-scraper/pkg/catalog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

var recordsWrittenTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "catalog_output_records_written_total",
	Help: "Total product records written by output format",
}, []string{"format"})

// Writer saves products under a directory.
type Writer struct {
	dir    string
	logger zerolog.Logger
}

// NewWriter creates a writer for dir. An empty dir means the working directory.
func NewWriter(dir string, logger zerolog.Logger) *Writer {
	if dir == "" {
		dir = "."
	}
	return &Writer{dir: dir, logger: logger}
}

// Save writes {name}.json and/or {name}.csv according to format and returns
// the written paths. With FormatAll both files are written concurrently.
// No file is created once ctx is done.
func (w *Writer) Save(ctx context.Context, products []catalog.Product, name string, format Format) ([]string, error) {
	jsonPath := filepath.Join(w.dir, name+".json")
	csvPath := filepath.Join(w.dir, name+".csv")

	var paths []string
	switch format {
	case FormatAll:
		paths = []string{jsonPath, csvPath}
	case FormatJSON:
		paths = []string{jsonPath}
	case FormatCSV:
		paths = []string{csvPath}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("save %s: %w", name, err)
	}
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			if path == jsonPath {
				return w.writeFile(path, "json", products, WriteJSON)
			}
			return w.writeFile(path, "csv", products, WriteCSV)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return paths, nil
}

func (w *Writer) writeFile(path, format string, products []catalog.Product, encode func(io.Writer, []catalog.Product) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	if err := encode(f, products); err != nil {
		w.logger.Error().Err(err).Str("path", path).Msg("Output write failed")
		return fmt.Errorf("write %s: %w", path, err)
	}

	recordsWrittenTotal.WithLabelValues(format).Add(float64(len(products)))
	w.logger.Info().
		Str("path", path).
		Str("format", format).
		Int("records", len(products)).
		Msg("Output written")
	return nil
}
