package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/Sternrassler/catalog-scraper/pkg/catalog"
)

// WriteCSV writes a header row and one row per product, CRLF-terminated.
func WriteCSV(w io.Writer, products []catalog.Product) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(catalog.Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, p := range products {
		if err := cw.Write(p.Record()); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// ReadCSV decodes a CSV output, header included, back into products.
func ReadCSV(r io.Reader) ([]catalog.Product, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(catalog.Header)

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("read csv: missing header")
	}
	for i, name := range catalog.Header {
		if rows[0][i] != name {
			return nil, fmt.Errorf("read csv: header column %d is %q, want %q", i, rows[0][i], name)
		}
	}

	products := make([]catalog.Product, 0, len(rows)-1)
	for _, row := range rows[1:] {
		products = append(products, catalog.Product{
			Brand: row[0],
			Type:  row[1],
			Title: row[2],
			Link:  row[3],
			Price: row[4],
			Sizes: row[5],
		})
	}
	return products, nil
}

// ReadCSVFile reads a CSV output file.
func ReadCSVFile(path string) ([]catalog.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadCSV(f)
}
