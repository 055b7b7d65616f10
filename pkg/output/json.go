package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Sternrassler/catalog-scraper/pkg/catalog"
)

// WriteJSON writes products as a JSON array indented with four spaces.
// Non-ASCII text and HTML characters are written unescaped and the document
// has no trailing newline.
func WriteJSON(w io.Writer, products []catalog.Product) error {
	if products == nil {
		products = []catalog.Product{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(products); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	if _, err := w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// ReadJSON decodes a JSON array of products.
func ReadJSON(r io.Reader) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := json.NewDecoder(r).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return products, nil
}

// ReadJSONFile reads a JSON output file.
func ReadJSONFile(path string) ([]catalog.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadJSON(f)
}
