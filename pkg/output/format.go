// Package output writes scraped products to JSON and CSV files.
package output

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat is returned for an unrecognized output format.
var ErrUnknownFormat = errors.New("unknown output format")

// Format selects which files are written.
type Format string

const (
	// FormatAll writes both {name}.json and {name}.csv.
	FormatAll Format = ""

	// FormatJSON writes {name}.json only.
	FormatJSON Format = "json"

	// FormatCSV writes {name}.csv only.
	FormatCSV Format = "csv"
)

// ParseFormat converts a configuration value to a Format. The empty string
// and "all" select both files.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return FormatAll, nil
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// String returns a printable name for the format.
func (f Format) String() string {
	if f == FormatAll {
		return "all"
	}
	return string(f)
}
