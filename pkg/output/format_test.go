package output

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"", FormatAll},
		{"all", FormatAll},
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{" csv ", FormatCSV},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if err != nil {
				t.Fatalf("ParseFormat(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormat_Unknown(t *testing.T) {
	for _, input := range []string{"xml", "jsonl", "csv,json"} {
		_, err := ParseFormat(input)
		if !errors.Is(err, ErrUnknownFormat) {
			t.Errorf("ParseFormat(%q) error = %v, want ErrUnknownFormat", input, err)
		}
	}
}

func TestFormat_String(t *testing.T) {
	if got := FormatAll.String(); got != "all" {
		t.Errorf("FormatAll.String() = %q, want all", got)
	}
	if got := FormatCSV.String(); got != "csv" {
		t.Errorf("FormatCSV.String() = %q, want csv", got)
	}
}
