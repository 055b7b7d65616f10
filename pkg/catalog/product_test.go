package catalog

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestProduct_Record(t *testing.T) {
	p := Product{Brand: "Nike", Type: "Кроссовки", Title: "Air Max", Link: "/p/1", Price: "9 990", Sizes: "41,42"}

	record := p.Record()
	expected := []string{"Nike", "Кроссовки", "Air Max", "/p/1", "9 990", "41,42"}

	if len(record) != len(Header) {
		t.Fatalf("record has %d fields, header has %d", len(record), len(Header))
	}
	for i := range expected {
		if record[i] != expected[i] {
			t.Errorf("record[%d] = %q, want %q", i, record[i], expected[i])
		}
	}
}

func TestProduct_JSONKeysFollowHeader(t *testing.T) {
	data, err := json.Marshal(Product{})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	out := string(data)
	last := -1
	for _, key := range Header {
		idx := strings.Index(out, `"`+key+`"`)
		if idx < 0 {
			t.Fatalf("key %q missing from %s", key, out)
		}
		if idx < last {
			t.Errorf("key %q out of order in %s", key, out)
		}
		last = idx
	}
}
