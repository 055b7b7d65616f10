package pagination

import (
	"fmt"
	"testing"
)

func TestPageURLs(t *testing.T) {
	base := "https://example.com/category/listing/"

	for n := 1; n <= 50; n++ {
		urls := PageURLs(base, n)

		if len(urls) != n {
			t.Fatalf("PageURLs(%d) returned %d URLs", n, len(urls))
		}
		for i, url := range urls {
			expected := fmt.Sprintf("%spage/%d/", base, i+1)
			if url != expected {
				t.Errorf("PageURLs(%d)[%d] = %q, want %q", n, i, url, expected)
			}
		}
	}
}

func TestPageURLs_Exact(t *testing.T) {
	urls := PageURLs("https://madshop.ru/category/novinki/", 3)

	expected := []string{
		"https://madshop.ru/category/novinki/page/1/",
		"https://madshop.ru/category/novinki/page/2/",
		"https://madshop.ru/category/novinki/page/3/",
	}

	if len(urls) != len(expected) {
		t.Fatalf("got %d URLs, want %d", len(urls), len(expected))
	}
	for i := range expected {
		if urls[i] != expected[i] {
			t.Errorf("urls[%d] = %q, want %q", i, urls[i], expected[i])
		}
	}
}

func TestPageURLs_NonPositive(t *testing.T) {
	for _, n := range []int{0, -1} {
		if urls := PageURLs("https://example.com/", n); len(urls) != 0 {
			t.Errorf("PageURLs(%d) = %v, want empty", n, urls)
		}
	}
}
