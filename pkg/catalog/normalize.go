package catalog

import "strings"

// currencySuffix is the set of trailing runes stripped from prices.
const currencySuffix = " ₽"

// NormalizePrice strips surrounding whitespace and a trailing currency glyph.
// "1 990 ₽ " and "\n  1 990 ₽\n" both become "1 990".
func NormalizePrice(s string) string {
	return strings.TrimSpace(strings.TrimRight(strings.TrimSpace(s), currencySuffix))
}

// NormalizeSizes trims each size label and joins them with commas.
func NormalizeSizes(labels []string) string {
	trimmed := make([]string, len(labels))
	for i, label := range labels {
		trimmed[i] = strings.TrimSpace(label)
	}
	return strings.Join(trimmed, ",")
}
