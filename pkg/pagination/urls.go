package pagination

import "fmt"

// PageURLs returns the listing URLs for pages 1..pageCount in ascending order.
// baseURL is used verbatim and is expected to end with a slash.
func PageURLs(baseURL string, pageCount int) []string {
	if pageCount < 1 {
		return []string{}
	}

	urls := make([]string, 0, pageCount)
	for page := 1; page <= pageCount; page++ {
		urls = append(urls, fmt.Sprintf("%spage/%d/", baseURL, page))
	}
	return urls
}
