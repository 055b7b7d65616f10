// Package pagination discovers how many pages a catalog listing has and
// fetches all of them concurrently.
//
// Listings render their pagination control as [1] [2] ... [N] [Next], so the
// second-to-last link of nav.pagination holds the page count. Page n lives at
// {baseURL}page/{n}/.
//
// Example usage:
//
//	bf := pagination.NewBatchFetcher(fetcher, pagination.DefaultConfig(), logger)
//	pages, err := bf.FetchCatalog(ctx, "https://example.com/category/new/")
//
// The batch fetcher:
//   - Fetches the base URL to read the page count
//   - Builds one URL per page
//   - Fetches every page in its own goroutine (no limit unless configured)
//   - Returns pages in request order, whatever order they complete in
//   - Fails the whole batch on the first fetch error (no partial results)
package pagination
