package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

// Prometheus metrics for product extraction.
var (
	itemsExtractedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_items_extracted_total",
		Help: "Total product blocks extracted into records",
	})

	itemsSkippedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_items_skipped_total",
		Help: "Total product blocks skipped because an element was missing",
	})

	pagesUnparsableTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_pages_unparsable_total",
		Help: "Total listing pages that could not be parsed as HTML",
	})
)

// Listing markup selectors.
var (
	productSel  = cascadia.MustCompile("div.product-content")
	brandSel    = cascadia.MustCompile("div.product-brand")
	typeSel     = cascadia.MustCompile("div.product-type")
	titleSel    = cascadia.MustCompile("div.link-product")
	anchorSel   = cascadia.MustCompile("a")
	priceSel    = cascadia.MustCompile("div.product-price")
	sizeListSel = cascadia.MustCompile("div.product-size-list")
)

// errMissingAttribute is returned when a product block lacks an element.
var errMissingAttribute = errors.New("missing attribute")

// Extractor turns listing pages into products.
type Extractor struct {
	logger zerolog.Logger
}

// NewExtractor creates a new extractor.
func NewExtractor(logger zerolog.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// Extract returns the products of all pages, in page order and then document
// order. Blocks missing an element are logged and skipped; Extract never fails.
func (e *Extractor) Extract(pages []string) []Product {
	products := []Product{}

	for pageIdx, page := range pages {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
		if err != nil {
			pagesUnparsableTotal.Inc()
			e.logger.Warn().Err(err).Int("page", pageIdx+1).Msg("Cannot parse listing page")
			continue
		}

		doc.FindMatcher(productSel).Each(func(blockIdx int, block *goquery.Selection) {
			product, err := parseProduct(block)
			if err != nil {
				itemsSkippedTotal.Inc()
				e.logger.Debug().
					Err(err).
					Int("page", pageIdx+1).
					Int("block", blockIdx).
					Msg("missing attribute")
				return
			}

			itemsExtractedTotal.Inc()
			e.logger.Debug().Str("brand", product.Brand).Msg("product added")
			products = append(products, product)
		})
	}

	return products
}

// ParseProduct reads one product-content block. ok is false when any element
// of the block is missing; no partial product is returned.
func ParseProduct(block *goquery.Selection) (Product, bool) {
	product, err := parseProduct(block)
	if err != nil {
		return Product{}, false
	}
	return product, true
}

func parseProduct(block *goquery.Selection) (Product, error) {
	brand, err := first(block, brandSel, "div.product-brand")
	if err != nil {
		return Product{}, err
	}
	kind, err := first(block, typeSel, "div.product-type")
	if err != nil {
		return Product{}, err
	}
	title, err := first(block, titleSel, "div.link-product")
	if err != nil {
		return Product{}, err
	}
	anchor, err := first(block, anchorSel, "a")
	if err != nil {
		return Product{}, err
	}
	// Product has no null link, so an anchor without href skips the block.
	link, exists := anchor.Attr("href")
	if !exists {
		return Product{}, fmt.Errorf("%w: a[href]", errMissingAttribute)
	}
	price, err := first(block, priceSel, "div.product-price")
	if err != nil {
		return Product{}, err
	}
	sizeList, err := first(block, sizeListSel, "div.product-size-list")
	if err != nil {
		return Product{}, err
	}

	var sizes []string
	sizeList.FindMatcher(anchorSel).Each(func(_ int, s *goquery.Selection) {
		sizes = append(sizes, s.Text())
	})

	return Product{
		Brand: brand.Text(),
		Type:  strings.TrimSpace(kind.Text()),
		Title: strings.TrimSpace(title.Text()),
		Link:  link,
		Price: NormalizePrice(price.Text()),
		Sizes: NormalizeSizes(sizes),
	}, nil
}

// first returns the first descendant of block matching m.
func first(block *goquery.Selection, m goquery.Matcher, name string) (*goquery.Selection, error) {
	sel := block.FindMatcher(m).First()
	if sel.Length() == 0 {
		return nil, fmt.Errorf("%w: %s", errMissingAttribute, name)
	}
	return sel, nil
}
