package testutil

import (
	"fmt"
	"strings"
)

// ProductBlock describes one product-content block in a listing page.
// Omit* flags drop the corresponding element so extraction of that block fails.
type ProductBlock struct {
	Brand string
	Type  string
	Title string
	Link  string
	Price string
	Sizes []string

	// PadPrice wraps the price text in newlines and indentation, as
	// server-rendered templates do.
	PadPrice bool

	OmitBrand    bool
	OmitType     bool
	OmitTitle    bool
	OmitLink     bool
	OmitPrice    bool
	OmitSizeList bool
}

// HTML renders the block using the listing markup conventions.
func (p ProductBlock) HTML() string {
	var b strings.Builder
	b.WriteString(`<div class="product-content">`)
	if !p.OmitLink {
		fmt.Fprintf(&b, `<a class="product-image" href="%s"><img src="/img.jpg"></a>`, p.Link)
	}
	if !p.OmitBrand {
		fmt.Fprintf(&b, `<div class="product-brand">%s</div>`, p.Brand)
	}
	if !p.OmitType {
		fmt.Fprintf(&b, `<div class="product-type">%s</div>`, p.Type)
	}
	if !p.OmitTitle {
		fmt.Fprintf(&b, `<div class="link-product">%s</div>`, p.Title)
	}
	if !p.OmitPrice {
		price := p.Price
		if p.PadPrice {
			price = "\n    " + price + "\n"
		}
		fmt.Fprintf(&b, `<div class="product-price">%s</div>`, price)
	}
	if !p.OmitSizeList {
		b.WriteString(`<div class="product-size-list">`)
		for _, size := range p.Sizes {
			fmt.Fprintf(&b, `<a href="#">%s</a>`, size)
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

// Pagination renders a pagination nav with links 1..totalPages and a trailing Next link.
func Pagination(totalPages int) string {
	var b strings.Builder
	b.WriteString(`<nav class="pagination">`)
	for i := 1; i <= totalPages; i++ {
		fmt.Fprintf(&b, `<a href="page/%d/">%d</a>`, i, i)
	}
	b.WriteString(`<a href="page/2/" class="next">Next</a></nav>`)
	return b.String()
}

// ListingPage renders a full listing page with pagination and product blocks.
func ListingPage(totalPages int, products ...ProductBlock) string {
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html><html><head><title>Catalog</title></head><body><div class="products">`)
	for _, p := range products {
		b.WriteString(p.HTML())
	}
	b.WriteString(`</div>`)
	if totalPages > 0 {
		b.WriteString(Pagination(totalPages))
	}
	b.WriteString(`</body></html>`)
	return b.String()
}
