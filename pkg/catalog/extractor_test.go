package catalog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/Sternrassler/catalog-scraper/internal/testutil"
	"github.com/rs/zerolog"
)

func sampleBlock(brand string) testutil.ProductBlock {
	return testutil.ProductBlock{
		Brand: brand,
		Type:  "  Футболка  ",
		Title: "\n  Basic Tee  \n",
		Link:  "https://example.com/product/" + strings.ToLower(brand) + "/",
		Price: "1 990 ₽ ",
		Sizes: []string{"S", " M ", "L"},
	}
}

func TestExtractor_Extract(t *testing.T) {
	page := testutil.ListingPage(1, sampleBlock("Adidas"), sampleBlock("Puma"))

	products := NewExtractor(zerolog.Nop()).Extract([]string{page})

	if len(products) != 2 {
		t.Fatalf("got %d products, want 2", len(products))
	}

	expected := Product{
		Brand: "Adidas",
		Type:  "Футболка",
		Title: "Basic Tee",
		Link:  "https://example.com/product/adidas/",
		Price: "1 990",
		Sizes: "S,M,L",
	}
	if products[0] != expected {
		t.Errorf("products[0] = %+v, want %+v", products[0], expected)
	}
	if products[1].Brand != "Puma" {
		t.Errorf("products[1].Brand = %q, want Puma", products[1].Brand)
	}
}

func TestExtractor_SkipsBlocksWithMissingElements(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*testutil.ProductBlock)
	}{
		{name: "missing brand", mutate: func(b *testutil.ProductBlock) { b.OmitBrand = true }},
		{name: "missing type", mutate: func(b *testutil.ProductBlock) { b.OmitType = true }},
		{name: "missing title", mutate: func(b *testutil.ProductBlock) { b.OmitTitle = true }},
		{name: "missing price", mutate: func(b *testutil.ProductBlock) { b.OmitPrice = true }},
		{name: "missing size list", mutate: func(b *testutil.ProductBlock) { b.OmitSizeList = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			broken := sampleBlock("Broken")
			tt.mutate(&broken)

			page := testutil.ListingPage(1, sampleBlock("First"), broken, sampleBlock("Last"))
			products := NewExtractor(zerolog.Nop()).Extract([]string{page})

			if len(products) != 2 {
				t.Fatalf("got %d products, want 2", len(products))
			}
			if products[0].Brand != "First" || products[1].Brand != "Last" {
				t.Errorf("got brands %q, %q; want First, Last", products[0].Brand, products[1].Brand)
			}
		})
	}
}

func TestExtractor_MissingAnchor(t *testing.T) {
	// No anchors at all: the size list links are gone too.
	page := `<div class="product-content">
		<div class="product-brand">Nike</div>
		<div class="product-type">Кеды</div>
		<div class="link-product">Blazer</div>
		<div class="product-price">8 990 ₽</div>
		<div class="product-size-list"></div>
	</div>`

	products := NewExtractor(zerolog.Nop()).Extract([]string{page})
	if len(products) != 0 {
		t.Errorf("got %d products, want 0", len(products))
	}
}

func TestExtractor_AnchorWithoutHref(t *testing.T) {
	page := `<div class="product-content">
		<a class="product-image"><img src="/x.jpg"></a>
		<div class="product-brand">Nike</div>
		<div class="product-type">Кеды</div>
		<div class="link-product">Blazer</div>
		<div class="product-price">8 990 ₽</div>
		<div class="product-size-list"><a href="#">42</a></div>
	</div>`

	products := NewExtractor(zerolog.Nop()).Extract([]string{page})
	if len(products) != 0 {
		t.Errorf("got %d products, want 0", len(products))
	}
}

func TestExtractor_LinkIsFirstAnchor(t *testing.T) {
	block := sampleBlock("Nike")
	block.OmitLink = true
	// The first anchor left in the block is the first size link.
	products := NewExtractor(zerolog.Nop()).Extract([]string{testutil.ListingPage(1, block)})

	if len(products) != 1 {
		t.Fatalf("got %d products, want 1", len(products))
	}
	if products[0].Link != "#" {
		t.Errorf("Link = %q, want %q", products[0].Link, "#")
	}
}

func TestExtractor_EmptySizeList(t *testing.T) {
	block := sampleBlock("Nike")
	block.Sizes = nil

	products := NewExtractor(zerolog.Nop()).Extract([]string{testutil.ListingPage(1, block)})

	if len(products) != 1 {
		t.Fatalf("got %d products, want 1", len(products))
	}
	if products[0].Sizes != "" {
		t.Errorf("Sizes = %q, want empty", products[0].Sizes)
	}
}

func TestExtractor_PriceWrappedInWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		price string
	}{
		{name: "suffix", price: "1 990 ₽"},
		{name: "suffix with trailing space", price: "1 990 ₽ "},
		{name: "no suffix", price: "1 990"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block := sampleBlock("Nike")
			block.Price = tt.price
			block.PadPrice = true

			products := NewExtractor(zerolog.Nop()).Extract([]string{testutil.ListingPage(1, block)})

			if len(products) != 1 {
				t.Fatalf("got %d products, want 1", len(products))
			}
			if products[0].Price != "1 990" {
				t.Errorf("Price = %q, want %q", products[0].Price, "1 990")
			}
		})
	}
}

func TestExtractor_BrandKeptAsIs(t *testing.T) {
	block := sampleBlock("Nike")
	block.Brand = " Nike "

	products := NewExtractor(zerolog.Nop()).Extract([]string{testutil.ListingPage(1, block)})

	if len(products) != 1 {
		t.Fatalf("got %d products, want 1", len(products))
	}
	if products[0].Brand != " Nike " {
		t.Errorf("Brand = %q, want %q", products[0].Brand, " Nike ")
	}
}

func TestExtractor_PageAndDocumentOrder(t *testing.T) {
	pages := []string{
		testutil.ListingPage(2, sampleBlock("A1"), sampleBlock("A2")),
		testutil.ListingPage(2, sampleBlock("B1"), sampleBlock("B2"), sampleBlock("B3")),
	}

	products := NewExtractor(zerolog.Nop()).Extract(pages)

	expected := []string{"A1", "A2", "B1", "B2", "B3"}
	if len(products) != len(expected) {
		t.Fatalf("got %d products, want %d", len(products), len(expected))
	}
	for i, brand := range expected {
		if products[i].Brand != brand {
			t.Errorf("products[%d].Brand = %q, want %q", i, products[i].Brand, brand)
		}
	}
}

func TestExtractor_KMinusM(t *testing.T) {
	const k = 10
	var blocks []testutil.ProductBlock
	missing := 0
	for i := 0; i < k; i++ {
		b := sampleBlock("Brand")
		if i%3 == 0 {
			b.OmitPrice = true
			missing++
		}
		blocks = append(blocks, b)
	}

	products := NewExtractor(zerolog.Nop()).Extract([]string{testutil.ListingPage(1, blocks...)})

	if len(products) != k-missing {
		t.Errorf("got %d products, want %d", len(products), k-missing)
	}
}

func TestExtractor_NoProducts(t *testing.T) {
	products := NewExtractor(zerolog.Nop()).Extract([]string{"", "<html></html>", "not html at all"})

	if products == nil {
		t.Fatal("Extract() returned nil, want empty slice")
	}
	if len(products) != 0 {
		t.Errorf("got %d products, want 0", len(products))
	}
}

func TestExtractor_LogsMissingAttribute(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := zerolog.New(buf).Level(zerolog.DebugLevel)

	broken := sampleBlock("Broken")
	broken.OmitBrand = true

	NewExtractor(logger).Extract([]string{testutil.ListingPage(1, broken, sampleBlock("Ok"))})

	output := buf.String()
	if !strings.Contains(output, `"message":"missing attribute"`) {
		t.Errorf("Expected debug log %q, got %q", "missing attribute", output)
	}
	if !strings.Contains(output, `"level":"debug"`) {
		t.Errorf("Expected debug level, got %q", output)
	}
	if !strings.Contains(output, `"brand":"Ok"`) {
		t.Errorf("Expected product added log for Ok, got %q", output)
	}
}

func TestParseProduct(t *testing.T) {
	tests := []struct {
		name   string
		block  testutil.ProductBlock
		wantOK bool
	}{
		{name: "complete block", block: sampleBlock("Nike"), wantOK: true},
		{name: "missing brand", block: func() testutil.ProductBlock { b := sampleBlock("x"); b.OmitBrand = true; return b }(), wantOK: false},
		{name: "missing size list", block: func() testutil.ProductBlock { b := sampleBlock("x"); b.OmitSizeList = true; return b }(), wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := goquery.NewDocumentFromReader(strings.NewReader(tt.block.HTML()))
			if err != nil {
				t.Fatalf("parse fixture: %v", err)
			}

			product, ok := ParseProduct(doc.FindMatcher(productSel).First())
			if ok != tt.wantOK {
				t.Fatalf("ParseProduct() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok && product != (Product{}) {
				t.Errorf("ParseProduct() returned partial product %+v", product)
			}
		})
	}
}
