// Package catalog extracts product records from catalog listing pages.
package catalog

// Field names used as JSON keys and CSV header, in output order.
const (
	FieldBrand = "Бренд"
	FieldType  = "Тип"
	FieldTitle = "Название"
	FieldLink  = "Ссылка"
	FieldPrice = "Цена"
	FieldSizes = "Размеры"
)

// Header is the CSV header row.
var Header = []string{FieldBrand, FieldType, FieldTitle, FieldLink, FieldPrice, FieldSizes}

// Product is one catalog listing. Every field is kept as text: Price has its
// currency suffix removed but is not parsed, Sizes is a comma-joined list.
type Product struct {
	Brand string `json:"Бренд"`
	Type  string `json:"Тип"`
	Title string `json:"Название"`
	Link  string `json:"Ссылка"`
	Price string `json:"Цена"`
	Sizes string `json:"Размеры"`
}

// Record returns the fields in Header order.
func (p Product) Record() []string {
	return []string{p.Brand, p.Type, p.Title, p.Link, p.Price, p.Sizes}
}
