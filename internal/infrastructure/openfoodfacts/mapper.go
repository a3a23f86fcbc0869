package openfoodfacts

import "github.com/robridge/scanner/internal/domain"

// ProductResponse is the Open Food Facts product endpoint payload.
// Status 1 means the barcode is known; 0 means not found.
type ProductResponse struct {
	Status  int     `json:"status"`
	Code    string  `json:"code"`
	Product Product `json:"product"`
}

// Product carries the provider-specific product fields we normalize
type Product struct {
	ProductName     string `json:"product_name"`
	ProductNameEN   string `json:"product_name_en"`
	Brands          string `json:"brands"`
	Categories      string `json:"categories"`
	GenericName     string `json:"generic_name"`
	IngredientsText string `json:"ingredients_text"`
	ImageURL        string `json:"image_url"`
}

// MapToProductRecord normalizes an Open Food Facts product into the common
// record shape. The display name falls back to the English variant and the
// description falls back from the generic name to the ingredients list.
func MapToProductRecord(p *Product) *domain.ProductRecord {
	name := p.ProductName
	if name == "" {
		name = p.ProductNameEN
	}

	description := p.GenericName
	if description == "" {
		description = p.IngredientsText
	}

	return &domain.ProductRecord{
		Found:       true,
		ProductName: name,
		Brand:       p.Brands,
		Category:    p.Categories,
		Description: description,
		ImageURL:    p.ImageURL,
	}
}
