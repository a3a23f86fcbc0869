package usecase

import (
	"fmt"
	"strings"

	"github.com/robridge/scanner/internal/domain"
)

// detailExcerptLimit caps the provider description excerpt in full descriptions
const detailExcerptLimit = 200

// Composer assembles the full and short description pair for every
// classification outcome. Pure string assembly, no I/O, never fails.
type Composer struct{}

// NewComposer creates a new description composer
func NewComposer() *Composer {
	return &Composer{}
}

// ProductFound composes descriptions for a numeric barcode with an enriched product
func (c *Composer) ProductFound(rec *domain.ProductRecord, country, prefix, symbology string) (string, string) {
	name := rec.ProductName
	if name == "" {
		name = "Unknown Product"
	}
	brand := rec.Brand
	if brand == "" {
		brand = "Unknown Brand"
	}
	category := rec.Category
	if category == "" {
		category = "General Product"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Product Identified: %s\n\n", name)
	fmt.Fprintf(&b, "Brand: %s\n", brand)
	fmt.Fprintf(&b, "Category: %s\n", category)
	fmt.Fprintf(&b, "Origin: %s (Barcode prefix: %s)\n", country, prefix)
	fmt.Fprintf(&b, "Barcode Type: %s\n\n", symbology)

	if rec.Description != "" {
		fmt.Fprintf(&b, "Details: %s...\n\n", excerpt(rec.Description, detailExcerptLimit))
	}

	b.WriteString("This product is registered in international product databases and is used for retail identification and inventory management. ")
	b.WriteString("The barcode encodes manufacturer identification, product code, and validation information. ")

	switch {
	case country == "India":
		b.WriteString("This Indian product (prefix 890) is registered with GS1 India.")
	case country == "United States":
		b.WriteString("This US product follows the UPC standard widely used in North American retail.")
	case country != UnknownCountry:
		fmt.Fprintf(&b, "This product from %s complies with international GS1 barcode standards.", country)
	}

	short := fmt.Sprintf("%s by %s. Category: %s. Origin: %s. Type: %s.",
		name, brand, category, country, symbology)

	return b.String(), TruncateShort(short)
}

// ProductNotFound composes descriptions for a numeric barcode with no provider data
func (c *Composer) ProductNotFound(country, prefix, symbology string) (string, string) {
	var b strings.Builder
	b.WriteString("Product Lookup: No product information found in public databases for this barcode.\n\n")
	fmt.Fprintf(&b, "Barcode Type: %s\n", symbology)
	fmt.Fprintf(&b, "Country of Origin: %s (prefix: %s)\n\n", country, prefix)
	b.WriteString("This barcode is commonly used for retail product identification and inventory management. ")
	b.WriteString("The barcode encodes product information including manufacturer identification, product code, and a check digit for validation. ")
	b.WriteString("It is scanned at point-of-sale systems for pricing and inventory tracking. ")

	switch {
	case country == "India":
		b.WriteString("Indian products (prefix 890) are registered with GS1 India and are used across retail, manufacturing, and supply chain operations throughout the country.")
	case country == "United States":
		b.WriteString("US products are registered with GS1 US and follow the Universal Product Code (UPC) standard widely used in North American retail.")
	case country != UnknownCountry:
		fmt.Fprintf(&b, "Products from %s are registered with their national GS1 organization and comply with international barcode standards.", country)
	default:
		b.WriteString("This barcode may be from a private labeling system or a region not yet identified in the standard GS1 prefix database.")
	}

	short := fmt.Sprintf("Product not found. Type: %s. Origin: %s (prefix %s). Retail product barcode.",
		symbology, country, prefix)

	return b.String(), TruncateShort(short)
}

// URLCode composes descriptions for a QR code link from its domain profile
func (c *Composer) URLCode(profile domain.DomainProfile, host string) (string, string) {
	short := fmt.Sprintf("%s. Category: %s. QR code link to %s.",
		profile.Title, profile.Category, host)
	return profile.Description, TruncateShort(short)
}

// Unknown composes the fixed descriptions for unrecognized input
func (c *Composer) Unknown() (string, string) {
	full := "The scanned input is neither a recognizable barcode nor a valid URL. It may be a custom code, text string, or proprietary format."
	short := "Unknown format. Not a standard barcode or URL."
	return full, TruncateShort(short)
}

// TruncateShort enforces the display hardware cap: strings over 138
// characters are cut to 135 and marked with "...". Truncation counts
// characters, not bytes, so multibyte text is never split mid-rune.
func TruncateShort(s string) string {
	runes := []rune(s)
	if len(runes) <= domain.ShortDescriptionLimit {
		return s
	}
	return string(runes[:domain.ShortDescriptionLimit-3]) + "..."
}

// excerpt returns the first limit characters of s
func excerpt(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
