package domain

// ProductRecord is the normalized result of a product database lookup.
// All optional fields are empty and Found is false when no provider
// returned data. Constructed fresh per request, never persisted here.
type ProductRecord struct {
	Found       bool   `json:"found"`
	ProductName string `json:"productName,omitempty"`
	Brand       string `json:"brand,omitempty"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// DomainProfile describes a known web platform matched from a QR code URL
type DomainProfile struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
}
