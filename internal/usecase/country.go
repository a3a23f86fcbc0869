package usecase

// UnknownCountry is returned when a barcode prefix is not in the GS1 table
const UnknownCountry = "Unknown Country"

// CountryTable maps 3-digit GS1/EAN barcode prefixes to country names.
// Read-only after construction; safe for unsynchronized concurrent reads.
type CountryTable map[string]string

// DefaultCountryTable returns the GS1 prefix table used for origin lookup
func DefaultCountryTable() CountryTable {
	return CountryTable{
		"000": "United States",
		"001": "United States",
		"002": "United States",
		"003": "United States",
		"004": "United States",
		"005": "United States",
		"030": "France",
		"380": "Bulgaria",
		"400": "Germany",
		"450": "Japan",
		"460": "Russia",
		"500": "United Kingdom",
		"539": "Ireland",
		"560": "Portugal",
		"590": "Poland",
		"600": "South Africa",
		"690": "China",
		"700": "Norway",
		"729": "Israel",
		"740": "Guatemala",
		"750": "Mexico",
		"780": "Chile",
		"789": "Brazil",
		"810": "Italy",
		"840": "Spain",
		"869": "Turkey",
		"880": "South Korea",
		"885": "Thailand",
		"890": "India",
		"893": "Vietnam",
		"899": "Indonesia",
	}
}

// CountryFor looks up the country of origin from the first three digits of a
// numeric barcode. Returns UnknownCountry for unrecognized prefixes.
func (t CountryTable) CountryFor(digits string) string {
	if len(digits) < 3 {
		return UnknownCountry
	}
	if country, ok := t[digits[:3]]; ok {
		return country
	}
	return UnknownCountry
}
