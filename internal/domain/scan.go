package domain

// ScanInput represents one raw scanned value received from a scanner device
type ScanInput struct {
	RawValue string `json:"rawValue"`
	DeviceID string `json:"deviceId,omitempty"` // opaque device identifier, passed through untouched
}

// ClassificationKind identifies the shape of a scanned value
type ClassificationKind int

const (
	// KindNumericBarcode is an 8-14 digit EAN/UPC product barcode
	KindNumericBarcode ClassificationKind = iota
	// KindURLCode is a QR payload carrying an http/https/www link
	KindURLCode
	// KindUnknown covers everything else, including the empty string
	KindUnknown
)

// Classification is the result of format classification. Exactly one kind is
// produced for every input; classification is total and never fails.
type Classification struct {
	Kind ClassificationKind `json:"kind"`

	// Numeric barcode fields
	Digits    string `json:"digits,omitempty"`
	Length    int    `json:"length,omitempty"`
	Symbology string `json:"symbology,omitempty"`

	// URL code fields
	URL    string `json:"url,omitempty"`
	Domain string `json:"domain,omitempty"`

	// Raw holds the trimmed original value for unknown inputs
	Raw string `json:"raw,omitempty"`
}

// ScanResult is the wire-format analysis response. Field names and the 138
// character cap on DescriptionShort are a compatibility contract with the
// ESP32 display firmware and must not change.
type ScanResult struct {
	Success          bool   `json:"success"`
	Title            string `json:"title"`
	Category         string `json:"category"`
	Description      string `json:"description"`
	DescriptionShort string `json:"description_short"`
	Country          string `json:"country"`
	Barcode          string `json:"barcode"`
	DeviceID         string `json:"deviceId"`
}

// ShortDescriptionLimit is the hard character cap for ScanResult.DescriptionShort,
// dictated by the ESP32 display buffer.
const ShortDescriptionLimit = 138
