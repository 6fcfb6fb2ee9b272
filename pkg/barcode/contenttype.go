package barcode

import "errors"

// ContentType is the semantic classification of a barcode's decoded text.
// The constant values double as the stable tokens used for persistence;
// renaming the Go identifiers must never change the token strings.
type ContentType string

// Content types. Exactly one per classified payload.
const (
	ContentText    ContentType = "text"
	ContentURL     ContentType = "url"
	ContentEmail   ContentType = "email"
	ContentPhone   ContentType = "phone"
	ContentSMS     ContentType = "sms"
	ContentWifi    ContentType = "wifi"
	ContentContact ContentType = "contact"
	ContentEvent   ContentType = "event"
	ContentGeo     ContentType = "geo"

	// ContentUnknown marks structured-looking input that could not be
	// parsed (for example a BEGIN:VCARD block with no END:VCARD). It is
	// a fallback classification, never an error.
	ContentUnknown ContentType = "unknown"
)

// validContentTypes is the set of recognized content type tokens.
var validContentTypes = map[ContentType]bool{
	ContentText:    true,
	ContentURL:     true,
	ContentEmail:   true,
	ContentPhone:   true,
	ContentSMS:     true,
	ContentWifi:    true,
	ContentContact: true,
	ContentEvent:   true,
	ContentGeo:     true,
	ContentUnknown: true,
}

// ParseContentType maps a persisted token back to a ContentType.
// Unrecognized tokens (from older or newer versions of the store) fall
// back to ContentUnknown rather than failing the load.
func ParseContentType(token string) ContentType {
	ct := ContentType(token)
	if !validContentTypes[ct] {
		return ContentUnknown
	}
	return ct
}

// IsValid reports whether ct is a recognized content type token.
func (ct ContentType) IsValid() bool {
	return validContentTypes[ct]
}

// BarcodeFormat identifies a symbol format. It is orthogonal to
// ContentType: the format constrains payload capacity and character set
// (see CheckPayload) but not the text grammar itself.
type BarcodeFormat string

// Symbol formats.
const (
	FormatQR         BarcodeFormat = "qr"
	FormatDataMatrix BarcodeFormat = "datamatrix"
	FormatAztec      BarcodeFormat = "aztec"
	FormatPDF417     BarcodeFormat = "pdf417"
	FormatCode128    BarcodeFormat = "code128"
	FormatCode39     BarcodeFormat = "code39"
	FormatEAN13      BarcodeFormat = "ean13"
	FormatEAN8       BarcodeFormat = "ean8"
	FormatUPCA       BarcodeFormat = "upca"
	FormatITF        BarcodeFormat = "itf"
)

// ErrUnknownBarcodeFormat is returned for format tokens outside the
// supported set.
var ErrUnknownBarcodeFormat = errors.New("unknown barcode format")

// validBarcodeFormats is the set of recognized format tokens.
var validBarcodeFormats = map[BarcodeFormat]bool{
	FormatQR:         true,
	FormatDataMatrix: true,
	FormatAztec:      true,
	FormatPDF417:     true,
	FormatCode128:    true,
	FormatCode39:     true,
	FormatEAN13:      true,
	FormatEAN8:       true,
	FormatUPCA:       true,
	FormatITF:        true,
}

// ParseBarcodeFormat maps a token to a BarcodeFormat.
// Returns ErrUnknownBarcodeFormat for unrecognized tokens.
func ParseBarcodeFormat(token string) (BarcodeFormat, error) {
	f := BarcodeFormat(token)
	if !validBarcodeFormats[f] {
		return "", ErrUnknownBarcodeFormat
	}
	return f, nil
}

// IsValid reports whether f is a recognized barcode format token.
func (f BarcodeFormat) IsValid() bool {
	return validBarcodeFormats[f]
}
