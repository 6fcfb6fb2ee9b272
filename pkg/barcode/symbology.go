package barcode

import (
	"errors"
	"fmt"
	"strings"
)

// Payload constraint errors returned by CheckPayload.
var (
	ErrPayloadTooLong   = errors.New("payload exceeds symbol capacity")
	ErrCharsetViolation = errors.New("payload contains characters the symbol format cannot encode")
	ErrBadPayloadLength = errors.New("payload length not valid for symbol format")
	ErrEmptyPayload     = errors.New("payload is empty")
)

// Byte-capacity ceilings for the matrix formats, at the lowest error
// correction level. The real ceiling depends on encoder configuration;
// these are conservative upper bounds for the pre-encode check.
const (
	qrMaxBytes         = 2953
	dataMatrixMaxBytes = 1556
	aztecMaxBytes      = 1914
	pdf417MaxBytes     = 1100
	code128MaxChars    = 80
	code39MaxChars     = 43
)

// code39Charset is the Code 39 symbol alphabet.
const code39Charset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ-. $/+%"

// CheckPayload verifies that the payload satisfies the character-set and
// capacity constraints of the symbol format before hand-off to the
// external encoder. The codec never truncates: an oversized payload is
// an error for the caller to surface, not something to shorten.
func CheckPayload(format BarcodeFormat, payload string) error {
	if payload == "" {
		return ErrEmptyPayload
	}
	switch format {
	case FormatQR:
		return checkByteCapacity(format, payload, qrMaxBytes)
	case FormatDataMatrix:
		return checkByteCapacity(format, payload, dataMatrixMaxBytes)
	case FormatAztec:
		return checkByteCapacity(format, payload, aztecMaxBytes)
	case FormatPDF417:
		return checkByteCapacity(format, payload, pdf417MaxBytes)
	case FormatCode128:
		return checkCode128(payload)
	case FormatCode39:
		return checkCode39(payload)
	case FormatEAN13:
		return checkNumeric(format, payload, 12, 13)
	case FormatEAN8:
		return checkNumeric(format, payload, 7, 8)
	case FormatUPCA:
		return checkNumeric(format, payload, 11, 12)
	case FormatITF:
		return checkITF(payload)
	}
	return fmt.Errorf("%q: %w", format, ErrUnknownBarcodeFormat)
}

// checkByteCapacity enforces a byte-length ceiling for matrix formats.
func checkByteCapacity(format BarcodeFormat, payload string, max int) error {
	if len(payload) > max {
		return fmt.Errorf("%s: %d bytes, max %d: %w", format, len(payload), max, ErrPayloadTooLong)
	}
	return nil
}

// checkCode128 enforces the ASCII character set and a practical length
// ceiling for linear Code 128 symbols.
func checkCode128(payload string) error {
	for i := 0; i < len(payload); i++ {
		if payload[i] > 127 {
			return fmt.Errorf("%s: byte 0x%02x at %d: %w", FormatCode128, payload[i], i, ErrCharsetViolation)
		}
	}
	if len(payload) > code128MaxChars {
		return fmt.Errorf("%s: %d chars, max %d: %w", FormatCode128, len(payload), code128MaxChars, ErrPayloadTooLong)
	}
	return nil
}

// checkCode39 enforces the Code 39 symbol alphabet.
func checkCode39(payload string) error {
	for i := 0; i < len(payload); i++ {
		if !strings.ContainsRune(code39Charset, rune(payload[i])) {
			return fmt.Errorf("%s: %q at %d: %w", FormatCode39, payload[i], i, ErrCharsetViolation)
		}
	}
	if len(payload) > code39MaxChars {
		return fmt.Errorf("%s: %d chars, max %d: %w", FormatCode39, len(payload), code39MaxChars, ErrPayloadTooLong)
	}
	return nil
}

// checkNumeric enforces digits-only content and the fixed lengths the
// retail formats accept (with or without the check digit, which the
// encoder computes when absent).
func checkNumeric(format BarcodeFormat, payload string, lenWithout, lenWith int) error {
	for i := 0; i < len(payload); i++ {
		if payload[i] < '0' || payload[i] > '9' {
			return fmt.Errorf("%s: %q at %d: %w", format, payload[i], i, ErrCharsetViolation)
		}
	}
	if len(payload) != lenWithout && len(payload) != lenWith {
		return fmt.Errorf("%s: length %d, want %d or %d: %w", format, len(payload), lenWithout, lenWith, ErrBadPayloadLength)
	}
	return nil
}

// checkITF enforces digits-only content with an even digit count.
func checkITF(payload string) error {
	for i := 0; i < len(payload); i++ {
		if payload[i] < '0' || payload[i] > '9' {
			return fmt.Errorf("%s: %q at %d: %w", FormatITF, payload[i], i, ErrCharsetViolation)
		}
	}
	if len(payload)%2 != 0 {
		return fmt.Errorf("%s: odd length %d: %w", FormatITF, len(payload), ErrBadPayloadLength)
	}
	return nil
}
