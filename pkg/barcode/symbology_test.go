package barcode

import (
	"errors"
	"strings"
	"testing"
)

func TestCheckPayload(t *testing.T) {
	tests := []struct {
		name    string
		format  BarcodeFormat
		payload string
		wantErr error
	}{
		{"qr ok", FormatQR, "http://example.com", nil},
		{"qr unicode ok", FormatQR, "WIFI:S:Ωmega;;", nil},
		{"qr too long", FormatQR, strings.Repeat("x", qrMaxBytes+1), ErrPayloadTooLong},
		{"code128 ascii ok", FormatCode128, "ABC-123", nil},
		{"code128 non-ascii", FormatCode128, "café", ErrCharsetViolation},
		{"code128 too long", FormatCode128, strings.Repeat("1", code128MaxChars+1), ErrPayloadTooLong},
		{"code39 ok", FormatCode39, "HELLO-123 $/+%", nil},
		{"code39 lowercase", FormatCode39, "hello", ErrCharsetViolation},
		{"ean13 twelve digits", FormatEAN13, "400638133393", nil},
		{"ean13 thirteen digits", FormatEAN13, "4006381333931", nil},
		{"ean13 wrong length", FormatEAN13, "1234", ErrBadPayloadLength},
		{"ean13 non-digit", FormatEAN13, "40063813339a", ErrCharsetViolation},
		{"ean8 ok", FormatEAN8, "96385074", nil},
		{"upca ok", FormatUPCA, "036000291452", nil},
		{"itf even ok", FormatITF, "1234567890", nil},
		{"itf odd", FormatITF, "12345", ErrBadPayloadLength},
		{"empty payload", FormatQR, "", ErrEmptyPayload},
		{"unknown format", BarcodeFormat("bogus"), "x", ErrUnknownBarcodeFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPayload(tt.format, tt.payload)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("CheckPayload = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CheckPayload = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
