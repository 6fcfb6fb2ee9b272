package barcode

import (
	"regexp"
	"strings"
)

// Classification grammars for inputs without a literal format prefix.
// The URL rule requires an alphanumeric scheme followed by ://; the
// email and phone rules match the whole string.
var (
	urlPattern   = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*://\S+$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s.][^@\s]*$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 ()-]*$`)
)

// Classify determines the semantic content type of a raw decoded string.
// It is a total function: unrecognized input degrades to ContentText
// (human-readable prose with no recognized structure) and structured
// blocks missing their terminator degrade to ContentUnknown. It never
// fails; scanned input is untrusted and must not crash the scan flow.
//
// Rules are checked in order, first match wins. The literal micro-format
// prefixes come first so the looser URL/email/phone heuristics cannot
// misclassify them.
func Classify(raw string) ContentType {
	switch {
	case strings.HasPrefix(raw, "WIFI:"):
		return ContentWifi
	case strings.HasPrefix(raw, "BEGIN:VCARD"):
		if !strings.Contains(raw, "END:VCARD") {
			return ContentUnknown
		}
		return ContentContact
	case strings.HasPrefix(raw, "MECARD:"):
		return ContentContact
	case strings.HasPrefix(raw, "BEGIN:VEVENT"):
		if !strings.Contains(raw, "END:VEVENT") {
			return ContentUnknown
		}
		return ContentEvent
	case strings.HasPrefix(raw, "geo:"):
		return ContentGeo
	case strings.HasPrefix(raw, "mailto:"):
		return ContentEmail
	case strings.HasPrefix(raw, "tel:"):
		return ContentPhone
	case strings.HasPrefix(raw, "sms:"), strings.HasPrefix(raw, "smsto:"):
		return ContentSMS
	case urlPattern.MatchString(raw):
		return ContentURL
	case emailPattern.MatchString(raw):
		return ContentEmail
	case isBarePhone(raw):
		return ContentPhone
	}
	return ContentText
}

// isBarePhone matches a scheme-less phone number: digits, spaces,
// separators, an optional leading plus, and a plausible digit count.
func isBarePhone(raw string) bool {
	if !phonePattern.MatchString(raw) {
		return false
	}
	digits := 0
	for _, c := range raw {
		if c >= '0' && c <= '9' {
			digits++
		}
	}
	return digits >= 5 && digits <= 16
}

// Decode classifies raw and, for structured content types, extracts
// fields. The convenience wrapper for the scan path.
func Decode(raw string) Result {
	ct := Classify(raw)
	return Result{ContentType: ct, Fields: Parse(ct, raw)}
}
