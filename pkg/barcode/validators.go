package barcode

import (
	"strconv"
	"strings"
	"time"
)

// Field validator predicates used by the built-in templates. Validators
// check the raw user input; normalization (digit stripping, scheme
// prefixing) happens later in the formatter so the user keeps seeing
// their original input.

// optional wraps a validator so the empty string passes. Used on
// optional fields where a present-but-empty value means "omit".
func optional(validate func(string) bool) func(string) bool {
	return func(value string) bool {
		return value == "" || validate(value)
	}
}

// validNonEmpty accepts any value with at least one non-space character.
func validNonEmpty(value string) bool {
	return strings.TrimSpace(value) != ""
}

// validEmailAddress accepts a single-@ address with non-empty local part
// and a dotted domain.
func validEmailAddress(value string) bool {
	at := strings.Index(value, "@")
	if at <= 0 || at != strings.LastIndex(value, "@") {
		return false
	}
	domain := value[at+1:]
	if domain == "" || strings.ContainsAny(value, " \t\r\n") {
		return false
	}
	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1
}

// validPhoneNumber accepts digits, spaces, dashes, parentheses and an
// optional leading plus, with a plausible digit count (5 to 16).
func validPhoneNumber(value string) bool {
	digits := 0
	for i, c := range value {
		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == '+':
			if i != 0 {
				return false
			}
		case c == ' ' || c == '-' || c == '(' || c == ')' || c == '.':
		default:
			return false
		}
	}
	return digits >= 5 && digits <= 16
}

// validWifiAuth accepts the authentication tokens WIFI: readers
// understand. The empty string is allowed; the template default applies.
func validWifiAuth(value string) bool {
	switch strings.ToUpper(value) {
	case "", "WEP", "WPA", "WPA2", "WPA3", "NOPASS":
		return true
	}
	return false
}

// validBool accepts true/false in any case, plus the empty string.
func validBool(value string) bool {
	switch strings.ToLower(value) {
	case "", "true", "false":
		return true
	}
	return false
}

// validLatitude accepts a decimal degree value in [-90, 90].
func validLatitude(value string) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	return err == nil && f >= -90 && f <= 90
}

// validLongitude accepts a decimal degree value in [-180, 180].
func validLongitude(value string) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	return err == nil && f >= -180 && f <= 180
}

// eventTimeLayouts are the accepted input layouts for event times, tried
// in order: RFC 3339, the iCalendar basic UTC form, and a space-separated
// local form.
var eventTimeLayouts = []string{
	time.RFC3339,
	"20060102T150405Z",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
}

// parseEventTime parses an event time in any accepted layout.
func parseEventTime(value string) (time.Time, bool) {
	s := strings.TrimSpace(value)
	for _, layout := range eventTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// validEventTime accepts any value parseEventTime understands.
func validEventTime(value string) bool {
	_, ok := parseEventTime(value)
	return ok
}
