package barcode

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Format constants pinned by the rendering rules.
const (
	// vcardLineEnd is the vCard 3.0 line terminator (RFC 2426 requires
	// CRLF regardless of the platform's native line ending).
	vcardLineEnd = "\r\n"

	// defaultEventDuration is substituted for DTEND when an event has a
	// start but no end; VEVENT requires both.
	defaultEventDuration = time.Hour

	// icalTimeLayout is the iCalendar basic date-time form in UTC.
	icalTimeLayout = "20060102T150405Z"

	// geoPrecision is the number of fractional digits for rendered
	// coordinates, fixed so output is byte-identical across platforms.
	geoPrecision = 6
)

// urlSchemes is the allow-list checked (case-insensitively) before the
// URL formatter prepends the template's default scheme.
var urlSchemes = []string{"http://", "https://", "ftp://", "mailto:", "tel:"}

// formatterSupports reports whether Format has a rendering rule for the
// content type. Used by the registry construction self-check.
func formatterSupports(ct ContentType) bool {
	switch ct {
	case ContentText, ContentURL, ContentEmail, ContentPhone, ContentSMS,
		ContentWifi, ContentContact, ContentEvent, ContentGeo:
		return true
	}
	return false
}

// Format renders the template and field values into the payload string
// destined for symbol encoding. It assumes Registry.Validate already
// passed: required/invalid checks are not repeated, but absent optional
// fields never crash (the spec default applies, or the segment is
// omitted). Identical inputs always produce byte-identical output; the
// payload is never truncated here (capacity limits belong to CheckPayload
// and the symbol encoder).
//
// Returns a wrapped ErrUnsupportedContentType for a template whose
// content type has no rendering rule; with a registry-built template
// that cannot happen, since NewRegistry runs the same check.
func Format(t Template, values FieldValues) (string, error) {
	switch t.ContentType {
	case ContentText:
		return fieldOrDefault(t, values, FieldText), nil
	case ContentURL:
		return formatURL(t, values), nil
	case ContentEmail:
		return formatEmail(t, values), nil
	case ContentPhone:
		return "tel:" + normalizePhone(fieldOrDefault(t, values, FieldNumber)), nil
	case ContentSMS:
		return formatSMS(t, values), nil
	case ContentWifi:
		return formatWifi(t, values), nil
	case ContentContact:
		if t.Variant == VariantMECARD {
			return formatMECARD(t, values), nil
		}
		return formatVCard(t, values), nil
	case ContentEvent:
		return formatEvent(t, values), nil
	case ContentGeo:
		return formatGeo(t, values), nil
	}
	return "", fmt.Errorf("template %s (%s): %w", t.ID, t.ContentType, ErrUnsupportedContentType)
}

// fieldOrDefault reads a field value, applying the spec default when the
// key is absent from values.
func fieldOrDefault(t Template, values FieldValues, key string) string {
	spec, ok := t.Field(key)
	if !ok {
		return values[key]
	}
	return values.lookup(spec)
}

// formatURL prepends the template's default scheme when the value lacks
// a recognized one. Normalization is idempotent: formatting an already
// prefixed URL yields the same string.
func formatURL(t Template, values FieldValues) string {
	value := fieldOrDefault(t, values, FieldValue)
	lower := strings.ToLower(value)
	for _, scheme := range urlSchemes {
		if strings.HasPrefix(lower, scheme) {
			return value
		}
	}
	return fieldOrDefault(t, values, FieldScheme) + value
}

// normalizePhone strips everything but digits and a single leading plus.
// The stripping lives here rather than in the field validator so the
// user keeps seeing their original input while the payload stays clean.
func normalizePhone(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c >= '0' && c <= '9' {
			b.WriteByte(c)
		} else if c == '+' && b.Len() == 0 {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// formatSMS renders sms:<number> with an optional percent-encoded body.
// An empty message omits the ?body= segment entirely.
func formatSMS(t Template, values FieldValues) string {
	payload := "sms:" + normalizePhone(fieldOrDefault(t, values, FieldNumber))
	if msg := fieldOrDefault(t, values, FieldMessage); msg != "" {
		payload += "?body=" + PercentEncode(msg)
	}
	return payload
}

// formatEmail renders mailto:<address> with optional subject and body
// query segments, subject always before body so output is deterministic.
func formatEmail(t Template, values FieldValues) string {
	var b strings.Builder
	b.WriteString("mailto:")
	b.WriteString(fieldOrDefault(t, values, FieldAddress))
	sep := "?"
	if subject := fieldOrDefault(t, values, FieldSubject); subject != "" {
		b.WriteString(sep + "subject=" + PercentEncode(subject))
		sep = "&"
	}
	if body := fieldOrDefault(t, values, FieldBody); body != "" {
		b.WriteString(sep + "body=" + PercentEncode(body))
	}
	return b.String()
}

// formatWifi renders the WIFI: URI with fixed segment order T,S,P,H and
// the mandatory double-semicolon terminator. Empty segments are omitted
// rather than emitted empty; the H flag is omitted entirely unless the
// network is hidden, matching common reader expectations.
func formatWifi(t Template, values FieldValues) string {
	var b strings.Builder
	b.WriteString("WIFI:")
	if auth := fieldOrDefault(t, values, FieldAuth); auth != "" {
		b.WriteString("T:" + strings.ToUpper(auth) + ";")
	}
	b.WriteString("S:" + Escape(fieldOrDefault(t, values, FieldSSID), RulesetWifi) + ";")
	if pass := fieldOrDefault(t, values, FieldPassword); pass != "" {
		b.WriteString("P:" + Escape(pass, RulesetWifi) + ";")
	}
	if strings.EqualFold(fieldOrDefault(t, values, FieldHidden), "true") {
		b.WriteString("H:true;")
	}
	b.WriteString(";")
	return b.String()
}

// mecardSegments maps MECARD segment tags to field keys, in emission
// order. The name segment is mandatory and handled separately.
var mecardSegments = []struct {
	tag string
	key string
}{
	{"TEL", FieldPhone},
	{"EMAIL", FieldEmail},
	{"ORG", FieldOrg},
	{"ADR", FieldStreet},
	{"URL", FieldURL},
	{"NOTE", FieldNote},
}

// formatMECARD renders a MECARD: contact block. Optional segments are
// emitted only when non-empty; the record ends with the ;; terminator.
func formatMECARD(t Template, values FieldValues) string {
	var b strings.Builder
	b.WriteString("MECARD:N:" + Escape(fieldOrDefault(t, values, FieldName), RulesetMECARD) + ";")
	for _, seg := range mecardSegments {
		val := fieldOrDefault(t, values, seg.key)
		if seg.key == FieldPhone {
			val = normalizePhone(val)
		}
		if val != "" {
			b.WriteString(seg.tag + ":" + Escape(val, RulesetMECARD) + ";")
		}
	}
	b.WriteString(";")
	return b.String()
}

// formatVCard renders a vCard 3.0 block. BEGIN/VERSION/END frame the
// record; optional lines appear only for non-empty fields; every line
// ends in CRLF per RFC 2426.
func formatVCard(t Template, values FieldValues) string {
	name := fieldOrDefault(t, values, FieldName)
	var b strings.Builder
	b.WriteString("BEGIN:VCARD" + vcardLineEnd)
	b.WriteString("VERSION:3.0" + vcardLineEnd)
	b.WriteString("N:" + Escape(name, RulesetMECARD) + vcardLineEnd)
	b.WriteString("FN:" + Escape(name, RulesetMECARD) + vcardLineEnd)
	if phone := normalizePhone(fieldOrDefault(t, values, FieldPhone)); phone != "" {
		b.WriteString("TEL:" + phone + vcardLineEnd)
	}
	if email := fieldOrDefault(t, values, FieldEmail); email != "" {
		b.WriteString("EMAIL:" + Escape(email, RulesetMECARD) + vcardLineEnd)
	}
	if org := fieldOrDefault(t, values, FieldOrg); org != "" {
		b.WriteString("ORG:" + Escape(org, RulesetMECARD) + vcardLineEnd)
	}
	if title := fieldOrDefault(t, values, FieldTitle); title != "" {
		b.WriteString("TITLE:" + Escape(title, RulesetMECARD) + vcardLineEnd)
	}
	if street := fieldOrDefault(t, values, FieldStreet); street != "" {
		b.WriteString("ADR:;;" + Escape(street, RulesetMECARD) + ";;;;" + vcardLineEnd)
	}
	if url := fieldOrDefault(t, values, FieldURL); url != "" {
		b.WriteString("URL:" + Escape(url, RulesetMECARD) + vcardLineEnd)
	}
	if note := fieldOrDefault(t, values, FieldNote); note != "" {
		b.WriteString("NOTE:" + Escape(note, RulesetMECARD) + vcardLineEnd)
	}
	b.WriteString("END:VCARD" + vcardLineEnd)
	return b.String()
}

// formatEvent renders a VEVENT block with DTSTART/DTEND in the basic UTC
// date-time form. An event without an end derives one from the default
// duration; the target format requires DTEND.
func formatEvent(t Template, values FieldValues) string {
	start, _ := parseEventTime(fieldOrDefault(t, values, FieldStart))
	end, ok := parseEventTime(fieldOrDefault(t, values, FieldEnd))
	if !ok {
		end = start.Add(defaultEventDuration)
	}
	var b strings.Builder
	b.WriteString("BEGIN:VEVENT" + vcardLineEnd)
	b.WriteString("SUMMARY:" + Escape(fieldOrDefault(t, values, FieldSummary), RulesetMECARD) + vcardLineEnd)
	if loc := fieldOrDefault(t, values, FieldLocation); loc != "" {
		b.WriteString("LOCATION:" + Escape(loc, RulesetMECARD) + vcardLineEnd)
	}
	if note := fieldOrDefault(t, values, FieldNote); note != "" {
		b.WriteString("DESCRIPTION:" + Escape(note, RulesetMECARD) + vcardLineEnd)
	}
	b.WriteString("DTSTART:" + start.UTC().Format(icalTimeLayout) + vcardLineEnd)
	b.WriteString("DTEND:" + end.UTC().Format(icalTimeLayout) + vcardLineEnd)
	b.WriteString("END:VEVENT" + vcardLineEnd)
	return b.String()
}

// formatGeo renders geo:<lat>,<lon> with a fixed fractional precision so
// output does not depend on platform float formatting defaults.
func formatGeo(t Template, values FieldValues) string {
	lat, _ := strconv.ParseFloat(strings.TrimSpace(fieldOrDefault(t, values, FieldLatitude)), 64)
	lon, _ := strconv.ParseFloat(strings.TrimSpace(fieldOrDefault(t, values, FieldLongitude)), 64)
	return "geo:" + strconv.FormatFloat(lat, 'f', geoPrecision, 64) +
		"," + strconv.FormatFloat(lon, 'f', geoPrecision, 64)
}
