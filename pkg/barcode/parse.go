package barcode

import "strings"

// Parse extracts structured fields from a raw payload of the given
// content type. It is total and tolerant: unknown segments are ignored,
// values that fail to unescape cleanly are kept with their raw text, and
// malformed input yields whatever could be extracted (possibly nothing).
// Content types without field structure (text, url, unknown) return an
// empty map.
func Parse(ct ContentType, raw string) map[string]string {
	switch ct {
	case ContentWifi:
		return parseWifi(raw)
	case ContentContact:
		if strings.HasPrefix(raw, "MECARD:") {
			return parseMECARD(raw)
		}
		return parseVCard(raw)
	case ContentEvent:
		return parseEvent(raw)
	case ContentGeo:
		return parseGeo(raw)
	case ContentPhone:
		return parseTel(raw)
	case ContentSMS:
		return parseSMSURI(raw)
	case ContentEmail:
		return parseMailto(raw)
	}
	return map[string]string{}
}

// splitUnescaped splits s on every delim that is not preceded by an odd
// number of backslashes, so escaped delimiters inside segment values
// never terminate a segment.
func splitUnescaped(s string, delim byte) []string {
	var parts []string
	start := 0
	backslashes := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			backslashes++
		case delim:
			if backslashes%2 == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
			backslashes = 0
		default:
			backslashes = 0
		}
	}
	parts = append(parts, s[start:])
	return parts
}

// wifiSegmentKeys maps WIFI: segment tags to extracted field names.
var wifiSegmentKeys = map[string]string{
	"T": FieldAuth,
	"S": FieldSSID,
	"P": FieldPassword,
	"H": FieldHidden,
}

// parseWifi extracts auth, ssid, password and hidden from a WIFI: URI.
// Segment boundaries are found by scanning for unescaped semicolons so
// escaped ; and , inside the SSID or password stay in the value.
func parseWifi(raw string) map[string]string {
	fields := make(map[string]string)
	body := strings.TrimPrefix(raw, "WIFI:")
	for _, seg := range splitUnescaped(body, ';') {
		tag, val, ok := strings.Cut(seg, ":")
		if !ok {
			continue
		}
		key, known := wifiSegmentKeys[strings.ToUpper(tag)]
		if !known {
			continue
		}
		fields[key] = Unescape(val, RulesetWifi)
	}
	return fields
}

// mecardSegmentKeys maps MECARD segment tags to extracted field names.
var mecardSegmentKeys = map[string]string{
	"N":     FieldName,
	"TEL":   FieldPhone,
	"EMAIL": FieldEmail,
	"ORG":   FieldOrg,
	"ADR":   FieldStreet,
	"URL":   FieldURL,
	"NOTE":  FieldNote,
}

// parseMECARD extracts contact fields from a MECARD: block.
func parseMECARD(raw string) map[string]string {
	fields := make(map[string]string)
	body := strings.TrimPrefix(raw, "MECARD:")
	for _, seg := range splitUnescaped(body, ';') {
		tag, val, ok := strings.Cut(seg, ":")
		if !ok || val == "" {
			continue
		}
		key, known := mecardSegmentKeys[strings.ToUpper(tag)]
		if !known {
			continue
		}
		fields[key] = Unescape(val, RulesetMECARD)
	}
	return fields
}

// vcardLineKeys maps vCard property names to extracted field names.
// FN is preferred over N for the name; see parseVCard.
var vcardLineKeys = map[string]string{
	"FN":    FieldName,
	"TEL":   FieldPhone,
	"EMAIL": FieldEmail,
	"ORG":   FieldOrg,
	"TITLE": FieldTitle,
	"URL":   FieldURL,
	"NOTE":  FieldNote,
}

// parseVCard extracts contact fields from a vCard block. Property
// parameters (TEL;TYPE=CELL:...) are tolerated and dropped; unknown
// properties are ignored. ADR values keep their street component.
func parseVCard(raw string) map[string]string {
	fields := make(map[string]string)
	for _, line := range splitLines(raw) {
		prop, val, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		// Drop property parameters after the first semicolon.
		name, _, _ := strings.Cut(prop, ";")
		name = strings.ToUpper(strings.TrimSpace(name))

		switch name {
		case "N":
			if _, have := fields[FieldName]; !have {
				fields[FieldName] = Unescape(strings.ReplaceAll(val, ";", " "), RulesetMECARD)
			}
		case "ADR":
			fields[FieldStreet] = Unescape(adrStreet(val), RulesetMECARD)
		default:
			key, known := vcardLineKeys[name]
			if !known || val == "" {
				continue
			}
			fields[key] = Unescape(val, RulesetMECARD)
		}
	}
	return fields
}

// adrStreet picks the street component (index 2) out of a structured
// ADR value, falling back to the whole value when the shape is off.
func adrStreet(val string) string {
	parts := splitUnescaped(val, ';')
	if len(parts) > 2 && parts[2] != "" {
		return parts[2]
	}
	return strings.Trim(strings.ReplaceAll(val, ";", " "), " ")
}

// eventLineKeys maps VEVENT property names to extracted field names.
var eventLineKeys = map[string]string{
	"SUMMARY":     FieldSummary,
	"LOCATION":    FieldLocation,
	"DESCRIPTION": FieldNote,
	"DTSTART":     FieldStart,
	"DTEND":       FieldEnd,
}

// parseEvent extracts fields from a VEVENT block. Date-time values are
// kept in their wire form; callers render or reparse as needed.
func parseEvent(raw string) map[string]string {
	fields := make(map[string]string)
	for _, line := range splitLines(raw) {
		prop, val, ok := strings.Cut(line, ":")
		if !ok || val == "" {
			continue
		}
		name, _, _ := strings.Cut(prop, ";")
		key, known := eventLineKeys[strings.ToUpper(strings.TrimSpace(name))]
		if !known {
			continue
		}
		fields[key] = Unescape(val, RulesetMECARD)
	}
	return fields
}

// parseGeo extracts latitude and longitude from a geo: URI. Altitude,
// parameters (;u=...) and queries (?q=...) are tolerated and dropped.
func parseGeo(raw string) map[string]string {
	fields := make(map[string]string)
	body := strings.TrimPrefix(raw, "geo:")
	if i := strings.IndexAny(body, ";?"); i >= 0 {
		body = body[:i]
	}
	parts := strings.Split(body, ",")
	if len(parts) >= 1 && parts[0] != "" {
		fields[FieldLatitude] = parts[0]
	}
	if len(parts) >= 2 && parts[1] != "" {
		fields[FieldLongitude] = parts[1]
	}
	return fields
}

// parseTel extracts the normalized number from a tel: URI or a bare
// phone string.
func parseTel(raw string) map[string]string {
	number := normalizePhone(strings.TrimPrefix(raw, "tel:"))
	if number == "" {
		return map[string]string{}
	}
	return map[string]string{FieldNumber: number}
}

// parseSMSURI extracts number and message from an sms: or smsto: URI.
func parseSMSURI(raw string) map[string]string {
	body := strings.TrimPrefix(strings.TrimPrefix(raw, "smsto:"), "sms:")
	number, query, _ := strings.Cut(body, "?")
	fields := make(map[string]string)
	if n := normalizePhone(number); n != "" {
		fields[FieldNumber] = n
	}
	for _, kv := range strings.Split(query, "&") {
		if k, v, ok := strings.Cut(kv, "="); ok && strings.EqualFold(k, "body") {
			fields[FieldMessage] = PercentDecode(v)
		}
	}
	return fields
}

// parseMailto extracts address, subject and body from a mailto: URI or
// a bare email address.
func parseMailto(raw string) map[string]string {
	body := strings.TrimPrefix(raw, "mailto:")
	address, query, _ := strings.Cut(body, "?")
	fields := make(map[string]string)
	if address != "" {
		fields[FieldAddress] = PercentDecode(address)
	}
	for _, kv := range strings.Split(query, "&") {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		switch strings.ToLower(k) {
		case "subject":
			fields[FieldSubject] = PercentDecode(v)
		case "body":
			fields[FieldBody] = PercentDecode(v)
		}
	}
	return fields
}

// splitLines splits a block payload into lines, accepting CRLF or bare
// LF terminators.
func splitLines(raw string) []string {
	return strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
}
