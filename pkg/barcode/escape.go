package barcode

import "strings"

// EscapeRuleset names the reserved-character set of one micro-format
// family. Escape prefixes each reserved character with a backslash;
// Unescape strips exactly one backslash per escaped occurrence.
type EscapeRuleset int

// Escape rulesets.
const (
	// RulesetMECARD covers MECARD and vCard values: backslash, semicolon,
	// comma, colon, and newline are reserved.
	RulesetMECARD EscapeRuleset = iota

	// RulesetWifi covers WIFI: URI segment values: backslash, semicolon,
	// comma, double quote, and colon are reserved.
	RulesetWifi
)

// reserved returns the reserved-character set for the ruleset.
// The backslash itself is always reserved so escaping stays injective.
func (r EscapeRuleset) reserved() string {
	switch r {
	case RulesetWifi:
		return `\;,":`
	default:
		return "\\;,:\n"
	}
}

// Escape prefixes every reserved character in raw with a backslash.
// Escaping a string of only reserved characters doubles its length;
// the output is never shorter than the input.
func Escape(raw string, ruleset EscapeRuleset) string {
	reserved := ruleset.reserved()
	var b strings.Builder
	b.Grow(len(raw))
	for _, c := range raw {
		if strings.ContainsRune(reserved, c) {
			b.WriteByte('\\')
		}
		b.WriteRune(c)
	}
	return b.String()
}

// Unescape strips exactly one leading backslash from each escaped
// occurrence, scanning left to right so doubled backslashes are never
// unescaped twice. A trailing backslash with nothing following is kept
// literally; Unescape never fails.
func Unescape(encoded string, ruleset EscapeRuleset) string {
	var b strings.Builder
	b.Grow(len(encoded))
	for i := 0; i < len(encoded); i++ {
		if encoded[i] == '\\' && i+1 < len(encoded) {
			i++
		}
		b.WriteByte(encoded[i])
	}
	return b.String()
}

// upperHex is the digit alphabet for percent-encoding.
const upperHex = "0123456789ABCDEF"

// isUnreserved reports whether b needs no percent-encoding:
// ALPHA / DIGIT / "-" / "_" / "." / "~".
func isUnreserved(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	case b == '-' || b == '_' || b == '.' || b == '~':
		return true
	}
	return false
}

// PercentEncode percent-encodes every byte outside the unreserved set as
// %XX with uppercase hex digits.
func PercentEncode(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0f])
	}
	return b.String()
}

// PercentDecode decodes %XX sequences case-insensitively. Malformed
// sequences (truncated or non-hex digits) pass through literally;
// PercentDecode never fails.
func PercentDecode(encoded string) string {
	var b strings.Builder
	b.Grow(len(encoded))
	for i := 0; i < len(encoded); i++ {
		c := encoded[i]
		if c == '%' && i+2 < len(encoded) {
			hi, okHi := hexVal(encoded[i+1])
			lo, okLo := hexVal(encoded[i+2])
			if okHi && okLo {
				b.WriteByte(hi<<4 | lo)
				i += 2
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

// hexVal decodes one hex digit, accepting both cases.
func hexVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
