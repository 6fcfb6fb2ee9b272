package barcode

import "testing"

func TestEscapeRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		`semi;colon`,
		`comma,colon:both`,
		`back\slash`,
		`\;,:`,
		`\\double`,
		"line\nbreak",
		`"quoted"`,
		`Caf;e`,
		`p\q`,
		`trailing\`,
		`unicode Ω;`,
	}
	for _, ruleset := range []EscapeRuleset{RulesetMECARD, RulesetWifi} {
		for _, s := range inputs {
			got := Unescape(Escape(s, ruleset), ruleset)
			if got != s {
				t.Errorf("ruleset %d: Unescape(Escape(%q)) = %q, want %q", ruleset, s, got, s)
			}
		}
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		name    string
		ruleset EscapeRuleset
		in      string
		want    string
	}{
		{"mecard semicolon", RulesetMECARD, "Caf;e", `Caf\;e`},
		{"mecard backslash", RulesetMECARD, `p\q`, `p\\q`},
		{"mecard newline", RulesetMECARD, "a\nb", "a\\\nb"},
		{"mecard all reserved", RulesetMECARD, `;`, `\;`},
		{"wifi quote", RulesetWifi, `say "hi"`, `say \"hi\"`},
		{"wifi newline not reserved", RulesetWifi, "a\nb", "a\nb"},
		{"untouched", RulesetMECARD, "hello world", "hello world"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Escape(tt.in, tt.ruleset); got != tt.want {
				t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// Escaping a string of only reserved characters must not shrink it:
// every reserved character yields at least two output characters.
func TestEscapeReservedOnlyNotEmpty(t *testing.T) {
	in := `;;,,::\\`
	got := Escape(in, RulesetMECARD)
	if got == "" {
		t.Fatalf("Escape(%q) = empty output", in)
	}
	if len(got) != 2*len(in) {
		t.Errorf("Escape(%q) = %q, want every character doubled", in, got)
	}
}

func TestUnescapeLenient(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trailing backslash kept", `abc\`, `abc\`},
		{"single escape", `\;`, `;`},
		{"no double unescape", `\\;`, `\;`},
		{"plain", "plain", "plain"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Unescape(tt.in, RulesetMECARD); got != tt.want {
				t.Errorf("Unescape(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPercentEncode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hello", "hello"},
		{"a b", "a%20b"},
		{"50%", "50%25"},
		{"x&y=z", "x%26y%3Dz"},
		{"safe-_.~", "safe-_.~"},
		{"café", "caf%C3%A9"},
	}
	for _, tt := range tests {
		if got := PercentEncode(tt.in); got != tt.want {
			t.Errorf("PercentEncode(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if got := PercentDecode(tt.want); got != tt.in {
			t.Errorf("PercentDecode(%q) = %q, want %q", tt.want, got, tt.in)
		}
	}
}

func TestPercentDecodeLenient(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase hex", "a%2fb", "a/b"},
		{"truncated", "a%2", "a%2"},
		{"bare percent", "100%", "100%"},
		{"bad digits", "%zz", "%zz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PercentDecode(tt.in); got != tt.want {
				t.Errorf("PercentDecode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
