package barcode

import (
	"errors"
	"strings"
	"testing"
)

// mustFormat validates then formats via a registry template.
func mustFormat(t *testing.T, templateID string, values FieldValues) string {
	t.Helper()
	r := newTestRegistry(t)
	tmpl, err := r.Get(templateID)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Validate(tmpl, values); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	payload, err := Format(tmpl, values)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	return payload
}

func TestFormatText(t *testing.T) {
	got := mustFormat(t, "text", FieldValues{FieldText: "notes: a;b,c"})
	if got != "notes: a;b,c" {
		t.Errorf("text payload = %q, want verbatim input", got)
	}
}

func TestFormatURL(t *testing.T) {
	tests := []struct {
		name     string
		template string
		value    string
		want     string
	}{
		{"bare host gets http", "url", "example.com", "http://example.com"},
		{"bare host gets https variant", "url-secure", "example.com", "https://example.com"},
		{"existing http kept", "url", "http://example.com", "http://example.com"},
		{"existing https kept on http template", "url", "https://example.com", "https://example.com"},
		{"case-insensitive scheme check", "url", "HTTP://EXAMPLE.COM", "HTTP://EXAMPLE.COM"},
		{"ftp kept", "url", "ftp://host/file", "ftp://host/file"},
		{"mailto kept", "url", "mailto:a@b.com", "mailto:a@b.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustFormat(t, tt.template, FieldValues{FieldValue: tt.value})
			if got != tt.want {
				t.Errorf("url payload = %q, want %q", got, tt.want)
			}
		})
	}
}

// Scheme normalization is idempotent: feeding the formatter its own
// output yields the same string.
func TestFormatURLIdempotent(t *testing.T) {
	first := mustFormat(t, "url", FieldValues{FieldValue: "example.com"})
	second := mustFormat(t, "url", FieldValues{FieldValue: first})
	if first != second {
		t.Errorf("re-formatting %q gave %q, want unchanged", first, second)
	}
}

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"+1-555-0100", "tel:+15550100"},
		{"(555) 010-0000", "tel:5550100000"},
		{"555 0100", "tel:5550100"},
	}
	for _, tt := range tests {
		got := mustFormat(t, "phone", FieldValues{FieldNumber: tt.in})
		if got != tt.want {
			t.Errorf("phone payload for %q = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatSMS(t *testing.T) {
	got := mustFormat(t, "sms", FieldValues{FieldNumber: "+1 555-0100", FieldMessage: "see you @ 5"})
	want := "sms:+15550100?body=see%20you%20%40%205"
	if got != want {
		t.Errorf("sms payload = %q, want %q", got, want)
	}

	// Empty message omits the ?body= segment entirely.
	got = mustFormat(t, "sms", FieldValues{FieldNumber: "5550100"})
	if got != "sms:5550100" {
		t.Errorf("sms payload without message = %q, want %q", got, "sms:5550100")
	}
}

func TestFormatEmail(t *testing.T) {
	tests := []struct {
		name   string
		values FieldValues
		want   string
	}{
		{
			"address only",
			FieldValues{FieldAddress: "a@b.com"},
			"mailto:a@b.com",
		},
		{
			"subject before body",
			FieldValues{FieldAddress: "a@b.com", FieldSubject: "hi there", FieldBody: "x&y"},
			"mailto:a@b.com?subject=hi%20there&body=x%26y",
		},
		{
			"body only",
			FieldValues{FieldAddress: "a@b.com", FieldBody: "just body"},
			"mailto:a@b.com?body=just%20body",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustFormat(t, "email", tt.values)
			if got != tt.want {
				t.Errorf("email payload = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatWifi(t *testing.T) {
	got := mustFormat(t, "wifi", FieldValues{
		FieldSSID:     "Caf;e",
		FieldPassword: `p\q`,
		FieldAuth:     "WPA",
		FieldHidden:   "false",
	})
	want := `WIFI:T:WPA;S:Caf\;e;P:p\\q;;`
	if got != want {
		t.Errorf("wifi payload = %q, want %q", got, want)
	}
}

func TestFormatWifiHidden(t *testing.T) {
	got := mustFormat(t, "wifi", FieldValues{
		FieldSSID:   "home",
		FieldHidden: "true",
	})
	// Default auth applies, empty password segment is omitted, H is
	// emitted only because the network is hidden.
	want := "WIFI:T:WPA;S:home;H:true;;"
	if got != want {
		t.Errorf("wifi payload = %q, want %q", got, want)
	}
}

func TestFormatVCard(t *testing.T) {
	got := mustFormat(t, "contact", FieldValues{
		FieldName:  "Ada Lovelace",
		FieldPhone: "+44 20 7946 0100",
		FieldEmail: "ada@example.org",
		FieldOrg:   "Analytical; Engines",
	})
	want := strings.Join([]string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"N:Ada Lovelace",
		"FN:Ada Lovelace",
		"TEL:+442079460100",
		"EMAIL:ada@example.org",
		`ORG:Analytical\; Engines`,
		"END:VCARD",
	}, "\r\n") + "\r\n"
	if got != want {
		t.Errorf("vcard payload = %q, want %q", got, want)
	}
}

func TestFormatVCardOmitsEmptyLines(t *testing.T) {
	got := mustFormat(t, "contact", FieldValues{FieldName: "Solo"})
	if strings.Contains(got, "TEL:") || strings.Contains(got, "EMAIL:") || strings.Contains(got, "ORG:") {
		t.Errorf("vcard with name only contains optional lines: %q", got)
	}
	if !strings.HasPrefix(got, "BEGIN:VCARD\r\nVERSION:3.0\r\n") || !strings.HasSuffix(got, "END:VCARD\r\n") {
		t.Errorf("vcard framing wrong: %q", got)
	}
}

func TestFormatMECARD(t *testing.T) {
	got := mustFormat(t, "contact-mecard", FieldValues{
		FieldName:  "Doe,John",
		FieldPhone: "555-0100",
		FieldEmail: "john@example.com",
	})
	want := `MECARD:N:Doe\,John;TEL:5550100;EMAIL:john@example.com;;`
	if got != want {
		t.Errorf("mecard payload = %q, want %q", got, want)
	}
}

func TestFormatEvent(t *testing.T) {
	got := mustFormat(t, "event", FieldValues{
		FieldSummary: "Launch",
		FieldStart:   "2026-09-01T10:30:00Z",
		FieldEnd:     "2026-09-01T12:00:00Z",
	})
	if !strings.Contains(got, "DTSTART:20260901T103000Z\r\n") {
		t.Errorf("event payload missing DTSTART: %q", got)
	}
	if !strings.Contains(got, "DTEND:20260901T120000Z\r\n") {
		t.Errorf("event payload missing DTEND: %q", got)
	}
	if !strings.HasPrefix(got, "BEGIN:VEVENT\r\n") || !strings.HasSuffix(got, "END:VEVENT\r\n") {
		t.Errorf("event framing wrong: %q", got)
	}
}

// An event with no end time derives DTEND from the default duration
// rather than omitting the line.
func TestFormatEventDefaultDuration(t *testing.T) {
	got := mustFormat(t, "event", FieldValues{
		FieldSummary: "Standup",
		FieldStart:   "2026-09-01T10:30:00Z",
	})
	if !strings.Contains(got, "DTEND:20260901T113000Z\r\n") {
		t.Errorf("event payload DTEND != start+1h: %q", got)
	}
}

func TestFormatGeo(t *testing.T) {
	got := mustFormat(t, "geo", FieldValues{
		FieldLatitude:  "45.5",
		FieldLongitude: "-122.6",
	})
	want := "geo:45.500000,-122.600000"
	if got != want {
		t.Errorf("geo payload = %q, want %q", got, want)
	}
}

// Identical template and values must produce byte-identical payloads;
// the history store's duplicate detection depends on it.
func TestFormatDeterministic(t *testing.T) {
	values := FieldValues{
		FieldName:  "Ada",
		FieldPhone: "5550100",
		FieldEmail: "ada@example.org",
		FieldOrg:   "Engines",
		FieldNote:  "met at conf",
	}
	first := mustFormat(t, "contact", values)
	second := mustFormat(t, "contact", values)
	if first != second {
		t.Errorf("format not deterministic:\n%q\n%q", first, second)
	}
}

func TestFormatUnsupportedContentType(t *testing.T) {
	tmpl := Template{ID: "broken", ContentType: ContentType("bogus")}
	_, err := Format(tmpl, FieldValues{})
	if !errors.Is(err, ErrUnsupportedContentType) {
		t.Errorf("Format(bogus) error = %v, want ErrUnsupportedContentType", err)
	}
}
