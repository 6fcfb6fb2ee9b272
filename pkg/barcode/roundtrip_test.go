package barcode

import "testing"

// sampleValues holds representative field values for every built-in
// template, with delimiter characters mixed in where escaping matters.
var sampleValues = map[string]FieldValues{
	"text":           {FieldText: "Just some notes"},
	"url":            {FieldValue: "example.com/path?a=b"},
	"url-secure":     {FieldValue: "example.com"},
	"email":          {FieldAddress: "a@b.com", FieldSubject: "hi;there", FieldBody: "see you"},
	"phone":          {FieldNumber: "+1-555-0100"},
	"sms":            {FieldNumber: "555 0100", FieldMessage: "on my way"},
	"wifi":           {FieldSSID: "Caf;e", FieldPassword: `p\q`, FieldAuth: "WPA"},
	"contact":        {FieldName: "Ada; Lovelace", FieldPhone: "5550100", FieldEmail: "ada@example.org"},
	"contact-mecard": {FieldName: "Doe,John", FieldPhone: "5550100"},
	"event":          {FieldSummary: "Launch; T-0", FieldStart: "2026-09-01T10:30:00Z"},
	"geo":            {FieldLatitude: "45.5", FieldLongitude: "-122.6"},
}

// Formatting and then classifying must land back on the template's
// declared content type for every built-in template.
func TestFormatClassifyRoundTrip(t *testing.T) {
	r := newTestRegistry(t)
	for _, tmpl := range r.Templates() {
		t.Run(tmpl.ID, func(t *testing.T) {
			values, ok := sampleValues[tmpl.ID]
			if !ok {
				t.Fatalf("no sample values for template %s", tmpl.ID)
			}
			if err := r.Validate(tmpl, values); err != nil {
				t.Fatalf("Validate: %v", err)
			}
			payload, err := Format(tmpl, values)
			if err != nil {
				t.Fatalf("Format: %v", err)
			}
			if got := Classify(payload); got != tmpl.ContentType {
				t.Errorf("Classify(Format(%s)) = %s, want %s (payload %q)",
					tmpl.ID, got, tmpl.ContentType, payload)
			}
		})
	}
}

// Structured payloads must survive a format → parse round trip with the
// key fields intact (after formatter-side normalization).
func TestFormatParseRoundTrip(t *testing.T) {
	tests := []struct {
		template string
		wantKeys map[string]string
	}{
		{"wifi", map[string]string{FieldSSID: "Caf;e", FieldPassword: `p\q`, FieldAuth: "WPA"}},
		{"contact-mecard", map[string]string{FieldName: "Doe,John", FieldPhone: "5550100"}},
		{"geo", map[string]string{FieldLatitude: "45.500000", FieldLongitude: "-122.600000"}},
		{"phone", map[string]string{FieldNumber: "+15550100"}},
	}
	r := newTestRegistry(t)
	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			tmpl, err := r.Get(tt.template)
			if err != nil {
				t.Fatal(err)
			}
			payload, err := Format(tmpl, sampleValues[tt.template])
			if err != nil {
				t.Fatalf("Format: %v", err)
			}
			fields := Parse(tmpl.ContentType, payload)
			for key, want := range tt.wantKeys {
				if fields[key] != want {
					t.Errorf("field %s = %q, want %q (payload %q)", key, fields[key], want, payload)
				}
			}
		})
	}
}
