package barcode

// Field keys shared by the built-in templates. Keys are stable strings:
// they are the map keys under which user-entered content is persisted.
const (
	FieldText      = "text"
	FieldValue     = "value"
	FieldScheme    = "scheme"
	FieldAddress   = "address"
	FieldSubject   = "subject"
	FieldBody      = "body"
	FieldNumber    = "number"
	FieldMessage   = "message"
	FieldSSID      = "ssid"
	FieldPassword  = "password"
	FieldAuth      = "auth"
	FieldHidden    = "hidden"
	FieldName      = "name"
	FieldPhone     = "phone"
	FieldEmail     = "email"
	FieldOrg       = "org"
	FieldTitle     = "title"
	FieldStreet    = "street"
	FieldURL       = "url"
	FieldNote      = "note"
	FieldSummary   = "summary"
	FieldLocation  = "location"
	FieldStart     = "start"
	FieldEnd       = "end"
	FieldLatitude  = "latitude"
	FieldLongitude = "longitude"
)

// Contact rendering variants (Template.Variant for ContentContact).
const (
	VariantVCard  = "vcard"
	VariantMECARD = "mecard"
)

// FieldSpec describes one field of a template: its stable key, a
// human-readable label, whether it must be present, an optional validator
// predicate over the raw user input, and an optional default applied by
// the formatter when the field is absent.
type FieldSpec struct {
	Key      string
	Label    string
	Required bool
	Validate func(value string) bool
	Default  string
}

// Template is an immutable descriptor of one payload schema: which
// fields the formatter needs and which content type it produces.
// Templates are built once at process start and never mutated; multiple
// templates may target the same content type (e.g. the http and https
// URL variants).
type Template struct {
	// ID is the stable template identifier used on the command line and
	// in persisted history records.
	ID string

	// Name is the human-readable display name.
	Name string

	// ContentType is the content type the rendered payload classifies as.
	ContentType ContentType

	// Variant selects between alternative renderings of the same content
	// type, such as MECARD versus vCard contact cards. Empty for
	// templates with a single rendering.
	Variant string

	// Fields lists the field specs in display order. The list is the
	// single source of truth for what the formatter reads.
	Fields []FieldSpec
}

// Field returns the FieldSpec with the given key and whether it exists.
func (t Template) Field(key string) (FieldSpec, bool) {
	for _, f := range t.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// FieldValues maps FieldSpec keys to user-supplied strings. A key that
// is not present is absent, which is distinct from an empty value.
type FieldValues map[string]string

// lookup returns the value for key, falling back to the spec default
// when the key is absent. Used by the formatter after validation.
func (v FieldValues) lookup(spec FieldSpec) string {
	if val, ok := v[spec.Key]; ok {
		return val
	}
	return spec.Default
}

// Result is the outcome of classifying (and, for structured content
// types, parsing) a raw decoded string. Fields may be partially
// populated; partial extraction is not a failure.
type Result struct {
	ContentType ContentType       `json:"content_type"`
	Fields      map[string]string `json:"fields,omitempty"`
}
