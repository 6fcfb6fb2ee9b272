package barcode

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Registry errors.
var (
	// ErrUnknownTemplate is returned by Get for an unregistered template
	// ID. Seeing it in production indicates a caller defect, not bad
	// user field input.
	ErrUnknownTemplate = errors.New("unknown template")

	// ErrUnsupportedContentType is returned by the construction
	// self-check when a template declares a content type the formatter
	// has no rendering rule for. It is a configuration bug and fatal at
	// startup; it never occurs at runtime once NewRegistry succeeds.
	ErrUnsupportedContentType = errors.New("unsupported content type")
)

// ValidationError reports every violation found while validating field
// values against a template: required fields that are absent and present
// fields whose validator rejected the value. All violations are
// collected before reporting so the user can fix them in one pass.
type ValidationError struct {
	TemplateID  string
	MissingKeys []string
	InvalidKeys []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string
	if len(e.MissingKeys) > 0 {
		parts = append(parts, "missing required fields: "+strings.Join(e.MissingKeys, ", "))
	}
	if len(e.InvalidKeys) > 0 {
		parts = append(parts, "invalid fields: "+strings.Join(e.InvalidKeys, ", "))
	}
	return fmt.Sprintf("template %s: %s", e.TemplateID, strings.Join(parts, "; "))
}

// Registry holds the built-in templates in stable display order.
// It is constructed once at process start and read-only afterwards.
type Registry struct {
	templates []Template
	byID      map[string]Template
}

// NewRegistry builds the registry of built-in templates and runs the
// formatter consistency self-check: every template's content type must
// have a rendering rule. A failed check returns a wrapped
// ErrUnsupportedContentType and is treated as fatal by callers.
func NewRegistry() (*Registry, error) {
	r := &Registry{
		templates: builtinTemplates(),
		byID:      make(map[string]Template),
	}
	for _, t := range r.templates {
		if !formatterSupports(t.ContentType) {
			return nil, fmt.Errorf("template %s (%s): %w", t.ID, t.ContentType, ErrUnsupportedContentType)
		}
		r.byID[t.ID] = t
	}
	return r, nil
}

// Templates returns all templates in stable display order. The returned
// slice is a copy; callers may not mutate registry state through it.
func (r *Registry) Templates() []Template {
	out := make([]Template, len(r.templates))
	copy(out, r.templates)
	return out
}

// Get returns the template with the given ID.
// Returns ErrUnknownTemplate if the ID is not registered.
func (r *Registry) Get(id string) (Template, error) {
	t, ok := r.byID[id]
	if !ok {
		return Template{}, fmt.Errorf("%q: %w", id, ErrUnknownTemplate)
	}
	return t, nil
}

// Validate checks values against the template's field specs. A field is
// missing when required and absent; invalid when present but rejected by
// its validator. Every violation is collected; a nil return means the
// values are ready for Format. Keys in values that match no spec are
// ignored.
func (r *Registry) Validate(t Template, values FieldValues) error {
	verr := &ValidationError{TemplateID: t.ID}
	for _, spec := range t.Fields {
		val, present := values[spec.Key]
		if !present {
			if spec.Required {
				verr.MissingKeys = append(verr.MissingKeys, spec.Key)
			}
			continue
		}
		if spec.Validate != nil && !spec.Validate(val) {
			verr.InvalidKeys = append(verr.InvalidKeys, spec.Key)
		}
	}
	if len(verr.MissingKeys) == 0 && len(verr.InvalidKeys) == 0 {
		return nil
	}
	sort.Strings(verr.MissingKeys)
	sort.Strings(verr.InvalidKeys)
	return verr
}

// builtinTemplates returns the static template list in display order.
func builtinTemplates() []Template {
	return []Template{
		{
			ID:          "text",
			Name:        "Plain text",
			ContentType: ContentText,
			Fields: []FieldSpec{
				{Key: FieldText, Label: "Text", Required: true, Validate: validNonEmpty},
			},
		},
		{
			ID:          "url",
			Name:        "Website (http)",
			ContentType: ContentURL,
			Fields: []FieldSpec{
				{Key: FieldValue, Label: "URL", Required: true, Validate: validNonEmpty},
				{Key: FieldScheme, Label: "Default scheme", Default: "http://"},
			},
		},
		{
			ID:          "url-secure",
			Name:        "Website (https)",
			ContentType: ContentURL,
			Fields: []FieldSpec{
				{Key: FieldValue, Label: "URL", Required: true, Validate: validNonEmpty},
				{Key: FieldScheme, Label: "Default scheme", Default: "https://"},
			},
		},
		{
			ID:          "email",
			Name:        "Email message",
			ContentType: ContentEmail,
			Fields: []FieldSpec{
				{Key: FieldAddress, Label: "To", Required: true, Validate: validEmailAddress},
				{Key: FieldSubject, Label: "Subject"},
				{Key: FieldBody, Label: "Body"},
			},
		},
		{
			ID:          "phone",
			Name:        "Phone number",
			ContentType: ContentPhone,
			Fields: []FieldSpec{
				{Key: FieldNumber, Label: "Number", Required: true, Validate: validPhoneNumber},
			},
		},
		{
			ID:          "sms",
			Name:        "SMS message",
			ContentType: ContentSMS,
			Fields: []FieldSpec{
				{Key: FieldNumber, Label: "Number", Required: true, Validate: validPhoneNumber},
				{Key: FieldMessage, Label: "Message"},
			},
		},
		{
			ID:          "wifi",
			Name:        "Wi-Fi network",
			ContentType: ContentWifi,
			Fields: []FieldSpec{
				{Key: FieldSSID, Label: "Network name", Required: true, Validate: validNonEmpty},
				{Key: FieldPassword, Label: "Password"},
				{Key: FieldAuth, Label: "Authentication", Validate: validWifiAuth, Default: "WPA"},
				{Key: FieldHidden, Label: "Hidden network", Validate: validBool, Default: "false"},
			},
		},
		{
			ID:          "contact",
			Name:        "Contact card (vCard)",
			ContentType: ContentContact,
			Variant:     VariantVCard,
			Fields:      contactFields(),
		},
		{
			ID:          "contact-mecard",
			Name:        "Contact card (MECARD)",
			ContentType: ContentContact,
			Variant:     VariantMECARD,
			Fields:      contactFields(),
		},
		{
			ID:          "event",
			Name:        "Calendar event",
			ContentType: ContentEvent,
			Fields: []FieldSpec{
				{Key: FieldSummary, Label: "Title", Required: true, Validate: validNonEmpty},
				{Key: FieldLocation, Label: "Location"},
				{Key: FieldNote, Label: "Description"},
				{Key: FieldStart, Label: "Start", Required: true, Validate: validEventTime},
				{Key: FieldEnd, Label: "End", Validate: optional(validEventTime)},
			},
		},
		{
			ID:          "geo",
			Name:        "Location",
			ContentType: ContentGeo,
			Fields: []FieldSpec{
				{Key: FieldLatitude, Label: "Latitude", Required: true, Validate: validLatitude},
				{Key: FieldLongitude, Label: "Longitude", Required: true, Validate: validLongitude},
			},
		},
	}
}

// contactFields is shared by the vCard and MECARD contact templates;
// both variants render from the same field set.
func contactFields() []FieldSpec {
	return []FieldSpec{
		{Key: FieldName, Label: "Name", Required: true, Validate: validNonEmpty},
		{Key: FieldPhone, Label: "Phone", Validate: optional(validPhoneNumber)},
		{Key: FieldEmail, Label: "Email", Validate: optional(validEmailAddress)},
		{Key: FieldOrg, Label: "Organization"},
		{Key: FieldTitle, Label: "Job title"},
		{Key: FieldStreet, Label: "Address"},
		{Key: FieldURL, Label: "Website"},
		{Key: FieldNote, Label: "Note"},
	}
}
