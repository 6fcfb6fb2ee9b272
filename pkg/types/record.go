package types

import "time"

// Record sources. A record enters the history either from the generate
// flow or from the scan flow.
const (
	SourceGenerated = "generated"
	SourceScanned   = "scanned"
)

// validSources is the set of recognized record source values.
var validSources = map[string]bool{
	SourceGenerated: true,
	SourceScanned:   true,
}

// IsValidSource reports whether source is a recognized record source.
func IsValidSource(source string) bool {
	return validSources[source]
}

// Record is one history entry: a payload that was generated or scanned,
// together with its classification and any structured fields. Payload
// and Fields are opaque to the store; the codec in pkg/barcode owns
// their meaning.
type Record struct {
	RecordID    string            `json:"record_id"`                // UUID v7, generated on save.
	Source      string            `json:"source"`                   // generated or scanned.
	ContentType string            `json:"content_type"`             // stable content type token.
	Format      string            `json:"format"`                   // barcode symbol format token.
	TemplateID  string            `json:"template_id,omitempty"`    // set for generated records only.
	Payload     string            `json:"payload"`                  // the exact barcode text.
	Fields      map[string]string `json:"fields,omitempty"`         // structured fields, may be empty.
	Options     *RenderOptions    `json:"render_options,omitempty"` // encoder settings, generated records only.
	CreatedAt   time.Time         `json:"created_at"`
}

// RenderOptions are pass-through rendering parameters for an external
// symbol encoder. They are stored verbatim on generated history records;
// the codec and the store never interpret them.
type RenderOptions struct {
	Size       int    `json:"size,omitempty"`
	Margin     int    `json:"margin,omitempty"`
	Foreground string `json:"foreground,omitempty"`
	Background string `json:"background,omitempty"`
	ECLevel    string `json:"ec_level,omitempty"`
}

// Filter narrows List results. Zero values match everything.
type Filter struct {
	ContentType string // match the content type token exactly.
	Source      string // match the record source exactly.
	Limit       int    // maximum records returned; 0 means no limit.
}
