package types

import "testing"

func TestIsValidSource(t *testing.T) {
	for _, source := range []string{SourceGenerated, SourceScanned} {
		if !IsValidSource(source) {
			t.Errorf("IsValidSource(%q) = false, want true", source)
		}
	}
	for _, source := range []string{"", "imported", "GENERATED"} {
		if IsValidSource(source) {
			t.Errorf("IsValidSource(%q) = true, want false", source)
		}
	}
}
