package service

import (
	"strings"
	"testing"
)

func TestNewClaimReference(t *testing.T) {
	ref := newClaimReference()
	if len(ref) != 16 {
		t.Fatalf("expected 16-character reference, got %q (%d)", ref, len(ref))
	}
	if ref != strings.ToUpper(ref) {
		t.Fatalf("expected uppercase reference, got %q", ref)
	}

	if other := newClaimReference(); other == ref {
		t.Fatalf("expected distinct references, got %q twice", ref)
	}
}
