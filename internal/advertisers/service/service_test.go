package service

import "testing"

func TestSanitizeLocations(t *testing.T) {
	got := sanitizeLocations([]string{" Plymouth ", "", "  ", "Devon", "<b>Exeter</b>"})

	want := []string{"Plymouth", "Devon", "Exeter"}
	if len(got) != len(want) {
		t.Fatalf("expected %d locations, got %v", len(want), got)
	}
	for i, location := range want {
		if got[i] != location {
			t.Fatalf("expected %q at index %d, got %q", location, i, got[i])
		}
	}
}
