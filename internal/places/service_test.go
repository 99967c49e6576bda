package places

import "testing"

func TestBuildSuggestion(t *testing.T) {
	raw := nominatimResponse{
		Lat: "50.3755",
		Lon: "-4.1427",
		Address: nominatimAddress{
			City:     "Plymouth",
			County:   "Devon",
			Postcode: "PL1",
		},
	}

	suggestion, ok := buildSuggestion(raw)
	if !ok {
		t.Fatalf("expected suggestion to be built")
	}
	if suggestion.Name != "Plymouth" {
		t.Fatalf("expected name Plymouth, got %q", suggestion.Name)
	}
	if suggestion.Label != "Plymouth, Devon" {
		t.Fatalf("unexpected label: %q", suggestion.Label)
	}
}

func TestBuildSuggestion_TownFallback(t *testing.T) {
	raw := nominatimResponse{
		Address: nominatimAddress{Town: "Tavistock", County: "Devon"},
	}

	suggestion, ok := buildSuggestion(raw)
	if !ok {
		t.Fatalf("expected suggestion to be built")
	}
	if suggestion.Name != "Tavistock" {
		t.Fatalf("expected town fallback, got %q", suggestion.Name)
	}
}

func TestBuildSuggestion_NoNameDropped(t *testing.T) {
	raw := nominatimResponse{Address: nominatimAddress{County: "Devon"}}

	if _, ok := buildSuggestion(raw); ok {
		t.Fatalf("expected suggestion without a place name to be dropped")
	}
}

func TestBuildLabel_SkipsDuplicateCounty(t *testing.T) {
	suggestion := PlaceSuggestion{Name: "Bristol", County: "Bristol"}

	if got := buildLabel(suggestion); got != "Bristol" {
		t.Fatalf("expected county deduplicated, got %q", got)
	}
}
