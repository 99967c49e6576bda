package service

import (
	"testing"

	"github.com/google/uuid"

	"dealfinder_backend/internal/search/ports"
)

func TestPassesKeywordGate(t *testing.T) {
	tests := []struct {
		name    string
		company string
		query   string
		want    bool
	}{
		{"window company on window query", "Glass Act Window Cleaning", "window cleaning", true},
		{"window company on clean query", "Glass Act Window Cleaning", "gutter clean", true},
		{"window company on plumbing query", "Glass Act Window Cleaning", "emergency plumber", false},
		{"electrician on rewiring query", "SafeSpark Electrical", "house wiring", true},
		{"plumber on boiler query", "RapidFlow Plumbing", "boiler service", false},
		{"plumber on drain query", "RapidFlow Plumbing", "blocked drain", true},
		{"unknown trade fails closed", "Dave's Consultancy", "consultancy", false},
		{"case insensitive", "GLASS ACT WINDOW CLEANING", "WINDOW REPAIR", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := passesKeywordGate(tt.company, tt.query); got != tt.want {
				t.Fatalf("passesKeywordGate(%q, %q) = %v, want %v", tt.company, tt.query, got, tt.want)
			}
		})
	}
}

func TestPassesLocationGate_DeclaredLocations(t *testing.T) {
	advertiser := ports.Advertiser{
		CompanyName:      "SafeSpark Electrical",
		ServiceLocations: []string{"Manchester", "Salford"},
	}

	if !passesLocationGate(advertiser, "manchester") {
		t.Fatalf("expected exact declared location to pass")
	}
	if !passesLocationGate(advertiser, "Greater Manchester") {
		t.Fatalf("expected location containing a served area to pass")
	}
	if !passesLocationGate(advertiser, "Sal") {
		t.Fatalf("expected partial location contained in a served area to pass")
	}
	if passesLocationGate(advertiser, "Plymouth") {
		t.Fatalf("expected unserved location to fail")
	}
	if passesLocationGate(advertiser, "") {
		t.Fatalf("expected empty location to default to uk and fail the declared list")
	}
}

func TestPassesLocationGate_LegacyGlassActRule(t *testing.T) {
	glassAct := ports.Advertiser{CompanyName: "Glass Act Window Cleaning"}

	if !passesLocationGate(glassAct, "Plymouth") {
		t.Fatalf("expected Glass Act to serve Plymouth")
	}
	if !passesLocationGate(glassAct, "devon") {
		t.Fatalf("expected Glass Act to serve Devon")
	}
	if !passesLocationGate(glassAct, "PL4 7AA") {
		t.Fatalf("expected Glass Act to serve a PL postcode")
	}
	if passesLocationGate(glassAct, "Manchester") {
		t.Fatalf("did not expect Glass Act to serve Manchester")
	}

	other := ports.Advertiser{CompanyName: "ShineBright Cleaners"}
	if passesLocationGate(other, "Plymouth") {
		t.Fatalf("expected advertiser without declared locations to fail closed")
	}
}

func TestFilterRelevantAdvertisers_BothGatesRequired(t *testing.T) {
	advertisers := []ports.Advertiser{
		{ID: uuid.New(), CompanyName: "Glass Act Window Cleaning"},
		{ID: uuid.New(), CompanyName: "SafeSpark Electrical", ServiceLocations: []string{"Plymouth"}},
		{ID: uuid.New(), CompanyName: "RapidFlow Plumbing", ServiceLocations: []string{"Plymouth"}},
	}

	relevant := filterRelevantAdvertisers(advertisers, "window cleaning", "Plymouth")

	if len(relevant) != 1 {
		t.Fatalf("expected 1 relevant advertiser, got %d", len(relevant))
	}
	if relevant[0].CompanyName != "Glass Act Window Cleaning" {
		t.Fatalf("expected Glass Act, got %q", relevant[0].CompanyName)
	}
}
