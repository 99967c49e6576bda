package enrichment

import (
	"context"
	"testing"

	"dealfinder_backend/platform/logger"
)

func TestDomainAllowed(t *testing.T) {
	svc := New(NewClient(logger.New("development")), logger.New("development"),
		[]string{"glassact.example", "rapidflow.example"})

	tests := []struct {
		website string
		want    bool
	}{
		{"https://glassact.example", true},
		{"https://www.glassact.example/about", true},
		{"https://rapidflow.example", true},
		{"https://evil.example", false},
		{"https://glassact.example.evil.example", false},
		{"not a url", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := svc.domainAllowed(tt.website); got != tt.want {
			t.Fatalf("domainAllowed(%q) = %v, want %v", tt.website, got, tt.want)
		}
	}
}

func TestDomainAllowed_EmptyListAllowsAll(t *testing.T) {
	svc := New(NewClient(logger.New("development")), logger.New("development"), nil)

	if !svc.domainAllowed("https://anything.example") {
		t.Fatalf("expected empty allow list to allow all domains")
	}
}

func TestEnrichBusinessProfile_BlockedDomain(t *testing.T) {
	svc := New(NewClient(logger.New("development")), logger.New("development"),
		[]string{"glassact.example"})

	_, err := svc.EnrichBusinessProfile(context.Background(), "Evil Co", "https://evil.example")
	if err == nil {
		t.Fatalf("expected error for blocked domain")
	}
}
