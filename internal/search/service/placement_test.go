package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"dealfinder_backend/internal/search/ports"
	"dealfinder_backend/internal/search/transport"
	"dealfinder_backend/platform/logger"
)

func TestPremiumVoucherCode(t *testing.T) {
	tests := []struct {
		company string
		want    string
	}{
		{"Glass Act Window Cleaning", "SAVE5GLAS"},
		{"A1 Plumbing", "SAVE5APLU"},
		{"Jo's", "SAVE5JOS"},
		{"", "SAVE5"},
	}

	for _, tt := range tests {
		if got := premiumVoucherCode(tt.company); got != tt.want {
			t.Fatalf("premiumVoucherCode(%q) = %q, want %q", tt.company, got, tt.want)
		}
	}
}

func TestEnrichAdvertiser_GenericTemplate(t *testing.T) {
	svc := New(nil, nil, nil, logger.New("development"))

	advertiser := ports.Advertiser{
		ID:              uuid.New(),
		CompanyName:     "Glass Act Window Cleaning",
		PackageType:     "premium",
		ContactPhone:    "+441752123456",
		PrimaryLocation: "Plymouth",
	}

	entry := svc.enrichAdvertiser(context.Background(), advertiser)

	if !entry.IsAdvertiser {
		t.Fatalf("expected advertiser flag set")
	}
	if entry.Badge != "PREMIUM PARTNER" {
		t.Fatalf("expected premium badge, got %q", entry.Badge)
	}
	if entry.Category != transport.CategoryService {
		t.Fatalf("expected service category, got %q", entry.Category)
	}
	if entry.Price != 0 {
		t.Fatalf("expected advertiser to carry no price, got %d", entry.Price)
	}
	if entry.Voucher == nil || entry.Voucher.Code != "SAVE5GLAS" {
		t.Fatalf("expected exclusive voucher SAVE5GLAS, got %+v", entry.Voucher)
	}
	if entry.AdvertiserID == nil || *entry.AdvertiserID != advertiser.ID {
		t.Fatalf("expected advertiser ID on the entry")
	}
}

func TestEnrichAdvertiser_ProfileOverridesTemplate(t *testing.T) {
	enricher := stubEnricher{profile: ports.BusinessProfile{
		Description:  "Family-run window cleaners since 1998.",
		Services:     []string{"Window cleaning", "Gutter clearing"},
		OpeningHours: "Mon-Fri 8-6",
	}}
	svc := New(nil, nil, enricher, logger.New("development"))

	entry := svc.enrichAdvertiser(context.Background(), ports.Advertiser{
		ID:          uuid.New(),
		CompanyName: "Glass Act Window Cleaning",
		Website:     "https://glassact.example",
	})

	if entry.Notes != "Family-run window cleaners since 1998." {
		t.Fatalf("expected enriched description, got %q", entry.Notes)
	}
	if len(entry.Services) != 2 || entry.Services[0] != "Window cleaning" {
		t.Fatalf("expected enriched services, got %v", entry.Services)
	}
	if entry.Availability != "Mon-Fri 8-6" {
		t.Fatalf("expected enriched opening hours, got %q", entry.Availability)
	}
}

func TestEnrichAdvertiser_EnrichmentFailureFallsBack(t *testing.T) {
	enricher := stubEnricher{err: errors.New("timeout")}
	svc := New(nil, nil, enricher, logger.New("development"))

	entry := svc.enrichAdvertiser(context.Background(), ports.Advertiser{
		ID:              uuid.New(),
		CompanyName:     "Glass Act Window Cleaning",
		Website:         "https://glassact.example",
		PrimaryLocation: "Plymouth",
	})

	if entry.Notes != "Trusted local business serving Plymouth." {
		t.Fatalf("expected generic description fallback, got %q", entry.Notes)
	}
	if entry.Badge != "PREMIUM PARTNER" {
		t.Fatalf("expected entry still built, got badge %q", entry.Badge)
	}
}

func TestMergePlacements_AdvertisersFirstAndCapped(t *testing.T) {
	advertisers := makeEntries("advertiser", 2, true)
	organic := makeEntries("organic", 20, false)

	merged := mergePlacements(advertisers, organic)

	if len(merged) != slotBudget {
		t.Fatalf("expected %d entries, got %d", slotBudget, len(merged))
	}
	for i := 0; i < 2; i++ {
		if !merged[i].IsAdvertiser {
			t.Fatalf("expected entry %d to be an advertiser", i)
		}
	}
	for i := 2; i < len(merged); i++ {
		if merged[i].IsAdvertiser {
			t.Fatalf("unexpected advertiser at organic position %d", i)
		}
	}
}

func TestMergePlacements_AdvertisersNeverDropped(t *testing.T) {
	advertisers := makeEntries("advertiser", slotBudget+3, true)
	organic := makeEntries("organic", 10, false)

	merged := mergePlacements(advertisers, organic)

	if len(merged) != slotBudget+3 {
		t.Fatalf("expected all %d advertisers kept, got %d entries", slotBudget+3, len(merged))
	}
	for i, entry := range merged {
		if !entry.IsAdvertiser {
			t.Fatalf("expected only advertisers, entry %d is organic", i)
		}
	}
}

func TestMergePlacements_ShortOrganicTail(t *testing.T) {
	merged := mergePlacements(makeEntries("advertiser", 1, true), makeEntries("organic", 3, false))

	if len(merged) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(merged))
	}
}

func TestBucketByCategory_StablePartition(t *testing.T) {
	entries := []transport.PlacementEntry{
		{Name: "A", Category: transport.CategoryService},
		{Name: "B", Category: transport.CategoryMaterial},
		{Name: "C", Category: transport.CategoryService},
		{Name: "D", Category: transport.CategoryRetailer},
		{Name: "E", Category: transport.CategoryMaterial},
	}

	materials, services, retailers := bucketByCategory(entries)

	if len(materials) != 2 || materials[0].Name != "B" || materials[1].Name != "E" {
		t.Fatalf("unexpected materials bucket: %v", names(materials))
	}
	if len(services) != 2 || services[0].Name != "A" || services[1].Name != "C" {
		t.Fatalf("unexpected services bucket: %v", names(services))
	}
	if len(retailers) != 1 || retailers[0].Name != "D" {
		t.Fatalf("unexpected retailers bucket: %v", names(retailers))
	}
}

type stubEnricher struct {
	profile ports.BusinessProfile
	err     error
}

func (s stubEnricher) EnrichBusinessProfile(_ context.Context, _, _ string) (ports.BusinessProfile, error) {
	return s.profile, s.err
}

func makeEntries(prefix string, n int, advertiser bool) []transport.PlacementEntry {
	entries := make([]transport.PlacementEntry, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, transport.PlacementEntry{
			Name:         fmt.Sprintf("%s-%d", prefix, i),
			Contact:      fmt.Sprintf("0800 %03d", i),
			IsAdvertiser: advertiser,
		})
	}
	return entries
}

func names(entries []transport.PlacementEntry) []string {
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entry.Name)
	}
	return out
}
