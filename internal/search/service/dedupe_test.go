package service

import (
	"testing"

	"dealfinder_backend/internal/search/ports"
	"dealfinder_backend/internal/search/transport"
)

func TestDedupeSuppliers_FirstOccurrenceWins(t *testing.T) {
	suppliers := []ports.RawSupplier{
		{Name: "Acme Kitchens", Contact: "0800 111 222", SourceTerm: "kitchen"},
		{Name: "Budget Kitchens", Contact: "0800 333 444", SourceTerm: "kitchen"},
		{Name: "Acme Kitchens", Contact: "0800 111 222", SourceTerm: "kitchen supplies"},
	}

	out := dedupeSuppliers(suppliers)

	if len(out) != 2 {
		t.Fatalf("expected 2 suppliers, got %d", len(out))
	}
	if out[0].SourceTerm != "kitchen" {
		t.Fatalf("expected first occurrence to win, got source term %q", out[0].SourceTerm)
	}
}

func TestDedupeSuppliers_SameNameDifferentContactKept(t *testing.T) {
	suppliers := []ports.RawSupplier{
		{Name: "Acme Kitchens", Contact: "0800 111 222"},
		{Name: "Acme Kitchens", Contact: "0161 555 666"},
	}

	if out := dedupeSuppliers(suppliers); len(out) != 2 {
		t.Fatalf("expected both branches kept, got %d", len(out))
	}
}

func TestDedupeVouchers_CodePlusRetailer(t *testing.T) {
	vouchers := []ports.RawVoucher{
		{Code: "SAVE10", Retailer: "TechDirect"},
		{Code: "SAVE10", Retailer: "GadgetWorld"},
		{Code: "SAVE10", Retailer: "TechDirect"},
	}

	if out := dedupeVouchers(vouchers); len(out) != 2 {
		t.Fatalf("expected 2 vouchers, got %d", len(out))
	}
}

func TestDedupeEntries_AdvertiserShadowsOrganicDuplicate(t *testing.T) {
	entries := []transport.PlacementEntry{
		{Name: "Glass Act", Contact: "01752 123456", IsAdvertiser: true},
		{Name: "Glass Act", Contact: "01752 123456"},
		{Name: "ShineBright", Contact: "0800 777 888"},
	}

	out := dedupeEntries(entries)

	if len(out) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(out))
	}
	if !out[0].IsAdvertiser {
		t.Fatalf("expected advertiser entry to win over the organic duplicate")
	}
}
