package service

import (
	"context"
	"strings"
	"time"
	"unicode"

	"dealfinder_backend/internal/search/ports"
	"dealfinder_backend/internal/search/transport"
)

const (
	// slotBudget caps the merged supplier list. The cap is applied to the
	// organic tail only; advertisers are never dropped.
	slotBudget = 15

	premiumBadge    = "PREMIUM PARTNER"
	premiumDiscount = "5% off first service"

	enrichTimeout = 10 * time.Second
)

// premiumVoucherCode derives the advertiser's exclusive voucher code from its
// company name: "SAVE5" plus the first four letters, uppercased. Two
// advertisers sharing a four-letter prefix produce the same code; the
// business has not decided how to disambiguate, so neither do we.
func premiumVoucherCode(companyName string) string {
	var letters strings.Builder
	for _, r := range companyName {
		if !unicode.IsLetter(r) {
			continue
		}
		letters.WriteRune(unicode.ToUpper(r))
		if letters.Len() >= 4 {
			break
		}
	}
	return "SAVE5" + letters.String()
}

// enrichAdvertiser builds the premium placement entry for one relevant
// advertiser. Profile enrichment is best-effort: any failure falls back to
// the generic template without blocking the placement.
func (s *Service) enrichAdvertiser(ctx context.Context, advertiser ports.Advertiser) transport.PlacementEntry {
	id := advertiser.ID
	entry := transport.PlacementEntry{
		Name:         advertiser.CompanyName,
		Category:     transport.CategoryService,
		Type:         advertiser.PackageType,
		Rating:       5.0,
		Contact:      advertiser.ContactPhone,
		Address:      advertiser.PrimaryLocation,
		Notes:        genericDescription(advertiser),
		Services:     []string{"Free quotes", "Fully insured", "Local specialists"},
		Availability: "Contact for availability",
		Link:         advertiser.Website,
		IsAdvertiser: true,
		Badge:        premiumBadge,
		AdvertiserID: &id,
		Voucher: &transport.Voucher{
			Code:     premiumVoucherCode(advertiser.CompanyName),
			Discount: premiumDiscount,
			Retailer: advertiser.CompanyName,
		},
	}

	if advertiser.Website == "" {
		return entry
	}

	enrichCtx, cancel := context.WithTimeout(ctx, enrichTimeout)
	defer cancel()

	profile, err := s.enricher.EnrichBusinessProfile(enrichCtx, advertiser.CompanyName, advertiser.Website)
	if err != nil {
		s.log.Debug("profile enrichment failed, using generic template",
			"company", advertiser.CompanyName, "error", err)
		return entry
	}

	if profile.Description != "" {
		entry.Notes = profile.Description
	}
	if len(profile.Services) > 0 {
		entry.Services = profile.Services
	}
	if profile.OpeningHours != "" {
		entry.Availability = profile.OpeningHours
	}
	return entry
}

func genericDescription(advertiser ports.Advertiser) string {
	if advertiser.Description != "" {
		return advertiser.Description
	}
	return "Trusted local business serving " + displayLocation(advertiser) + "."
}

func displayLocation(advertiser ports.Advertiser) string {
	if advertiser.PrimaryLocation != "" {
		return advertiser.PrimaryLocation
	}
	return "your area"
}

// mergePlacements composes the final ordered list: every advertiser first,
// then the organic tail capped so the total never exceeds slotBudget.
func mergePlacements(advertisers, organic []transport.PlacementEntry) []transport.PlacementEntry {
	merged := make([]transport.PlacementEntry, 0, slotBudget)
	merged = append(merged, advertisers...)

	remaining := slotBudget - len(advertisers)
	if remaining < 0 {
		remaining = 0
	}
	if remaining > len(organic) {
		remaining = len(organic)
	}
	merged = append(merged, organic[:remaining]...)

	return dedupeEntries(merged)
}

// bucketByCategory partitions the merged list for the grouped display
// sections. Stable: relative order within each bucket matches the merged
// list.
func bucketByCategory(entries []transport.PlacementEntry) (materials, services, retailers []transport.PlacementEntry) {
	materials = make([]transport.PlacementEntry, 0, len(entries))
	services = make([]transport.PlacementEntry, 0, len(entries))
	retailers = make([]transport.PlacementEntry, 0, len(entries))

	for _, entry := range entries {
		switch entry.Category {
		case transport.CategoryMaterial:
			materials = append(materials, entry)
		case transport.CategoryService:
			services = append(services, entry)
		default:
			retailers = append(retailers, entry)
		}
	}
	return materials, services, retailers
}
