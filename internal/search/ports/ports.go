// Package ports defines the collaborator interfaces the search engine
// depends on. Implementations live outside the engine (supplier-data agent,
// advertisers repository, profile enricher) and are injected by main.go,
// keeping the engine pure and testable.
package ports

import (
	"context"

	"github.com/google/uuid"
)

// RawSupplier is one supplier candidate returned by the supplier-data source.
// The engine treats it as read-only input.
type RawSupplier struct {
	Name         string
	Type         string
	Price        int // GBP, whole pounds
	Rating       float64
	Experience   string
	Contact      string
	Address      string
	Notes        string
	Services     []string
	Availability string
	Link         string
	SourceTerm   string
}

// RawVoucher is one voucher candidate returned by the supplier-data source.
type RawVoucher struct {
	Code       string
	Discount   string
	Retailer   string
	ValidUntil string
	Value      int
	Category   string
	Terms      string
}

// Advertiser is an active paying business as read from storage.
type Advertiser struct {
	ID               uuid.UUID
	CompanyName      string
	PackageType      string
	ContactEmail     string
	ContactPhone     string
	Website          string
	Description      string
	PrimaryLocation  string
	ServiceLocations []string
}

// BusinessProfile is the enriched description of an advertiser's business,
// fetched best-effort from its public website.
type BusinessProfile struct {
	Description  string
	Services     []string
	OpeningHours string
}

// SupplierSource fetches supplier and voucher candidates for one search term.
// One attempt per term; the engine tolerates per-term failures.
type SupplierSource interface {
	FetchSuppliersAndVouchers(ctx context.Context, term, location string, budget int) ([]RawSupplier, []RawVoucher, error)
}

// AdvertiserReader returns the current set of active advertisers. Read fresh
// per request so activation state is always current.
type AdvertiserReader interface {
	ListActive(ctx context.Context) ([]Advertiser, error)
}

// ProfileEnricher fetches a richer business profile for an advertiser.
// Best-effort: any error falls back to the generic placement template.
type ProfileEnricher interface {
	EnrichBusinessProfile(ctx context.Context, companyName, website string) (BusinessProfile, error)
}

// NoopEnricher is a ProfileEnricher that never enriches. Used in tests and
// when no enrichment backend is configured.
type NoopEnricher struct{}

// EnrichBusinessProfile always returns an empty profile.
func (NoopEnricher) EnrichBusinessProfile(context.Context, string, string) (BusinessProfile, error) {
	return BusinessProfile{}, nil
}

var _ ProfileEnricher = NoopEnricher{}
