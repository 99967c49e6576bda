package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"dealfinder_backend/internal/search/ports"
	"dealfinder_backend/internal/search/transport"
	"dealfinder_backend/platform/apperr"
	"dealfinder_backend/platform/logger"
)

type fakeSource struct {
	suppliers map[string][]ports.RawSupplier
	vouchers  map[string][]ports.RawVoucher
	failTerms map[string]error
}

func (f *fakeSource) FetchSuppliersAndVouchers(_ context.Context, term, _ string, _ int) ([]ports.RawSupplier, []ports.RawVoucher, error) {
	if err, ok := f.failTerms[term]; ok {
		return nil, nil, err
	}
	return f.suppliers[term], f.vouchers[term], nil
}

type fakeAdvertisers struct {
	active []ports.Advertiser
	err    error
}

func (f *fakeAdvertisers) ListActive(context.Context) ([]ports.Advertiser, error) {
	return f.active, f.err
}

func newTestService(source ports.SupplierSource, advertisers ports.AdvertiserReader) *Service {
	return New(source, advertisers, ports.NoopEnricher{}, logger.New("development"))
}

func TestAggregate_PartialTermFailureTolerated(t *testing.T) {
	source := &fakeSource{
		suppliers: map[string][]ports.RawSupplier{
			"tv": {
				{Name: "TechDirect", Contact: "0800 111 222", Price: 300},
			},
			"tv fitting": {
				{Name: "WallMount Pros", Contact: "0800 333 444", Price: 80},
			},
		},
		failTerms: map[string]error{
			"tv installation": errors.New("upstream 503"),
			"tv service":      errors.New("upstream 503"),
		},
	}
	svc := newTestService(source, &fakeAdvertisers{})

	result, err := svc.Aggregate(context.Background(), transport.SearchRequest{Query: "tv"})
	if err != nil {
		t.Fatalf("expected partial failure to be tolerated, got %v", err)
	}
	if len(result.Suppliers) != 2 {
		t.Fatalf("expected 2 suppliers from the surviving terms, got %d", len(result.Suppliers))
	}
	if !strings.Contains(result.AnalysisNotes, "2 terms unavailable") {
		t.Fatalf("expected failed terms noted, got %q", result.AnalysisNotes)
	}
}

func TestAggregate_AdvertiserStoreFailureIsFatal(t *testing.T) {
	svc := newTestService(&fakeSource{}, &fakeAdvertisers{err: errors.New("connection refused")})

	_, err := svc.Aggregate(context.Background(), transport.SearchRequest{Query: "tv"})
	if err == nil {
		t.Fatalf("expected error when advertiser store is down")
	}
	if !apperr.Is(err, apperr.KindInternal) {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestAggregate_AdvertisersPlacedFirst(t *testing.T) {
	source := &fakeSource{
		suppliers: map[string][]ports.RawSupplier{
			"window cleaning": {
				{Name: "Budget Cleaners", Contact: "0800 555 666", Price: 40},
			},
		},
	}
	advertisers := &fakeAdvertisers{active: []ports.Advertiser{
		{ID: uuid.New(), CompanyName: "Glass Act Window Cleaning", PackageType: "premium", PrimaryLocation: "Plymouth"},
		{ID: uuid.New(), CompanyName: "RapidFlow Plumbing", ServiceLocations: []string{"Plymouth"}},
	}}
	svc := newTestService(source, advertisers)

	result, err := svc.Aggregate(context.Background(), transport.SearchRequest{Query: "window cleaning", Location: "Plymouth"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Suppliers) == 0 {
		t.Fatalf("expected suppliers in the result")
	}
	first := result.Suppliers[0]
	if !first.IsAdvertiser || first.Name != "Glass Act Window Cleaning" {
		t.Fatalf("expected Glass Act placed first, got %+v", first)
	}
	if first.Badge != "PREMIUM PARTNER" {
		t.Fatalf("expected premium badge, got %q", first.Badge)
	}
	// The plumbing advertiser is irrelevant to a window query.
	for _, entry := range result.Suppliers[1:] {
		if entry.IsAdvertiser {
			t.Fatalf("unexpected second advertiser in result: %q", entry.Name)
		}
	}
}

func TestAggregate_DeduplicatesAcrossTerms(t *testing.T) {
	duplicate := ports.RawSupplier{Name: "TechDirect", Contact: "0800 111 222", Price: 300}
	source := &fakeSource{
		suppliers: map[string][]ports.RawSupplier{
			"tv":         {duplicate},
			"tv fitting": {duplicate, {Name: "WallMount Pros", Contact: "0800 333 444", Price: 80}},
		},
	}
	svc := newTestService(source, &fakeAdvertisers{})

	result, err := svc.Aggregate(context.Background(), transport.SearchRequest{Query: "tv"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Suppliers) != 2 {
		t.Fatalf("expected duplicate supplier removed, got %d entries", len(result.Suppliers))
	}
}

func TestAggregate_PriceSummaryAndVouchers(t *testing.T) {
	source := &fakeSource{
		suppliers: map[string][]ports.RawSupplier{
			"emergency plumber": {
				{Name: "RapidFlow", Contact: "0800 111 222", Price: 120},
				{Name: "ClearDrain", Contact: "0800 333 444", Price: 80},
			},
		},
	}
	svc := newTestService(source, &fakeAdvertisers{})

	result, err := svc.Aggregate(context.Background(), transport.SearchRequest{Query: "emergency plumber"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.BestPrice != "£80" {
		t.Fatalf("expected best price £80, got %q", result.BestPrice)
	}
	if result.AveragePrice != 100 {
		t.Fatalf("expected average 100, got %d", result.AveragePrice)
	}
	if len(result.Vouchers) != 2 {
		t.Fatalf("expected plumbing vouchers, got %d", len(result.Vouchers))
	}
	for _, voucher := range result.Vouchers {
		if voucher.Category != "plumbing" {
			t.Fatalf("expected plumbing vouchers only, got %q", voucher.Category)
		}
	}
}

func TestAggregate_EmptyQueryRejected(t *testing.T) {
	svc := newTestService(&fakeSource{}, &fakeAdvertisers{})

	_, err := svc.Aggregate(context.Background(), transport.SearchRequest{Query: "   "})
	if err == nil {
		t.Fatalf("expected validation error for blank query")
	}
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAggregate_CategoryBuckets(t *testing.T) {
	source := &fakeSource{
		suppliers: map[string][]ports.RawSupplier{
			"kitchen": {
				{Name: "Kitchen Kingdom", Contact: "0800 111 222", Price: 2500},
			},
			"kitchen supplies": {
				{Name: "Builders Warehouse", Contact: "0800 333 444", Price: 900},
			},
			"kitchen installation": {
				{Name: "AJ Fitters", Contact: "0800 555 666", Price: 1200},
			},
		},
	}
	svc := newTestService(source, &fakeAdvertisers{})

	result, err := svc.Aggregate(context.Background(), transport.SearchRequest{Query: "kitchen"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.MaterialSuppliers) != 1 || result.MaterialSuppliers[0].Name != "Builders Warehouse" {
		t.Fatalf("unexpected material bucket: %v", names(result.MaterialSuppliers))
	}
	if len(result.ServiceProviders) != 1 || result.ServiceProviders[0].Name != "AJ Fitters" {
		t.Fatalf("unexpected service bucket: %v", names(result.ServiceProviders))
	}
	if len(result.Retailers) != 1 || result.Retailers[0].Name != "Kitchen Kingdom" {
		t.Fatalf("unexpected retailer bucket: %v", names(result.Retailers))
	}
}
