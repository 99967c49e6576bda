// Package service implements the search aggregation engine: term expansion,
// supplier fan-out, advertiser placement, voucher selection and price
// summary. The engine is request-scoped and stateless; its only reads are
// through the injected ports.
package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"dealfinder_backend/internal/search/ports"
	"dealfinder_backend/internal/search/transport"
	"dealfinder_backend/platform/apperr"
	"dealfinder_backend/platform/logger"
	"dealfinder_backend/platform/sanitize"
)

const (
	// fetchTimeout bounds one supplier-data call. A term that exceeds it is
	// treated as failed and skipped; the aggregation continues.
	fetchTimeout = 15 * time.Second

	// fetchConcurrency bounds the per-term fan-out.
	fetchConcurrency = 3
)

// Service is the search aggregation engine.
type Service struct {
	source      ports.SupplierSource
	advertisers ports.AdvertiserReader
	enricher    ports.ProfileEnricher
	log         *logger.Logger
}

// New creates the engine with its collaborators.
func New(source ports.SupplierSource, advertisers ports.AdvertiserReader, enricher ports.ProfileEnricher, log *logger.Logger) *Service {
	if enricher == nil {
		enricher = ports.NoopEnricher{}
	}
	return &Service{
		source:      source,
		advertisers: advertisers,
		enricher:    enricher,
		log:         log,
	}
}

type termFetch struct {
	suppliers []ports.RawSupplier
	vouchers  []ports.RawVoucher
	err       error
}

// Aggregate runs one search request end to end and assembles the result.
// Per-term upstream failures are tolerated; an advertiser-store read failure
// is fatal, since silently hiding paying advertisers is unacceptable.
func (s *Service) Aggregate(ctx context.Context, req transport.SearchRequest) (*transport.SearchResult, error) {
	query := sanitize.Query(req.Query)
	if query == "" {
		return nil, apperr.Validation("query must not be empty")
	}

	terms := expandTerms(query)
	results := s.fetchTerms(ctx, terms, req.Location, req.Budget)

	if err := ctx.Err(); err != nil {
		// Request cancelled: discard partial work rather than return it.
		return nil, apperr.Wrap(apperr.KindInternal, "search cancelled", err)
	}

	var rawSuppliers []ports.RawSupplier
	var rawVouchers []ports.RawVoucher
	failedTerms := 0
	for i, result := range results {
		if result.err != nil {
			failedTerms++
			s.log.UpstreamError("supplier-data", terms[i], result.err)
			continue
		}
		for _, supplier := range result.suppliers {
			if supplier.SourceTerm == "" {
				supplier.SourceTerm = terms[i]
			}
			rawSuppliers = append(rawSuppliers, supplier)
		}
		rawVouchers = append(rawVouchers, result.vouchers...)
	}

	organicRaw := dedupeSuppliers(rawSuppliers)

	// Fetched vouchers are retained for auditing only; the response surfaces
	// the curated category-matched set instead.
	auditVouchers := dedupeVouchers(rawVouchers)
	s.log.Debug("voucher candidates gathered", "count", len(auditVouchers))

	active, err := s.advertisers.ListActive(ctx)
	if err != nil {
		appErr := apperr.Internal("advertiser lookup failed").WithOp("search.Aggregate")
		appErr.Err = err
		return nil, appErr
	}

	relevant := filterRelevantAdvertisers(active, query, req.Location)
	premium := make([]transport.PlacementEntry, 0, len(relevant))
	for _, advertiser := range relevant {
		premium = append(premium, s.enrichAdvertiser(ctx, advertiser))
	}

	organic := make([]transport.PlacementEntry, 0, len(organicRaw))
	for _, supplier := range organicRaw {
		organic = append(organic, organicEntry(supplier))
	}

	merged := mergePlacements(premium, organic)
	materials, services, retailers := bucketByCategory(merged)
	bestPrice, averagePrice := summarizePrices(merged)

	s.log.SearchAggregation(query, req.Location, len(terms), len(merged), len(premium), failedTerms)

	return &transport.SearchResult{
		Suppliers:         merged,
		MaterialSuppliers: materials,
		ServiceProviders:  services,
		Retailers:         retailers,
		Vouchers:          selectVouchers(query),
		BestPrice:         bestPrice,
		AveragePrice:      averagePrice,
		AnalysisNotes:     analysisNotes(terms, failedTerms, merged, premium),
	}, nil
}

// fetchTerms fans out to the supplier-data source, one attempt per term with
// a bounded worker pool. Results keep term order; a failed term records its
// error without affecting the others.
func (s *Service) fetchTerms(ctx context.Context, terms []string, location string, budget int) []termFetch {
	results := make([]termFetch, len(terms))

	g := new(errgroup.Group)
	g.SetLimit(fetchConcurrency)

	for i, term := range terms {
		g.Go(func() error {
			fetchCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
			defer cancel()

			suppliers, vouchers, err := s.source.FetchSuppliersAndVouchers(fetchCtx, term, location, budget)
			results[i] = termFetch{suppliers: suppliers, vouchers: vouchers, err: err}
			return nil
		})
	}

	_ = g.Wait()
	return results
}

func organicEntry(supplier ports.RawSupplier) transport.PlacementEntry {
	return transport.PlacementEntry{
		Name:         supplier.Name,
		Category:     classifySupplier(supplier.SourceTerm, supplier.Name),
		Type:         supplier.Type,
		Price:        supplier.Price,
		Rating:       supplier.Rating,
		Experience:   supplier.Experience,
		Contact:      supplier.Contact,
		Address:      supplier.Address,
		Notes:        supplier.Notes,
		Services:     supplier.Services,
		Availability: supplier.Availability,
		Link:         supplier.Link,
		SourceTerm:   supplier.SourceTerm,
	}
}

func analysisNotes(terms []string, failedTerms int, merged, premium []transport.PlacementEntry) string {
	notes := fmt.Sprintf("Matched %d suppliers across %d search terms", len(merged), len(terms))
	if failedTerms > 0 {
		notes += fmt.Sprintf(" (%d terms unavailable)", failedTerms)
	}
	if len(premium) > 0 {
		notes += fmt.Sprintf("; %d premium partners serve this area", len(premium))
	}
	return notes + "."
}
