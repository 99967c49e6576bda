// Package adapters wires modules together behind each consumer's ports,
// keeping the modules themselves decoupled.
package adapters

import (
	"context"

	advertisersvc "dealfinder_backend/internal/advertisers/service"
	"dealfinder_backend/internal/search/ports"
)

// AdvertiserReaderAdapter exposes the advertisers service as the search
// engine's AdvertiserReader port.
type AdvertiserReaderAdapter struct {
	svc *advertisersvc.Service
}

func NewAdvertiserReaderAdapter(svc *advertisersvc.Service) *AdvertiserReaderAdapter {
	return &AdvertiserReaderAdapter{svc: svc}
}

func (a *AdvertiserReaderAdapter) ListActive(ctx context.Context) ([]ports.Advertiser, error) {
	rows, err := a.svc.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	advertisers := make([]ports.Advertiser, 0, len(rows))
	for _, row := range rows {
		advertisers = append(advertisers, ports.Advertiser{
			ID:               row.ID,
			CompanyName:      row.CompanyName,
			PackageType:      row.PackageType,
			ContactEmail:     row.ContactEmail,
			ContactPhone:     row.ContactPhone,
			Website:          row.Website,
			Description:      row.Description,
			PrimaryLocation:  row.PrimaryLocation,
			ServiceLocations: row.ServiceLocations,
		})
	}

	return advertisers, nil
}

var _ ports.AdvertiserReader = (*AdvertiserReaderAdapter)(nil)
