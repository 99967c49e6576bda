package service

import (
	"dealfinder_backend/internal/search/ports"
	"dealfinder_backend/internal/search/transport"
)

// dedupeSuppliers removes duplicate suppliers across all fetched terms.
// Key is name+contact; the first occurrence wins, so suppliers from earlier
// (more relevant) terms take precedence. Single pass, order preserved.
func dedupeSuppliers(suppliers []ports.RawSupplier) []ports.RawSupplier {
	seen := make(map[string]struct{}, len(suppliers))
	out := make([]ports.RawSupplier, 0, len(suppliers))
	for _, supplier := range suppliers {
		key := supplier.Name + "_" + supplier.Contact
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, supplier)
	}
	return out
}

// dedupeVouchers removes duplicate vouchers by code+retailer, first
// occurrence wins.
func dedupeVouchers(vouchers []ports.RawVoucher) []ports.RawVoucher {
	seen := make(map[string]struct{}, len(vouchers))
	out := make([]ports.RawVoucher, 0, len(vouchers))
	for _, voucher := range vouchers {
		key := voucher.Code + "_" + voucher.Retailer
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, voucher)
	}
	return out
}

// dedupeEntries applies the supplier dedup key to already-built placement
// entries, protecting the merged list when an advertiser also appears
// organically.
func dedupeEntries(entries []transport.PlacementEntry) []transport.PlacementEntry {
	seen := make(map[string]struct{}, len(entries))
	out := make([]transport.PlacementEntry, 0, len(entries))
	for _, entry := range entries {
		key := entry.Name + "_" + entry.Contact
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, entry)
	}
	return out
}
