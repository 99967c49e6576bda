package service

import (
	"strings"

	"dealfinder_backend/internal/search/transport"
)

// Classification keyword tables. Service keywords are checked before
// material keywords; anything matching neither is a retailer.
var (
	serviceKeywords  = []string{"installation", "fitting", "service", "fitter", "installer", "engineer"}
	materialKeywords = []string{"supplies", "materials", "warehouse", "depot"}
)

// classifySupplier tags a supplier as material, service or retailer based on
// the search term it came from and its own name. Deterministic, no side
// effects.
func classifySupplier(term, supplierName string) string {
	term = strings.ToLower(term)
	supplierName = strings.ToLower(supplierName)

	if containsAny(term, serviceKeywords) || containsAny(supplierName, serviceKeywords) {
		return transport.CategoryService
	}
	if containsAny(term, materialKeywords) || containsAny(supplierName, materialKeywords) {
		return transport.CategoryMaterial
	}
	return transport.CategoryRetailer
}
