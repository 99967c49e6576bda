package service

import (
	"strings"

	"dealfinder_backend/internal/search/ports"
)

// keywordRule links advertiser company-name substrings to the query
// substrings that make the advertiser relevant. The table is closed-world:
// an advertiser whose name matches no rule is never shown, regardless of
// query.
type keywordRule struct {
	nameContains  []string
	queryContains []string
}

var advertiserKeywordRules = []keywordRule{
	{nameContains: []string{"window", "glass"}, queryContains: []string{"window", "glass", "clean"}},
	{nameContains: []string{"electric"}, queryContains: []string{"electric", "wiring", "power"}},
	{nameContains: []string{"plumb"}, queryContains: []string{"plumb", "pipe", "drain"}},
	{nameContains: []string{"roof"}, queryContains: []string{"roof", "gutter", "chimney"}},
	{nameContains: []string{"garden", "landscap"}, queryContains: []string{"garden", "landscap", "turf", "lawn"}},
	{nameContains: []string{"heat", "boiler"}, queryContains: []string{"boiler", "heating", "radiator"}},
	{nameContains: []string{"clean"}, queryContains: []string{"clean"}},
}

// passesKeywordGate reports whether the advertiser's trade matches the query.
func passesKeywordGate(companyName, query string) bool {
	name := strings.ToLower(companyName)
	query = strings.ToLower(query)

	for _, rule := range advertiserKeywordRules {
		if !containsAny(name, rule.nameContains) {
			continue
		}
		return containsAny(query, rule.queryContains)
	}

	// No known trade in the name: fail closed rather than show the
	// advertiser on unrelated searches.
	return false
}

// passesLocationGate reports whether the advertiser serves the request
// location. With declared service locations the check is case-insensitive
// containment in either direction. Without declared locations the gate fails
// closed, except for the legacy Glass Act rule below.
func passesLocationGate(advertiser ports.Advertiser, location string) bool {
	location = strings.ToLower(strings.TrimSpace(location))
	if location == "" {
		location = "uk"
	}

	if len(advertiser.ServiceLocations) > 0 {
		for _, served := range advertiser.ServiceLocations {
			served = strings.ToLower(strings.TrimSpace(served))
			if served == "" {
				continue
			}
			if strings.Contains(location, served) || strings.Contains(served, location) {
				return true
			}
		}
		return false
	}

	return legacyLocationRule(advertiser.CompanyName, location)
}

// legacyLocationRule encodes a one-off business exception that predates
// declared service locations: Glass Act signed up before the locations
// field existed and serves the Plymouth/Devon area. Not a pattern to extend
// for new advertisers; they must declare service locations.
func legacyLocationRule(companyName, location string) bool {
	if !strings.Contains(strings.ToLower(companyName), "glass act") {
		return false
	}
	return strings.Contains(location, "plymouth") ||
		strings.Contains(location, "devon") ||
		strings.HasPrefix(location, "pl")
}

// filterRelevantAdvertisers applies both gates. Order of the input is
// preserved; both gates must pass.
func filterRelevantAdvertisers(advertisers []ports.Advertiser, query, location string) []ports.Advertiser {
	relevant := make([]ports.Advertiser, 0, len(advertisers))
	for _, advertiser := range advertisers {
		if !passesKeywordGate(advertiser.CompanyName, query) {
			continue
		}
		if !passesLocationGate(advertiser, location) {
			continue
		}
		relevant = append(relevant, advertiser)
	}
	return relevant
}
