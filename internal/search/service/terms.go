package service

import "strings"

// categoryExpansion maps a product/service category to the search terms that
// cover its material, installation and retail intents. Ordered: the first
// category whose trigger matches the query wins, remaining categories are
// not consulted.
type categoryExpansion struct {
	triggers []string
	terms    []string
}

var categoryExpansions = []categoryExpansion{
	{
		triggers: []string{"kitchen"},
		terms:    []string{"kitchen units", "kitchen installation", "kitchen appliances", "kitchen fitters", "kitchen supplies"},
	},
	{
		triggers: []string{"bathroom"},
		terms:    []string{"bathroom suites", "bathroom installation", "bathroom fitters", "bathroom tiles", "bathroom supplies"},
	},
	{
		triggers: []string{"window", "glazing"},
		terms:    []string{"window suppliers", "window installation", "window fitters", "double glazing", "window cleaning"},
	},
	{
		triggers: []string{"boiler", "heating"},
		terms:    []string{"boiler suppliers", "boiler installation", "heating engineers", "central heating", "boiler service"},
	},
	{
		triggers: []string{"floor"},
		terms:    []string{"flooring suppliers", "floor installation", "floor fitters", "laminate flooring", "carpet suppliers"},
	},
	{
		triggers: []string{"garden", "landscap"},
		terms:    []string{"garden supplies", "landscaping services", "garden maintenance", "turf suppliers", "gardeners"},
	},
	{
		triggers: []string{"roof"},
		terms:    []string{"roofing materials", "roof installation", "roofers", "roof repair", "roofing supplies"},
	},
}

var serviceIndicators = []string{"installation", "fitting", "install", "fitter", "service", "repair"}

// expandTerms turns one user query into the ordered, deduplicated set of
// search terms sent to the supplier-data source. The original query is
// always first and at least one term is always returned.
func expandTerms(query string) []string {
	query = strings.TrimSpace(query)
	lower := strings.ToLower(query)

	terms := []string{query}

	for _, expansion := range categoryExpansions {
		if containsAny(lower, expansion.triggers) {
			terms = append(terms, expansion.terms...)
			break
		}
	}

	if base := serviceQueryBase(lower); base != "" {
		// Query already asks for a service; cover the product side too.
		terms = append(terms, base, base+" supplies", base+" materials")
	}
	if !containsAny(lower, serviceIndicators) {
		terms = append(terms, query+" installation", query+" fitting", query+" service")
	}

	return dedupeStrings(terms)
}

// serviceQueryBase returns the product part of a query like "kitchen
// installation", or "" when the query does not mention a service.
func serviceQueryBase(lower string) string {
	for _, indicator := range []string{"installation", "fitting"} {
		if idx := strings.Index(lower, indicator); idx >= 0 {
			return strings.TrimSpace(lower[:idx])
		}
	}
	return ""
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}

// dedupeStrings removes duplicates case-insensitively, preserving first-seen
// order and dropping empty entries.
func dedupeStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, value := range values {
		key := strings.ToLower(strings.TrimSpace(value))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, strings.TrimSpace(value))
	}
	return out
}
