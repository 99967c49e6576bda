package service

import (
	"strings"
	"testing"
)

func TestExpandTerms_OriginalQueryAlwaysFirst(t *testing.T) {
	for _, query := range []string{"kitchen", "emergency plumber", "tv", "roof repair"} {
		terms := expandTerms(query)
		if len(terms) == 0 {
			t.Fatalf("expandTerms(%q) returned no terms", query)
		}
		if terms[0] != query {
			t.Fatalf("expandTerms(%q): expected original query first, got %q", query, terms[0])
		}
	}
}

func TestExpandTerms_CategoryExpansion(t *testing.T) {
	terms := expandTerms("kitchen")

	for _, want := range []string{"kitchen units", "kitchen installation", "kitchen appliances", "kitchen fitters", "kitchen supplies"} {
		if !containsTerm(terms, want) {
			t.Fatalf("expected term %q in expansion of %q, got %v", want, "kitchen", terms)
		}
	}
}

func TestExpandTerms_FirstCategoryWins(t *testing.T) {
	// Mentions both kitchen and bathroom; only the kitchen set is added.
	terms := expandTerms("kitchen and bathroom refit")

	if !containsTerm(terms, "kitchen units") {
		t.Fatalf("expected kitchen expansion, got %v", terms)
	}
	if containsTerm(terms, "bathroom suites") {
		t.Fatalf("did not expect bathroom expansion, got %v", terms)
	}
}

func TestExpandTerms_ServiceQueryCoversProductSide(t *testing.T) {
	terms := expandTerms("kitchen installation")

	for _, want := range []string{"kitchen", "kitchen supplies", "kitchen materials"} {
		if !containsTerm(terms, want) {
			t.Fatalf("expected product-side term %q, got %v", want, terms)
		}
	}
	// Query already names a service; no further service variants.
	if containsTerm(terms, "kitchen installation installation") {
		t.Fatalf("service variant appended to a service query: %v", terms)
	}
}

func TestExpandTerms_ProductQueryGetsServiceVariants(t *testing.T) {
	terms := expandTerms("tv")

	for _, want := range []string{"tv installation", "tv fitting", "tv service"} {
		if !containsTerm(terms, want) {
			t.Fatalf("expected service variant %q, got %v", want, terms)
		}
	}
}

func TestExpandTerms_RepairQueryGetsNoServiceVariants(t *testing.T) {
	terms := expandTerms("roof repair")

	if containsTerm(terms, "roof repair installation") {
		t.Fatalf("service variant appended to a repair query: %v", terms)
	}
}

func TestExpandTerms_NoDuplicates(t *testing.T) {
	terms := expandTerms("kitchen installation")

	seen := make(map[string]struct{}, len(terms))
	for _, term := range terms {
		key := strings.ToLower(term)
		if _, ok := seen[key]; ok {
			t.Fatalf("duplicate term %q in %v", term, terms)
		}
		seen[key] = struct{}{}
	}
}

func containsTerm(terms []string, want string) bool {
	for _, term := range terms {
		if strings.EqualFold(term, want) {
			return true
		}
	}
	return false
}
