package service

import (
	"testing"

	"dealfinder_backend/internal/search/transport"
)

func TestClassifySupplier(t *testing.T) {
	tests := []struct {
		name     string
		term     string
		supplier string
		want     string
	}{
		{"service term", "kitchen installation", "Smith Ltd", transport.CategoryService},
		{"service supplier name", "kitchen", "AJ Kitchen Fitters", transport.CategoryService},
		{"material term", "kitchen supplies", "Smith Ltd", transport.CategoryMaterial},
		{"material supplier name", "kitchen", "Builders Warehouse", transport.CategoryMaterial},
		{"neither is retailer", "kitchen", "Wickes", transport.CategoryRetailer},
		{"service beats material in term", "installation supplies", "Smith Ltd", transport.CategoryService},
		{"service beats material across fields", "kitchen supplies", "AJ Installers", transport.CategoryService},
		{"case insensitive", "KITCHEN FITTING", "SMITH LTD", transport.CategoryService},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifySupplier(tt.term, tt.supplier); got != tt.want {
				t.Fatalf("classifySupplier(%q, %q) = %q, want %q", tt.term, tt.supplier, got, tt.want)
			}
		})
	}
}
