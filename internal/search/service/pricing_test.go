package service

import (
	"testing"

	"dealfinder_backend/internal/search/transport"
)

func TestSummarizePrices(t *testing.T) {
	tests := []struct {
		name        string
		prices      []int
		wantBest    string
		wantAverage int
	}{
		{"empty", nil, "£0", 0},
		{"single", []int{250}, "£250", 250},
		{"min and mean", []int{100, 200, 300}, "£100", 200},
		{"mean rounds half up", []int{100, 101}, "£100", 101},
		{"zero prices excluded", []int{0, 0, 50}, "£50", 50},
		{"all unpriced", []int{0, 0}, "£0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := make([]transport.PlacementEntry, 0, len(tt.prices))
			for _, price := range tt.prices {
				entries = append(entries, transport.PlacementEntry{Price: price})
			}

			best, average := summarizePrices(entries)
			if best != tt.wantBest {
				t.Fatalf("best price = %q, want %q", best, tt.wantBest)
			}
			if average != tt.wantAverage {
				t.Fatalf("average price = %d, want %d", average, tt.wantAverage)
			}
		})
	}
}
