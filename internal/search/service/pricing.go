package service

import (
	"math"
	"strconv"

	"dealfinder_backend/internal/search/transport"
)

// summarizePrices computes the headline best price and the rounded mean over
// the merged list. Entries without a price (advertiser placements are
// priced on quote) are excluded. Empty input yields "£0" and 0 rather than
// an error: an empty result is still a valid result.
func summarizePrices(entries []transport.PlacementEntry) (bestPrice string, averagePrice int) {
	best := 0
	sum := 0
	count := 0

	for _, entry := range entries {
		if entry.Price <= 0 {
			continue
		}
		if count == 0 || entry.Price < best {
			best = entry.Price
		}
		sum += entry.Price
		count++
	}

	if count == 0 {
		return "£0", 0
	}

	mean := float64(sum) / float64(count)
	return "£" + strconv.Itoa(best), int(math.Round(mean))
}
