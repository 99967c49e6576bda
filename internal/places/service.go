// Package places provides UK location autocomplete backed by Nominatim.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"dealfinder_backend/platform/logger"
)

const nominatimURL = "https://nominatim.openstreetmap.org/search"

type Service struct {
	client *http.Client
	log    *logger.Logger
}

func NewService(log *logger.Logger) *Service {
	return &Service{
		client: &http.Client{Timeout: 5 * time.Second},
		log:    log,
	}
}

// SearchPlaces looks up UK towns and cities matching the query.
func (s *Service) SearchPlaces(ctx context.Context, query string) ([]PlaceSuggestion, error) {
	params := url.Values{}
	params.Add("q", query)
	params.Add("format", "json")
	params.Add("addressdetails", "1")
	params.Add("limit", "5")
	params.Add("countrycodes", "gb")

	reqURL := fmt.Sprintf("%s?%s", nominatimURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", "DealFinderApp/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Error("nominatim request failed", "error", err)
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		s.log.Error("nominatim upstream error", "status", resp.StatusCode)
		return nil, fmt.Errorf("upstream api error: %d", resp.StatusCode)
	}

	var rawResults []nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&rawResults); err != nil {
		s.log.Error("failed to decode nominatim payload", "error", err)
		return nil, err
	}

	suggestions := make([]PlaceSuggestion, 0, len(rawResults))
	for _, raw := range rawResults {
		suggestion, ok := buildSuggestion(raw)
		if !ok {
			continue
		}

		suggestions = append(suggestions, suggestion)
	}

	return suggestions, nil
}

func buildSuggestion(raw nominatimResponse) (PlaceSuggestion, bool) {
	name := pickName(raw.Address)
	if name == "" {
		return PlaceSuggestion{}, false
	}

	suggestion := PlaceSuggestion{
		Name:     name,
		County:   pickCounty(raw.Address),
		Postcode: raw.Address.Postcode,
		Lat:      raw.Lat,
		Lon:      raw.Lon,
	}

	suggestion.Label = buildLabel(suggestion)

	return suggestion, true
}

func pickName(address nominatimAddress) string {
	if address.City != "" {
		return address.City
	}
	if address.Town != "" {
		return address.Town
	}
	if address.Village != "" {
		return address.Village
	}
	return address.Suburb
}

func pickCounty(address nominatimAddress) string {
	if address.County != "" {
		return address.County
	}
	return address.StateDistrict
}

func buildLabel(suggestion PlaceSuggestion) string {
	parts := []string{suggestion.Name}
	if suggestion.County != "" && !strings.EqualFold(suggestion.County, suggestion.Name) {
		parts = append(parts, suggestion.County)
	}
	return strings.Join(parts, ", ")
}
