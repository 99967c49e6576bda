package places

// LookupRequest represents the query parameters from the frontend.
type LookupRequest struct {
	Query string `form:"q" binding:"required,min=2"`
}

// PlaceSuggestion is the normalized location returned to the search form.
type PlaceSuggestion struct {
	Label    string `json:"label"`
	Name     string `json:"name"`
	County   string `json:"county"`
	Postcode string `json:"postcode,omitempty"`
	Lat      string `json:"lat"`
	Lon      string `json:"lon"`
}

type nominatimAddress struct {
	City          string `json:"city"`
	Town          string `json:"town"`
	Village       string `json:"village"`
	Suburb        string `json:"suburb"`
	County        string `json:"county"`
	StateDistrict string `json:"state_district"`
	Postcode      string `json:"postcode"`
}

// nominatimResponse mirrors the relevant parts of the OSM search payload.
type nominatimResponse struct {
	DisplayName string           `json:"display_name"`
	Lat         string           `json:"lat"`
	Lon         string           `json:"lon"`
	Address     nominatimAddress `json:"address"`
}
