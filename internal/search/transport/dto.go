package transport

import "github.com/google/uuid"

// SearchRequest is the public search payload. Location is optional; empty
// means a UK-wide search. Budget is optional and in whole pounds.
type SearchRequest struct {
	Query    string `json:"query" validate:"required,min=2,max=120"`
	Location string `json:"location" validate:"omitempty,max=80"`
	Budget   int    `json:"budget" validate:"omitempty,min=0"`
}

// Supplier categories.
const (
	CategoryMaterial = "material"
	CategoryService  = "service"
	CategoryRetailer = "retailer"
)

// Voucher is a discount code surfaced to the customer.
type Voucher struct {
	Code       string `json:"code"`
	Discount   string `json:"discount"`
	Retailer   string `json:"retailer"`
	ValidUntil string `json:"validUntil,omitempty"`
	Value      int    `json:"value,omitempty"`
	Category   string `json:"category,omitempty"`
	Terms      string `json:"terms,omitempty"`
}

// PlacementEntry is one row of the merged result list: either an organic
// supplier or a premium advertiser placement.
type PlacementEntry struct {
	Name         string     `json:"name"`
	Category     string     `json:"category"`
	Type         string     `json:"type,omitempty"`
	Price        int        `json:"price"`
	Rating       float64    `json:"rating,omitempty"`
	Experience   string     `json:"experience,omitempty"`
	Contact      string     `json:"contact,omitempty"`
	Address      string     `json:"address,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	Services     []string   `json:"services,omitempty"`
	Availability string     `json:"availability,omitempty"`
	Link         string     `json:"link,omitempty"`
	SourceTerm   string     `json:"sourceTerm,omitempty"`
	IsAdvertiser bool       `json:"isAdvertiser"`
	Badge        string     `json:"badge,omitempty"`
	Voucher      *Voucher   `json:"premiumVoucher,omitempty"`
	AdvertiserID *uuid.UUID `json:"advertiserId,omitempty"`
}

// SearchResult is the assembled response for one search request. Built fresh
// per request and never persisted.
type SearchResult struct {
	Suppliers         []PlacementEntry `json:"suppliers"`
	MaterialSuppliers []PlacementEntry `json:"materialSuppliers"`
	ServiceProviders  []PlacementEntry `json:"serviceProviders"`
	Retailers         []PlacementEntry `json:"retailers"`
	Vouchers          []Voucher        `json:"vouchers"`
	BestPrice         string           `json:"bestPrice"`
	AveragePrice      int              `json:"averagePrice"`
	AnalysisNotes     string           `json:"analysisNotes,omitempty"`
}
