// Package transport defines request and response DTOs for the vouchers module.
package transport

import (
	"time"

	"github.com/google/uuid"
)

// Voucher categories mirror the search engine's voucher vocabulary.
var Categories = []string{"cleaning", "plumbing", "electrical", "electronics", "home"}

// Voucher is the public representation of a persisted voucher.
type Voucher struct {
	ID         uuid.UUID  `json:"id"`
	Code       string     `json:"code"`
	Discount   string     `json:"discount"`
	Retailer   string     `json:"retailer"`
	Category   string     `json:"category"`
	Value      int        `json:"value,omitempty"`
	Terms      string     `json:"terms,omitempty"`
	ValidUntil *time.Time `json:"validUntil,omitempty"`
}

// ListQuery filters the public voucher listing.
type ListQuery struct {
	Category string `form:"category" validate:"omitempty,oneof=cleaning plumbing electrical electronics home"`
}

// ClaimRequest records one customer claiming a voucher code.
type ClaimRequest struct {
	Code  string `json:"code" validate:"required,min=3,max=40"`
	Email string `json:"email" validate:"required,email"`
}

// Claim is the stored claim returned to the customer. Reference is the short
// string encoded in the redemption QR.
type Claim struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Retailer  string    `json:"retailer"`
	Discount  string    `json:"discount"`
	Reference string    `json:"reference"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}
