// Package transport defines request and response DTOs for the advertisers module.
package transport

import (
	"time"

	"github.com/google/uuid"
)

// Package types an advertiser can sign up for.
const (
	PackageStandard = "standard"
	PackagePremium  = "premium"
)

// SignupRequest is the public self-signup payload.
type SignupRequest struct {
	CompanyName      string   `json:"companyName" validate:"required,min=2,max=120"`
	ContactEmail     string   `json:"contactEmail" validate:"required,email"`
	ContactPhone     string   `json:"contactPhone" validate:"required,min=7,max=20"`
	Website          string   `json:"website" validate:"omitempty,url,max=200"`
	Description      string   `json:"description" validate:"max=500"`
	PackageType      string   `json:"packageType" validate:"required,oneof=standard premium"`
	PrimaryLocation  string   `json:"primaryLocation" validate:"required,min=2,max=120"`
	ServiceLocations []string `json:"serviceLocations" validate:"max=20,dive,min=2,max=120"`
}

// ListQuery filters the admin listing.
type ListQuery struct {
	Active   *bool `form:"active"`
	Page     int   `form:"page" validate:"omitempty,min=1"`
	PageSize int   `form:"pageSize" validate:"omitempty,min=1,max=100"`
}

// SubscriptionUpdateRequest sets the subscription end for an advertiser.
type SubscriptionUpdateRequest struct {
	ExpiresAt time.Time `json:"expiresAt" validate:"required"`
}

// LogoUploadRequest asks for a presigned upload slot for an advertiser logo.
type LogoUploadRequest struct {
	FileName    string `json:"fileName" validate:"required,max=200"`
	ContentType string `json:"contentType" validate:"required"`
	SizeBytes   int64  `json:"sizeBytes" validate:"required,min=1"`
}

// LogoUploadResponse carries the presigned PUT URL.
type LogoUploadResponse struct {
	UploadURL string    `json:"uploadUrl"`
	FileKey   string    `json:"fileKey"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Advertiser is the API representation of one advertiser row.
type Advertiser struct {
	ID               uuid.UUID  `json:"id"`
	CompanyName      string     `json:"companyName"`
	ContactEmail     string     `json:"contactEmail"`
	ContactPhone     string     `json:"contactPhone"`
	Website          string     `json:"website,omitempty"`
	Description      string     `json:"description,omitempty"`
	PackageType      string     `json:"packageType"`
	PrimaryLocation  string     `json:"primaryLocation"`
	ServiceLocations []string   `json:"serviceLocations,omitempty"`
	LogoURL          string     `json:"logoUrl,omitempty"`
	IsActive         bool       `json:"isActive"`
	ExpiresAt        *time.Time `json:"expiresAt,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}

// ListResponse is the paginated admin listing.
type ListResponse struct {
	Items      []Advertiser `json:"items"`
	Total      int          `json:"total"`
	Page       int          `json:"page"`
	PageSize   int          `json:"pageSize"`
	TotalPages int          `json:"totalPages"`
}
