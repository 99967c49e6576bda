package events

import (
	platformevents "dealfinder_backend/platform/events"

	"github.com/google/uuid"
)

// AdvertiserSignedUp is published when a business completes the self-signup
// form. The email listener sends the welcome email.
type AdvertiserSignedUp struct {
	platformevents.BaseEvent
	AdvertiserID uuid.UUID
	CompanyName  string
	ContactEmail string
	PackageType  string
}

func (AdvertiserSignedUp) EventName() string { return "advertiser.signed_up" }

// AdvertiserExpired is published when the scheduler deactivates an advertiser
// whose subscription lapsed.
type AdvertiserExpired struct {
	platformevents.BaseEvent
	AdvertiserID uuid.UUID
	CompanyName  string
	ContactEmail string
}

func (AdvertiserExpired) EventName() string { return "advertiser.expired" }

// VoucherClaimed is published when a customer claims a voucher code.
type VoucherClaimed struct {
	platformevents.BaseEvent
	ClaimID     uuid.UUID
	VoucherCode string
	Email       string
}

func (VoucherClaimed) EventName() string { return "voucher.claimed" }
