// Package email sends transactional mail for advertiser lifecycle events.
package email

import (
	"context"
	"fmt"

	"dealfinder_backend/platform/config"
)

// Sender delivers transactional email. Implementations must be safe for
// concurrent use.
type Sender interface {
	// SendWelcomeEmail greets a business that just signed up for a placement
	// package.
	SendWelcomeEmail(ctx context.Context, toEmail, companyName, packageType string) error

	// SendExpiryEmail tells an advertiser their subscription lapsed and their
	// placement was deactivated.
	SendExpiryEmail(ctx context.Context, toEmail, companyName string) error
}

// NoopSender satisfies Sender without sending anything. Used when email is
// disabled and in tests.
type NoopSender struct{}

func (NoopSender) SendWelcomeEmail(context.Context, string, string, string) error { return nil }
func (NoopSender) SendExpiryEmail(context.Context, string, string) error          { return nil }

var _ Sender = NoopSender{}

// NewSender picks the sender implementation from configuration.
func NewSender(cfg config.EmailConfig) (Sender, error) {
	if !cfg.GetEmailEnabled() {
		return NoopSender{}, nil
	}
	if cfg.GetSMTPHost() == "" {
		return nil, fmt.Errorf("EMAIL_ENABLED is set but SMTP_HOST is empty")
	}
	return NewSMTPSender(cfg), nil
}
