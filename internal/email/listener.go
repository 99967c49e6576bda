package email

import (
	"context"

	"dealfinder_backend/internal/events"
	"dealfinder_backend/platform/logger"
)

// Listener subscribes the sender to advertiser lifecycle events. Delivery is
// best-effort: a failed send is logged, never propagated to the publisher.
type Listener struct {
	sender Sender
	log    *logger.Logger
}

func NewListener(sender Sender, log *logger.Logger) *Listener {
	return &Listener{sender: sender, log: log}
}

// Register wires the listener onto the bus.
func (l *Listener) Register(bus events.Bus) {
	bus.Subscribe(events.AdvertiserSignedUp{}.EventName(), events.HandlerFunc(l.onAdvertiserSignedUp))
	bus.Subscribe(events.AdvertiserExpired{}.EventName(), events.HandlerFunc(l.onAdvertiserExpired))
}

func (l *Listener) onAdvertiserSignedUp(ctx context.Context, event events.Event) error {
	signedUp, ok := event.(events.AdvertiserSignedUp)
	if !ok {
		return nil
	}

	if err := l.sender.SendWelcomeEmail(ctx, signedUp.ContactEmail, signedUp.CompanyName, signedUp.PackageType); err != nil {
		l.log.Warn("failed to send welcome email",
			"advertiser_id", signedUp.AdvertiserID, "error", err)
	}
	return nil
}

func (l *Listener) onAdvertiserExpired(ctx context.Context, event events.Event) error {
	expired, ok := event.(events.AdvertiserExpired)
	if !ok {
		return nil
	}

	if err := l.sender.SendExpiryEmail(ctx, expired.ContactEmail, expired.CompanyName); err != nil {
		l.log.Warn("failed to send expiry email",
			"advertiser_id", expired.AdvertiserID, "error", err)
	}
	return nil
}
