// Package service implements voucher listing, claiming and QR rendering.
package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"dealfinder_backend/internal/events"
	"dealfinder_backend/internal/vouchers/repository"
	"dealfinder_backend/internal/vouchers/transport"
	"dealfinder_backend/platform/apperr"
	"dealfinder_backend/platform/logger"
)

const (
	// claimTTL is how long a claimed code stays redeemable before the purge
	// job removes it.
	claimTTL = 30 * 24 * time.Hour

	qrSize = 256
)

// Service handles voucher business logic.
type Service struct {
	repo *repository.Repository
	bus  events.Bus
	log  *logger.Logger
}

// New creates the vouchers service.
func New(repo *repository.Repository, bus events.Bus, log *logger.Logger) *Service {
	return &Service{repo: repo, bus: bus, log: log}
}

func (s *Service) List(ctx context.Context, query transport.ListQuery) ([]transport.Voucher, error) {
	rows, err := s.repo.ListByCategory(ctx, query.Category)
	if err != nil {
		return nil, err
	}

	vouchers := make([]transport.Voucher, 0, len(rows))
	for _, row := range rows {
		vouchers = append(vouchers, transport.Voucher{
			ID:         row.ID,
			Code:       row.Code,
			Discount:   row.Discount,
			Retailer:   row.Retailer,
			Category:   row.Category,
			Value:      row.Value,
			Terms:      row.Terms,
			ValidUntil: row.ValidUntil,
		})
	}

	return vouchers, nil
}

// Claim records one customer claiming a voucher code. A repeat claim with the
// same email is a conflict; an expired voucher cannot be claimed.
func (s *Service) Claim(ctx context.Context, req transport.ClaimRequest) (transport.Claim, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	email := strings.ToLower(strings.TrimSpace(req.Email))

	voucher, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return transport.Claim{}, err
	}
	if voucher.ValidUntil != nil && voucher.ValidUntil.Before(time.Now()) {
		return transport.Claim{}, apperr.Validation("this voucher has expired")
	}

	now := time.Now()
	claim := repository.Claim{
		ID:        uuid.New(),
		VoucherID: voucher.ID,
		Code:      voucher.Code,
		Email:     email,
		Reference: newClaimReference(),
		ExpiresAt: now.Add(claimTTL),
		CreatedAt: now,
	}

	created, err := s.repo.CreateClaim(ctx, claim)
	if err != nil {
		return transport.Claim{}, err
	}

	s.bus.Publish(ctx, events.VoucherClaimed{
		BaseEvent:   events.NewBaseEvent(),
		ClaimID:     created.ID,
		VoucherCode: created.Code,
		Email:       created.Email,
	})

	return transport.Claim{
		ID:        created.ID,
		Code:      created.Code,
		Retailer:  voucher.Retailer,
		Discount:  voucher.Discount,
		Reference: created.Reference,
		ExpiresAt: created.ExpiresAt,
		CreatedAt: created.CreatedAt,
	}, nil
}

// ClaimQR renders the redemption QR for a claim as a PNG. The QR encodes the
// claim reference together with the voucher code so in-store staff can match
// both.
func (s *Service) ClaimQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	claim, err := s.repo.GetClaim(ctx, id)
	if err != nil {
		return nil, err
	}
	if claim.ExpiresAt.Before(time.Now()) {
		return nil, apperr.NotFound("voucher claim has expired")
	}

	payload := fmt.Sprintf("dealfinder:claim:%s:%s", claim.Reference, claim.Code)
	png, err := qrcode.Encode(payload, qrcode.Medium, qrSize)
	if err != nil {
		return nil, apperr.Internal("failed to render claim QR").WithOp("vouchers.ClaimQR")
	}

	return png, nil
}

// PurgeExpiredClaims removes lapsed claims. Called by the scheduler worker.
func (s *Service) PurgeExpiredClaims(ctx context.Context, now time.Time) (int64, error) {
	purged, err := s.repo.PurgeExpiredClaims(ctx, now)
	if err != nil {
		return 0, err
	}
	if purged > 0 {
		s.log.Info("purged expired voucher claims", "count", purged)
	}
	return purged, nil
}

// newClaimReference returns a short random hex reference for in-store
// redemption. 8 bytes keeps the QR small while staying unguessable.
func newClaimReference() string {
	buf := make([]byte, 8)
	_, _ = rand.Read(buf)
	return strings.ToUpper(hex.EncodeToString(buf))
}
