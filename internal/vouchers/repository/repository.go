// Package repository provides database operations for vouchers and claims.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dealfinder_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	voucherNotFoundMsg = "voucher not found"
	claimNotFoundMsg   = "voucher claim not found"
)

// Repository provides database operations for vouchers.
type Repository struct {
	pool *pgxpool.Pool
}

// New creates a new vouchers repository.
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

type Voucher struct {
	ID         uuid.UUID
	Code       string
	Discount   string
	Retailer   string
	Category   string
	Value      int
	Terms      string
	ValidUntil *time.Time
	CreatedAt  time.Time
}

type Claim struct {
	ID        uuid.UUID
	VoucherID uuid.UUID
	Code      string
	Email     string
	Reference string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// ListByCategory returns vouchers for one category, or all still-valid
// vouchers when category is empty. Expired vouchers are never listed.
func (r *Repository) ListByCategory(ctx context.Context, category string) ([]Voucher, error) {
	query := `
		SELECT id, code, discount, retailer, category, value, terms, valid_until, created_at
		FROM vouchers
		WHERE ($1 = '' OR category = $1)
			AND (valid_until IS NULL OR valid_until > now())
		ORDER BY value DESC, code
	`

	rows, err := r.pool.Query(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("list vouchers: %w", err)
	}
	defer rows.Close()

	var vouchers []Voucher
	for rows.Next() {
		var v Voucher
		if err := rows.Scan(&v.ID, &v.Code, &v.Discount, &v.Retailer, &v.Category, &v.Value, &v.Terms, &v.ValidUntil, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan voucher: %w", err)
		}
		vouchers = append(vouchers, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list vouchers: %w", err)
	}

	return vouchers, nil
}

func (r *Repository) GetByCode(ctx context.Context, code string) (Voucher, error) {
	query := `
		SELECT id, code, discount, retailer, category, value, terms, valid_until, created_at
		FROM vouchers
		WHERE code = $1
	`

	var v Voucher
	err := r.pool.QueryRow(ctx, query, code).Scan(
		&v.ID, &v.Code, &v.Discount, &v.Retailer, &v.Category, &v.Value, &v.Terms, &v.ValidUntil, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Voucher{}, apperr.NotFound(voucherNotFoundMsg)
		}
		return Voucher{}, fmt.Errorf("get voucher: %w", err)
	}

	return v, nil
}

func (r *Repository) CreateClaim(ctx context.Context, claim Claim) (Claim, error) {
	query := `
		INSERT INTO voucher_claims (id, voucher_id, code, email, reference, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		claim.ID, claim.VoucherID, claim.Code, claim.Email, claim.Reference, claim.ExpiresAt, claim.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return Claim{}, apperr.Conflict("this voucher has already been claimed with that email")
		}
		return Claim{}, fmt.Errorf("create voucher claim: %w", err)
	}

	return claim, nil
}

func (r *Repository) GetClaim(ctx context.Context, id uuid.UUID) (Claim, error) {
	query := `
		SELECT id, voucher_id, code, email, reference, expires_at, created_at
		FROM voucher_claims
		WHERE id = $1
	`

	var claim Claim
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&claim.ID, &claim.VoucherID, &claim.Code, &claim.Email, &claim.Reference, &claim.ExpiresAt, &claim.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Claim{}, apperr.NotFound(claimNotFoundMsg)
		}
		return Claim{}, fmt.Errorf("get voucher claim: %w", err)
	}

	return claim, nil
}

// PurgeExpiredClaims deletes claims past their expiry and reports how many
// rows went away. Called by the scheduler worker.
func (r *Repository) PurgeExpiredClaims(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM voucher_claims WHERE expires_at < $1`, now)
	if err != nil {
		return 0, fmt.Errorf("purge expired voucher claims: %w", err)
	}
	return tag.RowsAffected(), nil
}
