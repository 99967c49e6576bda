// Package repository provides database operations for advertisers.
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

const advertiserNotFoundMsg = "advertiser not found"

// Repository provides database operations for advertisers.
type Repository struct {
	pool *pgxpool.Pool
}

// New creates a new advertisers repository.
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

type Advertiser struct {
	ID               uuid.UUID
	CompanyName      string
	ContactEmail     string
	ContactPhone     string
	Website          string
	Description      string
	PackageType      string
	PrimaryLocation  string
	ServiceLocations []string
	LogoFileKey      *string
	IsActive         bool
	ExpiresAt        *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type ListParams struct {
	Active   *bool
	Page     int
	PageSize int
}

type ListResult struct {
	Items      []Advertiser
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

const advertiserColumns = `id, company_name, contact_email, contact_phone, website, description,
	package_type, primary_location, service_locations, logo_file_key,
	is_active, expires_at, created_at, updated_at`

func scanAdvertiser(row pgx.Row) (Advertiser, error) {
	var a Advertiser
	err := row.Scan(
		&a.ID,
		&a.CompanyName,
		&a.ContactEmail,
		&a.ContactPhone,
		&a.Website,
		&a.Description,
		&a.PackageType,
		&a.PrimaryLocation,
		&a.ServiceLocations,
		&a.LogoFileKey,
		&a.IsActive,
		&a.ExpiresAt,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

func (r *Repository) Create(ctx context.Context, advertiser Advertiser) (Advertiser, error) {
	query := `
		INSERT INTO advertisers (
			id, company_name, contact_email, contact_phone, website, description,
			package_type, primary_location, service_locations,
			is_active, expires_at, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9,
			$10, $11, $12, $13
		)
	`

	_, err := r.pool.Exec(ctx, query,
		advertiser.ID,
		advertiser.CompanyName,
		advertiser.ContactEmail,
		advertiser.ContactPhone,
		advertiser.Website,
		advertiser.Description,
		advertiser.PackageType,
		advertiser.PrimaryLocation,
		advertiser.ServiceLocations,
		advertiser.IsActive,
		advertiser.ExpiresAt,
		advertiser.CreatedAt,
		advertiser.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return Advertiser{}, apperr.Conflict("an advertiser with this contact email already exists")
		}
		return Advertiser{}, fmt.Errorf("create advertiser: %w", err)
	}

	return advertiser, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (Advertiser, error) {
	query := `SELECT ` + advertiserColumns + ` FROM advertisers WHERE id = $1`

	advertiser, err := scanAdvertiser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Advertiser{}, apperr.NotFound(advertiserNotFoundMsg)
		}
		return Advertiser{}, fmt.Errorf("get advertiser: %w", err)
	}

	return advertiser, nil
}

// ListActive returns every active advertiser. Read fresh per search request:
// a just-deactivated advertiser must disappear immediately.
func (r *Repository) ListActive(ctx context.Context) ([]Advertiser, error) {
	query := `SELECT ` + advertiserColumns + ` FROM advertisers WHERE is_active = true ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list active advertisers: %w", err)
	}
	defer rows.Close()

	var advertisers []Advertiser
	for rows.Next() {
		advertiser, err := scanAdvertiser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan advertiser: %w", err)
		}
		advertisers = append(advertisers, advertiser)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list active advertisers: %w", err)
	}

	return advertisers, nil
}

func (r *Repository) List(ctx context.Context, params ListParams) (ListResult, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 {
		params.PageSize = 20
	}

	where := ""
	args := []interface{}{}
	if params.Active != nil {
		where = "WHERE is_active = $1"
		args = append(args, *params.Active)
	}

	var total int
	countQuery := "SELECT count(*) FROM advertisers " + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return ListResult{}, fmt.Errorf("count advertisers: %w", err)
	}

	offset := (params.Page - 1) * params.PageSize
	listQuery := fmt.Sprintf(`SELECT %s FROM advertisers %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		advertiserColumns, where, len(args)+1, len(args)+2)
	args = append(args, params.PageSize, offset)

	rows, err := r.pool.Query(ctx, listQuery, args...)
	if err != nil {
		return ListResult{}, fmt.Errorf("list advertisers: %w", err)
	}
	defer rows.Close()

	items := make([]Advertiser, 0, params.PageSize)
	for rows.Next() {
		advertiser, err := scanAdvertiser(rows)
		if err != nil {
			return ListResult{}, fmt.Errorf("scan advertiser: %w", err)
		}
		items = append(items, advertiser)
	}
	if err := rows.Err(); err != nil {
		return ListResult{}, fmt.Errorf("list advertisers: %w", err)
	}

	totalPages := (total + params.PageSize - 1) / params.PageSize

	return ListResult{
		Items:      items,
		Total:      total,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalPages: totalPages,
	}, nil
}

func (r *Repository) SetActive(ctx context.Context, id uuid.UUID, active bool) (Advertiser, error) {
	query := `
		UPDATE advertisers
		SET is_active = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + advertiserColumns

	advertiser, err := scanAdvertiser(r.pool.QueryRow(ctx, query, id, active))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Advertiser{}, apperr.NotFound(advertiserNotFoundMsg)
		}
		return Advertiser{}, fmt.Errorf("set advertiser active: %w", err)
	}

	return advertiser, nil
}

func (r *Repository) SetExpiresAt(ctx context.Context, id uuid.UUID, expiresAt time.Time) (Advertiser, error) {
	query := `
		UPDATE advertisers
		SET expires_at = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + advertiserColumns

	advertiser, err := scanAdvertiser(r.pool.QueryRow(ctx, query, id, expiresAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Advertiser{}, apperr.NotFound(advertiserNotFoundMsg)
		}
		return Advertiser{}, fmt.Errorf("set advertiser expiry: %w", err)
	}

	return advertiser, nil
}

func (r *Repository) SetLogo(ctx context.Context, id uuid.UUID, fileKey string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE advertisers
		SET logo_file_key = $2, updated_at = now()
		WHERE id = $1
	`, id, fileKey)
	if err != nil {
		return fmt.Errorf("set advertiser logo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(advertiserNotFoundMsg)
	}
	return nil
}

// DeactivateExpired flips every active advertiser whose subscription lapsed
// and returns the affected rows so callers can notify them.
func (r *Repository) DeactivateExpired(ctx context.Context, now time.Time) ([]Advertiser, error) {
	query := `
		UPDATE advertisers
		SET is_active = false, updated_at = now()
		WHERE is_active = true AND expires_at IS NOT NULL AND expires_at < $1
		RETURNING ` + advertiserColumns

	rows, err := r.pool.Query(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("deactivate expired advertisers: %w", err)
	}
	defer rows.Close()

	var expired []Advertiser
	for rows.Next() {
		advertiser, err := scanAdvertiser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan advertiser: %w", err)
		}
		expired = append(expired, advertiser)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("deactivate expired advertisers: %w", err)
	}

	return expired, nil
}
