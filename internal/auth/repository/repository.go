// Package repository provides database operations for admin accounts.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dealfinder_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository provides database operations for admins.
type Repository struct {
	pool *pgxpool.Pool
}

// New creates a new auth repository.
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

type Admin struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (Admin, error) {
	query := `
		SELECT id, email, password_hash, created_at, last_login_at
		FROM admins
		WHERE email = $1
	`

	var admin Admin
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&admin.ID, &admin.Email, &admin.PasswordHash, &admin.CreatedAt, &admin.LastLoginAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Admin{}, apperr.NotFound("admin not found")
		}
		return Admin{}, fmt.Errorf("get admin: %w", err)
	}

	return admin, nil
}

func (r *Repository) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `UPDATE admins SET last_login_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("touch admin last login: %w", err)
	}
	return nil
}
