// Package service implements admin authentication.
package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"dealfinder_backend/internal/auth/password"
	"dealfinder_backend/internal/auth/repository"
	"dealfinder_backend/internal/auth/transport"
	"dealfinder_backend/platform/apperr"
	"dealfinder_backend/platform/config"
	"dealfinder_backend/platform/logger"
)

const accessTokenType = "access"

// The same message for unknown email and wrong password, so login responses
// do not reveal which admins exist.
const invalidCredentialsMsg = "invalid email or password"

// Service handles admin login and token issuance.
type Service struct {
	repo *repository.Repository
	cfg  config.AuthServiceConfig
	log  *logger.Logger
}

// New creates the auth service.
func New(repo *repository.Repository, cfg config.AuthServiceConfig, log *logger.Logger) *Service {
	return &Service{repo: repo, cfg: cfg, log: log}
}

// Login verifies admin credentials and issues a short-lived access token.
func (s *Service) Login(ctx context.Context, req transport.LoginRequest) (transport.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	admin, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return transport.LoginResponse{}, apperr.Unauthorized(invalidCredentialsMsg)
		}
		return transport.LoginResponse{}, err
	}

	if !password.Verify(admin.PasswordHash, req.Password) {
		s.log.Warn("failed admin login attempt", "email", email)
		return transport.LoginResponse{}, apperr.Unauthorized(invalidCredentialsMsg)
	}

	token, err := s.signJWT(admin.ID, []string{"admin"}, s.cfg.GetAccessTokenTTL())
	if err != nil {
		return transport.LoginResponse{}, apperr.Internal("failed to issue access token").WithOp("auth.Login")
	}

	if err := s.repo.TouchLastLogin(ctx, admin.ID); err != nil {
		s.log.Warn("failed to record admin login time", "admin_id", admin.ID, "error", err)
	}

	s.log.Info("admin logged in", "admin_id", admin.ID)

	return transport.LoginResponse{
		AccessToken: token,
		ExpiresIn:   int(s.cfg.GetAccessTokenTTL().Seconds()),
	}, nil
}

func (s *Service) signJWT(adminID uuid.UUID, roles []string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   adminID.String(),
		"type":  accessTokenType,
		"roles": roles,
		"exp":   time.Now().Add(ttl).Unix(),
		"iat":   time.Now().Unix(),
	}

	tokenObj := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tokenObj.SignedString([]byte(s.cfg.GetJWTAccessSecret()))
}
