// Package service implements advertiser signup and administration.
package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"dealfinder_backend/internal/adapters/storage"
	"dealfinder_backend/internal/advertisers/repository"
	"dealfinder_backend/internal/advertisers/transport"
	"dealfinder_backend/internal/events"
	"dealfinder_backend/platform/apperr"
	"dealfinder_backend/platform/logger"
	"dealfinder_backend/platform/phone"
	"dealfinder_backend/platform/sanitize"
)

// StorageConfig narrows the config surface to what the service needs.
type StorageConfig interface {
	GetMinioBucketAdvertiserLogos() string
}

// Service handles advertiser business logic.
type Service struct {
	repo    *repository.Repository
	storage storage.Service
	bus     events.Bus
	log     *logger.Logger
	cfg     StorageConfig
}

// New creates the advertisers service. storage may be nil when MinIO is not
// configured; logo endpoints then return an internal error.
func New(repo *repository.Repository, store storage.Service, bus events.Bus, cfg StorageConfig, log *logger.Logger) *Service {
	return &Service{
		repo:    repo,
		storage: store,
		bus:     bus,
		cfg:     cfg,
		log:     log,
	}
}

// Signup creates an inactive advertiser. Activation is an admin action after
// the placement package is paid for out of band.
func (s *Service) Signup(ctx context.Context, req transport.SignupRequest) (transport.Advertiser, error) {
	now := time.Now()
	advertiser := repository.Advertiser{
		ID:               uuid.New(),
		CompanyName:      sanitize.Text(req.CompanyName),
		ContactEmail:     strings.ToLower(strings.TrimSpace(req.ContactEmail)),
		ContactPhone:     phone.NormalizeE164(req.ContactPhone),
		Website:          strings.TrimSpace(req.Website),
		Description:      sanitize.Text(req.Description),
		PackageType:      req.PackageType,
		PrimaryLocation:  sanitize.Text(req.PrimaryLocation),
		ServiceLocations: sanitizeLocations(req.ServiceLocations),
		IsActive:         false,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := s.repo.Create(ctx, advertiser)
	if err != nil {
		return transport.Advertiser{}, err
	}

	s.bus.Publish(ctx, events.AdvertiserSignedUp{
		BaseEvent:    events.NewBaseEvent(),
		AdvertiserID: created.ID,
		CompanyName:  created.CompanyName,
		ContactEmail: created.ContactEmail,
		PackageType:  created.PackageType,
	})
	s.log.Info("advertiser signed up",
		"advertiser_id", created.ID,
		"company", created.CompanyName,
		"package", created.PackageType,
	)

	return s.toDTO(ctx, created), nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (transport.Advertiser, error) {
	advertiser, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.Advertiser{}, err
	}
	return s.toDTO(ctx, advertiser), nil
}

func (s *Service) List(ctx context.Context, query transport.ListQuery) (transport.ListResponse, error) {
	result, err := s.repo.List(ctx, repository.ListParams{
		Active:   query.Active,
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		return transport.ListResponse{}, err
	}

	items := make([]transport.Advertiser, 0, len(result.Items))
	for _, advertiser := range result.Items {
		items = append(items, s.toDTO(ctx, advertiser))
	}

	return transport.ListResponse{
		Items:      items,
		Total:      result.Total,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalPages: result.TotalPages,
	}, nil
}

func (s *Service) SetActive(ctx context.Context, id uuid.UUID, active bool) (transport.Advertiser, error) {
	advertiser, err := s.repo.SetActive(ctx, id, active)
	if err != nil {
		return transport.Advertiser{}, err
	}
	s.log.Info("advertiser activation changed", "advertiser_id", id, "active", active)
	return s.toDTO(ctx, advertiser), nil
}

func (s *Service) SetExpiresAt(ctx context.Context, id uuid.UUID, expiresAt time.Time) (transport.Advertiser, error) {
	advertiser, err := s.repo.SetExpiresAt(ctx, id, expiresAt)
	if err != nil {
		return transport.Advertiser{}, err
	}
	return s.toDTO(ctx, advertiser), nil
}

// GenerateLogoUpload hands out a presigned PUT slot and records the file key.
// The previous logo, if any, is deleted best-effort.
func (s *Service) GenerateLogoUpload(ctx context.Context, id uuid.UUID, req transport.LogoUploadRequest) (transport.LogoUploadResponse, error) {
	if s.storage == nil {
		return transport.LogoUploadResponse{}, apperr.Internal("file storage is not configured")
	}

	advertiser, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.LogoUploadResponse{}, err
	}

	bucket := s.cfg.GetMinioBucketAdvertiserLogos()
	presigned, err := s.storage.GenerateUploadURL(ctx, bucket, advertiser.ID.String(), req.FileName, req.ContentType, req.SizeBytes)
	if err != nil {
		return transport.LogoUploadResponse{}, apperr.Validation(err.Error())
	}

	if advertiser.LogoFileKey != nil {
		if err := s.storage.DeleteObject(ctx, bucket, *advertiser.LogoFileKey); err != nil {
			s.log.Warn("failed to delete previous advertiser logo",
				"advertiser_id", id, "file_key", *advertiser.LogoFileKey, "error", err)
		}
	}

	if err := s.repo.SetLogo(ctx, id, presigned.FileKey); err != nil {
		return transport.LogoUploadResponse{}, err
	}

	return transport.LogoUploadResponse{
		UploadURL: presigned.URL,
		FileKey:   presigned.FileKey,
		ExpiresAt: presigned.ExpiresAt,
	}, nil
}

// ListActive returns the active advertisers as repository rows. The search
// module consumes this through an adapter.
func (s *Service) ListActive(ctx context.Context) ([]repository.Advertiser, error) {
	return s.repo.ListActive(ctx)
}

// DeactivateExpired flips lapsed advertisers and publishes an expiry event
// per row. Called by the scheduler worker.
func (s *Service) DeactivateExpired(ctx context.Context, now time.Time) (int, error) {
	expired, err := s.repo.DeactivateExpired(ctx, now)
	if err != nil {
		return 0, err
	}

	for _, advertiser := range expired {
		s.bus.Publish(ctx, events.AdvertiserExpired{
			BaseEvent:    events.NewBaseEvent(),
			AdvertiserID: advertiser.ID,
			CompanyName:  advertiser.CompanyName,
			ContactEmail: advertiser.ContactEmail,
		})
		s.log.Info("advertiser subscription expired", "advertiser_id", advertiser.ID, "company", advertiser.CompanyName)
	}

	return len(expired), nil
}

func (s *Service) toDTO(ctx context.Context, advertiser repository.Advertiser) transport.Advertiser {
	dto := transport.Advertiser{
		ID:               advertiser.ID,
		CompanyName:      advertiser.CompanyName,
		ContactEmail:     advertiser.ContactEmail,
		ContactPhone:     advertiser.ContactPhone,
		Website:          advertiser.Website,
		Description:      advertiser.Description,
		PackageType:      advertiser.PackageType,
		PrimaryLocation:  advertiser.PrimaryLocation,
		ServiceLocations: advertiser.ServiceLocations,
		IsActive:         advertiser.IsActive,
		ExpiresAt:        advertiser.ExpiresAt,
		CreatedAt:        advertiser.CreatedAt,
	}

	if advertiser.LogoFileKey != nil && s.storage != nil {
		presigned, err := s.storage.GenerateDownloadURL(ctx, s.cfg.GetMinioBucketAdvertiserLogos(), *advertiser.LogoFileKey)
		if err != nil {
			s.log.Warn("failed to presign advertiser logo", "advertiser_id", advertiser.ID, "error", err)
		} else {
			dto.LogoURL = presigned.URL
		}
	}

	return dto
}

func sanitizeLocations(locations []string) []string {
	out := make([]string, 0, len(locations))
	for _, location := range locations {
		if trimmed := sanitize.Text(location); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
