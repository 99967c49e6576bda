package advertisers

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"dealfinder_backend/internal/adapters/storage"
	"dealfinder_backend/internal/advertisers/handler"
	"dealfinder_backend/internal/advertisers/repository"
	"dealfinder_backend/internal/advertisers/service"
	"dealfinder_backend/internal/events"
	apphttp "dealfinder_backend/internal/http"
	"dealfinder_backend/platform/logger"
	"dealfinder_backend/platform/validator"
)

type Module struct {
	handler *handler.Handler
	service *service.Service
}

func NewModule(pool *pgxpool.Pool, store storage.Service, bus events.Bus, cfg service.StorageConfig, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, store, bus, cfg, log)
	h := handler.New(svc, val)

	return &Module{handler: h, service: svc}
}

// Service exposes the advertisers service for adapters and the scheduler.
func (m *Module) Service() *service.Service {
	return m.service
}

func (m *Module) Name() string {
	return "advertisers"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterPublicRoutes(ctx.V1.Group("/advertisers"))
	m.handler.RegisterAdminRoutes(ctx.Admin.Group("/advertisers"))
}

var _ apphttp.Module = (*Module)(nil)
