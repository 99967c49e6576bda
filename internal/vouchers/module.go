package vouchers

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"dealfinder_backend/internal/events"
	apphttp "dealfinder_backend/internal/http"
	"dealfinder_backend/internal/vouchers/handler"
	"dealfinder_backend/internal/vouchers/repository"
	"dealfinder_backend/internal/vouchers/service"
	"dealfinder_backend/platform/logger"
	"dealfinder_backend/platform/validator"
)

type Module struct {
	handler *handler.Handler
	service *service.Service
}

func NewModule(pool *pgxpool.Pool, bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, bus, log)
	h := handler.New(svc, val)

	return &Module{handler: h, service: svc}
}

// Service exposes the vouchers service for the scheduler.
func (m *Module) Service() *service.Service {
	return m.service
}

func (m *Module) Name() string {
	return "vouchers"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.V1.Group("/vouchers"))
}

var _ apphttp.Module = (*Module)(nil)
