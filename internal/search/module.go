package search

import (
	apphttp "dealfinder_backend/internal/http"
	"dealfinder_backend/internal/search/handler"
	"dealfinder_backend/internal/search/ports"
	"dealfinder_backend/internal/search/service"
	"dealfinder_backend/platform/logger"
	"dealfinder_backend/platform/validator"
)

type Module struct {
	handler *handler.Handler
	service *service.Service
}

func NewModule(source ports.SupplierSource, advertisers ports.AdvertiserReader, enricher ports.ProfileEnricher, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(source, advertisers, enricher, log)
	h := handler.New(svc, val)

	return &Module{handler: h, service: svc}
}

// Service exposes the aggregation engine for other modules.
func (m *Module) Service() *service.Service {
	return m.service
}

func (m *Module) Name() string {
	return "search"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/search")
	group.Use(ctx.SearchRateLimiter.RateLimit())
	m.handler.RegisterRoutes(group)
}

var _ apphttp.Module = (*Module)(nil)
