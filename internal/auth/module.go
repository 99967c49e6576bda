package auth

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"dealfinder_backend/internal/auth/handler"
	"dealfinder_backend/internal/auth/repository"
	"dealfinder_backend/internal/auth/service"
	apphttp "dealfinder_backend/internal/http"
	"dealfinder_backend/platform/config"
	"dealfinder_backend/platform/logger"
	"dealfinder_backend/platform/validator"
)

type Module struct {
	handler *handler.Handler
}

func NewModule(pool *pgxpool.Pool, cfg config.AuthServiceConfig, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, cfg, log)
	h := handler.New(svc, val)

	return &Module{handler: h}
}

func (m *Module) Name() string {
	return "auth"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.V1.Group("/auth"))
}

var _ apphttp.Module = (*Module)(nil)
