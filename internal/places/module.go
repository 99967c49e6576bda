package places

import (
	apphttp "dealfinder_backend/internal/http"
	"dealfinder_backend/platform/logger"
)

// Module wires the places lookup HTTP routes.
type Module struct {
	handler *Handler
}

func NewModule(log *logger.Logger) *Module {
	svc := NewService(log)
	h := NewHandler(svc)
	return &Module{handler: h}
}

func (m *Module) Name() string {
	return "places"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/places")
	group.GET("/search", m.handler.Search)
}

var _ apphttp.Module = (*Module)(nil)
