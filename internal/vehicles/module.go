// Package vehicles provides the vehicle inventory bounded context module.
package vehicles

import (
	"autohaus_backend/internal/http"
	"autohaus_backend/internal/vehicles/handler"
	"autohaus_backend/internal/vehicles/repository"
	"autohaus_backend/internal/vehicles/service"
	"autohaus_backend/platform/logger"
	"autohaus_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the vehicle inventory bounded context implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the vehicles module.
func NewModule(pool *pgxpool.Pool, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "vehicles"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts vehicle routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *http.RouterContext) {
	ctx.Public.GET("/vehicles", m.handler.List)
	ctx.Public.GET("/vehicles/featured", m.handler.Featured)
	ctx.Public.GET("/vehicles/:id", m.handler.Get)

	ctx.Admin.POST("/vehicles", m.handler.Create)
	ctx.Admin.PUT("/vehicles/:id", m.handler.Update)
	ctx.Admin.DELETE("/vehicles/:id", m.handler.Delete)
}

// Compile-time check that Module implements http.Module
var _ http.Module = (*Module)(nil)
