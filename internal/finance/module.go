package finance

import (
	"autohaus_backend/internal/http"
	"autohaus_backend/platform/validator"
)

// Module exposes the repayment calculator over HTTP.
type Module struct {
	handler *Handler
}

// NewModule creates the finance module.
func NewModule(val *validator.Validator) *Module {
	return &Module{handler: NewHandler(val)}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "finance"
}

// RegisterRoutes mounts the estimate endpoint on the public group.
func (m *Module) RegisterRoutes(ctx *http.RouterContext) {
	ctx.Public.POST("/finance/estimate", m.handler.Estimate)
}

// Compile-time check that Module implements http.Module
var _ http.Module = (*Module)(nil)
