// Package enquiries provides the lead intake bounded context module.
package enquiries

import (
	"autohaus_backend/internal/email"
	"autohaus_backend/internal/enquiries/handler"
	"autohaus_backend/internal/enquiries/repository"
	"autohaus_backend/internal/enquiries/service"
	"autohaus_backend/internal/http"
	"autohaus_backend/platform/config"
	"autohaus_backend/platform/httpkit"
	"autohaus_backend/platform/logger"
	"autohaus_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the lead intake bounded context implementing http.Module.
type Module struct {
	handler     *handler.Handler
	rateLimiter *httpkit.IPRateLimiter
}

// NewModule creates and initializes the enquiries module.
func NewModule(
	pool *pgxpool.Pool,
	vehicles service.VehicleSnapshotReader,
	sender email.Sender,
	phoneCfg config.PhoneConfig,
	val *validator.Validator,
	log *logger.Logger,
) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, vehicles, sender, phoneCfg, log)
	h := handler.New(svc, val)

	return &Module{
		handler:     h,
		rateLimiter: httpkit.NewLeadRateLimiter(log),
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "enquiries"
}

// RegisterRoutes mounts the public intake endpoints. All three share one
// per-IP rate limiter.
func (m *Module) RegisterRoutes(ctx *http.RouterContext) {
	limit := m.rateLimiter.RateLimit()

	ctx.Public.POST("/contact", limit, m.handler.Contact)
	ctx.Public.POST("/enquiries", limit, m.handler.Enquiry)
	ctx.Public.POST("/sell", limit, m.handler.Sell)
}

// Compile-time check that Module implements http.Module
var _ http.Module = (*Module)(nil)
