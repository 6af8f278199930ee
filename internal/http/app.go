// Package http provides HTTP server infrastructure including module registration.
package http

import (
	"context"

	"autohaus_backend/platform/config"
	"autohaus_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

// RouterConfig combines the config interfaces needed by the HTTP router.
type RouterConfig interface {
	config.HTTPConfig
	config.JWTConfig
}

// HealthChecker exposes minimal functionality for readiness checks.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// RouterContext carries the route groups a module can mount handlers on.
// Public routes are unauthenticated; Admin routes sit behind the staff
// token middleware.
type RouterContext struct {
	Public *gin.RouterGroup
	Admin  *gin.RouterGroup
}

// Module is an HTTP-facing domain module.
type Module interface {
	Name() string
	RegisterRoutes(ctx *RouterContext)
}

// App holds the fully initialized application dependencies.
// This is populated by main.go (the composition root) and passed to the router.
type App struct {
	// Config holds the router configuration (HTTP and JWT settings only).
	Config RouterConfig
	// Logger is the structured logger.
	Logger *logger.Logger
	// Health is used for readiness/health checks (e.g., DB ping).
	Health HealthChecker
	// Modules contains all HTTP-facing domain modules.
	Modules []Module
}
