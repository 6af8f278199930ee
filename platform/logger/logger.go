// Package logger provides structured logging infrastructure for the application.
// This is part of the platform layer and contains no business logic.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog.Logger for structured logging
type Logger struct {
	*slog.Logger
}

// New creates a new logger based on environment
func New(env string) *Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	if strings.EqualFold(env, "development") {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// HTTPRequest logs an HTTP request
func (l *Logger) HTTPRequest(method, path string, status int, latencyMs float64, clientIP string) {
	l.Info("http_request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
		slog.Float64("latency_ms", latencyMs),
		slog.String("client_ip", clientIP),
	)
}

// DatabaseError logs database errors
func (l *Logger) DatabaseError(operation string, err error) {
	l.Error("database_error",
		slog.String("operation", operation),
		slog.String("error", err.Error()),
	)
}

// RateLimitExceeded logs rate limit events
func (l *Logger) RateLimitExceeded(clientIP, path string) {
	l.Warn("rate_limit_exceeded",
		slog.String("client_ip", clientIP),
		slog.String("path", path),
	)
}

// ImportRow logs the outcome of a single import row.
func (l *Logger) ImportRow(rowNumber int, outcome string, stockNumber string) {
	l.Debug("import_row",
		slog.Int("row", rowNumber),
		slog.String("outcome", outcome),
		slog.String("stock_number", stockNumber),
	)
}

// ImportRowFailed logs a failed import row with its reason.
func (l *Logger) ImportRowFailed(rowNumber int, err error) {
	l.Warn("import_row_failed",
		slog.Int("row", rowNumber),
		slog.String("error", err.Error()),
	)
}

// LeadCreated logs a persisted lead submission.
func (l *Logger) LeadCreated(enquiryType, leadID string) {
	l.Info("lead_created",
		slog.String("enquiry_type", enquiryType),
		slog.String("lead_id", leadID),
	)
}
