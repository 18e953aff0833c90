// Package logger provides structured logging functionality for the application.
package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/tikkun-core/internal/config"
)

// contextKey is the private key type for loggers stored in a context.
type contextKey struct{}

// Setup initializes the application's logging system from configuration.
// It creates a structured JSON logger at the configured level, sets it as
// the process default, and returns it.
func Setup(cfg config.LogConfig) (*slog.Logger, error) {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		// Config validation rejects unknown levels, but Setup is also
		// callable with a hand-built LogConfig; fall back to info and say so.
		level = slog.LevelInfo

		tmpLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		tmpLogger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.Level,
			"default_level", "info")
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	log := slog.New(handler)
	slog.SetDefault(log)

	return log, nil
}

// WithLogger stores a logger in the context for downstream stages.
// Panics on a nil logger, which is always a programming error.
func WithLogger(ctx context.Context, log *slog.Logger) context.Context {
	if log == nil {
		panic("logger.WithLogger called with nil logger")
	}
	return context.WithValue(ctx, contextKey{}, log)
}

// FromContext returns the logger stored in the context, or nil when none
// is present.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return nil
	}
	if log, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return log
	}
	return nil
}

// FromContextOrDefault returns the context logger when present, the given
// default otherwise, and slog.Default as the last resort.
func FromContextOrDefault(ctx context.Context, def *slog.Logger) *slog.Logger {
	if log := FromContext(ctx); log != nil {
		return log
	}
	if def != nil {
		return def
	}
	return slog.Default()
}
