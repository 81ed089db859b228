package bootstrap

import (
	"log/slog"

	"savor-sync/internal/handler/middleware"
	"savor-sync/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger shares the request logger's handler so startup and request logs
// use the same level, format and time zone.
func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}
