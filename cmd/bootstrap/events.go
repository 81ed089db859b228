package bootstrap

import (
	"context"
	"log/slog"

	"savor-sync/internal/infra/events"
	"savor-sync/internal/pkg/config"
	"savor-sync/internal/usecase/shared"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewEventPublisher,
		func(p events.Publisher) shared.EventPublisher { return p },
	),
)

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (events.Publisher, error) {
	publisher, err := events.NewPublisher(cfg.Events, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}
