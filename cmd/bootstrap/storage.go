package bootstrap

import (
	"context"
	"log/slog"

	"savor-sync/internal/infra/kvstore"
	"savor-sync/internal/pkg/config"

	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		NewKVStore,
	),
)

func NewKVStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (kvstore.Store, error) {
	store, err := kvstore.Open(context.Background(), cfg.Storage)
	if err != nil {
		return nil, err
	}
	logger.Info("device storage opened", "driver", cfg.Storage.Driver)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}
