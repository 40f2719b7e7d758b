package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"appointment-assistant/internal/infra/db"
	"appointment-assistant/internal/infra/sessionstore"
	"appointment-assistant/internal/pkg/clock"
	"appointment-assistant/internal/pkg/config"
	"appointment-assistant/internal/usecase/shared"

	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		NewSessionStore,
	),
)

func NewSessionStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) (shared.SessionStore, error) {
	switch cfg.Session.Backend {
	case "memory":
		m := sessionstore.NewMemoryStore(clk, cfg.Session.IdleTTL, cfg.Session.SweepInterval)
		lc.Append(fx.Hook{
			OnStart: func(_ context.Context) error {
				m.Start()
				return nil
			},
			OnStop: func(_ context.Context) error {
				m.Stop()
				return nil
			},
		})
		return m, nil
	case "redis":
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()
		client, cleanup, err := db.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				cleanup()
				return nil
			},
		})
		slog.Info("Using redis session store", "addr", cfg.Redis.Addr)
		return sessionstore.NewRedisStore(client, clk, cfg.Redis.KeyPrefix, cfg.Session.IdleTTL), nil
	default:
		return nil, fmt.Errorf("unsupported session backend %q", cfg.Session.Backend)
	}
}
