package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"appointment-assistant/internal/infra/db"
	"appointment-assistant/internal/infra/store"
	"appointment-assistant/internal/pkg/clock"
	"appointment-assistant/internal/pkg/config"
	"appointment-assistant/internal/usecase/shared"

	"go.uber.org/fx"
)

const connectTimeout = 10 * time.Second

var DBModule = fx.Module("db",
	fx.Provide(
		NewAppointmentStore,
	),
)

// NewAppointmentStore opens the driver picked by DB_DRIVER and creates the schema on start.
func NewAppointmentStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) (shared.AppointmentStore, error) {
	var (
		s       shared.AppointmentStore
		cleanup func()
	)

	switch cfg.DB.Driver {
	case "postgres":
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()
		pool, closePool, err := db.ConnectPostgres(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		s, cleanup = store.NewPostgresStore(pool, clk), closePool
	case "sqlite":
		conn, closeConn, err := db.OpenSQLite(cfg.DB)
		if err != nil {
			return nil, err
		}
		s, cleanup = store.NewSQLiteStore(conn, clk), closeConn
	default:
		return nil, fmt.Errorf("unsupported DB driver %q", cfg.DB.Driver)
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := s.EnsureSchema(ctx); err != nil {
				return err
			}
			slog.Info("Appointment store ready", "driver", cfg.DB.Driver)
			return nil
		},
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return s, nil
}
