package bootstrap

import (
	"appointment-assistant/internal/pkg/clock"
	"appointment-assistant/internal/pkg/config"

	"go.uber.org/fx"
)

var ClockModule = fx.Module("clock",
	fx.Provide(
		NewClock,
	),
)

// NewClock pins "today" to APP_TIMEZONE.
func NewClock(cfg config.Config) (clock.Clock, error) {
	loc, err := cfg.App.Location()
	if err != nil {
		return nil, err
	}
	return clock.NewRealClock(loc), nil
}
