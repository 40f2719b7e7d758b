package bootstrap

import (
	"appointment-assistant/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	ClockModule,
	DBModule,
	SessionModule,
	ResponderModule,
	components.UseCaseModule,
	components.HandlerModule,
)
