package components

import (
	"appointment-assistant/internal/handler"
	"appointment-assistant/internal/handler/api"
	"appointment-assistant/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewChatHandler,
		api.NewStaffHandler,
		middleware.NewStaffMiddleware,
		handler.NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)
