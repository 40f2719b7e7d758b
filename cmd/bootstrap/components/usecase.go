package components

import (
	"appointment-assistant/internal/domain/extraction"
	"appointment-assistant/internal/pkg/config"
	"appointment-assistant/internal/pkg/dateparse"
	"appointment-assistant/internal/pkg/passcode"
	"appointment-assistant/internal/usecase"
	"appointment-assistant/internal/usecase/commands"
	"appointment-assistant/internal/usecase/queries"
	"appointment-assistant/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
	fx.Provide(NewAssistant),
)

var usecaseBaseOption = fx.Provide(
	fx.Annotate(
		dateparse.New,
		fx.As(new(extraction.DateParser)),
	),
	func(dates extraction.DateParser) *extraction.Extractor {
		return extraction.NewExtractor(extraction.DefaultRules(dates))
	},
	NewStaffPolicy,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewStaffCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewFilterParser,
		queries.NewAppointmentQueries,
	),
)

// NewStaffPolicy hashes a plain STAFF_PASSCODE once at startup.
func NewStaffPolicy(cfg config.Config) (commands.StaffPolicy, error) {
	hash, err := passcode.Resolve(cfg.Staff.Passcode, cfg.Staff.PasscodeHash)
	if err != nil {
		return commands.StaffPolicy{}, err
	}
	return commands.StaffPolicy{
		PasscodeHash:      hash,
		AttemptsPerMinute: cfg.Staff.AttemptsPerMinute,
		Burst:             cfg.Staff.Burst,
	}, nil
}

func NewAssistant(
	cfg config.Config,
	sessions shared.SessionStore,
	booking commands.BookingCommands,
	staff commands.StaffCommands,
	q queries.AppointmentQueries,
	responder shared.Responder,
) usecase.Assistant {
	return usecase.NewAssistant(sessions, booking, staff, q, responder, usecase.AssistantOptions{
		HistorySize: cfg.Session.HistorySize,
	})
}
