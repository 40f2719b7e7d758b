package shared

import (
	"context"

	"appointment-assistant/internal/domain/appointment"
)

// AppointmentStore is the booking persistence boundary. Every method is a single statement.
type AppointmentStore interface {
	EnsureSchema(ctx context.Context) error
	// Create rejects a non-future date with errs.ErrInvalidDate and a taken ticket with errs.ErrDuplicateTicket.
	Create(ctx context.Context, a *appointment.Appointment) (int64, error)
	UpdateStatus(ctx context.Context, ticket string, status appointment.Status) (int64, error)
	FindByTicket(ctx context.Context, ticket string) (*appointment.Appointment, error)
	Find(ctx context.Context, f appointment.Filter) ([]appointment.Appointment, error)
	Aggregate(ctx context.Context, f appointment.Filter) (appointment.Totals, error)
}

// SessionStore returns a fresh session from Get when the id is unknown or expired.
type SessionStore interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}

// Prompt carries what a reply generator needs. Summary is the deterministic reply to fall back to.
type Prompt struct {
	Message string
	Summary string
	Draft   appointment.Draft
	History []Turn
}

type Responder interface {
	Respond(ctx context.Context, p Prompt) (string, error)
}
