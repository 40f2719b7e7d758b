package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"appointment-assistant/internal/domain/appointment"
	"appointment-assistant/internal/domain/extraction"
	"appointment-assistant/internal/pkg/clock"
	"appointment-assistant/internal/pkg/errs"
	"appointment-assistant/internal/usecase/shared"
)

// maxTicketAttempts bounds regeneration when a ticket number is already taken.
const maxTicketAttempts = 3

const (
	msgNothingExtracted = "❓ I couldn't extract any new info. Please provide your name, email, service, or date."
	msgPastDate         = "⚠️ I noticed you selected today or a past date. Please choose a future date for your appointment."
	msgStaleDate        = "⚠️ The selected date is today or in the past. Please choose a future date for your appointment."
	msgAllComplete      = "✅ All information complete! Booking your appointment now..."
)

type TurnResult struct {
	Reply    string
	Rejected bool
	Changes  []extraction.Change
	// Outcome is set when the turn completed the draft and a booking was attempted.
	Outcome *BookingOutcome
}

type BookingOutcome struct {
	Message string
	Ticket  string
	Booked  appointment.Draft
	// Persisted is false for a degraded success: the ticket was issued but the store write failed.
	Persisted  bool
	Incomplete bool
	StaleDate  bool
}

// Issued reports whether a ticket went out to the customer.
func (o *BookingOutcome) Issued() bool {
	return o != nil && o.Ticket != ""
}

type BookingCommands interface {
	HandleTurn(ctx context.Context, s *shared.Session, text string) *TurnResult
	Complete(ctx context.Context, s *shared.Session) *BookingOutcome
	Reset(s *shared.Session)
	Status(s *shared.Session) string
}

type bookingCommandsImpl struct {
	extractor *extraction.Extractor
	store     shared.AppointmentStore
	clock     clock.Clock
	newTicket func() string
}

func NewBookingCommands(extractor *extraction.Extractor, store shared.AppointmentStore, clock clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		extractor: extractor,
		store:     store,
		clock:     clock,
		newTicket: appointment.NewTicketNumber,
	}
}

func (b *bookingCommandsImpl) HandleTurn(ctx context.Context, s *shared.Session, text string) *TurnResult {
	res := b.extractor.Extract(text, s.Draft, b.clock.Now())
	if res.Rejected {
		return &TurnResult{Reply: msgPastDate, Rejected: true}
	}

	s.Draft = res.Draft
	if len(res.Changes) == 0 {
		if s.Draft.IsEmpty() {
			return &TurnResult{Reply: msgNothingExtracted}
		}
		return &TurnResult{Reply: statusSummary(s.Draft)}
	}

	lines := make([]string, 0, len(res.Changes))
	for _, c := range res.Changes {
		lines = append(lines, fmt.Sprintf("✅ %s saved: %s", c.Field.Label(), c.Value))
	}
	reply := strings.Join(lines, " ") + "\n" + statusSummary(s.Draft)

	result := &TurnResult{Changes: res.Changes}
	if s.Draft.IsComplete() {
		result.Outcome = b.Complete(ctx, s)
		reply += "\n" + msgAllComplete + "\n" + result.Outcome.Message
	}
	result.Reply = reply
	return result
}

// Complete books a complete draft and clears it in the same step, whether or not the store write succeeds.
func (b *bookingCommandsImpl) Complete(ctx context.Context, s *shared.Session) *BookingOutcome {
	draft := s.Draft
	if !draft.IsComplete() {
		return &BookingOutcome{
			Message:    fmt.Sprintf("⏳ Still need: %s. Please provide this information.", joinLabels(draft.Missing())),
			Incomplete: true,
		}
	}

	now := b.clock.Now()
	if !appointment.IsFutureDate(draft.Date, now) {
		s.Draft.Clear(appointment.FieldDate)
		return &BookingOutcome{Message: msgStaleDate, StaleDate: true}
	}

	var (
		ticket string
		err    error
	)
	for range maxTicketAttempts {
		ticket = b.newTicket()
		err = b.create(ctx, draft, ticket)
		if !errs.Is(err, errs.ErrDuplicateTicket) {
			break
		}
		slog.Warn("ticket number collision, regenerating", "ticket", ticket)
	}

	if errs.Is(err, errs.ErrInvalidDate) {
		s.Draft.Clear(appointment.FieldDate)
		return &BookingOutcome{Message: msgStaleDate, StaleDate: true}
	}

	s.ResetDraft()
	if err != nil {
		slog.Error("failed to persist appointment", "ticket", ticket, "error", err)
		return &BookingOutcome{
			Message: fmt.Sprintf("⚠️ Your information is complete, but there was an issue with the booking system. Please try again later. Ticket number: %s", ticket),
			Ticket:  ticket,
			Booked:  draft,
		}
	}

	slog.Info("appointment booked", "ticket", ticket, "service", draft.Service, "date", draft.Date)
	return &BookingOutcome{
		Message:   fmt.Sprintf("🎉 Your appointment has been booked successfully! Your ticket number is: %s", ticket),
		Ticket:    ticket,
		Booked:    draft,
		Persisted: true,
	}
}

func (b *bookingCommandsImpl) create(ctx context.Context, draft appointment.Draft, ticket string) error {
	appt, err := appointment.NewAppointment(draft, ticket, b.clock.Now())
	if err != nil {
		return errs.Mark(err, errs.ErrIncompleteDraft)
	}
	_, err = b.store.Create(ctx, appt)
	return err
}

func (b *bookingCommandsImpl) Reset(s *shared.Session) {
	s.ResetDraft()
}

// Status lists every field, including the ones not provided yet.
func (b *bookingCommandsImpl) Status(s *shared.Session) string {
	lines := []string{"Current information:"}
	for _, f := range appointment.Fields {
		v := s.Draft.Get(f)
		if v == "" {
			v = "Not provided yet"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", f.Label(), v))
	}
	return strings.Join(lines, "\n")
}

func statusSummary(d appointment.Draft) string {
	var parts []string
	if filled := d.Filled(); len(filled) > 0 {
		lines := make([]string, 0, len(filled))
		for _, f := range filled {
			lines = append(lines, fmt.Sprintf("%s: %s", f.Label(), d.Get(f)))
		}
		parts = append(parts, "📝 Current information:\n"+strings.Join(lines, "\n"))
	}
	if missing := d.Missing(); len(missing) > 0 {
		parts = append(parts, fmt.Sprintf("⏳ Still need: %s.", joinLabels(missing)))
	}
	return strings.Join(parts, "\n")
}

func joinLabels(fields []appointment.Field) string {
	labels := make([]string, 0, len(fields))
	for _, f := range fields {
		labels = append(labels, f.Label())
	}
	return strings.Join(labels, ", ")
}
