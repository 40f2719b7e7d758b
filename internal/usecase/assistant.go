package usecase

import (
	"context"
	"hash/fnv"
	"log/slog"
	"regexp"
	"strings"
	"sync"

	"appointment-assistant/internal/domain/appointment"
	"appointment-assistant/internal/pkg/errs"
	"appointment-assistant/internal/usecase/commands"
	"appointment-assistant/internal/usecase/queries"
	"appointment-assistant/internal/usecase/shared"
)

const lockStripes = 64

// redactedPasscode replaces passcode attempts in the history handed to the front-end.
const redactedPasscode = "[passcode]"

var (
	staffIntentPattern = regexp.MustCompile(`(?i)\b(?:staff|passcode|password)\b`)
	// passcodeNoisePattern removes the words people wrap a passcode in before the token is picked.
	passcodeNoisePattern = regexp.MustCompile(`(?i)\b(?:staff|member|passcode|password|code|login|enter|please|here|is|my|the|mode|access)\b`)

	exitPattern   = regexp.MustCompile(`(?i)\bexit\b`)
	cancelPattern = regexp.MustCompile(`(?i)\bcancel\b`)
	incomePattern = regexp.MustCompile(`(?i)\b(?:income|revenue|earning|earnings)\b`)
	searchPattern = regexp.MustCompile(`(?i)\b(?:show|get|list|find|appointments?|ticket)\b`)
	// staffRequestPattern recognises a staff command typed by a customer, which is refused before the booking flow sees it.
	staffRequestPattern = regexp.MustCompile(`(?i)\b(?:show|list|find|view|search)\b.*\b(?:appointments|bookings|income|revenue|earnings?)\b` +
		`|\bcancel\b.*\b(?:appointments?|bookings?|ticket)\b|\bticket\s+APPT-\d+|\b(?:income|revenue|earnings?)\b`)
	statusPattern = regexp.MustCompile(`(?i)^\s*(?:status|info|what do you have)\s*\??\s*$`)
)

type ChatReply struct {
	Reply           string
	IsComplete      bool
	AppointmentInfo appointment.Draft
	Staff           bool
	Ticket          string
}

type AssistantOptions struct {
	HistorySize int
}

type Assistant interface {
	Chat(ctx context.Context, sessionID, message string) (*ChatReply, error)
	Reset(ctx context.Context, sessionID string) (*ChatReply, error)
	Session(ctx context.Context, sessionID string) (*shared.Session, error)
	StaffLogin(ctx context.Context, sessionID, passcode string) error
	StaffLogout(ctx context.Context, sessionID string) error
	SearchAppointments(ctx context.Context, sessionID, query string) ([]queries.AppointmentView, error)
	CancelAppointment(ctx context.Context, sessionID, ticket string) (*commands.CancelResult, error)
	Income(ctx context.Context, sessionID, query string) (*queries.IncomeReport, error)
}

type assistantImpl struct {
	sessions  shared.SessionStore
	booking   commands.BookingCommands
	staff     commands.StaffCommands
	queries   queries.AppointmentQueries
	responder shared.Responder
	opts      AssistantOptions

	locks [lockStripes]sync.Mutex
}

func NewAssistant(
	sessions shared.SessionStore,
	booking commands.BookingCommands,
	staff commands.StaffCommands,
	queries queries.AppointmentQueries,
	responder shared.Responder,
	opts AssistantOptions,
) Assistant {
	return &assistantImpl{
		sessions:  sessions,
		booking:   booking,
		staff:     staff,
		queries:   queries,
		responder: responder,
		opts:      opts,
	}
}

// lock serializes turns of one session. Different sessions only contend when they share a stripe.
func (a *assistantImpl) lock(sessionID string) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(sessionID))
	m := &a.locks[h.Sum32()%lockStripes]
	m.Lock()
	return m.Unlock
}

// withSession loads the session under its lock, runs fn and saves the result.
func (a *assistantImpl) withSession(ctx context.Context, sessionID string, fn func(s *shared.Session) error) error {
	defer a.lock(sessionID)()

	s, err := a.sessions.Get(ctx, sessionID)
	if err != nil {
		return errs.Wrap(err, "failed to load session")
	}
	fnErr := fn(s)
	if err := a.sessions.Save(ctx, s); err != nil {
		return errs.Wrap(err, "failed to save session")
	}
	return fnErr
}

func (a *assistantImpl) Chat(ctx context.Context, sessionID, message string) (*ChatReply, error) {
	var reply *ChatReply
	err := a.withSession(ctx, sessionID, func(s *shared.Session) error {
		logged := message
		if s.Staff {
			reply = &ChatReply{Reply: a.staffTurn(ctx, s, message)}
		} else {
			var attempted bool
			reply, attempted = a.customerTurn(ctx, s, message)
			if attempted {
				logged = redactedPasscode
			}
		}

		s.AppendHistory(shared.RoleUser, logged, a.opts.HistorySize)
		s.AppendHistory(shared.RoleAssistant, reply.Reply, a.opts.HistorySize)
		reply.AppointmentInfo = s.Draft
		reply.Staff = s.Staff
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reply, nil
}

// customerTurn reports whether the message was consumed as a passcode attempt.
// A bare single token that does not match goes through the booking flow without spending an attempt.
func (a *assistantImpl) customerTurn(ctx context.Context, s *shared.Session, message string) (*ChatReply, bool) {
	if exitPattern.MatchString(message) && staffIntentPattern.MatchString(message) {
		return &ChatReply{Reply: alreadyCustomer}, false
	}

	if staffIntentPattern.MatchString(message) {
		if err := a.staff.VerifyPasscode(ctx, s, passcodeNoisePattern.ReplaceAllString(message, " ")); err != nil {
			return &ChatReply{Reply: passcodeReply(err)}, true
		}
		slog.Info("Staff mode entered", "session_id", s.ID)
		return &ChatReply{Reply: staffWelcome}, true
	}
	if len(strings.Fields(message)) == 1 && a.staff.MatchPasscode(ctx, s, message) {
		slog.Info("Staff mode entered", "session_id", s.ID)
		return &ChatReply{Reply: staffWelcome}, true
	}

	if staffRequestPattern.MatchString(message) {
		return &ChatReply{Reply: a.staffCommand(ctx, s, message)}, false
	}
	if statusPattern.MatchString(message) {
		return &ChatReply{Reply: a.booking.Status(s)}, false
	}

	turn := a.booking.HandleTurn(ctx, s, message)
	if turn.Rejected || turn.Outcome != nil {
		return &ChatReply{
			Reply:      turn.Reply,
			IsComplete: turn.Outcome.Issued(),
			Ticket:     outcomeTicket(turn.Outcome),
		}, false
	}

	return &ChatReply{Reply: a.respond(ctx, s, message, turn.Reply)}, false
}

// respond asks the front-end for the reply text and falls back to the deterministic summary.
func (a *assistantImpl) respond(ctx context.Context, s *shared.Session, message, summary string) string {
	text, err := a.responder.Respond(ctx, shared.Prompt{
		Message: message,
		Summary: summary,
		Draft:   s.Draft,
		History: s.History,
	})
	if err != nil || strings.TrimSpace(text) == "" {
		if err != nil {
			slog.Warn("Responder failed, using template reply", "session_id", s.ID, "error", err)
		}
		return summary
	}
	return text
}

func (a *assistantImpl) staffTurn(ctx context.Context, s *shared.Session, message string) string {
	switch {
	case exitPattern.MatchString(message) && staffIntentPattern.MatchString(message):
		if err := a.staff.Exit(s); err != nil {
			return alreadyCustomer
		}
		slog.Info("Staff mode exited", "session_id", s.ID)
		return staffExited
	case cancelPattern.MatchString(message), incomePattern.MatchString(message), searchPattern.MatchString(message):
		return a.staffCommand(ctx, s, message)
	default:
		return staffHelp
	}
}

// staffCommand runs a privileged command. The commands themselves refuse a customer session.
func (a *assistantImpl) staffCommand(ctx context.Context, s *shared.Session, message string) string {
	switch {
	case cancelPattern.MatchString(message):
		return cancelReply(a.staff.Cancel(ctx, s, message))
	case incomePattern.MatchString(message):
		return incomeReply(a.queries.Income(ctx, s, message))
	default:
		return searchReply(a.queries.Search(ctx, s, message))
	}
}

func (a *assistantImpl) Reset(ctx context.Context, sessionID string) (*ChatReply, error) {
	var reply *ChatReply
	err := a.withSession(ctx, sessionID, func(s *shared.Session) error {
		a.booking.Reset(s)
		reply = &ChatReply{Reply: resetReply, AppointmentInfo: s.Draft, Staff: s.Staff}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reply, nil
}

func (a *assistantImpl) Session(ctx context.Context, sessionID string) (*shared.Session, error) {
	defer a.lock(sessionID)()

	s, err := a.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load session")
	}
	return s, nil
}

func (a *assistantImpl) StaffLogin(ctx context.Context, sessionID, passcode string) error {
	return a.withSession(ctx, sessionID, func(s *shared.Session) error {
		return a.staff.VerifyPasscode(ctx, s, passcode)
	})
}

func (a *assistantImpl) StaffLogout(ctx context.Context, sessionID string) error {
	return a.withSession(ctx, sessionID, func(s *shared.Session) error {
		return a.staff.Exit(s)
	})
}

func (a *assistantImpl) SearchAppointments(ctx context.Context, sessionID, query string) ([]queries.AppointmentView, error) {
	s, err := a.Session(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return a.queries.Search(ctx, s, query)
}

func (a *assistantImpl) CancelAppointment(ctx context.Context, sessionID, ticket string) (*commands.CancelResult, error) {
	s, err := a.Session(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return a.staff.CancelTicket(ctx, s, ticket)
}

func (a *assistantImpl) Income(ctx context.Context, sessionID, query string) (*queries.IncomeReport, error) {
	s, err := a.Session(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return a.queries.Income(ctx, s, query)
}

func outcomeTicket(o *commands.BookingOutcome) string {
	if o == nil {
		return ""
	}
	return o.Ticket
}
