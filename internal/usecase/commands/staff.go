package commands

import (
	"context"
	"regexp"
	"strings"
	"sync"
	"time"

	"appointment-assistant/internal/domain/appointment"
	"appointment-assistant/internal/infra"
	"appointment-assistant/internal/pkg/clock"
	"appointment-assistant/internal/pkg/errs"
	"appointment-assistant/internal/pkg/passcode"
	"appointment-assistant/internal/usecase/shared"

	"golang.org/x/time/rate"
)

var (
	passcodeTokenPattern = regexp.MustCompile(`[a-zA-Z0-9]{4,}`)
	cancelTicketPattern  = regexp.MustCompile(`(?i)(?:ticket|number|#)\s*(APPT-\d+)`)
)

// limiterIdle is how long an unused per-session limiter is kept.
const limiterIdle = 10 * time.Minute

type CancelResult struct {
	Ticket string
	Name   string
}

type StaffCommands interface {
	VerifyPasscode(ctx context.Context, s *shared.Session, text string) error
	MatchPasscode(ctx context.Context, s *shared.Session, text string) bool
	Exit(s *shared.Session) error
	Cancel(ctx context.Context, s *shared.Session, text string) (*CancelResult, error)
	CancelTicket(ctx context.Context, s *shared.Session, ticket string) (*CancelResult, error)
}

type StaffPolicy struct {
	PasscodeHash      string
	AttemptsPerMinute float64
	Burst             int
}

type attemptLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type staffCommandsImpl struct {
	store  shared.AppointmentStore
	clock  clock.Clock
	policy StaffPolicy

	mu       sync.Mutex
	attempts map[string]*attemptLimiter
}

func NewStaffCommands(store shared.AppointmentStore, clock clock.Clock, policy StaffPolicy) StaffCommands {
	return &staffCommandsImpl{
		store:    store,
		clock:    clock,
		policy:   policy,
		attempts: make(map[string]*attemptLimiter),
	}
}

// VerifyPasscode checks the first alphanumeric token of at least four characters against the staff passcode.
// A mismatch leaves the session unchanged.
func (c *staffCommandsImpl) VerifyPasscode(_ context.Context, s *shared.Session, text string) error {
	token := passcodeTokenPattern.FindString(text)
	if token == "" {
		return errs.ErrNoPasscode
	}
	if !c.allow(s.ID) {
		return errs.ErrTooManyAttempts
	}
	if err := passcode.Compare(c.policy.PasscodeHash, token); err != nil {
		return errs.Mark(err, errs.ErrInvalidPasscode)
	}
	s.Staff = true
	return nil
}

// MatchPasscode is VerifyPasscode for text that was not offered as a passcode.
// It never spends an attempt, and it refuses while the session is locked out.
func (c *staffCommandsImpl) MatchPasscode(_ context.Context, s *shared.Session, text string) bool {
	token := passcodeTokenPattern.FindString(text)
	if token == "" || c.lockedOut(s.ID) {
		return false
	}
	if passcode.Compare(c.policy.PasscodeHash, token) != nil {
		return false
	}
	s.Staff = true
	return true
}

func (c *staffCommandsImpl) Exit(s *shared.Session) error {
	if !s.Staff {
		return errs.ErrNotStaff
	}
	s.Staff = false
	s.ResetDraft()
	return nil
}

func (c *staffCommandsImpl) Cancel(ctx context.Context, s *shared.Session, text string) (*CancelResult, error) {
	if !s.Staff {
		return nil, errs.ErrStaffOnly
	}
	m := cancelTicketPattern.FindStringSubmatch(text)
	if m == nil {
		return nil, errs.ErrTicketRequired
	}
	return c.CancelTicket(ctx, s, m[1])
}

// CancelTicket checks existence rather than current status, so cancelling twice succeeds twice.
func (c *staffCommandsImpl) CancelTicket(ctx context.Context, s *shared.Session, ticket string) (*CancelResult, error) {
	if !s.Staff {
		return nil, errs.ErrStaffOnly
	}
	ticket = strings.ToUpper(strings.TrimSpace(ticket))
	if !appointment.IsTicketNumber(ticket) {
		return nil, errs.ErrTicketRequired
	}

	appt, err := c.store.FindByTicket(ctx, ticket)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrAppointmentNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if _, err := c.store.UpdateStatus(ctx, ticket, appointment.StatusCancel); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &CancelResult{Ticket: ticket, Name: appt.Name}, nil
}

func (c *staffCommandsImpl) lockedOut(sessionID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	a, ok := c.attempts[sessionID]
	if !ok {
		return false
	}
	return a.limiter.TokensAt(c.clock.Now()) < 1
}

func (c *staffCommandsImpl) allow(sessionID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	for id, a := range c.attempts {
		if now.Sub(a.lastSeen) > limiterIdle {
			delete(c.attempts, id)
		}
	}

	a, ok := c.attempts[sessionID]
	if !ok {
		a = &attemptLimiter{limiter: rate.NewLimiter(rate.Limit(c.policy.AttemptsPerMinute/60), c.policy.Burst)}
		c.attempts[sessionID] = a
	}
	a.lastSeen = now
	return a.limiter.AllowN(now, 1)
}
