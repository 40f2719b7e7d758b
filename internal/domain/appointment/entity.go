package appointment

import (
	"errors"
	"time"
)

var (
	ErrIncomplete    = errors.New("appointment is missing required fields")
	ErrInvalidTicket = errors.New("invalid ticket number")
	ErrInvalidStatus = errors.New("invalid appointment status")
)

type Appointment struct {
	ID           int64
	Name         string
	Email        string
	Service      string
	Date         time.Time
	TicketNumber string
	Status       Status
	Price        float64
	CreatedAt    time.Time
}

// NewAppointment builds a pending, zero-priced appointment from a complete draft.
func NewAppointment(d Draft, ticket string, now time.Time) (*Appointment, error) {
	if !d.IsComplete() {
		return nil, ErrIncomplete
	}
	if !IsTicketNumber(ticket) {
		return nil, ErrInvalidTicket
	}
	date, err := time.ParseInLocation(DateLayout, d.Date, now.Location())
	if err != nil {
		return nil, err
	}
	return &Appointment{
		Name:         d.Name,
		Email:        d.Email,
		Service:      d.Service,
		Date:         date,
		TicketNumber: ticket,
		Status:       StatusPending,
		Price:        0,
	}, nil
}

func (a *Appointment) DateString() string {
	return FormatDate(a.Date)
}

// Filter is a conjunctive predicate over appointments. Zero-valued parts impose no constraint.
type Filter struct {
	NameLike    string
	EmailLike   string
	ServiceLike string
	Date        string
	DateFrom    string
	DateTo      string
	Status      Status
	Ticket      string
}

type Totals struct {
	Sum   float64
	Count int64
}
