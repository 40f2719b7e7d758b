package queries

import (
	"context"
	"time"

	"appointment-assistant/internal/domain/appointment"
	"appointment-assistant/internal/pkg/clock"
	"appointment-assistant/internal/pkg/errs"
	"appointment-assistant/internal/usecase/shared"
)

// Read models (DTO for read side)
type AppointmentView struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Service      string    `json:"service"`
	Date         string    `json:"date"`
	TicketNumber string    `json:"ticket_number"`
	Status       string    `json:"status"`
	Price        float64   `json:"price"`
	CreatedAt    time.Time `json:"created_at"`
}

type IncomeReport struct {
	Total float64 `json:"total"`
	Count int64   `json:"count"`
	// Average is nil when nothing matched.
	Average *float64           `json:"average,omitempty"`
	Filter  appointment.Filter `json:"-"`
}

type AppointmentQueries interface {
	Search(ctx context.Context, s *shared.Session, text string) ([]AppointmentView, error)
	Income(ctx context.Context, s *shared.Session, text string) (*IncomeReport, error)
}

type appointmentQueriesImpl struct {
	store  shared.AppointmentStore
	parser *FilterParser
	clock  clock.Clock
}

func NewAppointmentQueries(store shared.AppointmentStore, parser *FilterParser, clock clock.Clock) AppointmentQueries {
	return &appointmentQueriesImpl{
		store:  store,
		parser: parser,
		clock:  clock,
	}
}

func (q *appointmentQueriesImpl) Search(ctx context.Context, s *shared.Session, text string) ([]AppointmentView, error) {
	if !s.Staff {
		return nil, errs.ErrStaffOnly
	}

	filter := q.parser.ParseSearch(text, q.clock.Now())
	rows, err := q.store.Find(ctx, filter)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	views := make([]AppointmentView, 0, len(rows))
	for _, a := range rows {
		views = append(views, toView(a))
	}
	return views, nil
}

func (q *appointmentQueriesImpl) Income(ctx context.Context, s *shared.Session, text string) (*IncomeReport, error) {
	if !s.Staff {
		return nil, errs.ErrStaffOnly
	}

	filter := q.parser.ParseIncome(text, q.clock.Now())
	totals, err := q.store.Aggregate(ctx, filter)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	report := &IncomeReport{Total: totals.Sum, Count: totals.Count, Filter: filter}
	if totals.Count > 0 {
		avg := totals.Sum / float64(totals.Count)
		report.Average = &avg
	}
	return report, nil
}

func toView(a appointment.Appointment) AppointmentView {
	return AppointmentView{
		ID:           a.ID,
		Name:         a.Name,
		Email:        a.Email,
		Service:      a.Service,
		Date:         a.DateString(),
		TicketNumber: a.TicketNumber,
		Status:       a.Status.String(),
		Price:        a.Price,
		CreatedAt:    a.CreatedAt,
	}
}
