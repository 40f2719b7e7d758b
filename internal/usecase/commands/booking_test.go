//go:build unit

package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"appointment-assistant/internal/domain/appointment"
	"appointment-assistant/internal/domain/extraction"
	"appointment-assistant/internal/pkg/clock"
	"appointment-assistant/internal/pkg/dateparse"
	"appointment-assistant/internal/pkg/errs"
	"appointment-assistant/internal/usecase/shared"
	sharedmock "appointment-assistant/tests/mock/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const fullBooking = "My name is Alice Smith, email alice@example.com, I need a haircut on 2099-01-01"

type BookingCommandsTestSuite struct {
	suite.Suite
	ctx       context.Context
	mockCtrl  *gomock.Controller
	mockStore *sharedmock.MockAppointmentStore
	clock     *clock.MockClock
	booking   *bookingCommandsImpl
	session   *shared.Session
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = sharedmock.NewMockAppointmentStore(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2030, 3, 10, 10, 0, 0, 0, time.UTC))

	extractor := extraction.NewExtractor(extraction.DefaultRules(dateparse.New()))
	s.booking = NewBookingCommands(extractor, s.mockStore, s.clock).(*bookingCommandsImpl)
	s.session = shared.NewSession("session-1", s.clock.Now())
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) TestHandleTurn_TwoTurnScenario() {
	first := s.booking.HandleTurn(s.ctx, s.session, "My name is Alice Smith, email alice@example.com")

	s.Nil(first.Outcome)
	s.Equal(appointment.Draft{Name: "Alice Smith", Email: "alice@example.com"}, s.session.Draft)
	s.Contains(first.Reply, "✅ Name saved: Alice Smith")
	s.Contains(first.Reply, "⏳ Still need: Service, Date.")

	var created *appointment.Appointment
	s.mockStore.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *appointment.Appointment) (int64, error) {
			created = a
			return 1, nil
		}).
		Times(1)

	second := s.booking.HandleTurn(s.ctx, s.session, "I need a haircut on 2099-01-01")

	s.Require().NotNil(second.Outcome)
	s.True(second.Outcome.Persisted)
	s.Regexp(`^APPT-\d{5}$`, second.Outcome.Ticket)
	s.Contains(second.Reply, second.Outcome.Ticket)
	s.Equal("haircut", created.Service)
	s.Equal("2099-01-01", created.DateString())
	s.Equal(appointment.StatusPending, created.Status)
	s.True(s.session.Draft.IsEmpty(), "draft is reset together with the booking")
	s.Equal("Alice Smith", second.Outcome.Booked.Name)
}

func (s *BookingCommandsTestSuite) TestHandleTurn_CompletesExactlyOncePerDraft() {
	s.mockStore.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(1), nil).Times(1)

	turns := []string{"My name is Bob Stone", "bob@example.com", "I need a massage", "on 2099-05-05"}
	booked := 0
	for _, turn := range turns {
		if res := s.booking.HandleTurn(s.ctx, s.session, turn); res.Outcome.Issued() {
			booked++
		}
	}

	s.Equal(1, booked)
	s.True(s.session.Draft.IsEmpty())

	// The draft is empty again, so a further unrelated turn never re-books.
	res := s.booking.HandleTurn(s.ctx, s.session, "thanks")
	s.Nil(res.Outcome)
}

func (s *BookingCommandsTestSuite) TestHandleTurn_ReplayAfterResetBooksAgain() {
	s.mockStore.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(1), nil).Times(2)

	first := s.booking.HandleTurn(s.ctx, s.session, fullBooking)
	s.booking.Reset(s.session)
	second := s.booking.HandleTurn(s.ctx, s.session, fullBooking)

	s.True(first.Outcome.Persisted)
	s.True(second.Outcome.Persisted)
}

func (s *BookingCommandsTestSuite) TestHandleTurn_PastDateRejectsWholeTurn() {
	s.session.Draft = appointment.Draft{Name: "Alice"}

	res := s.booking.HandleTurn(s.ctx, s.session, "email bob@x.com on 2020-01-01")

	s.True(res.Rejected)
	s.Equal(msgPastDate, res.Reply)
	s.Equal(appointment.Draft{Name: "Alice"}, s.session.Draft)
}

func (s *BookingCommandsTestSuite) TestHandleTurn_NothingExtracted() {
	res := s.booking.HandleTurn(s.ctx, s.session, "???")
	s.Equal(msgNothingExtracted, res.Reply)

	s.session.Draft = appointment.Draft{Name: "Alice"}
	res = s.booking.HandleTurn(s.ctx, s.session, "???")
	s.Contains(res.Reply, "📝 Current information:\nName: Alice")
	s.Contains(res.Reply, "⏳ Still need: Email, Service, Date.")
}

func (s *BookingCommandsTestSuite) TestComplete_DegradedSuccessKeepsTicket() {
	s.mockStore.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(int64(0), errors.New("disk full")).
		Times(1)

	res := s.booking.HandleTurn(s.ctx, s.session, fullBooking)

	s.Require().NotNil(res.Outcome)
	s.False(res.Outcome.Persisted)
	s.True(res.Outcome.Issued())
	s.Contains(res.Reply, "issue with the booking system")
	s.Contains(res.Reply, res.Outcome.Ticket)
	s.True(s.session.Draft.IsEmpty())
}

func (s *BookingCommandsTestSuite) TestComplete_RegeneratesTicketOnCollision() {
	tickets := []string{"APPT-11111", "APPT-22222", "APPT-33333"}
	s.booking.newTicket = func() string {
		t := tickets[0]
		tickets = tickets[1:]
		return t
	}
	s.session.Draft = appointment.Draft{Name: "Ann", Email: "a@b.com", Service: "facial", Date: "2099-01-01"}

	gomock.InOrder(
		s.mockStore.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), errs.Mark(errors.New("23505"), errs.ErrDuplicateTicket)),
		s.mockStore.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), errs.Mark(errors.New("23505"), errs.ErrDuplicateTicket)),
		s.mockStore.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(7), nil),
	)

	out := s.booking.Complete(s.ctx, s.session)

	s.True(out.Persisted)
	s.Equal("APPT-33333", out.Ticket)
}

func (s *BookingCommandsTestSuite) TestComplete_GivesUpAfterThreeCollisions() {
	s.session.Draft = appointment.Draft{Name: "Ann", Email: "a@b.com", Service: "facial", Date: "2099-01-01"}
	s.mockStore.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(int64(0), errs.Mark(errors.New("23505"), errs.ErrDuplicateTicket)).
		Times(maxTicketAttempts)

	out := s.booking.Complete(s.ctx, s.session)

	s.False(out.Persisted)
	s.True(out.Issued())
}

func (s *BookingCommandsTestSuite) TestComplete_StaleDateIsCleared() {
	s.session.Draft = appointment.Draft{Name: "Ann", Email: "a@b.com", Service: "facial", Date: "2030-03-11"}
	s.clock.Add(48 * time.Hour)

	out := s.booking.Complete(s.ctx, s.session)

	s.True(out.StaleDate)
	s.False(out.Issued())
	s.Equal(appointment.Draft{Name: "Ann", Email: "a@b.com", Service: "facial"}, s.session.Draft)
}

func (s *BookingCommandsTestSuite) TestComplete_StoreRejectsDate() {
	s.session.Draft = appointment.Draft{Name: "Ann", Email: "a@b.com", Service: "facial", Date: "2099-01-01"}
	s.mockStore.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), errs.ErrInvalidDate)

	out := s.booking.Complete(s.ctx, s.session)

	s.True(out.StaleDate)
	s.Empty(s.session.Draft.Date)
	s.Equal("Ann", s.session.Draft.Name)
}

func (s *BookingCommandsTestSuite) TestComplete_Incomplete() {
	s.session.Draft = appointment.Draft{Name: "Ann"}

	out := s.booking.Complete(s.ctx, s.session)

	s.True(out.Incomplete)
	s.Equal("⏳ Still need: Email, Service, Date. Please provide this information.", out.Message)
}

func (s *BookingCommandsTestSuite) TestStatus() {
	s.session.Draft = appointment.Draft{Name: "Ann", Service: "facial"}

	s.Equal(
		"Current information:\nName: Ann\nEmail: Not provided yet\nService: facial\nDate: Not provided yet",
		s.booking.Status(s.session),
	)
}
