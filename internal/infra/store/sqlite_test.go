//go:build unit

package store_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"appointment-assistant/internal/domain/appointment"
	"appointment-assistant/internal/infra"
	"appointment-assistant/internal/infra/db"
	"appointment-assistant/internal/infra/store"
	"appointment-assistant/internal/pkg/clock"
	"appointment-assistant/internal/pkg/config"
	"appointment-assistant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SQLiteStoreTestSuite struct {
	suite.Suite
	ctx     context.Context
	db      *sql.DB
	cleanup func()
	store   *store.SQLiteStore
}

var testNow = time.Date(2030, 3, 10, 10, 0, 0, 0, time.UTC)

func (s *SQLiteStoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	conn, cleanup, err := db.OpenSQLite(config.DBConfig{SQLitePath: ":memory:"})
	s.Require().NoError(err)
	s.db, s.cleanup = conn, cleanup

	s.store = store.NewSQLiteStore(conn, clock.NewMockClock(testNow))
	s.Require().NoError(s.store.EnsureSchema(s.ctx))
}

func (s *SQLiteStoreTestSuite) TearDownTest() {
	s.cleanup()
}

func TestSQLiteStoreSuite(t *testing.T) {
	suite.Run(t, new(SQLiteStoreTestSuite))
}

func newAppointment(t *testing.T, name, service, date, ticket string) *appointment.Appointment {
	t.Helper()
	a, err := appointment.NewAppointment(appointment.Draft{
		Name: name, Email: name + "@example.com", Service: service, Date: date,
	}, ticket, testNow)
	require.NoError(t, err)
	return a
}

func (s *SQLiteStoreTestSuite) TestEnsureSchema_Idempotent() {
	s.NoError(s.store.EnsureSchema(s.ctx))
	s.NoError(s.store.EnsureSchema(s.ctx))
}

func (s *SQLiteStoreTestSuite) TestCreateAndFindByTicket() {
	a := newAppointment(s.T(), "Alice", "haircut", "2030-03-11", "APPT-12345")

	id, err := s.store.Create(s.ctx, a)
	s.Require().NoError(err)
	s.Positive(id)

	got, err := s.store.FindByTicket(s.ctx, "APPT-12345")
	s.Require().NoError(err)
	s.Equal(id, got.ID)
	s.Equal("Alice", got.Name)
	s.Equal("2030-03-11", got.DateString())
	s.Equal(appointment.StatusPending, got.Status)
	s.Zero(got.Price)
	s.False(got.CreatedAt.IsZero())
}

func (s *SQLiteStoreTestSuite) TestCreate_RejectsNonFutureDate() {
	a := newAppointment(s.T(), "Alice", "haircut", "2030-03-10", "APPT-12345")

	_, err := s.store.Create(s.ctx, a)

	s.ErrorIs(err, errs.ErrInvalidDate)
}

func (s *SQLiteStoreTestSuite) TestCreate_DuplicateTicket() {
	_, err := s.store.Create(s.ctx, newAppointment(s.T(), "Alice", "haircut", "2030-03-11", "APPT-12345"))
	s.Require().NoError(err)

	_, err = s.store.Create(s.ctx, newAppointment(s.T(), "Bob", "facial", "2030-03-12", "APPT-12345"))

	s.True(errs.Is(err, errs.ErrDuplicateTicket))
	s.True(infra.IsKind(err, infra.KindDuplicateKey))
}

func (s *SQLiteStoreTestSuite) TestFindByTicket_NotFound() {
	_, err := s.store.FindByTicket(s.ctx, "APPT-99999")

	s.True(infra.IsKind(err, infra.KindNotFound))
}

func (s *SQLiteStoreTestSuite) TestUpdateStatus() {
	_, err := s.store.Create(s.ctx, newAppointment(s.T(), "Alice", "haircut", "2030-03-11", "APPT-12345"))
	s.Require().NoError(err)

	for range 2 {
		n, err := s.store.UpdateStatus(s.ctx, "APPT-12345", appointment.StatusCancel)
		s.Require().NoError(err)
		s.Equal(int64(1), n)
	}

	got, err := s.store.FindByTicket(s.ctx, "APPT-12345")
	s.Require().NoError(err)
	s.Equal(appointment.StatusCancel, got.Status)

	n, err := s.store.UpdateStatus(s.ctx, "APPT-00000", appointment.StatusCancel)
	s.NoError(err)
	s.Zero(n)
}

func (s *SQLiteStoreTestSuite) TestFind() {
	for _, a := range []*appointment.Appointment{
		newAppointment(s.T(), "Alice Smith", "haircut", "2030-03-11", "APPT-10001"),
		newAppointment(s.T(), "Bob Stone", "massage", "2030-03-12", "APPT-10002"),
		newAppointment(s.T(), "alice jones", "massage", "2030-04-01", "APPT-10003"),
	} {
		_, err := s.store.Create(s.ctx, a)
		s.Require().NoError(err)
	}
	_, err := s.store.UpdateStatus(s.ctx, "APPT-10002", appointment.StatusCancel)
	s.Require().NoError(err)

	tickets := func(f appointment.Filter) []string {
		rows, err := s.store.Find(s.ctx, f)
		s.Require().NoError(err)
		var out []string
		for _, r := range rows {
			out = append(out, r.TicketNumber)
		}
		return out
	}

	s.Equal([]string{"APPT-10001", "APPT-10002", "APPT-10003"}, tickets(appointment.Filter{}))
	s.Equal([]string{"APPT-10001", "APPT-10003"}, tickets(appointment.Filter{NameLike: "alice"}))
	s.Equal([]string{"APPT-10002", "APPT-10003"}, tickets(appointment.Filter{ServiceLike: "massage"}))
	s.Equal([]string{"APPT-10002"}, tickets(appointment.Filter{Status: appointment.StatusCancel}))
	s.Equal([]string{"APPT-10002"}, tickets(appointment.Filter{Date: "2030-03-12"}))
	s.Equal([]string{"APPT-10001", "APPT-10002"}, tickets(appointment.Filter{DateFrom: "2030-03-11", DateTo: "2030-03-31"}))
	s.Empty(tickets(appointment.Filter{Ticket: "APPT-77777"}))
}

func (s *SQLiteStoreTestSuite) TestAggregate() {
	totals, err := s.store.Aggregate(s.ctx, appointment.Filter{Status: appointment.StatusDone})
	s.Require().NoError(err)
	s.Equal(appointment.Totals{}, totals)

	for _, a := range []*appointment.Appointment{
		newAppointment(s.T(), "Alice", "haircut", "2030-03-11", "APPT-10001"),
		newAppointment(s.T(), "Bob", "massage", "2030-03-12", "APPT-10002"),
		newAppointment(s.T(), "Cara", "massage", "2030-03-13", "APPT-10003"),
	} {
		_, err := s.store.Create(s.ctx, a)
		s.Require().NoError(err)
	}
	// Completion and pricing happen outside this service.
	_, err = s.db.ExecContext(s.ctx, `UPDATE appointments SET status = 'done', price = 40.5 WHERE ticket_number IN ('APPT-10001', 'APPT-10002')`)
	s.Require().NoError(err)

	totals, err = s.store.Aggregate(s.ctx, appointment.Filter{Status: appointment.StatusDone})
	s.Require().NoError(err)
	s.InDelta(81.0, totals.Sum, 0.001)
	s.Equal(int64(2), totals.Count)

	totals, err = s.store.Aggregate(s.ctx, appointment.Filter{Status: appointment.StatusDone, ServiceLike: "massage"})
	s.Require().NoError(err)
	s.Equal(int64(1), totals.Count)
}

func TestSQLiteStore_UpgradesLegacyTable(t *testing.T) {
	ctx := context.Background()
	conn, cleanup, err := db.OpenSQLite(config.DBConfig{SQLitePath: ":memory:"})
	require.NoError(t, err)
	defer cleanup()

	_, err = conn.ExecContext(ctx, `CREATE TABLE appointments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		service TEXT NOT NULL,
		date TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		price REAL NOT NULL DEFAULT 0.0,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	require.NoError(t, err)

	st := store.NewSQLiteStore(conn, clock.NewMockClock(testNow))
	require.NoError(t, st.EnsureSchema(ctx))

	_, err = st.Create(ctx, newAppointment(t, "Alice", "facial", "2030-05-01", "APPT-12345"))
	require.NoError(t, err)
	got, err := st.FindByTicket(ctx, "APPT-12345")
	require.NoError(t, err)
	assert.Equal(t, "facial", got.Service)
}
