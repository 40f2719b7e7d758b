//go:build e2e

package staff_test

import (
	"net/http"
	"testing"
	"time"

	"appointment-assistant/internal/handler/dto/response"
	"appointment-assistant/tests/common/dbtest"
	"appointment-assistant/tests/common/httptest"
	"appointment-assistant/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type StaffSuite struct {
	e2e.SharedSuite
}

func TestStaffSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(StaffSuite))
}

func (s *StaffSuite) login() string {
	t := s.T()
	sessionID := uuid.NewString()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/staff/login", map[string]string{"passcode": s.Config.Staff.Passcode}, sessionID)
	httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)
	return sessionID
}

func (s *StaffSuite) seed() {
	t := s.T()
	day := time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)
	dbtest.CreateTestAppointment(t, s.DB, dbtest.AppointmentFixture{Name: "Alice", Email: "alice@example.com", Service: "haircut", Date: day, Ticket: "APPT-10001"})
	dbtest.CreateTestAppointment(t, s.DB, dbtest.AppointmentFixture{Name: "Bob", Email: "bob@example.com", Service: "massage", Date: day, Ticket: "APPT-10002", Status: "done", Price: 60})
	dbtest.CreateTestAppointment(t, s.DB, dbtest.AppointmentFixture{Name: "Carol", Email: "carol@example.com", Service: "haircut", Date: day, Ticket: "APPT-10003", Status: "done", Price: 25.5})
}

func (s *StaffSuite) TestStaffAccess() {
	s.Run("Abnormal case: customer sessions cannot list appointments", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/staff/appointments", nil, uuid.NewString())
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Staff access required")
	})

	s.Run("Abnormal case: wrong passcode", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/staff/login", map[string]string{"passcode": "nope"}, uuid.NewString())
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid passcode")
	})

	s.Run("Normal case: logout returns to customer mode", func() {
		t := s.T()
		sessionID := s.login()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/staff/logout", nil, sessionID)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/staff/income", nil, sessionID)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Staff access required")
	})
}

func (s *StaffSuite) TestStaffOperations() {
	s.Run("Normal case: search filters by status", func() {
		t := s.T()
		s.seed()
		sessionID := s.login()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/staff/appointments?q=pending", nil, sessionID)
		var res response.AppointmentListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, 1, res.Count)
		require.Equal(t, "APPT-10001", res.Appointments[0].TicketNumber)
	})

	s.Run("Normal case: cancel updates the stored status", func() {
		t := s.T()
		s.seed()
		sessionID := s.login()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/staff/appointments/cancel", map[string]string{"ticket": "APPT-10001"}, sessionID)
		var res response.CancelResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, "Alice", res.Name)
		require.Equal(t, "cancel", dbtest.AppointmentStatus(t, s.DB, "APPT-10001"))
	})

	s.Run("Abnormal case: cancel of unknown ticket", func() {
		t := s.T()
		sessionID := s.login()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/staff/appointments/cancel", map[string]string{"ticket": "APPT-99999"}, sessionID)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Appointment not found")
	})

	s.Run("Normal case: income sums completed appointments", func() {
		t := s.T()
		s.seed()
		sessionID := s.login()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/staff/income", nil, sessionID)
		var res response.IncomeResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.InDelta(t, 85.5, res.Total, 0.001)
		require.Equal(t, int64(2), res.Count)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/staff/income?q=service+haircut", nil, sessionID)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.InDelta(t, 25.5, res.Total, 0.001)
	})

	s.Run("Normal case: staff commands over chat", func() {
		t := s.T()
		s.seed()
		sessionID := uuid.NewString()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/chat", map[string]string{"message": "staff passcode " + s.Config.Staff.Passcode}, sessionID)
		var res response.ChatResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.True(t, res.Staff)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/chat", map[string]string{"message": "show income"}, sessionID)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Contains(t, res.Reply, "💰 Total Income: $85.50")
	})
}
