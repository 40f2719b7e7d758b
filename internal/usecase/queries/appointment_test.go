//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"appointment-assistant/internal/domain/appointment"
	"appointment-assistant/internal/pkg/clock"
	"appointment-assistant/internal/pkg/dateparse"
	"appointment-assistant/internal/pkg/errs"
	"appointment-assistant/internal/usecase/queries"
	"appointment-assistant/internal/usecase/shared"
	sharedmock "appointment-assistant/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newQueries(t *testing.T) (queries.AppointmentQueries, *sharedmock.MockAppointmentStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := sharedmock.NewMockAppointmentStore(ctrl)
	q := queries.NewAppointmentQueries(store, queries.NewFilterParser(dateparse.New()), clock.NewMockClock(now))
	return q, store
}

func TestAppointmentQueries_RequireStaff(t *testing.T) {
	q, _ := newQueries(t)
	customer := shared.NewSession("s", now)

	_, err := q.Search(context.Background(), customer, "Show appointments for tomorrow")
	assert.ErrorIs(t, err, errs.ErrStaffOnly)

	_, err = q.Income(context.Background(), customer, "income")
	assert.ErrorIs(t, err, errs.ErrStaffOnly)
}

func TestAppointmentQueries_Search(t *testing.T) {
	q, store := newQueries(t)
	staff := shared.NewSession("s", now)
	staff.Staff = true

	store.EXPECT().
		Find(gomock.Any(), appointment.Filter{Date: "2030-03-11"}).
		Return([]appointment.Appointment{{
			ID: 3, Name: "Alice", Email: "a@b.com", Service: "haircut",
			Date: now.AddDate(0, 0, 1), TicketNumber: "APPT-12345", Status: appointment.StatusPending,
		}}, nil)

	views, err := q.Search(context.Background(), staff, "Show appointments for tomorrow")

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "2030-03-11", views[0].Date)
	assert.Equal(t, "pending", views[0].Status)
}

func TestAppointmentQueries_Search_StoreFailure(t *testing.T) {
	q, store := newQueries(t)
	staff := shared.NewSession("s", now)
	staff.Staff = true
	store.EXPECT().Find(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

	_, err := q.Search(context.Background(), staff, "list")

	assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
}

func TestAppointmentQueries_Income(t *testing.T) {
	t.Run("zero matches has no average", func(t *testing.T) {
		q, store := newQueries(t)
		staff := shared.NewSession("s", now)
		staff.Staff = true
		store.EXPECT().
			Aggregate(gomock.Any(), appointment.Filter{Status: appointment.StatusDone}).
			Return(appointment.Totals{}, nil)

		report, err := q.Income(context.Background(), staff, "income")

		require.NoError(t, err)
		assert.Zero(t, report.Total)
		assert.Zero(t, report.Count)
		assert.Nil(t, report.Average)
	})

	t.Run("average over matches", func(t *testing.T) {
		q, store := newQueries(t)
		staff := shared.NewSession("s", now)
		staff.Staff = true
		store.EXPECT().
			Aggregate(gomock.Any(), gomock.Any()).
			Return(appointment.Totals{Sum: 90, Count: 3}, nil)

		report, err := q.Income(context.Background(), staff, "revenue by service massage")

		require.NoError(t, err)
		require.NotNil(t, report.Average)
		assert.InDelta(t, 30.0, *report.Average, 0.0001)
		assert.Equal(t, "massage", report.Filter.ServiceLike)
	})
}
