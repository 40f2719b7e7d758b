//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type AppointmentFixture struct {
	Name    string
	Email   string
	Service string
	Date    time.Time
	Ticket  string
	Status  string
	Price   float64
}

// CreateTestAppointment inserts a row directly, bypassing the future-date rule.
func CreateTestAppointment(t *testing.T, db DBLike, f AppointmentFixture) int64 {
	t.Helper()

	if f.Status == "" {
		f.Status = "pending"
	}

	var id int64
	err := db.QueryRow(context.Background(),
		`INSERT INTO appointments (name, email, service, date, ticket_number, status, price)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		f.Name, f.Email, f.Service, f.Date.Format(time.DateOnly), f.Ticket, f.Status, f.Price,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func AppointmentStatus(t *testing.T, db DBLike, ticket string) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM appointments WHERE ticket_number = $1", ticket).Scan(&status)
	require.NoError(t, err)
	return status
}

// ResetDB empties the appointments table between subtests.
func ResetDB(db DBLike) error {
	_, err := db.Exec(context.Background(), "TRUNCATE TABLE appointments RESTART IDENTITY")
	return err
}
