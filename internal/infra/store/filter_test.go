//go:build unit

package store

import (
	"testing"

	"appointment-assistant/internal/domain/appointment"

	"github.com/stretchr/testify/assert"
)

func TestDialect_FindQuery(t *testing.T) {
	f := appointment.Filter{NameLike: "Ali", Date: "2030-01-02", Status: appointment.StatusPending}

	t.Run("postgres", func(t *testing.T) {
		query, args := postgresDialect.findQuery(f)

		assert.Equal(t,
			"SELECT "+selectColumns+" FROM appointments WHERE name ILIKE $1 AND date = $2::date AND status = $3 ORDER BY date, id",
			query)
		assert.Equal(t, []any{"%Ali%", "2030-01-02", "pending"}, args)
	})

	t.Run("sqlite", func(t *testing.T) {
		query, args := sqliteDialect.findQuery(f)

		assert.Equal(t,
			"SELECT "+selectColumns+" FROM appointments WHERE name LIKE ? AND date = ? AND status = ? ORDER BY date, id",
			query)
		assert.Len(t, args, 3)
	})
}

func TestDialect_AggregateQuery(t *testing.T) {
	query, args := postgresDialect.aggregateQuery(appointment.Filter{})

	assert.Equal(t, "SELECT COALESCE(SUM(price), 0), COUNT(*) FROM appointments", query)
	assert.Empty(t, args)

	query, args = postgresDialect.aggregateQuery(appointment.Filter{
		Status: appointment.StatusDone, DateFrom: "2030-01-01", DateTo: "2030-01-31",
	})

	assert.Equal(t,
		"SELECT COALESCE(SUM(price), 0), COUNT(*) FROM appointments WHERE date >= $1::date AND date <= $2::date AND status = $3",
		query)
	assert.Equal(t, []any{"2030-01-01", "2030-01-31", "done"}, args)
}
