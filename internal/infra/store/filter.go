package store

import (
	"strconv"
	"strings"

	"appointment-assistant/internal/domain/appointment"
)

// dialect captures the few places PostgreSQL and SQLite disagree.
type dialect struct {
	placeholder func(n int) string
	like        string
	dateCast    string
}

var (
	postgresDialect = dialect{
		placeholder: func(n int) string { return "$" + strconv.Itoa(n) },
		like:        "ILIKE",
		dateCast:    "::date",
	}
	sqliteDialect = dialect{
		placeholder: func(int) string { return "?" },
		like:        "LIKE",
	}
)

const selectColumns = "id, name, email, service, date, ticket_number, status, COALESCE(price, 0), created_at"

// where renders f as a conjunction starting at placeholder index start. Empty parts add nothing.
func (d dialect) where(f appointment.Filter, start int) (string, []any) {
	var (
		clauses []string
		args    []any
	)
	add := func(expr string, arg any) {
		args = append(args, arg)
		clauses = append(clauses, strings.ReplaceAll(expr, "?", d.placeholder(start+len(args)-1)))
	}

	if f.NameLike != "" {
		add("name "+d.like+" ?", "%"+f.NameLike+"%")
	}
	if f.EmailLike != "" {
		add("email "+d.like+" ?", "%"+f.EmailLike+"%")
	}
	if f.ServiceLike != "" {
		add("service "+d.like+" ?", "%"+f.ServiceLike+"%")
	}
	if f.Date != "" {
		add("date = ?"+d.dateCast, f.Date)
	}
	if f.DateFrom != "" {
		add("date >= ?"+d.dateCast, f.DateFrom)
	}
	if f.DateTo != "" {
		add("date <= ?"+d.dateCast, f.DateTo)
	}
	if f.Status != "" {
		add("status = ?", f.Status.String())
	}
	if f.Ticket != "" {
		add("ticket_number = ?", f.Ticket)
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func (d dialect) findQuery(f appointment.Filter) (string, []any) {
	where, args := d.where(f, 1)
	return "SELECT " + selectColumns + " FROM appointments" + where + " ORDER BY date, id", args
}

func (d dialect) aggregateQuery(f appointment.Filter) (string, []any) {
	where, args := d.where(f, 1)
	return "SELECT COALESCE(SUM(price), 0), COUNT(*) FROM appointments" + where, args
}
