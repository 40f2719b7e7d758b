package store

import (
	"context"

	"appointment-assistant/internal/domain/appointment"
	"appointment-assistant/internal/infra"
	"appointment-assistant/internal/pkg/clock"
	"appointment-assistant/internal/pkg/errs"
	"appointment-assistant/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DBTX is satisfied by *pgxpool.Pool, pgx.Tx and *pgx.Conn.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS appointments (
		id         BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		name       TEXT NOT NULL,
		email      TEXT NOT NULL,
		service    TEXT NOT NULL,
		date       DATE NOT NULL,
		status     TEXT NOT NULL DEFAULT 'pending',
		price      NUMERIC(10, 2) NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`ALTER TABLE appointments ADD COLUMN IF NOT EXISTS ticket_number TEXT`,
	`CREATE UNIQUE INDEX IF NOT EXISTS appointments_ticket_number_key ON appointments (ticket_number)`,
}

type PostgresStore struct {
	db    DBTX
	clock clock.Clock
}

func NewPostgresStore(db DBTX, clock clock.Clock) *PostgresStore {
	return &PostgresStore{
		db:    db,
		clock: clock,
	}
}

func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	for _, stmt := range postgresSchema {
		if _, err := s.db.Exec(ctx, stmt); err != nil {
			return infra.WrapRepoErr("failed to ensure appointments schema", err)
		}
	}
	return nil
}

func (s *PostgresStore) Create(ctx context.Context, a *appointment.Appointment) (int64, error) {
	if !appointment.IsFutureDate(a.DateString(), s.clock.Now()) {
		return 0, errs.ErrInvalidDate
	}

	var id int64
	err := s.db.QueryRow(ctx,
		`INSERT INTO appointments (name, email, service, date, ticket_number, status, price)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		a.Name, a.Email, a.Service, pgconv.DateToPgtype(a.Date), a.TicketNumber, a.Status.String(), a.Price,
	).Scan(&id)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return 0, errs.Mark(infra.WrapRepoErr("ticket number already taken", err, infra.KindDuplicateKey), errs.ErrDuplicateTicket)
		}
		return 0, infra.WrapRepoErr("failed to insert appointment", err)
	}

	a.ID = id
	return id, nil
}

func (s *PostgresStore) UpdateStatus(ctx context.Context, ticket string, status appointment.Status) (int64, error) {
	tag, err := s.db.Exec(ctx, `UPDATE appointments SET status = $1 WHERE ticket_number = $2`, status.String(), ticket)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update appointment status", err)
	}
	return tag.RowsAffected(), nil
}

func (s *PostgresStore) FindByTicket(ctx context.Context, ticket string) (*appointment.Appointment, error) {
	row := s.db.QueryRow(ctx, "SELECT "+selectColumns+" FROM appointments WHERE ticket_number = $1", ticket)
	a, err := scanPostgres(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment by ticket", err)
	}
	return a, nil
}

func (s *PostgresStore) Find(ctx context.Context, f appointment.Filter) ([]appointment.Appointment, error) {
	query, args := postgresDialect.findQuery(f)
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query appointments", err)
	}
	defer rows.Close()

	var out []appointment.Appointment
	for rows.Next() {
		a, err := scanPostgres(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment", err)
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate appointments", err)
	}
	return out, nil
}

func (s *PostgresStore) Aggregate(ctx context.Context, f appointment.Filter) (appointment.Totals, error) {
	query, args := postgresDialect.aggregateQuery(f)

	var (
		sum   pgtype.Numeric
		count int64
	)
	if err := s.db.QueryRow(ctx, query, args...).Scan(&sum, &count); err != nil {
		return appointment.Totals{}, infra.WrapRepoErr("failed to aggregate appointments", err)
	}

	total, err := pgconv.Float64FromNumeric(sum)
	if err != nil {
		return appointment.Totals{}, infra.WrapRepoErr("failed to convert income total", err)
	}
	return appointment.Totals{Sum: total, Count: count}, nil
}

func scanPostgres(row pgx.Row) (*appointment.Appointment, error) {
	var (
		a         appointment.Appointment
		date      pgtype.Date
		ticket    pgtype.Text
		status    string
		price     pgtype.Numeric
		createdAt pgtype.Timestamptz
	)
	if err := row.Scan(&a.ID, &a.Name, &a.Email, &a.Service, &date, &ticket, &status, &price, &createdAt); err != nil {
		return nil, err
	}

	p, err := pgconv.Float64FromNumeric(price)
	if err != nil {
		return nil, err
	}
	a.Date = pgconv.DateFromPgtype(date)
	a.TicketNumber = ticket.String
	a.Status = appointment.Status(status)
	a.Price = p
	a.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &a, nil
}
