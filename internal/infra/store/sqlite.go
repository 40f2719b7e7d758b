package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"appointment-assistant/internal/domain/appointment"
	"appointment-assistant/internal/infra"
	"appointment-assistant/internal/pkg/clock"
	"appointment-assistant/internal/pkg/errs"
	"appointment-assistant/internal/pkg/pgconv"

	"github.com/mattn/go-sqlite3"
)

const sqliteCreateTable = `CREATE TABLE IF NOT EXISTS appointments (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	name          TEXT NOT NULL,
	email         TEXT NOT NULL,
	service       TEXT NOT NULL,
	date          TEXT NOT NULL,
	ticket_number TEXT,
	status        TEXT NOT NULL DEFAULT 'pending',
	price         REAL NOT NULL DEFAULT 0.0,
	created_at    TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`

type SQLiteStore struct {
	db    *sql.DB
	clock clock.Clock
}

func NewSQLiteStore(db *sql.DB, clock clock.Clock) *SQLiteStore {
	return &SQLiteStore{
		db:    db,
		clock: clock,
	}
}

// EnsureSchema also upgrades tables created before ticket numbers existed.
func (s *SQLiteStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, sqliteCreateTable); err != nil {
		return infra.WrapRepoErr("failed to create appointments table", err)
	}

	hasTicket, err := s.hasColumn(ctx, "ticket_number")
	if err != nil {
		return infra.WrapRepoErr("failed to inspect appointments table", err)
	}
	if !hasTicket {
		if _, err := s.db.ExecContext(ctx, `ALTER TABLE appointments ADD COLUMN ticket_number TEXT`); err != nil {
			return infra.WrapRepoErr("failed to add ticket_number column", err)
		}
	}

	if _, err := s.db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS appointments_ticket_number_key ON appointments (ticket_number)`); err != nil {
		return infra.WrapRepoErr("failed to create ticket index", err)
	}
	return nil
}

func (s *SQLiteStore) hasColumn(ctx context.Context, column string) (bool, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM pragma_table_info('appointments')`)
	if err != nil {
		return false, err
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return false, err
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}

func (s *SQLiteStore) Create(ctx context.Context, a *appointment.Appointment) (int64, error) {
	if !appointment.IsFutureDate(a.DateString(), s.clock.Now()) {
		return 0, errs.ErrInvalidDate
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO appointments (name, email, service, date, ticket_number, status, price)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.Name, a.Email, a.Service, a.DateString(), a.TicketNumber, a.Status.String(), a.Price,
	)
	if err != nil {
		if isSQLiteUniqueViolation(err) {
			return 0, errs.Mark(infra.WrapRepoErr("ticket number already taken", err, infra.KindDuplicateKey), errs.ErrDuplicateTicket)
		}
		return 0, infra.WrapRepoErr("failed to insert appointment", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to read appointment id", err)
	}
	a.ID = id
	return id, nil
}

func (s *SQLiteStore) UpdateStatus(ctx context.Context, ticket string, status appointment.Status) (int64, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE appointments SET status = ? WHERE ticket_number = ?`, status.String(), ticket)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update appointment status", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to read affected rows", err)
	}
	return n, nil
}

func (s *SQLiteStore) FindByTicket(ctx context.Context, ticket string) (*appointment.Appointment, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+selectColumns+" FROM appointments WHERE ticket_number = ?", ticket)
	a, err := scanSQLite(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment by ticket", err)
	}
	return a, nil
}

func (s *SQLiteStore) Find(ctx context.Context, f appointment.Filter) ([]appointment.Appointment, error) {
	query, args := sqliteDialect.findQuery(f)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query appointments", err)
	}
	defer rows.Close()

	var out []appointment.Appointment
	for rows.Next() {
		a, err := scanSQLite(rows)
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

func (s *SQLiteStore) Aggregate(ctx context.Context, f appointment.Filter) (appointment.Totals, error) {
	query, args := sqliteDialect.aggregateQuery(f)

	var totals appointment.Totals
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&totals.Sum, &totals.Count); err != nil {
		return appointment.Totals{}, infra.WrapRepoErr("failed to aggregate appointments", err)
	}
	return totals, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSQLite(row scanner) (*appointment.Appointment, error) {
	var (
		a         appointment.Appointment
		date      string
		ticket    sql.NullString
		status    string
		createdAt sql.NullTime
	)
	if err := row.Scan(&a.ID, &a.Name, &a.Email, &a.Service, &date, &ticket, &status, &a.Price, &createdAt); err != nil {
		return nil, err
	}

	d, err := time.Parse(appointment.DateLayout, date)
	if err != nil {
		return nil, err
	}
	a.Date = d
	a.TicketNumber = ticket.String
	a.Status = appointment.Status(status)
	a.CreatedAt = createdAt.Time
	return &a, nil
}

func isSQLiteUniqueViolation(err error) bool {
	var se sqlite3.Error
	return errors.As(err, &se) && se.ExtendedCode == sqlite3.ErrConstraintUnique
}
